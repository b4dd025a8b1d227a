package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/school-events/tui/internal/app"
	"github.com/school-events/tui/internal/clock"
	"github.com/school-events/tui/internal/config"
	"github.com/school-events/tui/internal/source"
	"github.com/school-events/tui/internal/store"
)

func main() {
	configPath := flag.String("config", "", "Path to the YAML config file")
	dataLocation := flag.String("data", "", "Events payload location (file path or http(s) URL, overrides config)")
	stateDir := flag.String("state", "", "State directory (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *dataLocation != "" {
		cfg.Data.Location = *dataLocation
	}
	if *stateDir != "" {
		cfg.State.Dir = *stateDir
	}

	loader := source.New(cfg.Data.Location, cfg.Data.Timeout)
	st := store.Open(cfg.State.Dir)

	m := app.New(loader, st, clock.NewSystem(), cfg.Export.Path)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
