// Package source loads the events payload from disk or over HTTP and
// turns it into the session's event set. A load failure leaves the
// session locked; no partial event set is ever installed.
package source

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/school-events/tui/internal/crypt"
	"github.com/school-events/tui/internal/event"
)

// Loader fetches and decodes the events payload.
type Loader struct {
	location string
	client   *http.Client
}

// New creates a loader for a local file path or an http(s) URL.
func New(location string, timeout time.Duration) *Loader {
	return &Loader{
		location: location,
		client:   &http.Client{Timeout: timeout},
	}
}

// Load fetches the payload and decodes it with the given password. A
// payload carrying the version tag is decrypted; anything else is
// parsed as a plain JSON array and the password is ignored.
func (l *Loader) Load(password string) ([]event.Event, error) {
	raw, err := l.fetch()
	if err != nil {
		return nil, err
	}

	var doc []byte
	if crypt.IsEncrypted(raw) {
		doc, err = crypt.Decrypt(raw, password)
		if err != nil {
			return nil, err
		}
	} else {
		doc = []byte(raw)
	}

	var events []event.Event
	if err := json.Unmarshal(doc, &events); err != nil {
		return nil, fmt.Errorf("parsing events: %w", err)
	}
	return events, nil
}

func (l *Loader) fetch() (string, error) {
	if strings.HasPrefix(l.location, "http://") || strings.HasPrefix(l.location, "https://") {
		return l.fetchHTTP()
	}

	data, err := os.ReadFile(l.location)
	if err != nil {
		return "", fmt.Errorf("reading events file: %w", err)
	}
	return string(data), nil
}

func (l *Loader) fetchHTTP() (string, error) {
	resp, err := l.client.Get(l.location)
	if err != nil {
		return "", fmt.Errorf("fetching events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching events: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading events response: %w", err)
	}
	return string(body), nil
}
