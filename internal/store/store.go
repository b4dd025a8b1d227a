// Package store persists the filter state and the opt-in saved
// credentials between sessions. The backing file is a single JSON
// document of namespaced keys with JSON-serialized values, written
// with a temp-file-then-rename so a crash mid-write never leaves a
// half-written state file. Every load path applies defaults when a key
// is absent or malformed: persistence failure must never keep the
// viewer from starting.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/school-events/tui/internal/engine"
	"github.com/school-events/tui/internal/event"
)

const (
	stateFileName = "state.json"
	appDirName    = "schoolcal"

	keyYear       = "school-events.year-filter"
	keyHiddenIDs  = "school-events.hidden-ids"
	keyShowHidden = "school-events.show-hidden"
	keyFilters    = "school-events.filters"
	keySavedAuth  = "school-events.saved-auth"
)

// AuthTTL is how long a saved password stays valid. Entries older than
// this are treated as absent and purged on the next load.
const AuthTTL = 7 * 24 * time.Hour

// Store reads and writes the persisted viewer state.
type Store struct {
	dir    string
	values map[string]json.RawMessage
}

// Open loads the state file from the given directory, falling back to
// the default XDG state path when dir is empty. A missing or corrupt
// file yields an empty store; it is not an error.
func Open(dir string) *Store {
	if dir == "" {
		dir = defaultStateDir()
	}
	s := &Store{dir: dir, values: make(map[string]json.RawMessage)}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		return s
	}
	var values map[string]json.RawMessage
	if err := json.Unmarshal(data, &values); err != nil {
		return s
	}
	s.values = values
	return s
}

// Path returns the full path of the state file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, stateFileName)
}

// categoryFlags is the wire form of the category toggles. Key names
// match the exporter's UI so a state file survives either frontend.
type categoryFlags struct {
	Normal    bool `json:"normal"`
	Recurring bool `json:"recurring"`
	HalfTerm  bool `json:"halfTerm"`
	BookBag   bool `json:"bookBag"`
}

// FilterState assembles the persisted filter state, applying defaults
// for any key that is absent or unparseable.
func (s *Store) FilterState() engine.FilterState {
	st := engine.DefaultFilterState()

	var year string
	if s.get(keyYear, &year) && year != "" {
		st.Year = year
	}

	var hiddenIDs []string
	if s.get(keyHiddenIDs, &hiddenIDs) {
		for _, id := range hiddenIDs {
			st.Hidden[id] = true
		}
	}

	s.get(keyShowHidden, &st.ShowHidden)

	var flags categoryFlags
	if s.get(keyFilters, &flags) {
		st.Categories[event.CategoryNormal] = flags.Normal
		st.Categories[event.CategoryRecurring] = flags.Recurring
		st.Categories[event.CategoryHalfTerm] = flags.HalfTerm
		st.Categories[event.CategoryBookBag] = flags.BookBag
	}
	return st
}

// SaveFilterState writes the full filter state back to disk.
func (s *Store) SaveFilterState(st engine.FilterState) error {
	hiddenIDs := make([]string, 0, len(st.Hidden))
	for id := range st.Hidden {
		hiddenIDs = append(hiddenIDs, id)
	}

	s.set(keyYear, st.Year)
	s.set(keyHiddenIDs, hiddenIDs)
	s.set(keyShowHidden, st.ShowHidden)
	s.set(keyFilters, categoryFlags{
		Normal:    st.Categories[event.CategoryNormal],
		Recurring: st.Categories[event.CategoryRecurring],
		HalfTerm:  st.Categories[event.CategoryHalfTerm],
		BookBag:   st.Categories[event.CategoryBookBag],
	})
	return s.flush()
}

// SavedAuth is the opt-in session resumption entry.
type SavedAuth struct {
	Password string    `json:"password"`
	Expiry   time.Time `json:"expiry"`
}

// Auth returns the saved credentials when present and fresh. An
// expired entry is purged from disk and reported as absent.
func (s *Store) Auth(now time.Time) (SavedAuth, bool) {
	var auth SavedAuth
	if !s.get(keySavedAuth, &auth) {
		return SavedAuth{}, false
	}
	if now.After(auth.Expiry) {
		s.ClearAuth()
		return SavedAuth{}, false
	}
	return auth, true
}

// SaveAuth stores the password with an expiry of now plus AuthTTL.
func (s *Store) SaveAuth(password string, now time.Time) error {
	s.set(keySavedAuth, SavedAuth{Password: password, Expiry: now.Add(AuthTTL)})
	return s.flush()
}

// ClearAuth drops the saved credentials.
func (s *Store) ClearAuth() error {
	delete(s.values, keySavedAuth)
	return s.flush()
}

// get unmarshals the value under key into out, reporting whether a
// usable value was present.
func (s *Store) get(key string, out any) bool {
	raw, ok := s.values[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (s *Store) set(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.values[key] = raw
}

// flush writes the document atomically, creating the state directory
// on first use.
func (s *Store) flush() error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}

	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(s.dir, ".state-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.Path()); err != nil {
		return fmt.Errorf("renaming state file: %w", err)
	}
	committed = true

	return nil
}

// defaultStateDir returns ~/.local/state/schoolcal, respecting
// XDG_STATE_HOME if set.
func defaultStateDir() string {
	if base := os.Getenv("XDG_STATE_HOME"); base != "" {
		return filepath.Join(base, appDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".local", "state", appDirName)
}
