// Package state persists small pieces of UI state between runs.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/SeamusWaldron/lettercube/internal/facelet"
)

// AppState is the persistent application state.
type AppState struct {
	// Front and Top are color names; empty means the reference layout.
	Front string `json:"front,omitempty"`
	Top   string `json:"top,omitempty"`
	// Completed records that the user finished choosing an orientation.
	Completed bool `json:"completed"`
}

// StateFile manages the application state file.
type StateFile struct {
	path  string
	state AppState
}

// DefaultStatePath returns the default state file path.
func DefaultStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}

	dir := filepath.Join(home, ".lettercube")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(err, "failed to create config directory")
	}
	return filepath.Join(dir, "state.json"), nil
}

// NewStateFile creates a state file manager, loading any existing state.
func NewStateFile(path string) (*StateFile, error) {
	sf := &StateFile{path: path}
	if err := sf.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return sf, nil
}

// NewDefaultStateFile creates a state file manager with the default path.
func NewDefaultStateFile() (*StateFile, error) {
	path, err := DefaultStatePath()
	if err != nil {
		return nil, err
	}
	return NewStateFile(path)
}

// Load loads the state from disk.
func (sf *StateFile) Load() error {
	data, err := os.ReadFile(sf.path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &sf.state); err != nil {
		return errors.Wrapf(err, "failed to parse %s", sf.path)
	}
	return nil
}

// Save saves the state to disk.
func (sf *StateFile) Save() error {
	data, err := json.MarshalIndent(sf.state, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal state")
	}
	if err := os.WriteFile(sf.path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write state file")
	}
	return nil
}

// Path returns the file path.
func (sf *StateFile) Path() string { return sf.path }

// State returns the current state.
func (sf *StateFile) State() AppState {
	return sf.state
}

// Orientation returns the saved front and top colors. ok is false when
// nothing valid has been saved.
func (sf *StateFile) Orientation() (front, top facelet.Color, ok bool) {
	if sf.state.Front == "" || sf.state.Top == "" {
		return facelet.Green, facelet.White, false
	}
	f, err := facelet.ParseColor(sf.state.Front)
	if err != nil {
		return facelet.Green, facelet.White, false
	}
	t, err := facelet.ParseColor(sf.state.Top)
	if err != nil {
		return facelet.Green, facelet.White, false
	}
	return f, t, true
}

// SetOrientation records the chosen colors and marks setup complete.
func (sf *StateFile) SetOrientation(front, top facelet.Color) error {
	sf.state.Front = front.Name()
	sf.state.Top = top.Name()
	sf.state.Completed = true
	return sf.Save()
}

// ClearOrientation forgets the selection, so the next run asks again.
func (sf *StateFile) ClearOrientation() error {
	sf.state = AppState{}
	return sf.Save()
}

// Completed reports whether an orientation has been chosen.
func (sf *StateFile) Completed() bool {
	return sf.state.Completed
}
