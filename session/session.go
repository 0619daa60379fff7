// ABOUTME: Persisted session: credential plus the role resolved at login
// ABOUTME: Permission flags are derived once from the role, never re-read raw
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/imocrm/imocrm/models"
)

// State is what the client remembers between runs: the session
// credential and the identity the backend reported for it.
type State struct {
	Token string `json:"token"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Permissions derives the capability flags. Consumers gate actions on
// these booleans only; this is presentation gating, not a security
// boundary. The backend re-checks everything.
func (s *State) Permissions() models.Permissions {
	if s == nil {
		return models.Permissions{}
	}
	return models.PermissionsFor(s.Role)
}

// Store reads and writes the session file.
type Store struct {
	path string
}

// NewStore uses the default XDG location.
func NewStore() *Store {
	return &Store{path: filepath.Join(xdg.DataHome, AppName, "session.json")}
}

// NewStoreAt uses an explicit path. Tests use this.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Load returns the stored session, or nil when none exists.
func (s *Store) Load() (*State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	if state.Token == "" {
		return nil, nil
	}
	return &state, nil
}

// Save writes the session with restricted permissions.
func (s *Store) Save(state *State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	return os.WriteFile(s.path, data, 0600)
}

// Clear removes the stored session. Clearing a missing session is not
// an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}
