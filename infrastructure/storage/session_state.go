package storage

import (
	"os"
	"path/filepath"

	"pageprobe/domain/interfaces"
)

type sessionState struct {
	statePath string
}

// NewSessionState - creates file backed session state storage under the
// user's home directory
func NewSessionState() interfaces.SessionStore {
	homeDir, _ := os.UserHomeDir()
	stateDir := filepath.Join(homeDir, ".pageprobe")
	os.MkdirAll(stateDir, 0755)

	return &sessionState{
		statePath: filepath.Join(stateDir, "state.json"),
	}
}

// NewSessionStateAt - creates session state storage at an explicit path
func NewSessionStateAt(path string) interfaces.SessionStore {
	return &sessionState{statePath: path}
}

// LoadState - loads saved session state, nil if none was saved yet
func (s *sessionState) LoadState() ([]byte, error) {
	data, err := os.ReadFile(s.statePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// SaveState - saves session state to file
func (s *sessionState) SaveState(state []byte) error {
	return os.WriteFile(s.statePath, state, 0644)
}
