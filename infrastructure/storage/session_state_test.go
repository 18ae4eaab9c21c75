package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStateRoundTrip(t *testing.T) {
	store := NewSessionStateAt(filepath.Join(t.TempDir(), "state.json"))

	saved := []byte(`{"cookies":[]}`)
	require.NoError(t, store.SaveState(saved))

	loaded, err := store.LoadState()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestSessionStateMissingFileIsNotAnError(t *testing.T) {
	store := NewSessionStateAt(filepath.Join(t.TempDir(), "state.json"))

	loaded, err := store.LoadState()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
