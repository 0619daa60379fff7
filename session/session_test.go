package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStoreAt(filepath.Join(t.TempDir(), "session.json"))
}

func TestLoadMissingSessionIsNil(t *testing.T) {
	store := testStore(t)
	state, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := testStore(t)

	err := store.Save(&State{Token: "tok-1", Email: "ana@imocrm.pt", Role: "leader"})
	require.NoError(t, err)

	state, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, "tok-1", state.Token)
	assert.Equal(t, "leader", state.Role)

	perms := state.Permissions()
	assert.True(t, perms.CanManageTeams)
	assert.False(t, perms.CanManageAgents)
}

func TestClear(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Save(&State{Token: "tok"}))
	require.NoError(t, store.Clear())

	state, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, state)

	assert.NoError(t, store.Clear(), "clearing twice is fine")
}

func TestEmptyTokenMeansNoSession(t *testing.T) {
	store := testStore(t)
	require.NoError(t, os.WriteFile(store.path, []byte(`{"token":""}`), 0600))

	state, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestNilStatePermissionsAreEmpty(t *testing.T) {
	var state *State
	assert.False(t, state.Permissions().CanPublish)
}
