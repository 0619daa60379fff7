package cli

import (
	"flag"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imocrm/imocrm/api"
	"github.com/imocrm/imocrm/session"
)

func TestLoginStoresVerifiedSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"email":"rui@imocrm.pt","role":"coordinator","valid":true}`))
	}))
	defer server.Close()

	client := api.NewClient(server.URL)
	store := session.NewStoreAt(filepath.Join(t.TempDir(), "session.json"))

	err := LoginCommand(client, store, []string{"--token", "tok-123"})
	require.NoError(t, err)

	state, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, "tok-123", state.Token)
	assert.Equal(t, "rui@imocrm.pt", state.Email)
	assert.Equal(t, "leader", state.Role, "coordinator normalizes to leader")
}

func TestLoginRejectsInvalidToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := api.NewClient(server.URL)
	store := session.NewStoreAt(filepath.Join(t.TempDir(), "session.json"))

	err := LoginCommand(client, store, []string{"--token", "bad"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credencial inválida")

	state, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, state, "nothing is persisted for a rejected token")
}

func TestLogoutClearsSession(t *testing.T) {
	store := session.NewStoreAt(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.Save(&session.State{Token: "tok"}))

	require.NoError(t, LogoutCommand(store, nil))

	state, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, splitList("a.jpg, b.jpg"))
	assert.Equal(t, []string{"a.jpg"}, splitList("a.jpg,"))
	assert.Nil(t, splitList(""))
}

func TestParseIDArg(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	require.NoError(t, fs.Parse([]string{"42"}))

	id, err := parseIDArg(fs, "property")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	empty := flag.NewFlagSet("test", flag.ContinueOnError)
	require.NoError(t, empty.Parse(nil))
	_, err = parseIDArg(empty, "property")
	assert.Error(t, err)

	bad := flag.NewFlagSet("test", flag.ContinueOnError)
	require.NoError(t, bad.Parse([]string{"abc"}))
	_, err = parseIDArg(bad, "property")
	assert.Error(t, err)
}
