package services

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"odyssweb/internal/apiclient"
	"odyssweb/internal/domain"
	"odyssweb/internal/session"
)

// newBackend spins up a fake Odyss API and returns a client signed in as
// user u1 with a long-lived token.
func newBackend(t *testing.T, handler http.Handler) (*apiclient.Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := session.NewStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp":     time.Now().Add(time.Hour).Unix(),
		"user_id": "u1",
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	require.NoError(t, store.SetSession(&domain.UserProfile{ID: "u1", Email: "ada@example.com"}, signed, "ref"))

	client := apiclient.New(store, apiclient.Options{BaseURL: srv.URL})
	return client, store
}
