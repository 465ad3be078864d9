package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odyssweb/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := NewStore(path)
	require.NoError(t, err)
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := NewStore(path)
	require.NoError(t, err)
	assert.False(t, s.IsAuthenticated())

	user := &domain.UserProfile{ID: "u1", Email: "ada@example.com", FirstName: "Ada"}
	require.NoError(t, s.SetSession(user, "acc-1", "ref-1"))
	assert.True(t, s.IsAuthenticated())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	assert.True(t, reopened.IsAuthenticated())
	assert.Equal(t, "u1", reopened.UserID())
	access, refresh := reopened.Tokens()
	assert.Equal(t, "acc-1", access)
	assert.Equal(t, "ref-1", refresh)
}

func TestStoreMissingFileIsSignedOut(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "nope", "state.json"))
	require.NoError(t, err)
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, "", s.UserID())
}

func TestStoreCorruptFileIsSignedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{notjson"), 0o600))
	s, err := NewStore(path)
	require.NoError(t, err)
	assert.False(t, s.IsAuthenticated())
}

func TestSetTokensKeepsRefreshWhenOmitted(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SetSession(&domain.UserProfile{ID: "u1"}, "acc-1", "ref-1"))

	require.NoError(t, s.SetTokens("acc-2", ""))
	access, refresh := s.Tokens()
	assert.Equal(t, "acc-2", access)
	assert.Equal(t, "ref-1", refresh)

	require.NoError(t, s.SetTokens("acc-3", "ref-2"))
	_, refresh = s.Tokens()
	assert.Equal(t, "ref-2", refresh)
}

func TestClearWipesEverything(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SetSession(&domain.UserProfile{ID: "u1"}, "acc", "ref"))
	require.NoError(t, s.SetRedirectCircle("c9"))
	require.NoError(t, s.SetPendingTrip(&domain.CreateTripData{DepartureLoc: "Lagos"}))

	require.NoError(t, s.Clear())
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, "", s.RedirectCircle())
	assert.Nil(t, s.PendingTrip())
}

func TestPendingTripStash(t *testing.T) {
	s := newTestStore(t)
	assert.Nil(t, s.PendingTrip())

	data := &domain.CreateTripData{DepartureLoc: "Lagos", ArrivalLoc: "Abuja", Seats: 4}
	require.NoError(t, s.SetPendingTrip(data))

	got := s.PendingTrip()
	require.NotNil(t, got)
	assert.Equal(t, "Abuja", got.ArrivalLoc)

	got.ArrivalLoc = "Kano"
	assert.Equal(t, "Abuja", s.PendingTrip().ArrivalLoc)

	require.NoError(t, s.ClearPendingTrip())
	assert.Nil(t, s.PendingTrip())
}

func TestSubscribeFiresOnChange(t *testing.T) {
	s := newTestStore(t)
	var seen []State
	s.Subscribe(func(st State) { seen = append(seen, st) })

	require.NoError(t, s.SetSession(&domain.UserProfile{ID: "u1"}, "acc", "ref"))
	require.NoError(t, s.Clear())

	require.Len(t, seen, 2)
	assert.NotNil(t, seen[0].User)
	assert.Nil(t, seen[1].User)
}
