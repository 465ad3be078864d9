package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"odyssweb/internal/domain"
)

// State is the persisted browser-session equivalent: the signed-in user,
// the token pair, and the small stashes views leave behind for each other
// (the circle to return to after login, the trip payload awaiting payment).
type State struct {
	User            *domain.UserProfile    `json:"odyss_user,omitempty"`
	AccessToken     string                 `json:"access_token,omitempty"`
	RefreshToken    string                 `json:"refresh_token,omitempty"`
	RedirectCircle  string                 `json:"redirect_circle,omitempty"`
	PendingTripData *domain.CreateTripData `json:"pending_trip_data,omitempty"`
}

// Store keeps session state on disk so a restart resumes the signed-in
// session. All mutations rewrite the whole file atomically.
type Store struct {
	mu    sync.RWMutex
	path  string
	state State
	subs  []func(State)
}

// NewStore loads existing state from path, tolerating a missing file. A
// corrupt file is treated as signed out rather than failing startup.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read session state: %w", err)
	}
	if err := json.Unmarshal(raw, &s.state); err != nil {
		s.state = State{}
	}
	return s, nil
}

// Subscribe registers fn to run after every state change, outside the
// store lock. Used by views that cache per-user data.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns the stored profile, or nil when signed out.
func (s *Store) User() *domain.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return nil
	}
	u := *s.state.User
	return &u
}

// UserID returns the signed-in user's id, or "".
func (s *Store) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return ""
	}
	return s.state.User.ID
}

// Tokens returns the current access and refresh tokens.
func (s *Store) Tokens() (access, refresh string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.AccessToken, s.state.RefreshToken
}

// IsAuthenticated reports whether both a user and an access token are
// present. Token expiry is the API client's concern, not the store's.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.User != nil && s.state.AccessToken != ""
}

// SetSession stores the signed-in user and token pair.
func (s *Store) SetSession(user *domain.UserProfile, access, refresh string) error {
	return s.update(func(st *State) {
		st.User = user
		st.AccessToken = access
		st.RefreshToken = refresh
	})
}

// SetTokens replaces the token pair, keeping the user. An empty refresh
// token keeps the previous one, matching refresh responses that omit it.
func (s *Store) SetTokens(access, refresh string) error {
	return s.update(func(st *State) {
		st.AccessToken = access
		if refresh != "" {
			st.RefreshToken = refresh
		}
	})
}

// SetUser replaces the stored profile, keeping tokens.
func (s *Store) SetUser(user *domain.UserProfile) error {
	return s.update(func(st *State) {
		st.User = user
	})
}

// Clear wipes the whole session. Used on logout and on refresh failure.
func (s *Store) Clear() error {
	return s.update(func(st *State) {
		*st = State{}
	})
}

// RedirectCircle returns and clears the circle id stashed before a login
// redirect.
func (s *Store) RedirectCircle() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.RedirectCircle
}

func (s *Store) SetRedirectCircle(circleID string) error {
	return s.update(func(st *State) {
		st.RedirectCircle = circleID
	})
}

func (s *Store) ClearRedirectCircle() error {
	return s.update(func(st *State) {
		st.RedirectCircle = ""
	})
}

// PendingTrip returns the trip payload stashed before payment, or nil.
func (s *Store) PendingTrip() *domain.CreateTripData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.PendingTripData == nil {
		return nil
	}
	d := *s.state.PendingTripData
	return &d
}

func (s *Store) SetPendingTrip(data *domain.CreateTripData) error {
	return s.update(func(st *State) {
		st.PendingTripData = data
	})
}

func (s *Store) ClearPendingTrip() error {
	return s.update(func(st *State) {
		st.PendingTripData = nil
	})
}

func (s *Store) update(mutate func(*State)) error {
	s.mu.Lock()
	mutate(&s.state)
	snapshot := s.state
	subs := make([]func(State), len(s.subs))
	copy(subs, s.subs)
	err := s.persistLocked()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
	return err
}

// persistLocked writes the state file via a temp file and rename so a
// crash mid-write never leaves a truncated session.
func (s *Store) persistLocked() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	raw, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("create temp state: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write session state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close session state: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace session state: %w", err)
	}
	return nil
}
