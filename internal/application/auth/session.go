package auth

import (
	"context"
	"sync"

	"github.com/safebite/safebite-api/internal/domain"
	"github.com/safebite/safebite-api/internal/domain/entity"
)

// ProfileSource resolves an authenticated identity to its profile.
// repository.UserRepository satisfies it.
type ProfileSource interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

// SessionState is a point-in-time snapshot of the session store.
// While a profile fetch is outstanding Loading is true; with no session
// Authenticated is false and Profile nil. Err is set when the last fetch
// failed, in which case the session still gates as unauthenticated.
type SessionState struct {
	Loading       bool
	Authenticated bool
	Profile       *entity.User
	Err           error
}

// SessionStore holds at most one authenticated identity for a session-aware
// consumer (live dashboard connections, server-rendered views). It is fed by
// an authentication collaborator's session events and resolves the profile
// asynchronously.
//
// The latest event always wins: each event bumps a generation counter, and a
// fetch that completes for a superseded generation is discarded rather than
// applied. A single writer mutates state; any goroutine may snapshot it.
type SessionStore struct {
	profiles ProfileSource

	mu    sync.Mutex
	gen   uint64
	state SessionState
}

// NewSessionStore builds an empty, unauthenticated store.
func NewSessionStore(profiles ProfileSource) *SessionStore {
	return &SessionStore{profiles: profiles}
}

// SessionEstablished handles a "session established" event for identityID.
// The profile lookup runs in the background; State() reports Loading until
// it settles. A later event supersedes this fetch.
func (s *SessionStore) SessionEstablished(ctx context.Context, identityID string) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.state = SessionState{Loading: true}
	s.mu.Unlock()

	go func() {
		profile, err := s.profiles.GetByID(ctx, identityID)

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen != gen {
			// A newer session event arrived while this fetch was in
			// flight; its result no longer describes the current session.
			return
		}
		switch {
		case err != nil:
			// Fail closed: a fetch failure never grants access.
			s.state = SessionState{Err: err}
		case profile == nil:
			s.state = SessionState{Err: domain.ErrUserNotFound}
		default:
			s.state = SessionState{Authenticated: true, Profile: profile}
		}
	}()
}

// SessionEnded handles a "session ended" event: the store empties
// immediately and any in-flight fetch for the previous identity is
// discarded when it lands.
func (s *SessionStore) SessionEnded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.state = SessionState{}
}

// State returns a snapshot of the current session.
func (s *SessionStore) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
