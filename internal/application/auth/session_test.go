package auth_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safebite/safebite-api/internal/application/auth"
	"github.com/safebite/safebite-api/internal/domain/entity"
	"github.com/safebite/safebite-api/internal/domain/rbac"
)

// blockingProfiles serves profiles but holds each fetch until released,
// so tests can interleave session events with in-flight lookups.
type blockingProfiles struct {
	mu       sync.Mutex
	profiles map[string]*entity.User
	err      error
	gate     chan struct{}
}

func newBlockingProfiles() *blockingProfiles {
	return &blockingProfiles{
		profiles: map[string]*entity.User{},
		gate:     make(chan struct{}),
	}
}

func (p *blockingProfiles) release() { close(p.gate) }

func (p *blockingProfiles) GetByID(_ context.Context, id string) (*entity.User, error) {
	<-p.gate
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	return p.profiles[id], nil
}

func settled(store *auth.SessionStore) func() bool {
	return func() bool { return !store.State().Loading }
}

func TestSessionStore_InitiallyEmpty(t *testing.T) {
	store := auth.NewSessionStore(newBlockingProfiles())
	st := store.State()
	assert.False(t, st.Loading)
	assert.False(t, st.Authenticated)
	assert.Nil(t, st.Profile)
}

func TestSessionStore_EstablishedLoadsProfile(t *testing.T) {
	profiles := newBlockingProfiles()
	profiles.profiles["u1"] = &entity.User{ID: "u1", Role: rbac.RoleOps, CompanyID: "c1"}
	store := auth.NewSessionStore(profiles)

	store.SessionEstablished(context.Background(), "u1")
	assert.True(t, store.State().Loading, "fetch outstanding, store must report loading")

	profiles.release()
	require.Eventually(t, settled(store), time.Second, time.Millisecond)

	st := store.State()
	assert.True(t, st.Authenticated)
	require.NotNil(t, st.Profile)
	assert.Equal(t, "u1", st.Profile.ID)
	assert.NoError(t, st.Err)
}

func TestSessionStore_EndedBeforeFetchResolves_DiscardsStaleProfile(t *testing.T) {
	profiles := newBlockingProfiles()
	profiles.profiles["u1"] = &entity.User{ID: "u1", Role: rbac.RoleCompanyAdmin}
	store := auth.NewSessionStore(profiles)

	store.SessionEstablished(context.Background(), "u1")
	store.SessionEnded() // session ends while the fetch is still in flight
	profiles.release()

	// Give the stale fetch time to land; it must not repopulate the store.
	time.Sleep(50 * time.Millisecond)
	st := store.State()
	assert.False(t, st.Loading)
	assert.False(t, st.Authenticated)
	assert.Nil(t, st.Profile)
}

func TestSessionStore_LatestEventWins(t *testing.T) {
	slow := newBlockingProfiles()
	slow.profiles["old"] = &entity.User{ID: "old", Role: rbac.RoleManager}
	slow.profiles["new"] = &entity.User{ID: "new", Role: rbac.RoleOps}
	store := auth.NewSessionStore(slow)

	store.SessionEstablished(context.Background(), "old")
	store.SessionEstablished(context.Background(), "new")
	slow.release()

	require.Eventually(t, func() bool {
		st := store.State()
		return st.Authenticated && st.Profile != nil
	}, time.Second, time.Millisecond)

	// Both fetches resolve after release; only the later identity may stick.
	time.Sleep(50 * time.Millisecond)
	st := store.State()
	require.NotNil(t, st.Profile)
	assert.Equal(t, "new", st.Profile.ID, "an earlier in-flight fetch must not overwrite the newer identity")
}

func TestSessionStore_FetchFailureFailsClosed(t *testing.T) {
	profiles := newBlockingProfiles()
	profiles.err = errors.New("profile store unavailable")
	store := auth.NewSessionStore(profiles)

	store.SessionEstablished(context.Background(), "u1")
	profiles.release()
	require.Eventually(t, settled(store), time.Second, time.Millisecond)

	st := store.State()
	assert.False(t, st.Authenticated, "a failed fetch must gate as unauthenticated")
	assert.Nil(t, st.Profile)
	assert.Error(t, st.Err)
}

func TestSessionStore_UnknownIdentityFailsClosed(t *testing.T) {
	profiles := newBlockingProfiles()
	store := auth.NewSessionStore(profiles)

	store.SessionEstablished(context.Background(), "ghost")
	profiles.release()
	require.Eventually(t, settled(store), time.Second, time.Millisecond)

	st := store.State()
	assert.False(t, st.Authenticated)
	assert.Nil(t, st.Profile)
	assert.Error(t, st.Err)
}
