package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jotlabs/jot/pkg/adapters/keyval"
	"github.com/jotlabs/jot/pkg/core"
	"github.com/jotlabs/jot/pkg/session"
)

// brokenStorage fails every operation, simulating an unavailable
// persistence backend.
type brokenStorage struct{}

func (brokenStorage) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errors.New("storage unavailable")
}
func (brokenStorage) Set(ctx context.Context, key, value string) error {
	return errors.New("storage unavailable")
}
func (brokenStorage) Delete(ctx context.Context, key string) error {
	return errors.New("storage unavailable")
}

func TestRestore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := keyval.NewMemory()

	first := session.NewStore(storage, nil)
	first.Login(ctx, core.Identity{ID: "u1", Name: "Ada", Email: "ada@example.com"}, "tok-1")

	// A fresh store over the same storage restores the session.
	second := session.NewStore(storage, nil)
	sess, ok := second.Restore(ctx)
	require.True(t, ok)
	assert.Equal(t, "u1", sess.Identity.ID)
	assert.Equal(t, "tok-1", sess.Token)
	assert.Equal(t, session.StatusAuthenticated, second.Status())

	token, ok := second.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-1", token)
}

func TestRestore_EmptyStorage(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(keyval.NewMemory(), nil)

	_, ok := store.Restore(ctx)
	assert.False(t, ok)
	assert.Equal(t, session.StatusAnonymous, store.Status())

	_, ok = store.Token()
	assert.False(t, ok)
}

func TestRestore_MalformedIdentityClearsBothKeys(t *testing.T) {
	ctx := context.Background()
	storage := keyval.NewMemory()
	require.NoError(t, storage.Set(ctx, "user", "{not json"))
	require.NoError(t, storage.Set(ctx, "token", "tok-1"))

	store := session.NewStore(storage, nil)
	_, ok := store.Restore(ctx)
	assert.False(t, ok)

	// Both keys are gone, not just the bad one.
	_, haveUser, _ := storage.Get(ctx, "user")
	_, haveToken, _ := storage.Get(ctx, "token")
	assert.False(t, haveUser)
	assert.False(t, haveToken)
}

func TestRestore_PartialDataIsNoSession(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		seed func(s core.Storage)
	}{
		{"token only", func(s core.Storage) {
			_ = s.Set(ctx, "token", "tok-1")
		}},
		{"identity only", func(s core.Storage) {
			_ = s.Set(ctx, "user", `{"id":"u1"}`)
		}},
		{"empty token", func(s core.Storage) {
			_ = s.Set(ctx, "user", `{"id":"u1"}`)
			_ = s.Set(ctx, "token", "")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := keyval.NewMemory()
			tt.seed(storage)

			store := session.NewStore(storage, nil)
			_, ok := store.Restore(ctx)
			assert.False(t, ok)
			assert.Equal(t, session.StatusAnonymous, store.Status())

			// Invariant: identity and credential are both set or neither is.
			_, haveUser, _ := storage.Get(ctx, "user")
			_, haveToken, _ := storage.Get(ctx, "token")
			assert.False(t, haveUser)
			assert.False(t, haveToken)
		})
	}
}

func TestLogin_SurvivesBrokenStorage(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(brokenStorage{}, nil)

	store.Login(ctx, core.Identity{ID: "u1"}, "tok-1")

	// Persistence failed, but the in-memory session is usable.
	sess, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "u1", sess.Identity.ID)
	assert.Equal(t, session.StatusAuthenticated, store.Status())
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	storage := keyval.NewMemory()
	store := session.NewStore(storage, nil)

	store.Login(ctx, core.Identity{ID: "u1"}, "tok-1")
	store.Logout(ctx)

	assert.Equal(t, session.StatusAnonymous, store.Status())
	_, ok := store.Current()
	assert.False(t, ok)

	_, haveUser, _ := storage.Get(ctx, "user")
	_, haveToken, _ := storage.Get(ctx, "token")
	assert.False(t, haveUser)
	assert.False(t, haveToken)

	// Logout with broken storage still lands in the same local state.
	broken := session.NewStore(brokenStorage{}, nil)
	broken.Login(ctx, core.Identity{ID: "u2"}, "tok-2")
	broken.Logout(ctx)
	assert.Equal(t, session.StatusAnonymous, broken.Status())
}

func TestState_DoesNotLeakToken(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(keyval.NewMemory(), nil)
	store.Login(ctx, core.Identity{ID: "u1", Email: "ada@example.com"}, "secret-token")

	state, ok := store.State().(session.StoreState)
	require.True(t, ok)
	assert.Equal(t, session.StatusAuthenticated, state.Status)
	assert.Equal(t, "u1", state.UserID)
	assert.Equal(t, "session-store", store.ComponentType())
}
