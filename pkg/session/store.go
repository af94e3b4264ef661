// Package session owns the authenticated session: the in-memory
// identity/credential pair and its durable persistence.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/jotlabs/jot/pkg/core"
)

// Storage keys. Both must be present for a restore to succeed; either
// one on its own is treated as corruption and cleared.
const (
	keyIdentity = "user"
	keyToken    = "token"
)

// Status is the session lifecycle state.
type Status string

const (
	StatusUninitialized Status = "uninitialized"
	StatusRestoring     Status = "restoring"
	StatusAuthenticated Status = "authenticated"
	StatusAnonymous     Status = "anonymous"
)

// Store owns the session and its persistence. The in-memory session is
// authoritative for the life of the process; durable storage is a
// best-effort convenience, so a broken storage backend (the browser
// private-mode analogue) degrades to a working but non-persistent
// session rather than an error.
type Store struct {
	mu      sync.RWMutex
	storage core.Storage
	logger  *slog.Logger
	status  Status
	session core.Session
}

// NewStore creates a session store over the given storage collaborator.
// A nil logger is tolerated.
func NewStore(storage core.Storage, logger *slog.Logger) *Store {
	return &Store{
		storage: storage,
		logger:  logger,
		status:  StatusUninitialized,
	}
}

// Restore loads a persisted session at process start. It fails soft:
// missing, partial, or malformed data clears whatever remnants are
// persisted and yields no session instead of an error.
func (s *Store) Restore(ctx context.Context) (core.Session, bool) {
	s.mu.Lock()
	s.status = StatusRestoring
	s.mu.Unlock()

	identityRaw, haveIdentity, idErr := s.storage.Get(ctx, keyIdentity)
	token, haveToken, tokErr := s.storage.Get(ctx, keyToken)

	if idErr != nil || tokErr != nil {
		s.logWarn("failed to read persisted session", "identity_err", idErr, "token_err", tokErr)
		return s.abandonRestore(ctx)
	}
	if !haveIdentity || !haveToken || token == "" {
		return s.abandonRestore(ctx)
	}

	var identity core.Identity
	if err := json.Unmarshal([]byte(identityRaw), &identity); err != nil {
		s.logWarn("persisted identity is malformed", "err", err)
		return s.abandonRestore(ctx)
	}

	sess := core.Session{Identity: identity, Token: token}
	s.mu.Lock()
	s.session = sess
	s.status = StatusAuthenticated
	s.mu.Unlock()
	return sess, true
}

// abandonRestore clears any persisted remnants and lands in the
// anonymous state. Clearing is itself best-effort.
func (s *Store) abandonRestore(ctx context.Context) (core.Session, bool) {
	s.clearPersisted(ctx)
	s.mu.Lock()
	s.session = core.Session{}
	s.status = StatusAnonymous
	s.mu.Unlock()
	return core.Session{}, false
}

// Login installs the session in memory, then persists it best-effort.
// A persistence failure is logged and ignored: the session stays usable
// for the remainder of the process.
func (s *Store) Login(ctx context.Context, identity core.Identity, token string) {
	s.mu.Lock()
	s.session = core.Session{Identity: identity, Token: token}
	s.status = StatusAuthenticated
	s.mu.Unlock()

	raw, err := json.Marshal(identity)
	if err != nil {
		s.logWarn("failed to encode identity for persistence", "err", err)
		return
	}
	if err := s.storage.Set(ctx, keyIdentity, string(raw)); err != nil {
		s.logWarn("failed to persist identity", "err", err)
	}
	if err := s.storage.Set(ctx, keyToken, token); err != nil {
		s.logWarn("failed to persist token", "err", err)
	}
}

// Logout clears the in-memory session and best-effort clears the
// persisted copy. It is purely local: whether a remote sign-out call
// succeeds or fails does not change the outcome here.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.session = core.Session{}
	s.status = StatusAnonymous
	s.mu.Unlock()

	s.clearPersisted(ctx)
}

func (s *Store) clearPersisted(ctx context.Context) {
	if err := s.storage.Delete(ctx, keyIdentity); err != nil {
		s.logWarn("failed to clear persisted identity", "err", err)
	}
	if err := s.storage.Delete(ctx, keyToken); err != nil {
		s.logWarn("failed to clear persisted token", "err", err)
	}
}

// Current returns the active session, if any.
func (s *Store) Current() (core.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, s.status == StatusAuthenticated
}

// Token implements core.CredentialSource.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token, s.status == StatusAuthenticated
}

// Status returns the lifecycle state.
func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// StoreState exposes internal state for observability.
type StoreState struct {
	Status Status `json:"status"`
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
}

// State implements introspection.Introspectable. The credential itself
// is never exposed.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return StoreState{
		Status: s.status,
		UserID: s.session.Identity.ID,
		Email:  s.session.Identity.Email,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "session-store"
}

func (s *Store) logWarn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

var _ core.CredentialSource = (*Store)(nil)
var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
