// Package notes owns the local, in-memory view of a user's notes and
// keeps it consistent with the remote store.
//
// Every operation is confirm-then-apply: the collection mutates only
// when a remote response arrives, never speculatively, so the local
// state can be slightly stale but never corrupted. If concurrent
// operations race on the same note, the remote store arbitrates and the
// collection reflects whichever response lands last.
package notes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/introspection"

	"github.com/jotlabs/jot/pkg/core"
)

// Repository maintains the note collection against a remote API.
type Repository struct {
	mu     sync.RWMutex
	remote core.Remote
	creds  core.CredentialSource
	logger *slog.Logger

	notes    core.Collection
	lastSync time.Time
}

// NewRepository creates a repository over the given remote and
// credential source. A nil logger is tolerated.
func NewRepository(remote core.Remote, creds core.CredentialSource, logger *slog.Logger) *Repository {
	return &Repository{
		remote: remote,
		creds:  creds,
		logger: logger,
	}
}

// FetchAll replaces the local collection with the server's list,
// filtered through the validity predicate. On any failure the local
// collection is left unchanged; a 401 surfaces as ErrSessionExpired so
// the caller can log out and redirect to authentication.
func (r *Repository) FetchAll(ctx context.Context) error {
	token, err := r.token()
	if err != nil {
		return err
	}

	list, err := r.remote.ListNotes(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to fetch notes: %w", err)
	}

	r.mu.Lock()
	r.notes = core.Sanitize(list)
	r.lastSync = time.Now()
	r.mu.Unlock()
	return nil
}

// Create derives (title, content) from the raw text, sends the create
// request, and prepends the confirmed note so the newest note is always
// first. There is no optimistic insert: with no client-generated ID
// there would be nothing to reconcile a rollback against.
//
// When the server accepts the request but returns an unrecognizable
// payload, Create falls back to a full refresh and reports success with
// a zero note.
func (r *Repository) Create(ctx context.Context, rawText string) (core.Note, error) {
	if strings.TrimSpace(rawText) == "" {
		return core.Note{}, fmt.Errorf("%w: empty note text", core.ErrInvalidInput)
	}
	token, err := r.token()
	if err != nil {
		return core.Note{}, err
	}

	title, content := core.Split(rawText)
	note, err := r.remote.CreateNote(ctx, token, title, content)
	if errors.Is(err, core.ErrUnexpectedShape) {
		r.logWarn("create accepted but response unrecognized, refreshing")
		if refreshErr := r.FetchAll(ctx); refreshErr != nil {
			return core.Note{}, refreshErr
		}
		return core.Note{}, nil
	}
	if err != nil {
		return core.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	r.mu.Lock()
	r.notes = r.notes.Prepend(note)
	r.mu.Unlock()
	return note, nil
}

// Update derives (title, content) from the raw text and replaces the
// matching entry in place once the server confirms. A 404 means the
// note vanished remotely: the collection is resynchronized best-effort
// and ErrNotFound is surfaced so the caller can drop any edit state.
func (r *Repository) Update(ctx context.Context, id, rawText string) (core.Note, error) {
	if id == "" {
		return core.Note{}, fmt.Errorf("%w: missing note id", core.ErrInvalidInput)
	}
	if strings.TrimSpace(rawText) == "" {
		return core.Note{}, fmt.Errorf("%w: empty note text", core.ErrInvalidInput)
	}
	token, err := r.token()
	if err != nil {
		return core.Note{}, err
	}

	title, content := core.Split(rawText)
	note, err := r.remote.UpdateNote(ctx, token, id, title, content)
	switch {
	case errors.Is(err, core.ErrUnexpectedShape):
		r.logWarn("update accepted but response unrecognized, refreshing", "id", id)
		if refreshErr := r.FetchAll(ctx); refreshErr != nil {
			return core.Note{}, refreshErr
		}
		return core.Note{}, nil

	case errors.Is(err, core.ErrNotFound):
		r.resync(ctx, "update hit a deleted note", "id", id)
		return core.Note{}, fmt.Errorf("failed to update note: %w", err)

	case err != nil:
		return core.Note{}, fmt.Errorf("failed to update note: %w", err)
	}

	r.mu.Lock()
	r.notes, _ = r.notes.Replace(note)
	r.mu.Unlock()
	return note, nil
}

// Delete removes the note remotely, then locally. A 404 counts as
// success, since "already gone" is an acceptable terminal state, but it
// also triggers a resynchronization: the server's view may have drifted
// beyond this one entry.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: missing note id", core.ErrInvalidInput)
	}
	token, err := r.token()
	if err != nil {
		return err
	}

	err = r.remote.DeleteNote(ctx, token, id)
	switch {
	case errors.Is(err, core.ErrNotFound):
		r.mu.Lock()
		r.notes = r.notes.Remove(id)
		r.mu.Unlock()
		r.resync(ctx, "delete hit an already-deleted note", "id", id)
		return nil

	case err != nil:
		return fmt.Errorf("failed to delete note: %w", err)
	}

	r.mu.Lock()
	r.notes = r.notes.Remove(id)
	r.mu.Unlock()
	return nil
}

// Notes returns a snapshot of the collection.
func (r *Repository) Notes() core.Collection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(core.Collection, len(r.notes))
	copy(out, r.notes)
	return out
}

// Len returns the number of notes in the collection.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.notes)
}

// Get returns the note with the given ID from the local collection.
func (r *Repository) Get(id string) (core.Note, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.notes.IndexOf(id)
	if i == -1 {
		return core.Note{}, false
	}
	return r.notes[i], true
}

// token resolves the credential for a remote call. An absent session
// classifies as expired: the caller's recovery path is the same.
func (r *Repository) token() (string, error) {
	token, ok := r.creds.Token()
	if !ok {
		return "", core.ErrSessionExpired
	}
	return token, nil
}

// resync refreshes the collection after the server revealed drift.
// Failures here are logged, not surfaced: the triggering operation's
// own outcome takes precedence.
func (r *Repository) resync(ctx context.Context, msg string, args ...any) {
	r.logWarn(msg+", resynchronizing", args...)
	if err := r.FetchAll(ctx); err != nil {
		r.logWarn("resynchronization failed", "err", err)
	}
}

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	NoteCount int       `json:"note_count"`
	LastSync  time.Time `json:"last_sync,omitzero"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RepositoryState{
		NoteCount: len(r.notes),
		LastSync:  r.lastSync,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "note-repository"
}

func (r *Repository) logWarn(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Warn(msg, args...)
	}
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
