package core

import "context"

// Remote defines the contract with the notes API. Adhering to this
// interface keeps the synchronization core independent of the transport
// (REST today, anything else tomorrow) and makes it trivial to fake in
// tests.
//
// Implementations classify expected failures into the error taxonomy of
// this package: 401 → ErrSessionExpired, 404 → ErrNotFound, 400 →
// ErrInvalidInput, transport/unclassified → ErrFetchFailed, and a
// success payload of unrecognized structure → ErrUnexpectedShape.
type Remote interface {
	// ListNotes returns the full note list for the authenticated user.
	// An unrecognized success payload yields an empty list, not an error.
	ListNotes(ctx context.Context, token string) ([]Note, error)

	// CreateNote stores a new note and returns the server's version of it.
	CreateNote(ctx context.Context, token, title, content string) (Note, error)

	// UpdateNote replaces a note's title and content atomically.
	UpdateNote(ctx context.Context, token, id, title, content string) (Note, error)

	// DeleteNote removes a note.
	DeleteNote(ctx context.Context, token, id string) error
}

// Auth defines the authentication endpoints of the remote API.
type Auth interface {
	// Register creates an account and returns its identity and token.
	Register(ctx context.Context, name, email, password string) (Identity, string, error)

	// Login exchanges credentials for an identity and token.
	Login(ctx context.Context, email, password string) (Identity, string, error)

	// SignOut invalidates the token server-side. The result is
	// advisory: local logout does not depend on it.
	SignOut(ctx context.Context, token string) error
}

// Storage is the durable key/value collaborator used to persist
// session state across process restarts. Values are plain strings.
// A missing key is reported via the boolean, never as an error.
type Storage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// CredentialSource yields the bearer credential attached to remote
// calls. The session store implements it.
type CredentialSource interface {
	// Token returns the current credential. ok is false when no session
	// is established.
	Token() (token string, ok bool)
}
