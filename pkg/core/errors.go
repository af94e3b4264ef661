package core

import "errors"

// Classification of remote outcomes. Expected failures (401, 404,
// network errors, odd payloads) are mapped onto these sentinels rather
// than surfaced raw; callers branch with errors.Is.
var (
	// ErrInvalidInput marks caller-correctable input. It never reaches
	// the network.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSessionExpired marks an authentication-rejected response (401).
	// The local session is stale; the caller is expected to log out and
	// redirect to authentication.
	ErrSessionExpired = errors.New("session expired")

	// ErrNotFound marks a 404: the entity vanished remotely.
	ErrNotFound = errors.New("not found")

	// ErrFetchFailed marks a network, transport, or unclassified server
	// error. No automatic retry is performed.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrUnexpectedShape marks a success response whose payload matched
	// no recognized structure. The request was accepted, so this is a
	// soft failure that triggers a full resynchronization.
	ErrUnexpectedShape = errors.New("unexpected response shape")
)
