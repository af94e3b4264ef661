// Package jot is the composition root for the jot client library.
//
// It connects the synchronization core (session + note collection) with
// the infrastructure adapters (REST transport, key/value persistence)
// using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// jot is the headless half of a notes app: everything with real state
// and consistency concerns (authenticated sessions, the local note
// collection, reconciliation with an unreliable remote) lives here,
// behind plain Go APIs. Presentation (CLI, TUI, whatever) stays outside
// and just renders the state these components own.
//
//   - **Confirm-then-apply**: the note collection only mutates once the
//     server confirms a write; local state can be stale, never corrupt.
//   - **Soft-failing session restore**: startup never breaks on bad
//     persisted state; it clears it and starts anonymous.
//   - **Classified failures**: expected remote outcomes (401, 404,
//     network loss, odd payloads) come back as taxonomy errors, not
//     panics or raw transport noise.
//
// Usage:
//
//	app, err := jot.New("https://notes.example.com",
//		jot.WithLogger(logger),
//	)
//
//	app.Restore(ctx)
//	if _, err := app.Login(ctx, email, password); err != nil { ... }
//	if err := app.Notes.FetchAll(ctx); err != nil { ... }
package jot
