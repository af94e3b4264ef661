// Package core holds the domain model: notes and their collection,
// identities and sessions, text splitting, the error taxonomy, and the
// ports the adapters implement. It has no dependencies beyond the
// standard library.
package core

import "time"

// Note is the central entity of the domain.
// It represents a user-authored text record with a server-assigned ID.
// The server is the authority on ID and timestamps; the client never
// fabricates either.
type Note struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// Valid reports whether the note satisfies the collection validity
// predicate: an ID must be present. Title and content may be empty;
// a note carrying neither is still addressable and rendered as empty.
func (n Note) Valid() bool {
	return n.ID != ""
}

// CreatedAtOrNow returns the server-assigned creation time, or the
// current time when the server did not provide one.
func (n Note) CreatedAtOrNow() time.Time {
	if n.CreatedAt.IsZero() {
		return time.Now()
	}
	return n.CreatedAt
}

// Collection is an ordered sequence of notes. Locally created notes are
// prepended (newest first); otherwise the order is whatever the server
// returned. A collection never contains two notes with the same ID.
type Collection []Note

// Sanitize filters out invalid entries and duplicate IDs (first
// occurrence wins), preserving order. It is applied to every server
// list before it replaces the local collection.
func Sanitize(in []Note) Collection {
	out := make(Collection, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, n := range in {
		if !n.Valid() || seen[n.ID] {
			continue
		}
		seen[n.ID] = true
		out = append(out, n)
	}
	return out
}

// IndexOf returns the position of the note with the given ID, or -1.
func (c Collection) IndexOf(id string) int {
	for i, n := range c {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether a note with the given ID is present.
func (c Collection) Contains(id string) bool {
	return c.IndexOf(id) != -1
}

// Prepend returns a collection with n as its first element. Any
// existing entry with the same ID is removed first so the uniqueness
// invariant holds.
func (c Collection) Prepend(n Note) Collection {
	out := make(Collection, 0, len(c)+1)
	out = append(out, n)
	for _, existing := range c {
		if existing.ID == n.ID {
			continue
		}
		out = append(out, existing)
	}
	return out
}

// Replace swaps the entry matching n.ID in place, preserving its
// position. It reports whether a matching entry was found; the
// collection is returned unchanged when it was not.
func (c Collection) Replace(n Note) (Collection, bool) {
	i := c.IndexOf(n.ID)
	if i == -1 {
		return c, false
	}
	out := make(Collection, len(c))
	copy(out, c)
	out[i] = n
	return out, true
}

// Remove returns a collection without the entry matching id.
func (c Collection) Remove(id string) Collection {
	out := make(Collection, 0, len(c))
	for _, n := range c {
		if n.ID == id {
			continue
		}
		out = append(out, n)
	}
	return out
}
