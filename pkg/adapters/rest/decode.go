package rest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jotlabs/jot/pkg/core"
)

// wireNote mirrors the backend's note document. The ID travels as
// "_id"; timestamps are optional, and older deployments used a bare
// "timestamp" field where "createdAt" now lives.
type wireNote struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Timestamp time.Time `json:"timestamp"`
}

func (w wireNote) toCore() core.Note {
	createdAt := w.CreatedAt
	if createdAt.IsZero() {
		createdAt = w.Timestamp
	}
	return core.Note{
		ID:        w.ID,
		Title:     w.Title,
		Content:   w.Content,
		CreatedAt: createdAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// wireUser tolerates both "_id" and "id" for the user identifier.
type wireUser struct {
	ID      string `json:"_id"`
	PlainID string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

func (w wireUser) toCore() core.Identity {
	id := w.ID
	if id == "" {
		id = w.PlainID
	}
	return core.Identity{ID: id, Name: w.Name, Email: w.Email}
}

// decodeAuth parses the {user, token} payload of register/login.
func decodeAuth(data []byte) (core.Identity, string, error) {
	var payload struct {
		User  wireUser `json:"user"`
		Token string   `json:"token"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return core.Identity{}, "", fmt.Errorf("%w: %v", core.ErrUnexpectedShape, err)
	}
	if payload.Token == "" {
		return core.Identity{}, "", fmt.Errorf("%w: missing token", core.ErrUnexpectedShape)
	}
	return payload.User.toCore(), payload.Token, nil
}

// decodeList handles the three list shapes the backend has been seen to
// produce: a bare array, {"notes": [...]}, and {"data": [...]}.
// Anything else decodes to an empty list.
func decodeList(data []byte, logger *slog.Logger) []core.Note {
	var direct []json.RawMessage
	if err := json.Unmarshal(data, &direct); err == nil {
		return decodeEntries(direct, logger)
	}

	var wrapped struct {
		Notes []json.RawMessage `json:"notes"`
		Data  []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil {
		if wrapped.Notes != nil {
			return decodeEntries(wrapped.Notes, logger)
		}
		if wrapped.Data != nil {
			return decodeEntries(wrapped.Data, logger)
		}
	}

	if logger != nil {
		logger.Warn("unrecognized list payload, treating as empty", "bytes", len(data))
	}
	return nil
}

// decodeEntries unmarshals each list element on its own. A malformed
// entry drops only itself; the rest of the list survives.
func decodeEntries(raw []json.RawMessage, logger *slog.Logger) []core.Note {
	out := make([]core.Note, 0, len(raw))
	for i, entry := range raw {
		var w wireNote
		if err := json.Unmarshal(entry, &w); err != nil {
			if logger != nil {
				logger.Warn("dropping malformed note entry", "index", i, "err", err)
			}
			continue
		}
		out = append(out, w.toCore())
	}
	return out
}

// decodeNote parses a write response: the note directly, or wrapped
// under "note". A payload with no recognizable note yields
// ErrUnexpectedShape so the caller can fall back to a full refresh.
func decodeNote(data []byte) (core.Note, error) {
	var direct wireNote
	if err := json.Unmarshal(data, &direct); err == nil && direct.ID != "" {
		return direct.toCore(), nil
	}

	var wrapped struct {
		Note wireNote `json:"note"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Note.ID != "" {
		return wrapped.Note.toCore(), nil
	}

	return core.Note{}, core.ErrUnexpectedShape
}
