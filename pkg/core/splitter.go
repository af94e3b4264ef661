package core

import "strings"

const (
	// TitleLimit is the maximum title length in runes.
	TitleLimit = 100

	// FallbackTitle is used when the input yields no usable first line.
	FallbackTitle = "Untitled Note"
)

// Split derives a (title, content) pair from raw free-text input.
// It is deterministic, side-effect free, and always succeeds; rejecting
// empty input is the caller's job.
//
// The first line becomes the title, truncated to TitleLimit runes.
// Multi-line input keeps the full trimmed text (title included) as the
// content; single-line input uses that same line as the content, so a
// one-line note never renders a duplicated or truncated line.
func Split(raw string) (title, content string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return FallbackTitle, FallbackTitle
	}

	lines := strings.Split(trimmed, "\n")
	title = lines[0]
	if title == "" {
		title = FallbackTitle
	}

	if len(lines) > 1 {
		content = trimmed
	} else {
		content = lines[0]
	}
	return truncate(title, TitleLimit), content
}

// EditSeed reconstructs the raw edit buffer for a note. For notes
// produced by Split it inverts the transform exactly: the content
// already carries the title as its first line, so the content alone is
// the buffer. Notes this client did not create (title only, content
// only, or a title disjoint from the content) degrade to the obvious
// combination; there is no failure mode.
func EditSeed(title, content string) string {
	switch {
	case content == "":
		return title
	case title == "" || title == content:
		return content
	}
	if first, _, _ := strings.Cut(content, "\n"); first == title {
		return content
	}
	return title + "\n" + content
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
