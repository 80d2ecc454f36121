package tui

import (
	"strings"

	"github.com/nathoo/scoundrel/engine/parser"
)

// History remembers submitted commands for Up/Down recall. Game commands
// are kept in their parsed form, so "f 1" and "fight 1" are one entry and
// recalling either gives "fight 1". Meta commands are kept as typed.
type History struct {
	entries []string
	limit   int
	pos     int // index into entries while browsing, len(entries) otherwise
}

// NewHistory creates a history holding at most limit commands.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Canonical returns the form a command is stored in. Repeat commands
// ("again", "g") have no stored form and return "".
func Canonical(input string) string {
	input = strings.TrimSpace(input)
	if input == "" || strings.HasPrefix(input, "/") {
		return input
	}
	intent := parser.Parse(input)
	if intent.Verb == "again" || intent.Verb == "g" {
		return ""
	}
	parts := []string{intent.Verb}
	for _, p := range []string{intent.Object, intent.Target} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Push records input and stops browsing. A command equal to the newest
// entry after canonicalization is not stored twice.
func (h *History) Push(input string) {
	defer h.ResetCursor()

	cmd := Canonical(input)
	if cmd == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == cmd {
		return
	}
	h.entries = append(h.entries, cmd)
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = h.entries[over:]
	}
}

// Prev steps back to an older command, stopping at the oldest.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.pos > 0 {
		h.pos--
	}
	return h.entries[h.pos], true
}

// Next steps forward to a newer command. Stepping past the newest leaves
// browsing and reports false so the input can be cleared.
func (h *History) Next() (string, bool) {
	if h.pos >= len(h.entries) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.entries) {
		return "", false
	}
	return h.entries[h.pos], true
}

// ResetCursor stops browsing; the next Prev returns the newest command.
func (h *History) ResetCursor() {
	h.pos = len(h.entries)
}

// Len reports the number of stored commands.
func (h *History) Len() int {
	return len(h.entries)
}
