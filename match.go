package tinyre

import (
	"github.com/coregx/tinyre/backtrack"
	"github.com/coregx/tinyre/native"
)

// Match is a successful match: the matched text, its byte bounds in the
// input and the captured substrings in group order.
type Match struct {
	start, end int
	text       string
	captures   []string
}

func newMatch(m *backtrack.Match) *Match {
	return &Match{start: m.Start(), end: m.End(), text: m.Text(), captures: m.Captures()}
}

func newNativeMatch(m *native.Match) *Match {
	return &Match{start: m.Start(), end: m.End(), text: m.Text(), captures: m.Captures()}
}

// Start returns the byte offset of the start of the match.
func (m *Match) Start() int { return m.start }

// End returns the byte offset just past the match.
func (m *Match) End() int { return m.end }

// Text returns the matched text.
func (m *Match) Text() string { return m.text }

// Captures returns the captured substrings, never nil.
func (m *Match) Captures() []string { return m.captures }

// NumCaptures returns len(m.Captures()).
func (m *Match) NumCaptures() int { return len(m.captures) }

// Capture returns capture i, or "" if there is no such capture.
func (m *Match) Capture(i int) string {
	if i < 0 || i >= len(m.captures) {
		return ""
	}
	return m.captures[i]
}
