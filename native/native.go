// Package native runs tinyre patterns on RE2 (github.com/wasilibs/go-re2)
// instead of the backtracker.
//
// A compiled node sequence is translated into an equivalent RE2 expression
// (see Translate). RE2 matches in linear time, so chains of
// optionals that make the backtracker exponential are harmless here.
//
// The results agree with the backtracker except for groups inside '*': RE2
// keeps only the last iteration, while the backtracker records one capture
// per iteration. When the repeated sub-pattern has a choice of its own, as
// in (aa?)*, RE2 follows preference order and the backtracker takes the
// largest repetition count, so the iterations can be split differently.
package native

import (
	"fmt"

	"github.com/wasilibs/go-re2"

	"github.com/coregx/tinyre/syntax"
)

// Handle is a pattern compiled by RE2. It is safe for concurrent use.
type Handle struct {
	expr string
	// anchored only matches at offset 0; leftmost finds the leftmost match.
	anchored *re2.Regexp
	leftmost *re2.Regexp
}

// Compile translates nodes and compiles them with RE2.
func Compile(nodes []syntax.Node) (*Handle, error) {
	expr := Translate(nodes)
	anchored, err := re2.Compile(`^(?:` + expr + `)`)
	if err != nil {
		return nil, fmt.Errorf("native: compile %q: %w", expr, err)
	}
	leftmost, err := re2.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("native: compile %q: %w", expr, err)
	}
	return &Handle{expr: expr, anchored: anchored, leftmost: leftmost}, nil
}

// String returns the RE2 expression.
func (h *Handle) String() string {
	return h.expr
}

// NumGroups returns the number of capture groups.
func (h *Handle) NumGroups() int {
	return h.leftmost.NumSubexp()
}

// Search matches at offset 0 of text only.
func (h *Handle) Search(text string) (*Match, bool) {
	return newMatch(text, h.anchored.FindStringSubmatchIndex(text))
}

// Find returns the leftmost match anywhere in text.
func (h *Handle) Find(text string) (*Match, bool) {
	return newMatch(text, h.leftmost.FindStringSubmatchIndex(text))
}

// FindAll returns successive non-overlapping matches, at most n of them
// (all if n < 0).
func (h *Handle) FindAll(text string, n int) []*Match {
	all := h.leftmost.FindAllStringSubmatchIndex(text, n)
	out := make([]*Match, 0, len(all))
	for _, loc := range all {
		m, _ := newMatch(text, loc)
		out = append(out, m)
	}
	return out
}

// Match is an RE2 match result.
type Match struct {
	input string
	// loc holds start/end pairs: the whole match, then each group. A group
	// that did not take part has -1 bounds.
	loc []int
}

func newMatch(text string, loc []int) (*Match, bool) {
	if loc == nil {
		return nil, false
	}
	return &Match{input: text, loc: loc}, true
}

// Start returns the byte offset where the match begins.
func (m *Match) Start() int { return m.loc[0] }

// End returns the byte offset just past the match.
func (m *Match) End() int { return m.loc[1] }

// Text returns the matched text.
func (m *Match) Text() string { return m.input[m.loc[0]:m.loc[1]] }

// Group returns the text of group i, where group 0 is the whole match.
// It returns "" for a group that did not take part or does not exist.
func (m *Match) Group(i int) string {
	if i < 0 || 2*i+1 >= len(m.loc) || m.loc[2*i] < 0 {
		return ""
	}
	return m.input[m.loc[2*i]:m.loc[2*i+1]]
}

// Captures returns the text of every group that took part in the match,
// in group order. It is never nil.
func (m *Match) Captures() []string {
	out := []string{}
	for i := 2; i+1 < len(m.loc); i += 2 {
		if m.loc[i] >= 0 {
			out = append(out, m.input[m.loc[i]:m.loc[i+1]])
		}
	}
	return out
}
