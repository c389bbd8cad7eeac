// Package backtrack matches compiled tinyre patterns by recursive
// backtracking search.
//
// The search walks the node sequence of a syntax.Pattern in continuation
// passing style: every node is matched with a continuation that matches the
// rest of the pattern. A node with a choice (Optional, Repeat) tries its
// preferred alternative first and falls back to the next one when the
// continuation fails, so later parts of the pattern can force earlier
// quantifiers to give characters back.
//
// Every choice point can be revisited when a later node fails: Optional
// prefers the sub-match and falls back to skipping it, Repeat prefers the
// largest repetition count and falls back to smaller ones, across group
// boundaries. Zero-width nodes still match once the input is exhausted.
//
// Worst case time is exponential in the pattern length for chains of
// optionals such as a?a?a?a?aaaa, which try every subset of the optionals.
// There is no step limit and no cancellation.
package backtrack

import (
	"github.com/coregx/tinyre/syntax"
)

// Backtracker searches for one compiled pattern.
//
// A Backtracker holds no mutable state; it is safe for concurrent use and
// every search allocates its own states.
type Backtracker struct {
	pattern *syntax.Pattern
}

// NewBacktracker creates a Backtracker for p.
func NewBacktracker(p *syntax.Pattern) *Backtracker {
	return &Backtracker{pattern: p}
}

// Search matches the pattern at offset 0 of text.
// It does not retry from later offsets.
func (b *Backtracker) Search(text string) (*Match, bool) {
	return b.SearchAt(text, 0)
}

// SearchAt matches the pattern starting exactly at byte offset start.
// '^' still only matches at offset 0 of text. Returns false when start is
// outside [0, len(text)].
func (b *Backtracker) SearchAt(text string, start int) (*Match, bool) {
	if start < 0 || start > len(text) {
		return nil, false
	}
	final, ok := matchSequence(b.pattern.Nodes(), newState(text, start), accept)
	if !ok {
		return nil, false
	}
	return &Match{
		input:  text,
		span:   Span{Start: start, End: final.pos},
		groups: final.spans(),
	}, true
}

// Search is a convenience for NewBacktracker(p).Search(text).
func Search(p *syntax.Pattern, text string) (*Match, bool) {
	return NewBacktracker(p).Search(text)
}

// continuation matches whatever follows the node being matched.
type continuation func(state) (state, bool)

func accept(s state) (state, bool) {
	return s, true
}

// matchSequence matches nodes starting at s, then runs k on the result.
func matchSequence(nodes []syntax.Node, s state, k continuation) (state, bool) {
	if len(nodes) == 0 {
		return k(s)
	}

	n := &nodes[0]
	rest := nodes[1:]

	switch n.Op {
	case syntax.OpLiteral, syntax.OpWildcard, syntax.OpCharClass:
		r, size := s.next()
		if size == 0 || !n.MatchRune(r) {
			return state{}, false
		}
		return matchSequence(rest, s.advance(size), k)

	case syntax.OpAnchorStart:
		if s.pos != 0 {
			return state{}, false
		}
		return matchSequence(rest, s, k)

	case syntax.OpAnchorEnd:
		if s.pos != len(s.input) {
			return state{}, false
		}
		return matchSequence(rest, s, k)

	case syntax.OpOptional:
		if out, ok := matchSequence(n.Sub, s, func(after state) (state, bool) {
			return matchSequence(rest, after, k)
		}); ok {
			return out, true
		}
		return matchSequence(rest, s, k)

	case syntax.OpRepeat:
		return matchRepeat(n.Sub, rest, s, k)

	case syntax.OpGroup:
		inside, slot := s.open()
		start := s.pos
		return matchSequence(n.Sub, inside, func(after state) (state, bool) {
			return matchSequence(rest, after.record(slot, start), k)
		})
	}

	return state{}, false
}

// matchRepeat picks the largest repetition count k such that sub matches k
// times in a row and rest matches after them, then runs k on the result.
//
// The states reachable after each count are collected level by level; a
// level keeps one state per cursor position, the first in preference order,
// since rest cannot tell two states at the same position apart. Levels are
// then tried from the largest count down.
//
// A repetition that consumes nothing is not counted; otherwise a
// sub-sequence that can match empty, like ()*, would never end.
func matchRepeat(sub, rest []syntax.Node, s state, k continuation) (state, bool) {
	levels := [][]state{{s}}
	for {
		var next []state
		seen := make(map[int]bool)
		for _, from := range levels[len(levels)-1] {
			matchSequence(sub, from, func(after state) (state, bool) {
				if after.pos != from.pos && !seen[after.pos] {
					seen[after.pos] = true
					next = append(next, after)
				}
				// Fail so every way sub can match is visited.
				return state{}, false
			})
		}
		if len(next) == 0 {
			break
		}
		levels = append(levels, next)
	}

	for i := len(levels) - 1; i >= 0; i-- {
		for _, at := range levels[i] {
			if out, ok := matchSequence(rest, at, k); ok {
				return out, true
			}
		}
	}
	return state{}, false
}
