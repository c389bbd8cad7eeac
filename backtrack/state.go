package backtrack

import (
	"slices"
	"unicode/utf8"
)

// state is one point of a search: a cursor into the shared input plus the
// captures recorded on the way there.
//
// States are values. Every step builds a new one, so a branch that fails is
// dropped without undoing anything, and sibling branches never observe each
// other's progress. Captures form a persistent list for the same reason:
// recording one prepends a cell and never touches cells other branches hold.
type state struct {
	input string
	pos   int

	// opened counts groups entered on this branch; it is the next group slot.
	opened int
	caps   *capture
}

// capture is a cell of the persistent capture list, newest first.
type capture struct {
	slot int
	span Span
	next *capture
}

func newState(input string, pos int) state {
	return state{input: input, pos: pos}
}

// next decodes the character at the cursor. size is 0 at end of input.
func (s state) next() (r rune, size int) {
	if s.pos >= len(s.input) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s.input[s.pos:])
}

func (s state) advance(size int) state {
	s.pos += size
	return s
}

// open reserves the next capture slot.
func (s state) open() (state, int) {
	slot := s.opened
	s.opened++
	return s, slot
}

// record stores the span [start, s.pos) in slot.
func (s state) record(slot, start int) state {
	s.caps = &capture{
		slot: slot,
		span: Span{Start: start, End: s.pos},
		next: s.caps,
	}
	return s
}

// spans returns the recorded captures ordered by slot, which is the order in
// which their groups were opened.
func (s state) spans() []Span {
	var cells []*capture
	for c := s.caps; c != nil; c = c.next {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, func(a, b *capture) int {
		return a.slot - b.slot
	})
	out := make([]Span, len(cells))
	for i, c := range cells {
		out[i] = c.span
	}
	return out
}
