// Package literal extracts the literal byte strings a match must start with.
//
// The facade uses them to skip input offsets that cannot begin a match
// before running the backtracker at each remaining offset.
//
// Key concepts:
//   - A Literal is a concrete byte sequence, with a flag telling whether it is
//     the entire match text or only a prefix of it
//   - A Seq is a set of alternative literals; every match starts with one of them
package literal

import (
	"bytes"
	"sort"
)

// Literal represents a literal byte sequence extracted from a pattern.
//
// Example:
//   - Pattern /hello/ -> Literal{[]byte("hello"), true}
//   - Pattern /hello.*/ -> Literal{[]byte("hello"), false} (prefix only)
type Literal struct {
	// Bytes contains the UTF-8 encoded literal.
	Bytes []byte

	// Complete indicates that the literal is the whole match text, not only
	// its prefix.
	Complete bool
}

// NewLiteral creates a new Literal from the given bytes and completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{
		Bytes:    b,
		Complete: complete,
	}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a string representation of the literal for debugging purposes.
// Format: "literal{bytes, complete=true/false}"
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq represents a set of alternative literals.
//
// An empty Seq carries no information: some match may start anywhere, so no
// prefilter can be built from it.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("ac"), true),
//	    literal.NewLiteral([]byte("bc"), true),
//	)
//	fmt.Println(seq.Len()) // Output: 2
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{
		literals: lits,
	}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at the specified index.
// Panics if index is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// AllComplete reports whether every literal is a complete match.
// An empty sequence is never complete.
func (s *Seq) AllComplete() bool {
	if s.IsEmpty() {
		return false
	}
	for _, lit := range s.literals {
		if !lit.Complete {
			return false
		}
	}
	return true
}

// MinLen returns the length of the shortest literal, or 0 for an empty sequence.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	minLength := len(s.literals[0].Bytes)
	for _, lit := range s.literals[1:] {
		if len(lit.Bytes) < minLength {
			minLength = len(lit.Bytes)
		}
	}
	return minLength
}

// Minimize removes duplicate and redundant literals.
//
// For prefix search, a literal L is redundant if a shorter literal S is a
// prefix of L: every place L occurs, S occurs too. A kept literal that made
// another one redundant can no longer claim to be the whole match, so it
// is marked incomplete.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo"), true),
//	    literal.NewLiteral([]byte("foobar"), true),
//	)
//	seq.Minimize()
//	fmt.Println(seq.Len()) // Output: 1 (only "foo" remains, now incomplete)
func (s *Seq) Minimize() {
	if s.IsEmpty() {
		return
	}

	// Shortest first; stable so equal-length literals keep extraction order.
	sort.SliceStable(s.literals, func(i, j int) bool {
		return len(s.literals[i].Bytes) < len(s.literals[j].Bytes)
	})

	kept := make([]Literal, 0, len(s.literals))
	for _, current := range s.literals {
		redundant := false
		for j := range kept {
			if isPrefix(kept[j].Bytes, current.Bytes) {
				if len(kept[j].Bytes) < len(current.Bytes) || !current.Complete {
					kept[j].Complete = false
				}
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, current)
		}
	}

	s.literals = kept
}

// isPrefix returns true if prefix is a prefix of s.
func isPrefix(prefix, s []byte) bool {
	if len(prefix) > len(s) {
		return false
	}
	return bytes.Equal(prefix, s[:len(prefix)])
}
