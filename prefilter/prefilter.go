// Package prefilter finds candidate match positions before the backtracker
// runs.
//
// A prefilter scans the haystack for the literals a match must start with
// (see package literal). Offsets it skips cannot begin a match, so the
// search only tries the backtracker at the positions it reports.
//
// The Builder picks a strategy from the extracted literals:
//   - One single-byte literal -> memchr
//   - One longer literal -> memmem
//   - Two or three single-byte literals -> memchr2 / memchr3
//   - More single-byte literals -> byte table scan
//   - Anything else -> Aho-Corasick automaton
//
// Example:
//
//	p := syntax.MustCompile("hello.*")
//	seq := literal.New(literal.DefaultConfig()).ExtractPrefixes(p.Nodes())
//	pf := prefilter.NewBuilder(seq).Build()
//	pos := pf.Find([]byte("foo hello world"), 0) // 4
package prefilter

import "github.com/coregx/tinyre/literal"

// Prefilter reports candidate match positions.
type Prefilter interface {
	// Find returns the index of the first candidate at or after start, or
	// -1 if there is none. A candidate is a position where one of the
	// literals occurs; unless IsComplete is true the caller still has to
	// verify it.
	Find(haystack []byte, start int) int

	// IsComplete reports whether a candidate is a full match by itself.
	IsComplete() bool

	// LiteralLen returns the length of the matched literal when every
	// literal has the same length and IsComplete is true, 0 otherwise.
	LiteralLen() int

	// HeapBytes returns the heap memory held by the prefilter.
	HeapBytes() int
}

// MatchFinder is implemented by prefilters that can report the bounds of
// the literal they found, for literal sets of varying length.
type MatchFinder interface {
	// FindMatch returns the bounds of the first literal occurrence at or
	// after start, or (-1, -1).
	FindMatch(haystack []byte, start int) (begin, end int)
}

// Builder constructs a prefilter from a literal sequence.
type Builder struct {
	prefixes *literal.Seq
}

// NewBuilder creates a builder for the given prefix literals. A nil or
// empty sequence builds no prefilter.
func NewBuilder(prefixes *literal.Seq) *Builder {
	return &Builder{prefixes: prefixes}
}

// Build returns the prefilter for the literals, or nil when no prefilter
// can help.
func (b *Builder) Build() Prefilter {
	seq := b.prefixes
	if seq.IsEmpty() || seq.MinLen() == 0 {
		return nil
	}

	if seq.Len() == 1 {
		lit := seq.Get(0)
		if len(lit.Bytes) == 1 {
			return newMemchrPrefilter(lit.Bytes[0], lit.Complete)
		}
		return newMemmemPrefilter(lit.Bytes, lit.Complete)
	}

	if single := singleBytes(seq); single != nil {
		complete := seq.AllComplete()
		switch len(single) {
		case 2:
			return newMemchr2Prefilter(single[0], single[1], complete)
		case 3:
			return newMemchr3Prefilter(single[0], single[1], single[2], complete)
		default:
			return newTablePrefilter(single, complete)
		}
	}

	pf, err := newAhoCorasickPrefilter(seq)
	if err != nil {
		return nil
	}
	return pf
}

// singleBytes returns the literal bytes when every literal is one byte
// long, nil otherwise.
func singleBytes(seq *literal.Seq) []byte {
	out := make([]byte, 0, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		lit := seq.Get(i)
		if len(lit.Bytes) != 1 {
			return nil
		}
		out = append(out, lit.Bytes[0])
	}
	return out
}

// Strategy names the scanning strategy of pf, for logging and stats.
func Strategy(pf Prefilter) string {
	switch pf.(type) {
	case nil:
		return "none"
	case *memchrPrefilter:
		return "memchr"
	case *memchr2Prefilter:
		return "memchr2"
	case *memchr3Prefilter:
		return "memchr3"
	case *tablePrefilter:
		return "table"
	case *memmemPrefilter:
		return "memmem"
	case *ahoCorasickPrefilter:
		return "ahocorasick"
	default:
		return "unknown"
	}
}

// inBounds reports whether start is a valid scan offset into haystack.
func inBounds(haystack []byte, start int) bool {
	return start >= 0 && start < len(haystack)
}
