package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/tinyre/literal"
)

// ahoCorasickPrefilter scans for any literal of a set with an Aho-Corasick
// automaton. It handles the sets the byte scanners cannot, such as the
// prefixes of ab?c ("abc", "ac") or [xy]foo.
type ahoCorasickPrefilter struct {
	automaton *ahocorasick.Automaton
	complete  bool
	// literalLen is the common literal length, or 0 if lengths differ.
	literalLen int
	// maxLen is the length of the longest literal.
	maxLen    int
	heapBytes int
}

func newAhoCorasickPrefilter(seq *literal.Seq) (*ahoCorasickPrefilter, error) {
	builder := ahocorasick.NewBuilder()
	size, maxLen := 0, 0
	sameLen := seq.Get(0).Len()
	for i := 0; i < seq.Len(); i++ {
		lit := seq.Get(i)
		builder.AddPattern(lit.Bytes)
		size += lit.Len()
		maxLen = max(maxLen, lit.Len())
		if lit.Len() != sameLen {
			sameLen = 0
		}
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &ahoCorasickPrefilter{
		automaton:  automaton,
		complete:   seq.AllComplete(),
		literalLen: sameLen,
		maxLen:     maxLen,
		heapBytes:  size,
	}, nil
}

func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	begin, _ := p.FindMatch(haystack, start)
	return begin
}

// FindMatch returns the occurrence that starts first. The automaton reports
// the occurrence that ends first, so with "a" and "xaa" in the set it finds
// "a" at 1 in "xaa" before "xaa" at 0. An occurrence starting earlier must
// end at or after the reported one and so starts no more than maxLen bytes
// before its end; those offsets are checked one by one.
func (p *ahoCorasickPrefilter) FindMatch(haystack []byte, start int) (begin, end int) {
	if !inBounds(haystack, start) {
		return -1, -1
	}
	m := p.automaton.Find(haystack, start)
	if m == nil {
		return -1, -1
	}
	for at := max(start, m.End-p.maxLen); at < m.Start; at++ {
		if earlier := p.automaton.FindAt(haystack, at); earlier != nil {
			return earlier.Start, earlier.End
		}
	}
	return m.Start, m.End
}

func (p *ahoCorasickPrefilter) IsComplete() bool { return p.complete }

func (p *ahoCorasickPrefilter) LiteralLen() int {
	if p.complete {
		return p.literalLen
	}
	return 0
}

// HeapBytes reports the pattern bytes handed to the automaton; the
// automaton does not expose its own table size.
func (p *ahoCorasickPrefilter) HeapBytes() int { return p.heapBytes }
