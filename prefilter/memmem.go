package prefilter

import "github.com/coregx/tinyre/simd"

// memmemPrefilter scans for a single substring.
type memmemPrefilter struct {
	needle   []byte
	complete bool
}

func newMemmemPrefilter(needle []byte, complete bool) *memmemPrefilter {
	// Copy so later edits to the literal sequence cannot change the needle.
	own := make([]byte, len(needle))
	copy(own, needle)
	return &memmemPrefilter{needle: own, complete: complete}
}

func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if !inBounds(haystack, start) {
		return -1
	}
	if i := simd.Memmem(haystack[start:], p.needle); i >= 0 {
		return start + i
	}
	return -1
}

func (p *memmemPrefilter) FindMatch(haystack []byte, start int) (begin, end int) {
	if i := p.Find(haystack, start); i >= 0 {
		return i, i + len(p.needle)
	}
	return -1, -1
}

func (p *memmemPrefilter) IsComplete() bool { return p.complete }

func (p *memmemPrefilter) LiteralLen() int {
	if p.complete {
		return len(p.needle)
	}
	return 0
}

func (p *memmemPrefilter) HeapBytes() int { return len(p.needle) }
