package prefilter

import "github.com/coregx/tinyre/simd"

// memchrPrefilter scans for a single byte.
type memchrPrefilter struct {
	needle   byte
	complete bool
}

func newMemchrPrefilter(needle byte, complete bool) *memchrPrefilter {
	return &memchrPrefilter{needle: needle, complete: complete}
}

func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if !inBounds(haystack, start) {
		return -1
	}
	if i := simd.Memchr(haystack[start:], p.needle); i >= 0 {
		return start + i
	}
	return -1
}

func (p *memchrPrefilter) IsComplete() bool { return p.complete }

func (p *memchrPrefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

func (p *memchrPrefilter) HeapBytes() int { return 0 }

// memchr2Prefilter scans for either of two bytes, e.g. the prefixes of [ab]x.
type memchr2Prefilter struct {
	b1, b2   byte
	complete bool
}

func newMemchr2Prefilter(b1, b2 byte, complete bool) *memchr2Prefilter {
	return &memchr2Prefilter{b1: b1, b2: b2, complete: complete}
}

func (p *memchr2Prefilter) Find(haystack []byte, start int) int {
	if !inBounds(haystack, start) {
		return -1
	}
	if i := simd.Memchr2(haystack[start:], p.b1, p.b2); i >= 0 {
		return start + i
	}
	return -1
}

func (p *memchr2Prefilter) IsComplete() bool { return p.complete }

func (p *memchr2Prefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

func (p *memchr2Prefilter) HeapBytes() int { return 0 }

// memchr3Prefilter scans for any of three bytes.
type memchr3Prefilter struct {
	b1, b2, b3 byte
	complete   bool
}

func newMemchr3Prefilter(b1, b2, b3 byte, complete bool) *memchr3Prefilter {
	return &memchr3Prefilter{b1: b1, b2: b2, b3: b3, complete: complete}
}

func (p *memchr3Prefilter) Find(haystack []byte, start int) int {
	if !inBounds(haystack, start) {
		return -1
	}
	if i := simd.Memchr3(haystack[start:], p.b1, p.b2, p.b3); i >= 0 {
		return start + i
	}
	return -1
}

func (p *memchr3Prefilter) IsComplete() bool { return p.complete }

func (p *memchr3Prefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

func (p *memchr3Prefilter) HeapBytes() int { return 0 }

// tablePrefilter scans for any byte of a set, e.g. the prefixes of [0-9]x.
type tablePrefilter struct {
	table    *[256]bool
	complete bool
}

func newTablePrefilter(set []byte, complete bool) *tablePrefilter {
	table := new([256]bool)
	for _, b := range set {
		table[b] = true
	}
	return &tablePrefilter{table: table, complete: complete}
}

func (p *tablePrefilter) Find(haystack []byte, start int) int {
	if !inBounds(haystack, start) {
		return -1
	}
	if i := simd.MemchrInTable(haystack[start:], p.table); i >= 0 {
		return start + i
	}
	return -1
}

func (p *tablePrefilter) IsComplete() bool { return p.complete }

func (p *tablePrefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

func (p *tablePrefilter) HeapBytes() int { return len(p.table) }
