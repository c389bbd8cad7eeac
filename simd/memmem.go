package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present. An empty needle matches at 0, as with
// bytes.Index.
//
// The scan looks for the rarest byte of needle (by ByteFrequencies) with
// Memchr and verifies the full needle around each candidate.
//
// Example:
//
//	simd.Memmem([]byte("aaaaaabaaaa"), []byte("aab")) // 4
func Memmem(haystack, needle []byte) int {
	switch {
	case len(needle) == 0:
		return 0
	case len(needle) > len(haystack):
		return -1
	case len(needle) == 1:
		return Memchr(haystack, needle[0])
	}

	rare, offset := rarestByte(needle)
	// Candidates for the rare byte before offset cannot start a match.
	from := offset
	last := len(haystack) - len(needle) + offset
	for from <= last {
		pos := Memchr(haystack[from:last+1], rare)
		if pos < 0 {
			return -1
		}
		start := from + pos - offset
		if bytes.Equal(haystack[start:start+len(needle)], needle) {
			return start
		}
		from += pos + 1
	}
	return -1
}
