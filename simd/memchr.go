// Package simd provides fast byte and substring scanning for the prefilters.
//
// On amd64 hosts with AVX2 the single-byte scan hands off to bytes.IndexByte,
// whose assembly is vectorized. Everywhere else, and for multi-byte needle
// sets, the scan uses SWAR (SIMD Within A Register): eight haystack bytes are
// loaded into a uint64 and tested for a needle in one pass of bitwise
// arithmetic.
//
// All functions return the index of the first match, or -1.
package simd

import (
	"bytes"

	"golang.org/x/sys/cpu"
)

// vectorThreshold is the haystack length below which the vectorized path
// does not pay for its setup.
const vectorThreshold = 32

// hasAVX2 is resolved once at start-up. Tests flip it to cover both paths.
var hasAVX2 = cpu.X86.HasAVX2

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// Example:
//
//	simd.Memchr([]byte("hello world"), 'o') // 4
func Memchr(haystack []byte, needle byte) int {
	if hasAVX2 && len(haystack) >= vectorThreshold {
		return bytes.IndexByte(haystack, needle)
	}
	return memchrSWAR(haystack, needle)
}

// Memchr2 returns the index of the first byte in haystack equal to needle1
// or needle2, or -1.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	return memchr2SWAR(haystack, needle1, needle2)
}

// Memchr3 returns the index of the first byte in haystack equal to needle1,
// needle2 or needle3, or -1.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	return memchr3SWAR(haystack, needle1, needle2, needle3)
}

// MemchrInTable returns the index of the first byte b in haystack for which
// table[b] is true, or -1.
func MemchrInTable(haystack []byte, table *[256]bool) int {
	for i, b := range haystack {
		if table[b] {
			return i
		}
	}
	return -1
}
