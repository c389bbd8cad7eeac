package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// broadcast replicates b into every byte of a uint64: 0x42 -> 0x4242424242424242.
func broadcast(b byte) uint64 {
	return uint64(b) * lo8
}

// zeroBytes sets the high bit of each zero byte in v (Hacker's Delight 6-1).
// Bits above the lowest zero byte may be false positives, so only the
// lowest set bit is meaningful.
func zeroBytes(v uint64) uint64 {
	return (v - lo8) &^ v & hi8
}

// firstSet converts the result of zeroBytes into a byte index.
func firstSet(mask uint64) int {
	return bits.TrailingZeros64(mask) / 8
}

func memchrSWAR(haystack []byte, needle byte) int {
	mask := broadcast(needle)
	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroBytes(chunk ^ mask); z != 0 {
			return i + firstSet(z)
		}
	}
	for ; i < len(haystack); i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

func memchr2SWAR(haystack []byte, needle1, needle2 byte) int {
	mask1, mask2 := broadcast(needle1), broadcast(needle2)
	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroBytes(chunk^mask1) | zeroBytes(chunk^mask2); z != 0 {
			return i + firstSet(z)
		}
	}
	for ; i < len(haystack); i++ {
		if b := haystack[i]; b == needle1 || b == needle2 {
			return i
		}
	}
	return -1
}

func memchr3SWAR(haystack []byte, needle1, needle2, needle3 byte) int {
	mask1, mask2, mask3 := broadcast(needle1), broadcast(needle2), broadcast(needle3)
	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		z := zeroBytes(chunk^mask1) | zeroBytes(chunk^mask2) | zeroBytes(chunk^mask3)
		if z != 0 {
			return i + firstSet(z)
		}
	}
	for ; i < len(haystack); i++ {
		if b := haystack[i]; b == needle1 || b == needle2 || b == needle3 {
			return i
		}
	}
	return -1
}
