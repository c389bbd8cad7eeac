package simd

import "testing"

func TestByteRankOrdering(t *testing.T) {
	if ByteRank(' ') != 255 {
		t.Errorf("ByteRank(' ') = %d, want 255", ByteRank(' '))
	}
	for _, pair := range [][2]byte{{'q', 'e'}, {'z', 't'}, {'@', ' '}, {0x00, 'a'}} {
		if ByteRank(pair[0]) >= ByteRank(pair[1]) {
			t.Errorf("ByteRank(%q)=%d not rarer than ByteRank(%q)=%d",
				pair[0], ByteRank(pair[0]), pair[1], ByteRank(pair[1]))
		}
	}
}

func TestRarestByte(t *testing.T) {
	tests := []struct {
		needle    string
		wantByte  byte
		wantIndex int
	}{
		{"", 0, -1},
		{"a", 'a', 0},
		{"hello", 'h', 0},
		{"quiz", 'q', 0},
		{"user@example", '@', 4},
		{"eeee", 'e', 0},
	}
	for _, tt := range tests {
		b, i := rarestByte([]byte(tt.needle))
		if b != tt.wantByte || i != tt.wantIndex {
			t.Errorf("rarestByte(%q) = (%q, %d), want (%q, %d)", tt.needle, b, i, tt.wantByte, tt.wantIndex)
		}
	}
}
