package morton

import (
	"github.com/hideo55/go-popcount"
)

// bitLen returns the number of bits needed to represent x: the index of the
// most significant set bit plus one.
func bitLen(x uint32) int {
	// smear the top bit down: 0010 1100 -> 0011 1111
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16

	return int(popcount.Count(uint64(x)))
}

// topBit returns the position of the most significant set bit, or -1 for 0.
func topBit(x uint32) int {
	return bitLen(x) - 1
}
