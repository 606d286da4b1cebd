package morton

// Range is an inclusive interval of raw Morton codes.
type Range struct {
	Min uint32
	Max uint32
}

// DecomposeRatio is the fill ratio (cells of the rectangle per code of the
// interval) at which a sub-rectangle is emitted as a single interval instead
// of being bisected further.
const DecomposeRatio = 0.5

// Decompose covers the inclusive rectangle [x1,x2] x [y1,y2] with sorted,
// disjoint code intervals. Corners may come in any order. The intervals may
// also contain codes of cells outside the rectangle, at most as many as the
// rectangle has cells per interval; callers filter those by coordinates.
func Decompose(x1, y1, x2, y2 uint32) []Range {
	if x1 > x2 {
		x1, x2 = x2, x1
	}

	if y1 > y2 {
		y1, y2 = y2, y1
	}

	return decompose(nil, x1&0xffff, y1&0xffff, x2&0xffff, y2&0xffff)
}

func decompose(out []Range, x1, y1, x2, y2 uint32) []Range {
	var (
		lo   = Encode(x1, y1)
		hi   = Encode(x2, y2)
		area = uint64(x2-x1+1) * uint64(y2-y1+1)
		span = uint64(hi-lo) + 1
	)

	if float64(area) >= DecomposeRatio*float64(span) {
		return append(out, Range{Min: lo, Max: hi})
	}

	// Every cell of the rectangle shares the code bits above the top
	// differing bit of its corners; that bit splits it into two halves
	// whose codes do not interleave.
	var (
		bit   = uint(topBit(lo ^ hi))
		shift = bit / 2
	)

	if bit%2 == 0 {
		pivot := x2 >> shift << shift
		out = decompose(out, x1, y1, pivot-1, y2)
		return decompose(out, pivot, y1, x2, y2)
	}

	pivot := y2 >> shift << shift
	out = decompose(out, x1, y1, x2, pivot-1)

	return decompose(out, x1, pivot, x2, y2)
}
