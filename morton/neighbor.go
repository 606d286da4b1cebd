package morton

// Direction names one of the eight same-size quads around a quad. North is
// decreasing y (screen orientation), East is increasing x.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	case NorthEast:
		return "NE"
	case NorthWest:
		return "NW"
	case SouthEast:
		return "SE"
	case SouthWest:
		return "SW"
	}

	return "?"
}

// North returns the adjacent quad of the same size with smaller y.
// The second result is false when it would leave a 2^maxRes wide domain.
func (i Index) North(maxRes uint8) (Index, bool) { return i.step(yMask, false, maxRes) }
func (i Index) South(maxRes uint8) (Index, bool) { return i.step(yMask, true, maxRes) }
func (i Index) East(maxRes uint8) (Index, bool)  { return i.step(xMask, true, maxRes) }
func (i Index) West(maxRes uint8) (Index, bool)  { return i.step(xMask, false, maxRes) }

// Neighbor returns the adjacent quad in the given direction. Diagonals are
// the composition of a vertical and a horizontal step.
func (i Index) Neighbor(dir Direction, maxRes uint8) (Index, bool) {
	switch dir {
	case North:
		return i.North(maxRes)
	case South:
		return i.South(maxRes)
	case East:
		return i.East(maxRes)
	case West:
		return i.West(maxRes)
	case NorthEast:
		if n, ok := i.North(maxRes); ok {
			return n.East(maxRes)
		}
	case NorthWest:
		if n, ok := i.North(maxRes); ok {
			return n.West(maxRes)
		}
	case SouthEast:
		if s, ok := i.South(maxRes); ok {
			return s.East(maxRes)
		}
	case SouthWest:
		if s, ok := i.South(maxRes); ok {
			return s.West(maxRes)
		}
	}

	return Index{}, false
}

// step moves the quad by one side length along the axis selected by mask.
//
// The arithmetic runs on the dilated code directly: filling the other axis'
// bits with ones lets a carry hop over them, clearing them lets a borrow do
// the same. A neighbor inside the same parent only flips the quadrant digit
// at res, otherwise the carry ripples into the parent digits above.
func (i Index) step(mask uint32, up bool, maxRes uint8) (Index, bool) {
	maxRes = clampRes(maxRes)

	if i.res >= maxRes {
		return Index{}, false // the quad is the whole domain
	}

	var (
		domain = uint64(1)<<(2*uint(maxRes)) - 1
		own    = uint64(mask) & domain
		other  = ^uint64(mask) & domain
		base   = uint64(i.MinRange())
		inc    = uint64(1) << (2 * uint(i.res))
		moved  uint64
	)

	if base > domain {
		return Index{}, false
	}

	if mask == yMask {
		inc <<= 1
	}

	if up {
		moved = (base | other) + inc
	} else {
		moved = (base & own) - inc // wraps around on underflow
	}

	if moved > domain {
		return Index{}, false
	}

	raw := uint32(moved&own | base&other)

	return Index{raw: raw, res: i.res}, true
}
