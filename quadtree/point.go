package quadtree

import (
	"fmt"
)

// Cartesian is an item with integer planar coordinates.
type Cartesian interface {
	Coords() (x, y int)
}

// Point is the bare Cartesian.
type Point struct {
	X int
	Y int
}

func (p Point) Coords() (x, y int) {
	return p.X, p.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Quad is a resident quad: the square [X, X+Side) x [Y, Y+Side) and the item
// owning it.
type Quad[T Cartesian] struct {
	X    int
	Y    int
	Side int
	Item T
}
