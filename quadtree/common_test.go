package quadtree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aglyzov/go-spatial/morton"
)

// label is a Cartesian carrying a payload, to tell overwritten items apart.
type label struct {
	X, Y int
	Name string
}

func (l label) Coords() (x, y int) {
	return l.X, l.Y
}

func newTree[T Cartesian](t testing.TB, maxRes int, opts ...Option) *Quadtree[T] {
	t.Helper()

	q, err := New[T](maxRes, opts...)
	require.NoError(t, err)

	return q
}

// checkQuads verifies the resident quads are aligned squares inside the
// domain, disjoint and in Z-order, each holding its own item.
func checkQuads[T Cartesian](t *testing.T, q *Quadtree[T]) {
	t.Helper()

	var (
		quads = q.Quads()
		last  = int64(-1)
	)

	require.Len(t, quads, q.Len())

	for _, quad := range quads {
		require.Positive(t, quad.Side)
		require.Zero(t, quad.Side&(quad.Side-1), "side %d is not a power of two", quad.Side)
		require.Zero(t, quad.X%quad.Side, "%+v", quad)
		require.Zero(t, quad.Y%quad.Side, "%+v", quad)
		require.LessOrEqual(t, quad.X+quad.Side-1, q.MaxDim(), "%+v", quad)
		require.LessOrEqual(t, quad.Y+quad.Side-1, q.MaxDim(), "%+v", quad)

		x, y := quad.Item.Coords()
		require.True(t, quad.X <= x && x < quad.X+quad.Side, "%+v", quad)
		require.True(t, quad.Y <= y && y < quad.Y+quad.Side, "%+v", quad)

		var (
			lo = int64(morton.Encode(uint32(quad.X), uint32(quad.Y)))
			hi = lo + int64(quad.Side)*int64(quad.Side) - 1
		)

		require.Greater(t, lo, last, "%+v overlaps its predecessor", quad)

		last = hi
	}
}
