package quadtree

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aglyzov/go-spatial/morton"
	"github.com/aglyzov/go-spatial/skiplist"
)

type Quadtree[T Cartesian] struct {
	list   *skiplist.List[morton.Index, T]
	maxRes uint8
	maxDim uint32
	log    *zap.Logger
}

// New returns an empty quadtree over [0, 2^maxRes-1] x [0, 2^maxRes-1].
func New[T Cartesian](maxRes int, opts ...Option) (*Quadtree[T], error) {
	if maxRes < 1 || maxRes > morton.MaxRes {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrResolution, maxRes, morton.MaxRes)
	}

	var o = options{
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	maxDim := uint32(1)<<maxRes - 1

	return &Quadtree[T]{
		// the sentinels stand for the first and the last cell of the domain
		list:   skiplist.New[morton.Index, T](morton.New(0, 0, 0), morton.New(maxDim, maxDim, 0)),
		maxRes: uint8(maxRes),
		maxDim: maxDim,
		log:    o.logger.With(zap.Int("maxRes", maxRes)),
	}, nil
}

// Len returns the number of resident items.
func (q *Quadtree[T]) Len() int {
	return q.list.Len()
}

// MaxRes returns the resolution of the whole domain.
func (q *Quadtree[T]) MaxRes() int {
	return int(q.maxRes)
}

// MaxDim returns the largest valid coordinate.
func (q *Quadtree[T]) MaxDim() int {
	return int(q.maxDim)
}

// cell returns the single-cell key of (x, y) or false if the point lies
// outside the domain.
func (q *Quadtree[T]) cell(x, y int) (morton.Index, bool) {
	if x < 0 || y < 0 || x > int(q.maxDim) || y > int(q.maxDim) {
		return morton.Index{}, false
	}

	return morton.New(uint32(x), uint32(y), 0), true
}

func (q *Quadtree[T]) key(item T) (morton.Index, bool) {
	return q.cell(item.Coords())
}

// resident returns the node holding exactly the point of key, or Nil.
func (q *Quadtree[T]) resident(key morton.Index) skiplist.Ref {
	ref := q.list.Locate(key)

	if ref == skiplist.Nil || q.list.Key(ref).Raw() != key.Raw() {
		return skiplist.Nil
	}

	return ref
}

// Add inserts an item at its coordinates. An item already at the very same
// point is replaced. Add returns false for items outside the domain.
func (q *Quadtree[T]) Add(item T) bool {
	key, ok := q.key(item)
	if !ok {
		x, y := item.Coords()
		q.log.Debug("rejected point out of domain", zap.Int("x", x), zap.Int("y", y))

		return false
	}

	var (
		height = q.list.PickHeight()
		precs  = q.list.FindPrecursors(key, height)
		prev   = precs[0]
		next   = q.list.Next(prev, 0)
	)

	// the point either falls into one of the two bracketing quads or into
	// the free space between them
	switch {
	case q.list.ContainsKey(prev, key):
		q.claim(prev, key, item, height)

	case q.list.ContainsKey(next, key):
		q.claim(next, key, item, height)

	default:
		q.list.InsertNode(precs, key.WithRes(q.fitRes(prev, next, key)), item)
	}

	return true
}

// claim settles a point inside the quad of a resident node. An exact hit or
// a single-cell quad takes the new item; otherwise the quad is split into
// the two largest quads that keep the points apart.
func (q *Quadtree[T]) claim(ref skiplist.Ref, key morton.Index, item T, height int) {
	occupant := q.list.Key(ref)

	if !occupant.IsDivisible() || occupant.Raw() == key.Raw() {
		q.list.SetValue(ref, item)
		return
	}

	res := occupant.SplitSize(key)
	key = key.WithRes(res)

	q.list.Rekey(ref, occupant.WithRes(res))
	q.list.InsertNode(q.list.FindPrecursors(key, height), key, item)

	q.log.Debug("split",
		zap.Stringer("occupant", occupant),
		zap.Stringer("key", key),
		zap.Uint8("res", res),
	)
}

// fitRes returns the coarsest resolution at which key fits between two
// bracketing nodes without overlapping either of them.
func (q *Quadtree[T]) fitRes(prev, next skiplist.Ref, key morton.Index) uint8 {
	res := morton.MaxFitRes(q.list.Key(prev).MaxRange(), q.list.Key(next).MinRange())

	if res > q.maxRes {
		res = q.maxRes
	}

	for ; res > 0; res-- {
		quad := key.WithRes(res)

		if !q.list.OverlapsKey(prev, quad) && !q.list.OverlapsKey(next, quad) {
			break
		}
	}

	return res
}

// Remove deletes the item at the coordinates of item and returns whether
// there was one.
func (q *Quadtree[T]) Remove(item T) bool {
	key, ok := q.key(item)
	if !ok {
		return false
	}

	ref := q.resident(key)
	if ref == skiplist.Nil {
		return false
	}

	quad := q.list.Key(ref)

	q.list.DeleteNode(q.list.FindPrecursors(quad, q.list.Height(ref)), ref)
	q.tryExpand(quad)

	return true
}

// Update moves an item: prev is removed and item added. Nothing changes if
// prev is not resident or item lies outside the domain.
func (q *Quadtree[T]) Update(prev, item T) bool {
	if _, ok := q.key(item); !ok {
		return false
	}

	if !q.Remove(prev) {
		return false
	}

	return q.Add(item)
}

// Get returns the item at (x, y).
func (q *Quadtree[T]) Get(x, y int) (T, bool) {
	var zero T

	key, ok := q.cell(x, y)
	if !ok {
		return zero, false
	}

	ref := q.resident(key)
	if ref == skiplist.Nil {
		return zero, false
	}

	return q.list.Value(ref), true
}

// tryExpand coalesces around a vacated quad. If the parent quad holds a
// single resident node, that node grows to fill it; an empty parent passes
// the check further up. The recursion is bounded by maxRes.
func (q *Quadtree[T]) tryExpand(quad morton.Index) {
	if quad.Res() >= q.maxRes {
		return
	}

	parent := quad.Parent()

	ref, n := q.occupants(parent)
	if n > 1 {
		return
	}

	if n == 1 {
		if occupant := q.list.Key(ref); occupant.Res() < parent.Res() {
			q.list.Rekey(ref, occupant.WithRes(parent.Res()))

			q.log.Debug("coalesce",
				zap.Stringer("occupant", occupant),
				zap.Uint8("res", parent.Res()),
			)
		}
	}

	q.tryExpand(parent)
}

// occupants counts the resident nodes overlapping quad, stopping at two, and
// returns the last one counted.
func (q *Quadtree[T]) occupants(quad morton.Index) (skiplist.Ref, int) {
	var (
		ref  = q.list.FindPrecursors(quad, 0)[0]
		last = skiplist.Nil
		n    int
	)

	for ; ref != skiplist.Tail && n < 2; ref = q.list.Next(ref, 0) {
		if !q.list.IsValue(ref) {
			continue // Head
		}

		key := q.list.Key(ref)

		if key.MinRange() > quad.MaxRange() {
			break
		}

		if key.Overlaps(quad) {
			last = ref
			n++
		}
	}

	return last, n
}

// Quads returns the resident quads in Z-order.
func (q *Quadtree[T]) Quads() []Quad[T] {
	quads := make([]Quad[T], 0, q.list.Len())

	q.list.Iter(func(_ skiplist.Ref, key morton.Index, item T) bool {
		x, y := morton.Decode(key.MinRange())

		quads = append(quads, Quad[T]{
			X:    int(x),
			Y:    int(y),
			Side: int(key.Side()),
			Item: item,
		})

		return true
	})

	return quads
}
