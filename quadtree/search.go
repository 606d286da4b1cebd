package quadtree

import (
	"sort"

	"github.com/aglyzov/go-spatial/morton"
	"github.com/aglyzov/go-spatial/skiplist"
)

// RectSearch returns the items inside the inclusive rectangle spanned by two
// corners, in Z-order. Corners may come in any order and are clipped to the
// domain. A nil filter accepts every item.
func (q *Quadtree[T]) RectSearch(x1, y1, x2, y2 int, filter func(T) bool) []T {
	if x1 > x2 {
		x1, x2 = x2, x1
	}

	if y1 > y2 {
		y1, y2 = y2, y1
	}

	var (
		last = int(q.maxDim)
		xMin = clip(x1, 0, last)
		yMin = clip(y1, 0, last)
		xMax = clip(x2, 0, last)
		yMax = clip(y2, 0, last)
	)

	if x2 < 0 || y2 < 0 || x1 > last || y1 > last {
		return nil // no overlap with the domain
	}

	var (
		ranges    = morton.Decompose(uint32(xMin), uint32(yMin), uint32(xMax), uint32(yMax))
		intervals = make([]skiplist.Interval, len(ranges))
		out       []T
	)

	for i, r := range ranges {
		intervals[i] = skiplist.Interval{Min: r.Min, Max: r.Max}
	}

	// the intervals cover the rectangle's cells but also quads sticking out
	// of it, so every item is checked by its coordinates
	for _, item := range q.list.IntervalsGet(intervals) {
		if x, y := item.Coords(); x < xMin || x > xMax || y < yMin || y > yMax {
			continue
		}

		if filter != nil && !filter(item) {
			continue
		}

		out = append(out, item)
	}

	return out
}

// NearestNeighbor returns the item closest to a resident item, judged among
// the items of its own quad, its co-quadrants and the eight same-size quads
// around it. The second result is false when item is not resident or none of
// those quads holds another item.
func (q *Quadtree[T]) NearestNeighbor(item T) (T, bool) {
	var (
		nearest T
		found   bool
		best    int64
	)

	key, ok := q.key(item)
	if !ok {
		return nearest, false
	}

	ref := q.resident(key)
	if ref == skiplist.Nil {
		return nearest, false
	}

	x, y := item.Coords()

	for _, cand := range q.list.IntervalsGet(q.around(q.list.Key(ref))) {
		cx, cy := cand.Coords()

		if cx == x && cy == y {
			continue // the item itself
		}

		dx, dy := int64(cx-x), int64(cy-y)

		if dist := dx*dx + dy*dy; !found || dist < best {
			nearest, best, found = cand, dist, true
		}
	}

	return nearest, found
}

// around returns the sorted, merged key intervals of the quads a nearest
// neighbor search looks into: quad itself, its co-quadrants and every
// same-size neighbor inside the domain.
func (q *Quadtree[T]) around(quad morton.Index) []skiplist.Interval {
	intervals := make([]skiplist.Interval, 0, 4+len(morton.Directions))
	intervals = append(intervals, interval(quad))

	if quad.Res() < q.maxRes {
		for _, sib := range quad.CoQuadrants() {
			intervals = append(intervals, interval(sib))
		}
	}

	for _, dir := range morton.Directions {
		n, ok := quad.Neighbor(dir, q.maxRes)

		if !ok || n.IsCoQuadrant(quad) {
			continue // outside the domain or already in
		}

		intervals = append(intervals, interval(n))
	}

	return merge(intervals)
}

func interval(quad morton.Index) skiplist.Interval {
	return skiplist.Interval{Min: quad.MinRange(), Max: quad.MaxRange()}
}

// merge sorts intervals and joins the overlapping and adjacent ones.
func merge(intervals []skiplist.Interval) []skiplist.Interval {
	if len(intervals) == 0 {
		return intervals
	}

	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].Min < intervals[j].Min
	})

	out := intervals[:1]

	for _, iv := range intervals[1:] {
		last := &out[len(out)-1]

		switch {
		case iv.Max <= last.Max:
			// nested
		case iv.Min <= last.Max || iv.Min == last.Max+1:
			last.Max = iv.Max
		default:
			out = append(out, iv)
		}
	}

	return out
}

func clip(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
