package skiplist

import (
	"fmt"
)

// IntervalsGet returns the values of all resident nodes whose range
// overlaps any of the intervals, in key order, each at most once.
//
// The intervals must be sorted and disjoint. The first node is found by a
// seek over the forward (even) levels, the rest by a single sweep of level
// 0 that narrows the current interval past every node it emits.
func (l *List[K, V]) IntervalsGet(intervals []Interval) []V {
	if len(intervals) == 0 {
		return nil
	}

	for i := range intervals {
		if intervals[i].Min > intervals[i].Max || i > 0 && intervals[i-1].Max >= intervals[i].Min {
			panic(fmt.Sprintf("skiplist: intervals are not sorted and disjoint at %d", i))
		}
	}

	var (
		out []V
		idx int
		lo  = intervals[0].Min
		ref = l.seek(lo)
	)

	for ref != Tail && idx < len(intervals) {
		var (
			n  = &l.nodes[ref]
			hi = intervals[idx].Max
		)

		switch {
		case n.key.MaxRange() < lo:
			// the node ends before the interval
			ref = n.next[0]

		case n.key.MinRange() > hi:
			// the interval ends before the node
			if idx++; idx < len(intervals) {
				lo = intervals[idx].Min
			}

		default:
			out = append(out, n.val)

			if end := n.key.MaxRange(); end >= hi {
				if idx++; idx < len(intervals) {
					lo = intervals[idx].Min
				}
			} else {
				lo = end + 1
			}

			ref = n.next[0]
		}
	}

	return out
}

// seek returns the first node on level 0 whose range ends at or after min.
// Even levels all run forward from Head, so they form an ordinary skip list
// on their own.
func (l *List[K, V]) seek(min uint32) Ref {
	cur := Head

	for level := l.maxHeight &^ 1; level >= 0; level -= 2 {
		for {
			next := l.nodes[cur].next[level]

			if l.nodes[next].kind != kindValue || l.nodes[next].key.MaxRange() >= min {
				break
			}

			cur = next
		}
	}

	return l.nodes[cur].next[0]
}
