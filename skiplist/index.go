// Package skiplist implements an ordered map from non-overlapping key ranges
// to values.
//
// The list differs from a textbook skip list in two ways:
//
//   - every key addresses a range of 32-bit codes rather than a single one,
//     and resident ranges never overlap, so a lookup asks which node
//     contains a key instead of which node equals it;
//
//   - link direction alternates with the level: even levels run forward
//     from the Head sentinel, odd levels run backward from the Tail one.
//
// Example (levels 0..2, ranges shown by their raw codes):
//
//	L2  Head ------------------------> [40] -----------------> Tail
//	L1  Head <-------- [17] <--------- [40] <- [71] <--------- Tail
//	L0  Head -> [3] -> [17] -> [26] -> [40] -> [71] -> [88] -> Tail
//
// A search walks each level in its own direction, so it can descend from
// whichever sentinel is ahead of the target at that level.
package skiplist

// Index is the contract a key type must satisfy.
//
// Compare orders keys by a representative code, Contains and Overlaps test
// the ranges the keys address, MinRange and MaxRange expose the bounds of
// such a range.
type Index[K any] interface {
	Compare(K) int
	Contains(K) bool
	Overlaps(K) bool
	MinRange() uint32
	MaxRange() uint32
	IsDivisible() bool
}

// Interval is an inclusive range of codes used by IntervalsGet.
type Interval struct {
	Min uint32
	Max uint32
}
