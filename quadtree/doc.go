// Package quadtree defines a linear quadtree over a square integer domain of
// 2^maxRes x 2^maxRes cells.
//
// The tree keeps no explicit nodes. Every resident point owns one square
// quad, addressed by a Morton (Z-order) key, and the quads live in an
// interval skip list ordered by key. A 4x4 domain (maxRes 2):
//
//	    0   1   2   3   x
//	  +-------+---+---+
//	0 |       | b | c |       key range  res  item
//	  |   a   +---+---+       ---------  ---  ----
//	1 |       |       |       [ 0,  3]    1    a
//	  +-------+-------+       [ 4,  4]    0    b
//	2 |       |       |       [ 5,  5]    0    c
//	  |   d   |   e   |       [ 8, 11]    1    d
//	3 |       |       |       [12, 15]    1    e
//	  +-------+-------+
//	y
//
// The keys 6 and 7 are claimed by no quad.
//
// Quads are as large as possible: adding a point into an occupied quad
// splits it into the two largest quads that separate the points; removing
// a point lets the sole remaining occupant of a parent quad grow back into
// it, level by level.
//
// A Quadtree is not safe for concurrent use.
package quadtree
