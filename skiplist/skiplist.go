package skiplist

import (
	"fmt"
	"strings"
)

// Ceiling is the number of levels a list can ever use. With one node in
// three promoted per level, 3^24 nodes exceed the 32-bit key space.
const Ceiling = 24

// Precursors holds, per level, the node after which a key is spliced in
// that level's link direction.
type Precursors []Ref

// List is an interval skip list. It is not safe for concurrent use.
type List[K Index[K], V any] struct {
	nodes []node[K, V] // [0] is Head, [1] is Tail
	free  []Ref

	// heights tracks per-level promotion credit aiming at a 1:3 ratio
	// between the populations of successive levels
	heights   [Ceiling]int
	counts    [Ceiling]int // nodes linked on each level
	maxHeight int
	size      int
}

// New returns an empty list whose sentinels are bound to the given domain
// bounds.
func New[K Index[K], V any](head, tail K) *List[K, V] {
	l := &List[K, V]{
		nodes: []node[K, V]{
			{kind: kindHead, key: head, next: make([]Ref, Ceiling)},
			{kind: kindTail, key: tail, next: make([]Ref, Ceiling)},
		},
	}

	// even levels run Head -> Tail, odd levels run Tail -> Head
	for h := 0; h < Ceiling; h++ {
		if h%2 == 0 {
			l.nodes[Head].next[h] = Tail
			l.nodes[Tail].next[h] = Nil
		} else {
			l.nodes[Head].next[h] = Nil
			l.nodes[Tail].next[h] = Head
		}
	}

	return l
}

// Len returns the number of resident nodes.
func (l *List[K, V]) Len() int {
	return l.size
}

// MaxHeight returns the highest level currently in use.
func (l *List[K, V]) MaxHeight() int {
	return l.maxHeight
}

func alternator(level int) int {
	return 1 - 2*(level&1) // 1 on even levels, -1 on odd
}

// PickHeight returns the height for the next node: the lowest level whose
// promotion credit has not yet reached two.
func (l *List[K, V]) PickHeight() int {
	h := 0

	for h <= l.maxHeight && h < Ceiling-1 && l.heights[h] >= 2 {
		h++
	}

	return h
}

// FindPrecursors returns the splice points for key on levels 0..height.
//
// The walk starts at the top level from the sentinel that level is rooted
// at and follows each level in its own direction until the next node would
// reach the key. A node containing the key (or tied with it) is stepped
// over, so the level below starts past it.
func (l *List[K, V]) FindPrecursors(key K, height int) Precursors {
	if height < 0 || height >= Ceiling {
		panic(fmt.Sprintf("skiplist: height %d out of range", height))
	}

	var (
		level = l.maxHeight
		precs = make(Precursors, height+1)
		cur   = Head
	)

	if height > level {
		level = height
	}

	if level%2 == 1 {
		cur = Tail
	}

	for i := range precs {
		precs[i] = Nil
	}

	for ; level >= 0; level-- {
		alt := alternator(level)

		for l.compare(cur, key)*alt < 0 && l.hasNext(cur, level) {
			next := l.nodes[cur].next[level]

			if cmp := l.compare(next, key); cmp*alt >= 0 {
				if level <= height {
					precs[level] = cur
				}

				if cmp == 0 || l.contains(next, key) {
					cur = next
				}
			}

			cur = l.nodes[cur].next[level]
		}
	}

	return precs
}

// InsertNode links a new node after the precursors on every level they
// cover; the node height is len(precs)-1. It panics if the key overlaps
// either of its level-0 neighbors.
func (l *List[K, V]) InsertNode(precs Precursors, key K, val V) Ref {
	height := len(precs) - 1

	if height < 0 || height >= Ceiling {
		panic(fmt.Sprintf("skiplist: precursors of height %d", height))
	}

	for level, prec := range precs {
		if prec == Nil || !l.hasNext(prec, level) {
			panic(fmt.Sprintf("skiplist: no precursor on level %d", level))
		}
	}

	if prev := precs[0]; l.overlaps(prev, key) || l.overlaps(l.nodes[prev].next[0], key) {
		panic(fmt.Sprintf("skiplist: %v overlaps a resident range", key))
	}

	ref := l.alloc(key, val, height)

	for level, prec := range precs {
		l.nodes[ref].next[level] = l.nodes[prec].next[level]
		l.nodes[prec].next[level] = ref
	}

	l.insertHeightUpdate(height)
	l.size++

	return ref
}

// DeleteNode unlinks a node on every level it occupies. The precursors must
// be the ones of the node's own key, at least as high as the node.
func (l *List[K, V]) DeleteNode(precs Precursors, ref Ref) {
	var (
		n      = l.value(ref)
		height = len(n.next) - 1
	)

	if len(precs) <= height {
		panic(fmt.Sprintf("skiplist: %d precursors for a node of height %d", len(precs), height))
	}

	for level := 0; level <= height; level++ {
		if prec := precs[level]; prec == Nil || !l.hasNext(prec, level) || l.nodes[prec].next[level] != ref {
			panic(fmt.Sprintf("skiplist: precursor %d does not link to %d on level %d", prec, ref, level))
		}
	}

	for level := 0; level <= height; level++ {
		l.nodes[precs[level]].next[level] = n.next[level]
	}

	l.deleteHeightUpdate(height)
	l.release(ref)
	l.size--
}

func (l *List[K, V]) insertHeightUpdate(h int) {
	if h > l.maxHeight {
		l.maxHeight = h
	}

	l.heights[h]++

	for level := 0; level <= h; level++ {
		l.counts[level]++
	}

	for h > 0 {
		h--
		l.heights[h] -= 2
	}
}

func (l *List[K, V]) deleteHeightUpdate(h int) {
	for level := 0; level <= h; level++ {
		l.counts[level]--
	}

	// drop every emptied level off the top
	for l.maxHeight > 0 && l.counts[l.maxHeight] == 0 {
		l.maxHeight--
	}

	l.heights[h]--

	for h > 0 {
		h--
		l.heights[h] += 2
	}
}

// locate returns the node containing key among the two nodes bracketing it
// on level 0, or Nil. A resident range can contain a key that sorts after
// the range's own code, which leaves it as the precursor itself.
func (l *List[K, V]) locate(prec Ref, key K) Ref {
	if l.contains(prec, key) {
		return prec
	}

	if next := l.nodes[prec].next[0]; l.contains(next, key) {
		return next
	}

	return Nil
}

// Locate returns the resident node whose range contains key, or Nil.
func (l *List[K, V]) Locate(key K) Ref {
	return l.locate(l.FindPrecursors(key, 0)[0], key)
}

// Get returns the value of the node whose range contains key.
func (l *List[K, V]) Get(key K) (V, bool) {
	if ref := l.Locate(key); ref != Nil {
		return l.nodes[ref].val, true
	}

	var zero V

	return zero, false
}

// Put assigns a value to key. If a resident node already contains the key
// its value is replaced and the previous one is returned with true;
// otherwise a new node is inserted. A key overlapping a resident range it
// is not contained in makes Put panic.
func (l *List[K, V]) Put(key K, val V) (V, bool) {
	var (
		height = l.PickHeight()
		precs  = l.FindPrecursors(key, height)
	)

	if ref := l.locate(precs[0], key); ref != Nil {
		return l.SetValue(ref, val), true
	}

	l.InsertNode(precs, key, val)

	var zero V

	return zero, false
}

// Remove deletes the node whose range contains key and returns its value.
func (l *List[K, V]) Remove(key K) (V, bool) {
	var zero V

	ref := l.Locate(key)
	if ref == Nil {
		return zero, false
	}

	var (
		n     = &l.nodes[ref]
		val   = n.val
		precs = l.FindPrecursors(n.key, len(n.next)-1)
	)

	l.DeleteNode(precs, ref)

	return val, true
}

// Iter calls fn for every resident node in key order until fn returns false.
func (l *List[K, V]) Iter(fn func(ref Ref, key K, val V) bool) {
	for ref := l.nodes[Head].next[0]; ref != Tail; {
		n := &l.nodes[ref]
		next := n.next[0]

		if !fn(ref, n.key, n.val) {
			return
		}

		ref = next
	}
}

// Heights returns a copy of the per-level promotion credit.
func (l *List[K, V]) Heights() []int {
	out := make([]int, Ceiling)
	copy(out, l.heights[:])

	return out
}

// LevelCounts returns how many resident nodes are linked on each level up
// to the highest one in use.
func (l *List[K, V]) LevelCounts() []int {
	var counts []int

	l.Iter(func(ref Ref, _ K, _ V) bool {
		h := len(l.nodes[ref].next) - 1

		for len(counts) <= h {
			counts = append(counts, 0)
		}

		for level := 0; level <= h; level++ {
			counts[level]++
		}

		return true
	})

	return counts
}

func (l *List[K, V]) String() string {
	var b strings.Builder

	b.WriteByte('{')

	l.Iter(func(ref Ref, key K, val V) bool {
		if b.Len() > 1 {
			b.WriteString(", ")
		}

		fmt.Fprintf(&b, "%v=%v", key, val)

		return true
	})

	b.WriteByte('}')

	return b.String()
}
