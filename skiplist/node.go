package skiplist

import (
	"fmt"
)

// Ref addresses a node of a List. Refs of removed nodes are recycled, so a
// Ref must not be kept across a removal of its node.
type Ref int32

const (
	Nil  Ref = -1
	Head Ref = 0
	Tail Ref = 1
)

type kind uint8

const (
	kindFree kind = iota
	kindHead
	kindTail
	kindValue
)

// node is one of: the Head sentinel (links on even levels), the Tail
// sentinel (links on odd levels) or a value node (links on 0..height).
type node[K Index[K], V any] struct {
	kind kind
	key  K
	val  V
	next []Ref
}

func (l *List[K, V]) alloc(key K, val V, height int) Ref {
	n := node[K, V]{
		kind: kindValue,
		key:  key,
		val:  val,
		next: make([]Ref, height+1),
	}

	if last := len(l.free) - 1; last >= 0 {
		ref := l.free[last]
		l.free = l.free[:last]
		l.nodes[ref] = n

		return ref
	}

	l.nodes = append(l.nodes, n)

	return Ref(len(l.nodes) - 1)
}

func (l *List[K, V]) release(ref Ref) {
	l.nodes[ref] = node[K, V]{kind: kindFree}
	l.free = append(l.free, ref)
}

func (l *List[K, V]) value(ref Ref) *node[K, V] {
	if ref < 0 || int(ref) >= len(l.nodes) || l.nodes[ref].kind != kindValue {
		panic(fmt.Sprintf("skiplist: ref %d is not a value node", ref))
	}

	return &l.nodes[ref]
}

// compare orders a node against a key: Head sorts before every key and Tail
// after every key.
func (l *List[K, V]) compare(ref Ref, key K) int {
	switch n := &l.nodes[ref]; n.kind {
	case kindHead:
		return -1
	case kindTail:
		return 1
	default:
		return n.key.Compare(key)
	}
}

func (l *List[K, V]) contains(ref Ref, key K) bool {
	n := &l.nodes[ref]

	return n.kind == kindValue && n.key.Contains(key)
}

// overlaps tests a key against a node. The sentinels stand for the domain
// bounds: a key overlaps Head if it starts below the domain minimum and
// Tail if it ends past the domain maximum.
func (l *List[K, V]) overlaps(ref Ref, key K) bool {
	switch n := &l.nodes[ref]; n.kind {
	case kindHead:
		return key.MinRange() < n.key.MaxRange()
	case kindTail:
		return key.MaxRange() > n.key.MinRange()
	default:
		return n.key.Overlaps(key)
	}
}

func (l *List[K, V]) hasNext(ref Ref, level int) bool {
	next := l.nodes[ref].next

	return level < len(next) && next[level] != Nil
}

// IsValue reports whether ref is a resident value node (not a sentinel).
func (l *List[K, V]) IsValue(ref Ref) bool {
	return ref >= 0 && int(ref) < len(l.nodes) && l.nodes[ref].kind == kindValue
}

// Key returns the key of a node; for the sentinels it is the domain bound
// the list was created with.
func (l *List[K, V]) Key(ref Ref) K {
	return l.nodes[ref].key
}

func (l *List[K, V]) Value(ref Ref) V {
	return l.value(ref).val
}

// SetValue replaces the value of a node and returns the previous one.
func (l *List[K, V]) SetValue(ref Ref, val V) V {
	n := l.value(ref)
	prev := n.val
	n.val = val

	return prev
}

// Height returns the top level a node is linked on. Sentinels report the
// current list height.
func (l *List[K, V]) Height(ref Ref) int {
	if l.nodes[ref].kind != kindValue {
		return l.maxHeight
	}

	return len(l.nodes[ref].next) - 1
}

// Next follows the link of a node on the given level; Nil if it has none.
// On odd levels links point backward in key order.
func (l *List[K, V]) Next(ref Ref, level int) Ref {
	if !l.hasNext(ref, level) {
		return Nil
	}

	return l.nodes[ref].next[level]
}

// ContainsKey reports whether the range of a node contains key. Sentinels
// contain nothing.
func (l *List[K, V]) ContainsKey(ref Ref, key K) bool {
	return l.contains(ref, key)
}

// OverlapsKey reports whether key overlaps a node; see overlaps for the
// meaning of the sentinels.
func (l *List[K, V]) OverlapsKey(ref Ref, key K) bool {
	return l.overlaps(ref, key)
}

// Rekey replaces the key of a resident node in place. It is meant for the
// quadtree layer only, which shrinks and grows quads without moving them.
// The new key must keep the node ordered between its level-0 neighbors and
// overlap neither of them, otherwise Rekey panics.
func (l *List[K, V]) Rekey(ref Ref, key K) {
	var (
		n    = l.value(ref)
		prev = l.FindPrecursors(n.key, 0)[0]
		next = n.next[0]
	)

	if l.compare(prev, key) >= 0 || l.compare(next, key) <= 0 ||
		l.overlaps(prev, key) || l.overlaps(next, key) {
		panic(fmt.Sprintf("skiplist: rekey of %v to %v breaks the order", n.key, key))
	}

	n.key = key
}
