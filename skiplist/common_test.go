package skiplist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// intIndex is a single-code key: a range of width one.
type intIndex uint32

func (i intIndex) Compare(o intIndex) int {
	switch {
	case i < o:
		return -1
	case i > o:
		return 1
	}

	return 0
}

func (i intIndex) Contains(o intIndex) bool { return i == o }
func (i intIndex) Overlaps(o intIndex) bool { return i == o }
func (i intIndex) MinRange() uint32         { return uint32(i) }
func (i intIndex) MaxRange() uint32         { return uint32(i) }
func (i intIndex) IsDivisible() bool        { return false }

func newIntList() *List[intIndex, string] {
	return New[intIndex, string](0, math.MaxUint32)
}

func keysOf[K Index[K], V any](l *List[K, V]) []K {
	var keys []K

	l.Iter(func(_ Ref, key K, _ V) bool {
		keys = append(keys, key)
		return true
	})

	return keys
}

// checkInvariants verifies the ordering of level 0 and the shape of every
// level: even levels run Head -> Tail in increasing order, odd levels run
// Tail -> Head in decreasing order, and each holds exactly the nodes tall
// enough to be on it. The list height must be the top populated level.
func checkInvariants[K Index[K], V any](t *testing.T, l *List[K, V]) {
	t.Helper()

	var (
		prev   = Nil
		counts = l.LevelCounts()
	)

	l.Iter(func(ref Ref, key K, _ V) bool {
		if prev != Nil {
			pk := l.Key(prev)
			require.Less(t, pk.Compare(key), 0, "%v !< %v", pk, key)
			require.Less(t, pk.MaxRange(), key.MinRange(), "%v overlaps %v", pk, key)
		}

		prev = ref

		return true
	})

	for level := 0; level < Ceiling; level++ {
		var (
			alt        = alternator(level)
			start, end = Head, Tail
			last       = Nil
			total      int
		)

		if alt < 0 {
			start, end = Tail, Head
		}

		for cur := l.Next(start, level); cur != end; cur = l.Next(cur, level) {
			require.True(t, l.IsValue(cur), "level %d: ref %d", level, cur)
			require.GreaterOrEqual(t, l.Height(cur), level)

			if last != Nil {
				require.Less(t, l.Key(last).Compare(l.Key(cur))*alt, 0, "level %d", level)
			}

			last = cur
			total++
		}

		var expected int
		if level < len(counts) {
			expected = counts[level]
		}

		require.Equal(t, expected, total, "level %d", level)
	}

	// the top level in use is the highest populated one
	if len(counts) == 0 {
		require.Equal(t, 0, l.MaxHeight())
	} else {
		require.Equal(t, len(counts)-1, l.MaxHeight())
	}

	for level := 0; level < Ceiling; level++ {
		var expected int
		if level < len(counts) {
			expected = counts[level]
		}

		require.Equal(t, expected, l.counts[level], "population of level %d", level)
	}

	require.Equal(t, len(keysOf(l)), l.Len())
}
