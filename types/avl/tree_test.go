package avl

import (
	"math/rand"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func treeKeys(t *Tree[uint64, int]) []uint64 {
	keys := []uint64{}
	t.IterateInOrder(func(v int) bool {
		keys = append(keys, uint64(v))
		return false
	})
	return keys
}

func TestTreeAddFindRemove(t *testing.T) {
	tree := NewOrderedTree[uint64, int]()

	for _, k := range []uint64{50, 20, 70, 10, 30, 60, 80} {
		_, err := tree.Add(k, int(k))
		require.NoError(t, err)
	}
	require.Equal(t, 7, tree.Size())
	require.EqualValues(t, 10, tree.MostLeft().Key())
	require.EqualValues(t, 80, tree.MostRight().Key())

	node := tree.Find(30)
	require.NotNil(t, node)
	require.Equal(t, 30, node.Value())
	require.Nil(t, tree.Find(31))

	_, err := tree.Add(30, 30)
	require.ErrorIs(t, err, ErrorTreeNodeDuplicate)
	require.Equal(t, 7, tree.Size())

	v, err := tree.Remove(30)
	require.NoError(t, err)
	require.Equal(t, 30, v)
	require.Nil(t, tree.Find(30))
	require.Equal(t, 6, tree.Size())

	_, err = tree.Remove(30)
	require.ErrorIs(t, err, ErrorTreeNodeNotFound)
}

func TestTreeMostLeftTracking(t *testing.T) {
	tree := NewOrderedTree[uint64, int]()

	_, err := tree.Add(5, 5)
	require.NoError(t, err)
	_, err = tree.Add(3, 3)
	require.NoError(t, err)
	require.EqualValues(t, 3, tree.MostLeft().Key())

	_, err = tree.Remove(3)
	require.NoError(t, err)
	require.EqualValues(t, 5, tree.MostLeft().Key())

	_, err = tree.Remove(5)
	require.NoError(t, err)
	require.Nil(t, tree.MostLeft())
	require.Nil(t, tree.MostRight())
}

func TestTreeReversedComparator(t *testing.T) {
	// Bid-side ordering: greatest key first
	tree := NewTree[uint64, int](func(a, b uint64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})

	for _, k := range []uint64{100, 105, 95} {
		_, err := tree.Add(k, int(k))
		require.NoError(t, err)
	}
	require.EqualValues(t, 105, tree.MostLeft().Key())

	_, err := tree.Remove(105)
	require.NoError(t, err)
	require.EqualValues(t, 100, tree.MostLeft().Key())
}

func TestTreeRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pool := &sync.Pool{New: func() any { return new(Node[uint64, int]) }}
	tree := NewTreePooled[uint64, int](func(a, b uint64) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}, pool)

	present := map[uint64]bool{}
	for i := 0; i < 5000; i++ {
		k := uint64(rng.Intn(500))
		if present[k] {
			_, err := tree.Remove(k)
			require.NoError(t, err)
			delete(present, k)
		} else {
			_, err := tree.Add(k, int(k))
			require.NoError(t, err)
			present[k] = true
		}

		require.Equal(t, len(present), tree.Size())
	}

	want := []uint64{}
	for k := range present {
		want = append(want, k)
	}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	require.Equal(t, want, treeKeys(&tree))

	tree.Clear()
	require.Equal(t, 0, tree.Size())
	require.Nil(t, tree.MostLeft())
}
