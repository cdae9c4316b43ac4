package mrtree2d

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func s1Points() []Record {
	return []Record{
		{ID: 0, Loc: Point{X: 0, Y: 0}},
		{ID: 1, Loc: Point{X: 10, Y: 10}},
		{ID: 2, Loc: Point{X: 20, Y: 20}},
		{ID: 3, Loc: Point{X: 30, Y: 30}},
	}
}

func TestBulkLoadRejectsEmptyDataset(t *testing.T) {
	_, err := BulkLoad(nil, 2, OrderLexicographic)
	require.ErrorIs(t, err, ErrEmptyDataset)
}

func TestBulkLoadRejectsBadCapacity(t *testing.T) {
	_, err := BulkLoad(s1Points(), 0, OrderLexicographic)
	require.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestBulkLoadPacksLeavesInSortedOrder(t *testing.T) {
	root, err := BulkLoad(s1Points(), 2, OrderLexicographic)
	require.NoError(t, err)

	internal, ok := root.(*Internal)
	require.True(t, ok, "root should be internal at height 2")
	require.Len(t, internal.Children, 2)

	leaf0 := internal.Children[0].(*Leaf)
	leaf1 := internal.Children[1].(*Leaf)
	require.Equal(t, []uint32{0, 1}, ids(leaf0.Points))
	require.Equal(t, []uint32{2, 3}, ids(leaf1.Points))
}

func ids(pts []Record) []uint32 {
	out := make([]uint32, len(pts))
	for i, p := range pts {
		out[i] = p.ID
	}
	return out
}

// TestBulkLoadDeterminism checks that building twice from the same input
// yields byte-identical root digests.
func TestBulkLoadDeterminism(t *testing.T) {
	a, err := BulkLoad(append([]Record{}, s1Points()...), 2, OrderLexicographic)
	require.NoError(t, err)
	b, err := BulkLoad(append([]Record{}, s1Points()...), 2, OrderLexicographic)
	require.NoError(t, err)
	require.Equal(t, a.Digest(), b.Digest())
}

// TestBulkLoadOrderInsensitive checks that a permutation of the dataset
// normalizes to the same root digest because the sort step re-establishes
// canonical order.
func TestBulkLoadOrderInsensitive(t *testing.T) {
	base := s1Points()
	root1, err := BulkLoad(append([]Record{}, base...), 2, OrderLexicographic)
	require.NoError(t, err)

	rnd := rand.New(rand.NewSource(42))
	shuffled := append([]Record{}, base...)
	rnd.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	root2, err := BulkLoad(shuffled, 2, OrderLexicographic)
	require.NoError(t, err)

	require.Equal(t, root1.Digest(), root2.Digest())
}

// TestBulkLoadTightness checks that every node's stored MBR equals the
// enlarge-fold of its children (or points, for leaves).
func TestBulkLoadTightness(t *testing.T) {
	root, err := BulkLoad(randomPoints(200, 12345), 4, OrderLexicographic)
	require.NoError(t, err)
	checkTightness(t, root)
}

func checkTightness(t *testing.T, n Node) {
	t.Helper()
	switch v := n.(type) {
	case *Leaf:
		want := EmptyRect
		for _, p := range v.Points {
			want = EnlargePoint(want, p.Loc)
		}
		require.Equal(t, want, v.MBR())
	case *Internal:
		want := EmptyRect
		for _, c := range v.Children {
			want = EnlargeRect(want, c.MBR())
			checkTightness(t, c)
		}
		require.Equal(t, want, v.MBR())
	}
}

// TestBulkLoadCapacityBound checks that every non-root node has between 1
// and capacity children/points.
func TestBulkLoadCapacityBound(t *testing.T) {
	const capacity = 3
	root, err := BulkLoad(randomPoints(97, 7), capacity, OrderLexicographic)
	require.NoError(t, err)
	checkCapacityBound(t, root, capacity, true)
}

func checkCapacityBound(t *testing.T, n Node, capacity int, isRoot bool) {
	t.Helper()
	switch v := n.(type) {
	case *Leaf:
		require.LessOrEqual(t, len(v.Points), capacity)
		if !isRoot {
			require.GreaterOrEqual(t, len(v.Points), 1)
		}
	case *Internal:
		require.LessOrEqual(t, len(v.Children), capacity)
		if !isRoot {
			require.GreaterOrEqual(t, len(v.Children), 1)
		}
		for _, c := range v.Children {
			checkCapacityBound(t, c, capacity, false)
		}
	}
}

// TestBulkLoadHeight checks that tree height equals ceil(log_capacity(N))
// for N > 0.
func TestBulkLoadHeight(t *testing.T) {
	for _, tc := range []struct {
		n, capacity, wantHeight int
	}{
		{4, 2, 2},
		{1, 2, 1},
		{2, 2, 1},
		{5, 2, 3},
		{8, 2, 3},
		{9, 2, 4},
	} {
		root, err := BulkLoad(randomPoints(tc.n, int64(tc.n*31+tc.capacity)), tc.capacity, OrderLexicographic)
		require.NoError(t, err)
		require.Equal(t, tc.wantHeight, height(root), "n=%d capacity=%d", tc.n, tc.capacity)
	}
}

func height(n Node) int {
	switch v := n.(type) {
	case *Leaf:
		return 1
	case *Internal:
		max := 0
		for _, c := range v.Children {
			if h := height(c); h > max {
				max = h
			}
		}
		return max + 1
	default:
		return 0
	}
}

func randomPoints(n int, seed int64) []Record {
	rnd := rand.New(rand.NewSource(seed))
	pts := make([]Record, n)
	for i := range pts {
		pts[i] = Record{
			ID:  uint32(i),
			Loc: Point{X: int32(rnd.Intn(1000) - 500), Y: int32(rnd.Intn(1000) - 500)},
		}
	}
	return pts
}
