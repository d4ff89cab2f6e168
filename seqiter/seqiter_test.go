package seqiter_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-iterate/container"
	"github.com/hasbyte1/go-iterate/list"
	"github.com/hasbyte1/go-iterate/seqiter"
)

// seq wraps a slice as a sequential-only source: no size hint, no
// random access — the baseline every other engine must agree with.
func seq(items ...int) container.Enumerable[int] {
	return container.SeqSource(slices.Values(items))
}

func even(n int) bool { return n%2 == 0 }

func TestFilteringFamily(t *testing.T) {
	src := seq(1, 2, 3, 4, 5)

	require.Equal(t, []int{2, 4}, seqiter.SelectInto(src, even, list.New[int]()).ToSlice())
	require.Equal(t, []int{1, 3, 5}, seqiter.RejectInto(src, even, list.New[int]()).ToSlice())

	calls := 0
	sel, rej := list.New[int](), list.New[int]()
	seqiter.PartitionInto(src, func(n int) bool {
		calls++
		return even(n)
	}, sel, rej)
	require.Equal(t, []int{2, 4}, sel.ToSlice())
	require.Equal(t, []int{1, 3, 5}, rej.ToSlice())
	require.Equal(t, 5, calls)
}

func TestTransformationFamily(t *testing.T) {
	src := seq(1, 2, 3)

	doubled := seqiter.CollectInto(src, func(n int) int { return n * 2 }, list.New[int]())
	require.Equal(t, []int{2, 4, 6}, doubled.ToSlice())

	flat := seqiter.FlatCollectInto(src, func(n int) []int { return []int{n, -n} }, list.New[int]())
	require.Equal(t, []int{1, -1, 2, -2, 3, -3}, flat.ToSlice())
}

func TestPredicateFamilyShortCircuitsTheCursor(t *testing.T) {
	yielded := 0
	src := container.SeqSource(func(yield func(int) bool) {
		for i := 1; i <= 100; i++ {
			yielded++
			if !yield(i) {
				return
			}
		}
	})

	ok := seqiter.AnySatisfy(src, func(n int) bool { return n == 3 })
	require.True(t, ok)
	require.Equal(t, 3, yielded, "traversal must stop with the predicate")

	yielded = 0
	_, found := seqiter.Detect(src, func(n int) bool { return n == 5 })
	require.True(t, found)
	require.Equal(t, 5, yielded)

	yielded = 0
	require.False(t, seqiter.AllSatisfy(src, func(n int) bool { return n < 2 }))
	require.Equal(t, 2, yielded)
}

func TestPredicateFamily(t *testing.T) {
	src := seq(1, 3, 4, 6)

	require.Equal(t, 2, seqiter.Count(src, even))
	require.False(t, seqiter.NoneSatisfy(src, even))
	require.True(t, seqiter.AllSatisfy(seq(), even))
	require.True(t, seqiter.NoneSatisfy(seq(), even))
	require.Equal(t, 2, seqiter.DetectIndex(src, even))
	require.Equal(t, -1, seqiter.DetectIndex(src, func(n int) bool { return n > 100 }))
}

func TestFoldFamily(t *testing.T) {
	src := seq(1, 2, 3)

	require.Equal(t, 123, seqiter.Reduce(src, 0, func(acc, n int) int { return acc*10 + n }))

	least, found := seqiter.Min(src, func(a, b int) bool { return a < b })
	require.True(t, found)
	require.Equal(t, 1, least)

	most, found := seqiter.Max(src, func(a, b int) bool { return a < b })
	require.True(t, found)
	require.Equal(t, 3, most)

	_, found = seqiter.Min(seq(), func(a, b int) bool { return a < b })
	require.False(t, found)
}

func TestPairingFamily(t *testing.T) {
	src := seq(1, 2, 3)

	zipped := seqiter.ZipInto(src, slices.Values([]string{"a", "b"}), list.New[container.Pair[int, string]]())
	require.Equal(t, 2, zipped.Len())
	require.Equal(t, container.PairOf(1, "a"), zipped.At(0))

	withIndex := seqiter.ZipWithIndexInto(src, list.New[container.Pair[int, int]]())
	require.Equal(t, container.PairOf(2, 1), withIndex.At(1))
}

func TestSlicingFamily(t *testing.T) {
	src := seq(1, 2, 3)

	require.Equal(t, []int{1, 2}, seqiter.TakeInto(src, 2, list.New[int]()).ToSlice())
	require.Empty(t, seqiter.TakeInto(src, 0, list.New[int]()).ToSlice())
	require.Equal(t, []int{3}, seqiter.DropInto(src, 2, list.New[int]()).ToSlice())

	var positions []int
	seqiter.ForEachWithIndex(src, func(_, i int) { positions = append(positions, i) })
	require.Equal(t, []int{0, 1, 2}, positions)

	first, ok := seqiter.First(src)
	require.True(t, ok)
	require.Equal(t, 1, first)
	last, ok := seqiter.Last(src)
	require.True(t, ok)
	require.Equal(t, 3, last)

	require.True(t, seqiter.IsEmpty(seq()))
	require.Equal(t, []int{1, 2, 3}, seqiter.ToSlice(src))
}

func TestTakeStopsTheCursor(t *testing.T) {
	yielded := 0
	src := container.SeqSource(func(yield func(int) bool) {
		for i := 1; i <= 100; i++ {
			yielded++
			if !yield(i) {
				return
			}
		}
	})

	got := seqiter.TakeInto(src, 3, list.New[int]())
	require.Equal(t, []int{1, 2, 3}, got.ToSlice())
	require.Equal(t, 3, yielded, "take must not traverse past n")
}
