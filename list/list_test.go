package list_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-iterate/container"
	"github.com/hasbyte1/go-iterate/list"
)

func even(n int) bool { return n%2 == 0 }

func TestConstructorsCopy(t *testing.T) {
	items := []int{1, 2, 3}
	l := list.From(items)
	items[0] = 99
	require.Equal(t, []int{1, 2, 3}, l.ToSlice(), "From must copy the slice")

	adopted := list.Adopt(items)
	items[1] = 98
	require.Equal(t, 98, adopted.At(1), "Adopt must share the slice")

	require.Equal(t, 0, list.WithCapacity[int](16).Len())
	require.Equal(t, 0, list.WithCapacity[int](-1).Len())
}

func TestAccessors(t *testing.T) {
	l := list.New(10, 20, 30)

	require.Equal(t, 3, l.Len())
	require.False(t, l.IsEmpty())

	v, ok := l.Get(1)
	require.True(t, ok)
	require.Equal(t, 20, v)
	_, ok = l.Get(3)
	require.False(t, ok)
	_, ok = l.Get(-1)
	require.False(t, ok)

	require.Equal(t, 30, l.At(2))
	require.Panics(t, func() { l.At(3) })

	require.True(t, l.Set(0, 11))
	require.Equal(t, 11, l.At(0))
	require.False(t, l.Set(5, 1))

	require.Equal(t, "[11 20 30]", l.String())
}

func TestAppend(t *testing.T) {
	l := list.New[int]()
	l.Append(1)
	l.AppendAll(2, 3)
	require.Equal(t, []int{1, 2, 3}, l.ToSlice())
}

func TestToSliceCopies(t *testing.T) {
	l := list.New(1, 2)
	out := l.ToSlice()
	out[0] = 99
	require.Equal(t, 1, l.At(0))
}

func TestSortInPlaceIsStable(t *testing.T) {
	type pair struct {
		key  int
		name string
	}
	l := list.New(pair{1, "a"}, pair{1, "b"}, pair{0, "c"})
	l.SortInPlace(func(a, b pair) bool { return a.key < b.key })
	require.Equal(t, []pair{{0, "c"}, {1, "a"}, {1, "b"}}, l.ToSlice(),
		"equal keys must keep their relative order")
}

func TestRemoveIf(t *testing.T) {
	l := list.New(1, 2, 3, 4, 5)
	removed := l.RemoveIf(even)
	require.Equal(t, 2, removed)
	require.Equal(t, []int{1, 3, 5}, l.ToSlice())

	require.Equal(t, 0, l.RemoveIf(func(int) bool { return false }))
	require.Equal(t, 3, l.Len())
}

func TestRichProtocol(t *testing.T) {
	l := list.New(1, 2, 3, 4)

	sel := list.New[int]()
	l.SelectInto(even, sel)
	require.Equal(t, []int{2, 4}, sel.ToSlice())

	require.Equal(t, 2, l.Count(even))
	require.True(t, l.AnySatisfy(even))
	require.False(t, l.AllSatisfy(even))
	require.False(t, l.NoneSatisfy(even))

	got, found := l.Detect(even)
	require.True(t, found)
	require.Equal(t, 2, got)

	first, _ := l.First()
	last, _ := l.Last()
	require.Equal(t, 1, first)
	require.Equal(t, 4, last)

	least, _ := l.Min(func(a, b int) bool { return a < b })
	most, _ := l.Max(func(a, b int) bool { return a < b })
	require.Equal(t, 1, least)
	require.Equal(t, 4, most)
}

func TestFilterRejectReturnNewLists(t *testing.T) {
	l := list.New(1, 2, 3, 4)
	require.Equal(t, []int{2, 4}, l.Filter(even).ToSlice())
	require.Equal(t, []int{1, 3}, l.Reject(even).ToSlice())
	require.Equal(t, []int{1, 2, 3, 4}, l.ToSlice(), "source untouched")
}

func TestSpecies(t *testing.T) {
	l := list.New(1, 2, 3)
	empty := l.NewEmpty(8)
	require.IsType(t, &list.List[int]{}, empty)
	require.Equal(t, 0, empty.Len())
}

func TestCapabilities(t *testing.T) {
	var src container.Enumerable[int] = list.New(1, 2, 3)

	_, ok := src.(container.Rich[int])
	require.True(t, ok)
	_, ok = src.(container.ArrayBacked[int])
	require.True(t, ok)
	_, ok = src.(container.Sortable[int])
	require.True(t, ok)
	_, ok = src.(container.Removable[int])
	require.True(t, ok)
	_, ok = src.(container.Species[int])
	require.True(t, ok)
}
