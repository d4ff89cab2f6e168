package list_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-iterate/container"
	"github.com/hasbyte1/go-iterate/list"
)

func TestToImmutableCopies(t *testing.T) {
	mutable := list.New(1, 2, 3)
	frozen := mutable.ToImmutable()

	mutable.Append(4)
	mutable.Set(0, 99)
	require.Equal(t, []int{1, 2, 3}, frozen.ToSlice(),
		"later source mutation must not reach the frozen copy")
}

func TestToImmutableOnImmutableIsIdentity(t *testing.T) {
	frozen := list.ImmutableOf(1, 2, 3)
	require.Same(t, frozen, frozen.ToImmutable(),
		"an already-immutable list converts to itself, not a copy")
}

func TestImmutableAccessors(t *testing.T) {
	frozen := list.ImmutableOf(10, 20, 30)

	require.Equal(t, 3, frozen.Len())
	require.False(t, frozen.IsEmpty())
	require.Equal(t, 20, frozen.At(1))
	require.Panics(t, func() { frozen.At(9) })

	v, ok := frozen.Get(0)
	require.True(t, ok)
	require.Equal(t, 10, v)
	_, ok = frozen.Get(3)
	require.False(t, ok)

	require.Equal(t, "[10 20 30]", frozen.String())
}

func TestImmutableViewsCannotMutate(t *testing.T) {
	frozen := list.ImmutableFrom([]int{1, 2, 3})

	out := frozen.ToSlice()
	out[0] = 99
	require.Equal(t, 1, frozen.At(0), "ToSlice must hand out a copy")

	thawed := frozen.ToList()
	thawed.Append(4)
	require.Equal(t, 3, frozen.Len(), "ToList must be a copy")
}

func TestImmutableCapabilities(t *testing.T) {
	var src container.Enumerable[int] = list.ImmutableOf(1, 2, 3)

	_, ok := src.(container.Rich[int])
	require.True(t, ok, "the read-only protocol is available")
	_, ok = src.(container.Indexed[int])
	require.True(t, ok)

	_, ok = src.(container.ArrayBacked[int])
	require.False(t, ok, "the backing array must never leak")
	_, ok = src.(container.Sortable[int])
	require.False(t, ok)
	_, ok = src.(container.Removable[int])
	require.False(t, ok)
	_, ok = src.(container.Target[int])
	require.False(t, ok)
}

func TestImmutableRichProtocol(t *testing.T) {
	frozen := list.ImmutableOf(1, 2, 3, 4)

	require.Equal(t, 2, frozen.Count(func(n int) bool { return n%2 == 0 }))

	got, found := frozen.Detect(func(n int) bool { return n > 2 })
	require.True(t, found)
	require.Equal(t, 3, got)

	first, _ := frozen.First()
	last, _ := frozen.Last()
	require.Equal(t, 1, first)
	require.Equal(t, 4, last)
}
