package set_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-iterate/container"
	"github.com/hasbyte1/go-iterate/set"
)

// sorted returns the set's elements in ascending order, since set
// traversal order is unspecified.
func sorted(s interface{ ToSlice() []int }) []int {
	out := s.ToSlice()
	sort.Ints(out)
	return out
}

func TestConstructorsDedup(t *testing.T) {
	s := set.New(1, 2, 2, 3, 1)
	require.Equal(t, 3, s.Len())
	require.Equal(t, []int{1, 2, 3}, sorted(s))
}

func TestAddRemoveContains(t *testing.T) {
	s := set.New[int]()
	require.True(t, s.IsEmpty())

	require.True(t, s.Add(1))
	require.False(t, s.Add(1), "duplicate insert must report no growth")
	require.True(t, s.Contains(1))
	require.False(t, s.Contains(2))

	require.True(t, s.Remove(1))
	require.False(t, s.Remove(1))
	require.True(t, s.IsEmpty())
}

func TestAppendAbsorbsDuplicates(t *testing.T) {
	s := set.New[string]()
	s.Append("a")
	s.Append("a")
	s.Append("b")
	require.Equal(t, 2, s.Len())
}

func TestRemoveIf(t *testing.T) {
	s := set.New(1, 2, 3, 4, 5)
	removed := s.RemoveIf(func(n int) bool { return n%2 == 0 })
	require.Equal(t, 2, removed)
	require.Equal(t, []int{1, 3, 5}, sorted(s))
}

func TestRichProtocol(t *testing.T) {
	s := set.New(1, 2, 3, 4)
	even := func(n int) bool { return n%2 == 0 }

	require.Equal(t, 2, s.Count(even))
	require.True(t, s.AnySatisfy(even))
	require.False(t, s.AllSatisfy(even))
	require.False(t, s.NoneSatisfy(even))

	got, found := s.Detect(even)
	require.True(t, found)
	require.True(t, got == 2 || got == 4, "some even element")

	least, found := s.Min(func(a, b int) bool { return a < b })
	require.True(t, found)
	require.Equal(t, 1, least)
	most, found := s.Max(func(a, b int) bool { return a < b })
	require.True(t, found)
	require.Equal(t, 4, most)

	sel := set.New[int]()
	s.SelectInto(even, sel)
	require.Equal(t, []int{2, 4}, sorted(sel))
}

func TestSpeciesKeepsTheSetFamily(t *testing.T) {
	s := set.New(1, 2, 3)
	empty := s.NewEmpty(4)
	require.IsType(t, &set.Set[int]{}, empty)

	// A set target collapses duplicates appended by an operation.
	empty.Append(7)
	empty.Append(7)
	require.Equal(t, 1, empty.Len())
}

func TestCapabilities(t *testing.T) {
	var src container.Enumerable[int] = set.New(1, 2)

	_, ok := src.(container.Rich[int])
	require.True(t, ok)
	_, ok = src.(container.Membership[int])
	require.True(t, ok)
	_, ok = src.(container.Species[int])
	require.True(t, ok)
	_, ok = src.(container.Indexed[int])
	require.False(t, ok, "a hash set has no positional access")
	_, ok = src.(container.Sortable[int])
	require.False(t, ok, "a hash set has no order to mutate")
}

func TestImmutableSet(t *testing.T) {
	s := set.New(1, 2, 3)
	frozen := s.ToImmutable()

	s.Add(4)
	require.Equal(t, 3, frozen.Len(), "later source mutation must not reach the frozen copy")
	require.True(t, frozen.Contains(2))
	require.False(t, frozen.Contains(4))

	require.Same(t, frozen, frozen.ToImmutable(), "identity, not a copy")

	thawed := frozen.ToSet()
	thawed.Add(9)
	require.Equal(t, 3, frozen.Len(), "ToSet must be a copy")
	require.Equal(t, []int{1, 2, 3}, sorted(frozen))
}
