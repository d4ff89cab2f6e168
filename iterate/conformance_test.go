package iterate_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/hasbyte1/go-iterate/container"
	"github.com/hasbyte1/go-iterate/iterate"
	"github.com/hasbyte1/go-iterate/list"
)

// ConformanceSuite checks dispatch equivalence: for the same elements
// presented through every capability class, every operation must return
// the same result, element for element. Which engine ran is not
// observable in the output.
type ConformanceSuite struct {
	suite.Suite
	elements []int
}

func TestConformanceSuite(t *testing.T) {
	suite.Run(t, &ConformanceSuite{elements: []int{3, 1, 4, 1, 5, 9, 2, 6}})
}

// sourcesFor presents the same elements through each ordered capability
// class: native rich protocol, array-backed, random access, and
// sequential-only. (Sets are excluded here: an unordered source cannot
// take part in order-sensitive equivalence.)
func sourcesFor(elements []int) map[string]container.Enumerable[int] {
	items := slices.Clone(elements)
	return map[string]container.Enumerable[int]{
		"rich":    list.From(items),
		"array":   container.SliceSource(items),
		"indexed": container.IndexedSource(len(items), func(i int) int { return items[i] }),
		"seq":     container.SeqSource(slices.Values(items)),
	}
}

// agree runs op over every capability class and asserts all results are
// equal to the sequential baseline.
func agree[R any](s *ConformanceSuite, opName string, op func(container.Enumerable[int]) R) {
	agreeOn(s, opName, s.elements, op)
}

func agreeOn[R any](s *ConformanceSuite, opName string, elements []int, op func(container.Enumerable[int]) R) {
	s.T().Helper()
	sources := sourcesFor(elements)
	want := op(sources["seq"]) // the universal correctness baseline
	for name, src := range sources {
		require.Equal(s.T(), want, op(src), "%s over %q must match the sequential baseline", opName, name)
	}
}

func (s *ConformanceSuite) TestFilter() {
	agree(s, "Filter", func(src container.Enumerable[int]) []int {
		got, err := iterate.Filter(src, func(n int) bool { return n%2 == 0 })
		require.NoError(s.T(), err)
		out, err := iterate.ToSlice[int](got)
		require.NoError(s.T(), err)
		return out
	})
}

func (s *ConformanceSuite) TestReject() {
	agree(s, "Reject", func(src container.Enumerable[int]) []int {
		got, err := iterate.Reject(src, func(n int) bool { return n%2 == 0 })
		require.NoError(s.T(), err)
		out, err := iterate.ToSlice[int](got)
		require.NoError(s.T(), err)
		return out
	})
}

func (s *ConformanceSuite) TestPartition() {
	agree(s, "Partition", func(src container.Enumerable[int]) [][]int {
		sel, rej, err := iterate.Partition(src, func(n int) bool { return n > 3 })
		require.NoError(s.T(), err)
		selOut, err := iterate.ToSlice[int](sel)
		require.NoError(s.T(), err)
		rejOut, err := iterate.ToSlice[int](rej)
		require.NoError(s.T(), err)
		return [][]int{selOut, rejOut}
	})
}

func (s *ConformanceSuite) TestMap() {
	agree(s, "Map", func(src container.Enumerable[int]) []int {
		got, err := iterate.Map(src, func(n int) int { return n * n })
		require.NoError(s.T(), err)
		return got.ToSlice()
	})
}

func (s *ConformanceSuite) TestFlatMap() {
	agree(s, "FlatMap", func(src container.Enumerable[int]) []int {
		got, err := iterate.FlatMap(src, func(n int) []int { return []int{n, -n} })
		require.NoError(s.T(), err)
		return got.ToSlice()
	})
}

func (s *ConformanceSuite) TestQuantifiers() {
	even := func(n int) bool { return n%2 == 0 }
	agree(s, "Count", func(src container.Enumerable[int]) int {
		got, err := iterate.Count(src, even)
		require.NoError(s.T(), err)
		return got
	})
	agree(s, "AnySatisfy", func(src container.Enumerable[int]) bool {
		got, err := iterate.AnySatisfy(src, even)
		require.NoError(s.T(), err)
		return got
	})
	agree(s, "AllSatisfy", func(src container.Enumerable[int]) bool {
		got, err := iterate.AllSatisfy(src, even)
		require.NoError(s.T(), err)
		return got
	})
	agree(s, "NoneSatisfy", func(src container.Enumerable[int]) bool {
		got, err := iterate.NoneSatisfy(src, func(n int) bool { return n > 100 })
		require.NoError(s.T(), err)
		return got
	})
}

func (s *ConformanceSuite) TestDetect() {
	agree(s, "Detect", func(src container.Enumerable[int]) int {
		got, found, err := iterate.Detect(src, func(n int) bool { return n > 3 })
		require.NoError(s.T(), err)
		require.True(s.T(), found)
		return got
	})
	agree(s, "DetectIndex", func(src container.Enumerable[int]) int {
		got, err := iterate.DetectIndex(src, func(n int) bool { return n > 3 })
		require.NoError(s.T(), err)
		return got
	})
}

func (s *ConformanceSuite) TestReduce() {
	agree(s, "Reduce", func(src container.Enumerable[int]) int {
		got, err := iterate.Reduce(src, 7, func(acc, n int) int { return acc*31 + n })
		require.NoError(s.T(), err)
		return got
	})
}

func (s *ConformanceSuite) TestGroupBy() {
	agree(s, "GroupBy", func(src container.Enumerable[int]) map[int][]int {
		groups, err := iterate.GroupBy(src, func(n int) int { return n % 3 })
		require.NoError(s.T(), err)
		out := make(map[int][]int)
		groups.ForEachKey(func(k int, group *list.List[int]) { out[k] = group.ToSlice() })
		return out
	})
}

func (s *ConformanceSuite) TestToMap() {
	agree(s, "ToMap", func(src container.Enumerable[int]) map[int]int {
		m, err := iterate.ToMap(src, func(n int) int { return n % 3 }, func(n int) int { return n })
		require.NoError(s.T(), err)
		return m.ToGoMap()
	})
}

func (s *ConformanceSuite) TestZip() {
	other := list.New("a", "b", "c", "d")
	agree(s, "Zip", func(src container.Enumerable[int]) []container.Pair[int, string] {
		got, err := iterate.Zip[int, string](src, other)
		require.NoError(s.T(), err)
		return got.ToSlice()
	})
	agree(s, "ZipWithIndex", func(src container.Enumerable[int]) []container.Pair[int, int] {
		got, err := iterate.ZipWithIndex(src)
		require.NoError(s.T(), err)
		return got.ToSlice()
	})
}

func (s *ConformanceSuite) TestExtremes() {
	less := func(a, b int) bool { return a < b }
	agree(s, "Min", func(src container.Enumerable[int]) int {
		got, found, err := iterate.Min(src, less)
		require.NoError(s.T(), err)
		require.True(s.T(), found)
		return got
	})
	agree(s, "Max", func(src container.Enumerable[int]) int {
		got, found, err := iterate.Max(src, less)
		require.NoError(s.T(), err)
		require.True(s.T(), found)
		return got
	})
}

func (s *ConformanceSuite) TestSorted() {
	agree(s, "Sorted", func(src container.Enumerable[int]) []int {
		got, err := iterate.Sorted(src, func(a, b int) bool { return a < b })
		require.NoError(s.T(), err)
		return got.ToSlice()
	})
}

func (s *ConformanceSuite) TestChunk() {
	agree(s, "Chunk", func(src container.Enumerable[int]) [][]int {
		got, err := iterate.Chunk(src, 3)
		require.NoError(s.T(), err)
		return got
	})
}

func (s *ConformanceSuite) TestSlicing() {
	agree(s, "Take", func(src container.Enumerable[int]) []int {
		got, err := iterate.Take(src, 3)
		require.NoError(s.T(), err)
		return got.ToSlice()
	})
	agree(s, "Drop", func(src container.Enumerable[int]) []int {
		got, err := iterate.Drop(src, 3)
		require.NoError(s.T(), err)
		return got.ToSlice()
	})
	agree(s, "First", func(src container.Enumerable[int]) int {
		got, found, err := iterate.First(src)
		require.NoError(s.T(), err)
		require.True(s.T(), found)
		return got
	})
	agree(s, "Last", func(src container.Enumerable[int]) int {
		got, found, err := iterate.Last(src)
		require.NoError(s.T(), err)
		require.True(s.T(), found)
		return got
	})
}

func (s *ConformanceSuite) TestMembershipAndSize() {
	agree(s, "Contains", func(src container.Enumerable[int]) bool {
		got, err := iterate.Contains(src, 9)
		require.NoError(s.T(), err)
		return got
	})
	agree(s, "SizeOf", func(src container.Enumerable[int]) int {
		got, err := iterate.SizeOf(src)
		require.NoError(s.T(), err)
		return got
	})
	agree(s, "MakeString", func(src container.Enumerable[int]) string {
		got, err := iterate.MakeString(src, ", ")
		require.NoError(s.T(), err)
		return got
	})
}

// TestEmptySourcesAgree re-runs part of the operation set over empty
// sources, where off-by-one dispatch bugs like to hide.
func (s *ConformanceSuite) TestEmptySourcesAgree() {
	even := func(n int) bool { return n%2 == 0 }

	agreeOn(s, "Filter(empty)", nil, func(src container.Enumerable[int]) int {
		got, err := iterate.Filter(src, even)
		require.NoError(s.T(), err)
		return got.Len()
	})
	agreeOn(s, "AllSatisfy(empty)", nil, func(src container.Enumerable[int]) bool {
		got, err := iterate.AllSatisfy(src, even)
		require.NoError(s.T(), err)
		require.True(s.T(), got, "vacuous truth on empty sources")
		return got
	})
	agreeOn(s, "Min(empty)", nil, func(src container.Enumerable[int]) bool {
		_, found, err := iterate.Min(src, func(a, b int) bool { return a < b })
		require.NoError(s.T(), err)
		return found
	})
	agreeOn(s, "IsEmpty(empty)", nil, func(src container.Enumerable[int]) bool {
		return iterate.IsEmpty(src)
	})
}
