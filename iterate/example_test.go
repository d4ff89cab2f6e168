package iterate_test

import (
	"fmt"

	"github.com/hasbyte1/go-iterate/interval"
	"github.com/hasbyte1/go-iterate/iterate"
	"github.com/hasbyte1/go-iterate/list"
	"github.com/hasbyte1/go-iterate/set"
)

func ExampleFilter() {
	evens, _ := iterate.Filter[int](list.New(1, 2, 3, 4, 5, 6),
		func(n int) bool { return n%2 == 0 })
	out, _ := iterate.ToSlice[int](evens)
	fmt.Println(out)
	// Output: [2 4 6]
}

func ExampleMap() {
	squares, _ := iterate.Map[int](interval.FromTo(1, 5),
		func(n int) int { return n * n })
	fmt.Println(squares.ToSlice())
	// Output: [1 4 9 16 25]
}

func ExamplePartition() {
	big, small, _ := iterate.Partition[int](list.New(1, 7, 2, 8, 3),
		func(n int) bool { return n > 3 })
	bigOut, _ := iterate.ToSlice[int](big)
	smallOut, _ := iterate.ToSlice[int](small)
	fmt.Println(bigOut, smallOut)
	// Output: [7 8] [1 2 3]
}

func ExampleReduce() {
	total, _ := iterate.Reduce[int](list.New(1, 2, 3, 4), 0,
		func(acc, n int) int { return acc + n })
	fmt.Println(total)
	// Output: 10
}

func ExampleGroupBy() {
	groups, _ := iterate.GroupBy[string](list.New("ant", "bee", "cow", "bat"),
		func(s string) byte { return s[0] })
	fmt.Println(groups.Get('a'), groups.Get('b'), groups.Get('c'))
	// Output: [ant] [bee bat] [cow]
}

func ExampleDetect() {
	got, found, _ := iterate.Detect[int](list.New(1, 3, 4, 6),
		func(n int) bool { return n%2 == 0 })
	fmt.Println(got, found)
	// Output: 4 true
}

func ExampleZip() {
	pairs, _ := iterate.Zip[string, int](list.New("a", "b", "c"), list.New(1, 2))
	for _, p := range pairs.ToSlice() {
		fmt.Println(p)
	}
	// Output:
	// (a, 1)
	// (b, 2)
}

func ExampleSorted() {
	sorted, _ := iterate.Sorted[int](set.New(3, 1, 2),
		func(a, b int) bool { return a < b })
	fmt.Println(sorted.ToSlice())
	// Output: [1 2 3]
}

func ExampleChunk() {
	chunks, _ := iterate.Chunk[int](interval.FromTo(1, 7), 3)
	for _, chunk := range chunks {
		fmt.Println(chunk)
	}
	// Output:
	// [1 2 3]
	// [4 5 6]
	// [7]
}

func ExampleMakeString() {
	s, _ := iterate.MakeString[int](interval.FromTo(1, 5), " -> ")
	fmt.Println(s)
	// Output: 1 -> 2 -> 3 -> 4 -> 5
}
