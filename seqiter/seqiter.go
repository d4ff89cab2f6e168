// Package seqiter is the sequential engine and universal correctness
// baseline: every iteration operation implemented over a bare
// container.Enumerable via its forward cursor. Any source that can be
// enumerated at all can be executed here; the specialized engines exist
// only to do the same thing faster.
//
// Contracts are identical to packages sliceiter and indexiter; only the
// loop shape differs.
package seqiter

import (
	"iter"

	"github.com/hasbyte1/go-iterate/container"
)

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// SelectInto appends the elements satisfying pred to into, in order.
func SelectInto[T any, R container.Target[T]](src container.Enumerable[T], pred func(T) bool, into R) R {
	for item := range src.Elements() {
		if pred(item) {
			into.Append(item)
		}
	}
	return into
}

// RejectInto appends the elements not satisfying pred to into, in order.
func RejectInto[T any, R container.Target[T]](src container.Enumerable[T], pred func(T) bool, into R) R {
	for item := range src.Elements() {
		if !pred(item) {
			into.Append(item)
		}
	}
	return into
}

// PartitionInto routes every element to selected or rejected in one pass,
// evaluating pred exactly once per element.
func PartitionInto[T any](src container.Enumerable[T], pred func(T) bool, selected, rejected container.Target[T]) {
	for item := range src.Elements() {
		if pred(item) {
			selected.Append(item)
		} else {
			rejected.Append(item)
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// CollectInto appends fn(item) for every element to into, in order.
func CollectInto[T, U any, R container.Target[U]](src container.Enumerable[T], fn func(T) U, into R) R {
	for item := range src.Elements() {
		into.Append(fn(item))
	}
	return into
}

// FlatCollectInto appends every element of fn(item), for every item,
// preserving outer-then-inner order.
func FlatCollectInto[T, U any, R container.Target[U]](src container.Enumerable[T], fn func(T) []U, into R) R {
	for item := range src.Elements() {
		for _, inner := range fn(item) {
			into.Append(inner)
		}
	}
	return into
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicates & search
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of elements satisfying pred.
func Count[T any](src container.Enumerable[T], pred func(T) bool) int {
	n := 0
	for item := range src.Elements() {
		if pred(item) {
			n++
		}
	}
	return n
}

// AnySatisfy reports whether at least one element satisfies pred,
// stopping traversal at the first match.
func AnySatisfy[T any](src container.Enumerable[T], pred func(T) bool) bool {
	for item := range src.Elements() {
		if pred(item) {
			return true
		}
	}
	return false
}

// AllSatisfy reports whether every element satisfies pred, stopping
// traversal at the first counterexample. True for an empty source.
func AllSatisfy[T any](src container.Enumerable[T], pred func(T) bool) bool {
	for item := range src.Elements() {
		if !pred(item) {
			return false
		}
	}
	return true
}

// NoneSatisfy reports whether no element satisfies pred, stopping
// traversal at the first match. True for an empty source.
func NoneSatisfy[T any](src container.Enumerable[T], pred func(T) bool) bool {
	return !AnySatisfy(src, pred)
}

// Detect returns the first element satisfying pred, stopping traversal
// there. Returns the zero value and false when no element matches.
func Detect[T any](src container.Enumerable[T], pred func(T) bool) (T, bool) {
	for item := range src.Elements() {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// DetectIndex returns the position of the first element satisfying pred,
// or -1 when no element matches.
func DetectIndex[T any](src container.Enumerable[T], pred func(T) bool) int {
	i := 0
	for item := range src.Elements() {
		if pred(item) {
			return i
		}
		i++
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding & extremes
// ─────────────────────────────────────────────────────────────────────────────

// Reduce left-folds the elements into seed, applying fn strictly in
// traversal order.
func Reduce[T, U any](src container.Enumerable[T], seed U, fn func(acc U, item T) U) U {
	acc := seed
	for item := range src.Elements() {
		acc = fn(acc, item)
	}
	return acc
}

// Min returns the least element under less; ties keep the first seen.
// Returns the zero value and false for an empty source.
func Min[T any](src container.Enumerable[T], less func(a, b T) bool) (T, bool) {
	var best T
	found := false
	for item := range src.Elements() {
		if !found || less(item, best) {
			best = item
			found = true
		}
	}
	return best, found
}

// Max returns the greatest element under less; ties keep the first seen.
// Returns the zero value and false for an empty source.
func Max[T any](src container.Enumerable[T], less func(a, b T) bool) (T, bool) {
	var best T
	found := false
	for item := range src.Elements() {
		if !found || less(best, item) {
			best = item
			found = true
		}
	}
	return best, found
}

// ─────────────────────────────────────────────────────────────────────────────
// Pairing
// ─────────────────────────────────────────────────────────────────────────────

// ZipInto pairs elements positionally with other, stopping at the
// shorter side. Trailing unmatched elements are dropped.
func ZipInto[A, B any, R container.Target[container.Pair[A, B]]](src container.Enumerable[A], other iter.Seq[B], into R) R {
	next, stop := iter.Pull(other)
	defer stop()
	for a := range src.Elements() {
		b, ok := next()
		if !ok {
			break
		}
		into.Append(container.PairOf(a, b))
	}
	return into
}

// ZipWithIndexInto pairs every element with its 0-based position.
func ZipWithIndexInto[T any, R container.Target[container.Pair[T, int]]](src container.Enumerable[T], into R) R {
	i := 0
	for item := range src.Elements() {
		into.Append(container.PairOf(item, i))
		i++
	}
	return into
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & traversal
// ─────────────────────────────────────────────────────────────────────────────

// TakeInto appends at most n leading elements to into, stopping
// traversal as soon as n elements have been taken.
func TakeInto[T any, R container.Target[T]](src container.Enumerable[T], n int, into R) R {
	if n <= 0 {
		return into
	}
	taken := 0
	for item := range src.Elements() {
		into.Append(item)
		taken++
		if taken == n {
			break
		}
	}
	return into
}

// DropInto appends the elements after the first n to into.
func DropInto[T any, R container.Target[T]](src container.Enumerable[T], n int, into R) R {
	i := 0
	for item := range src.Elements() {
		if i >= n {
			into.Append(item)
		}
		i++
	}
	return into
}

// ForEach calls fn for every element, in order.
func ForEach[T any](src container.Enumerable[T], fn func(T)) {
	for item := range src.Elements() {
		fn(item)
	}
}

// ForEachWithIndex calls fn(item, index) for every element, in order.
func ForEachWithIndex[T any](src container.Enumerable[T], fn func(item T, index int)) {
	i := 0
	for item := range src.Elements() {
		fn(item, i)
		i++
	}
}

// First returns the first element, stopping traversal immediately.
// Returns the zero value and false when the source is empty.
func First[T any](src container.Enumerable[T]) (T, bool) {
	for item := range src.Elements() {
		return item, true
	}
	var zero T
	return zero, false
}

// Last traverses the whole source and returns the final element.
// Returns the zero value and false when the source is empty.
func Last[T any](src container.Enumerable[T]) (T, bool) {
	var last T
	found := false
	for item := range src.Elements() {
		last = item
		found = true
	}
	return last, found
}

// IsEmpty reports whether the source has no elements, stopping traversal
// after at most one element.
func IsEmpty[T any](src container.Enumerable[T]) bool {
	_, ok := First(src)
	return !ok
}

// ToSlice materializes the elements into a new slice, sized by the
// source's hint when it has one.
func ToSlice[T any](src container.Enumerable[T]) []T {
	capacity := 0
	if s, ok := src.(container.Sized); ok {
		capacity = s.Len()
	}
	out := make([]T, 0, capacity)
	for item := range src.Elements() {
		out = append(out, item)
	}
	return out
}
