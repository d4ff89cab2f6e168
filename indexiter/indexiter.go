// Package indexiter is the random-access engine: every iteration
// operation implemented over a container.Indexed source, using At(i)
// loops instead of a cursor. Used for sources that offer O(1) positional
// access but are not backed by a plain slice.
//
// Contracts are identical to packages sliceiter and seqiter; only the
// loop shape differs.
package indexiter

import (
	"iter"

	"github.com/hasbyte1/go-iterate/container"
)

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// SelectInto appends the elements satisfying pred to into, in order.
func SelectInto[T any, R container.Target[T]](src container.Indexed[T], pred func(T) bool, into R) R {
	for i, n := 0, src.Len(); i < n; i++ {
		if item := src.At(i); pred(item) {
			into.Append(item)
		}
	}
	return into
}

// RejectInto appends the elements not satisfying pred to into, in order.
func RejectInto[T any, R container.Target[T]](src container.Indexed[T], pred func(T) bool, into R) R {
	for i, n := 0, src.Len(); i < n; i++ {
		if item := src.At(i); !pred(item) {
			into.Append(item)
		}
	}
	return into
}

// PartitionInto routes every element to selected or rejected in one pass,
// evaluating pred exactly once per element.
func PartitionInto[T any](src container.Indexed[T], pred func(T) bool, selected, rejected container.Target[T]) {
	for i, n := 0, src.Len(); i < n; i++ {
		if item := src.At(i); pred(item) {
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
func CollectInto[T, U any, R container.Target[U]](src container.Indexed[T], fn func(T) U, into R) R {
	for i, n := 0, src.Len(); i < n; i++ {
		into.Append(fn(src.At(i)))
	}
	return into
}

// FlatCollectInto appends every element of fn(item), for every item,
// preserving outer-then-inner order.
func FlatCollectInto[T, U any, R container.Target[U]](src container.Indexed[T], fn func(T) []U, into R) R {
	for i, n := 0, src.Len(); i < n; i++ {
		for _, inner := range fn(src.At(i)) {
			into.Append(inner)
		}
	}
	return into
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicates & search
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of elements satisfying pred.
func Count[T any](src container.Indexed[T], pred func(T) bool) int {
	c := 0
	for i, n := 0, src.Len(); i < n; i++ {
		if pred(src.At(i)) {
			c++
		}
	}
	return c
}

// AnySatisfy reports whether at least one element satisfies pred,
// stopping at the first match.
func AnySatisfy[T any](src container.Indexed[T], pred func(T) bool) bool {
	for i, n := 0, src.Len(); i < n; i++ {
		if pred(src.At(i)) {
			return true
		}
	}
	return false
}

// AllSatisfy reports whether every element satisfies pred, stopping at
// the first counterexample. True for an empty source.
func AllSatisfy[T any](src container.Indexed[T], pred func(T) bool) bool {
	for i, n := 0, src.Len(); i < n; i++ {
		if !pred(src.At(i)) {
			return false
		}
	}
	return true
}

// NoneSatisfy reports whether no element satisfies pred, stopping at the
// first match. True for an empty source.
func NoneSatisfy[T any](src container.Indexed[T], pred func(T) bool) bool {
	return !AnySatisfy(src, pred)
}

// Detect returns the first element satisfying pred, stopping there.
// Returns the zero value and false when no element matches.
func Detect[T any](src container.Indexed[T], pred func(T) bool) (T, bool) {
	for i, n := 0, src.Len(); i < n; i++ {
		if item := src.At(i); pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// DetectIndex returns the position of the first element satisfying pred,
// or -1 when no element matches.
func DetectIndex[T any](src container.Indexed[T], pred func(T) bool) int {
	for i, n := 0, src.Len(); i < n; i++ {
		if pred(src.At(i)) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding & extremes
// ─────────────────────────────────────────────────────────────────────────────

// Reduce left-folds the elements into seed, applying fn strictly in
// traversal order.
func Reduce[T, U any](src container.Indexed[T], seed U, fn func(acc U, item T) U) U {
	acc := seed
	for i, n := 0, src.Len(); i < n; i++ {
		acc = fn(acc, src.At(i))
	}
	return acc
}

// Min returns the least element under less; ties keep the first seen.
// Returns the zero value and false for an empty source.
func Min[T any](src container.Indexed[T], less func(a, b T) bool) (T, bool) {
	n := src.Len()
	if n == 0 {
		var zero T
		return zero, false
	}
	best := src.At(0)
	for i := 1; i < n; i++ {
		if item := src.At(i); less(item, best) {
			best = item
		}
	}
	return best, true
}

// Max returns the greatest element under less; ties keep the first seen.
// Returns the zero value and false for an empty source.
func Max[T any](src container.Indexed[T], less func(a, b T) bool) (T, bool) {
	n := src.Len()
	if n == 0 {
		var zero T
		return zero, false
	}
	best := src.At(0)
	for i := 1; i < n; i++ {
		if item := src.At(i); less(best, item) {
			best = item
		}
	}
	return best, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Pairing
// ─────────────────────────────────────────────────────────────────────────────

// ZipInto pairs elements positionally with other, stopping at the
// shorter side. Trailing unmatched elements are dropped.
func ZipInto[A, B any, R container.Target[container.Pair[A, B]]](src container.Indexed[A], other iter.Seq[B], into R) R {
	next, stop := iter.Pull(other)
	defer stop()
	for i, n := 0, src.Len(); i < n; i++ {
		b, ok := next()
		if !ok {
			break
		}
		into.Append(container.PairOf(src.At(i), b))
	}
	return into
}

// ZipWithIndexInto pairs every element with its 0-based position.
func ZipWithIndexInto[T any, R container.Target[container.Pair[T, int]]](src container.Indexed[T], into R) R {
	for i, n := 0, src.Len(); i < n; i++ {
		into.Append(container.PairOf(src.At(i), i))
	}
	return into
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & traversal
// ─────────────────────────────────────────────────────────────────────────────

// TakeInto appends at most n leading elements to into.
func TakeInto[T any, R container.Target[T]](src container.Indexed[T], n int, into R) R {
	if total := src.Len(); n > total {
		n = total
	}
	for i := 0; i < n; i++ {
		into.Append(src.At(i))
	}
	return into
}

// DropInto appends the elements after the first n to into.
func DropInto[T any, R container.Target[T]](src container.Indexed[T], n int, into R) R {
	total := src.Len()
	if n > total {
		n = total
	}
	for i := n; i < total; i++ {
		into.Append(src.At(i))
	}
	return into
}

// ForEach calls fn for every element, in order.
func ForEach[T any](src container.Indexed[T], fn func(T)) {
	for i, n := 0, src.Len(); i < n; i++ {
		fn(src.At(i))
	}
}

// ForEachWithIndex calls fn(item, index) for every element, in order.
func ForEachWithIndex[T any](src container.Indexed[T], fn func(item T, index int)) {
	for i, n := 0, src.Len(); i < n; i++ {
		fn(src.At(i), i)
	}
}

// First returns the first element, or the zero value and false when empty.
func First[T any](src container.Indexed[T]) (T, bool) {
	if src.Len() == 0 {
		var zero T
		return zero, false
	}
	return src.At(0), true
}

// Last returns the last element in O(1), or the zero value and false
// when empty.
func Last[T any](src container.Indexed[T]) (T, bool) {
	n := src.Len()
	if n == 0 {
		var zero T
		return zero, false
	}
	return src.At(n - 1), true
}

// IsEmpty reports whether the source has no elements.
func IsEmpty[T any](src container.Indexed[T]) bool { return src.Len() == 0 }

// ToSlice materializes the elements into a new slice.
func ToSlice[T any](src container.Indexed[T]) []T {
	n := src.Len()
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = src.At(i)
	}
	return out
}
