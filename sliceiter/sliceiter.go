// Package sliceiter is the array engine: every iteration operation
// implemented as a free function over a raw []T, using plain index loops.
// It is the execution strategy behind array-backed sources and the native
// strategy of the module's own list types.
//
// Contracts are identical to packages indexiter and seqiter; only the
// loop shape differs.
package sliceiter

import (
	"iter"

	"github.com/hasbyte1/go-iterate/container"
)

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// SelectInto appends the elements satisfying pred to into, in order.
func SelectInto[T any, R container.Target[T]](items []T, pred func(T) bool, into R) R {
	for _, item := range items {
		if pred(item) {
			into.Append(item)
		}
	}
	return into
}

// RejectInto appends the elements not satisfying pred to into, in order.
func RejectInto[T any, R container.Target[T]](items []T, pred func(T) bool, into R) R {
	for _, item := range items {
		if !pred(item) {
			into.Append(item)
		}
	}
	return into
}

// PartitionInto routes every element to selected or rejected in one pass,
// evaluating pred exactly once per element.
func PartitionInto[T any](items []T, pred func(T) bool, selected, rejected container.Target[T]) {
	for _, item := range items {
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
func CollectInto[T, U any, R container.Target[U]](items []T, fn func(T) U, into R) R {
	for _, item := range items {
		into.Append(fn(item))
	}
	return into
}

// FlatCollectInto appends every element of fn(item), for every item,
// preserving outer-then-inner order.
func FlatCollectInto[T, U any, R container.Target[U]](items []T, fn func(T) []U, into R) R {
	for _, item := range items {
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
func Count[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// AnySatisfy reports whether at least one element satisfies pred,
// stopping at the first match.
func AnySatisfy[T any](items []T, pred func(T) bool) bool {
	for _, item := range items {
		if pred(item) {
			return true
		}
	}
	return false
}

// AllSatisfy reports whether every element satisfies pred, stopping at
// the first counterexample. True for an empty slice.
func AllSatisfy[T any](items []T, pred func(T) bool) bool {
	for _, item := range items {
		if !pred(item) {
			return false
		}
	}
	return true
}

// NoneSatisfy reports whether no element satisfies pred, stopping at the
// first match. True for an empty slice.
func NoneSatisfy[T any](items []T, pred func(T) bool) bool {
	return !AnySatisfy(items, pred)
}

// Detect returns the first element satisfying pred, stopping there.
// Returns the zero value and false when no element matches.
func Detect[T any](items []T, pred func(T) bool) (T, bool) {
	for _, item := range items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// DetectIndex returns the position of the first element satisfying pred,
// or -1 when no element matches.
func DetectIndex[T any](items []T, pred func(T) bool) int {
	for i, item := range items {
		if pred(item) {
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
func Reduce[T, U any](items []T, seed U, fn func(acc U, item T) U) U {
	acc := seed
	for _, item := range items {
		acc = fn(acc, item)
	}
	return acc
}

// Min returns the least element under less; ties keep the first seen.
// Returns the zero value and false for an empty slice.
func Min[T any](items []T, less func(a, b T) bool) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	best := items[0]
	for _, item := range items[1:] {
		if less(item, best) {
			best = item
		}
	}
	return best, true
}

// Max returns the greatest element under less; ties keep the first seen.
// Returns the zero value and false for an empty slice.
func Max[T any](items []T, less func(a, b T) bool) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	best := items[0]
	for _, item := range items[1:] {
		if less(best, item) {
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
func ZipInto[A, B any, R container.Target[container.Pair[A, B]]](items []A, other iter.Seq[B], into R) R {
	next, stop := iter.Pull(other)
	defer stop()
	for _, a := range items {
		b, ok := next()
		if !ok {
			break
		}
		into.Append(container.PairOf(a, b))
	}
	return into
}

// ZipWithIndexInto pairs every element with its 0-based position.
func ZipWithIndexInto[T any, R container.Target[container.Pair[T, int]]](items []T, into R) R {
	for i, item := range items {
		into.Append(container.PairOf(item, i))
	}
	return into
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & traversal
// ─────────────────────────────────────────────────────────────────────────────

// TakeInto appends at most n leading elements to into.
func TakeInto[T any, R container.Target[T]](items []T, n int, into R) R {
	if n > len(items) {
		n = len(items)
	}
	for _, item := range items[:n] {
		into.Append(item)
	}
	return into
}

// DropInto appends the elements after the first n to into.
func DropInto[T any, R container.Target[T]](items []T, n int, into R) R {
	if n > len(items) {
		n = len(items)
	}
	for _, item := range items[n:] {
		into.Append(item)
	}
	return into
}

// ForEach calls fn for every element, in order.
func ForEach[T any](items []T, fn func(T)) {
	for _, item := range items {
		fn(item)
	}
}

// ForEachWithIndex calls fn(item, index) for every element, in order.
func ForEachWithIndex[T any](items []T, fn func(item T, index int)) {
	for i, item := range items {
		fn(item, i)
	}
}

// First returns the first element, or the zero value and false when empty.
func First[T any](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[0], true
}

// Last returns the last element, or the zero value and false when empty.
func Last[T any](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[len(items)-1], true
}

// IsEmpty reports whether the slice has no elements.
func IsEmpty[T any](items []T) bool { return len(items) == 0 }

// ToSlice returns a copy of the elements.
func ToSlice[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
