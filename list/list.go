// Package list provides the module's primary array-backed container,
// List, and its frozen counterpart, ImmutableList.
//
// List implements every capability in package container — it is
// enumerable, sized, indexed, array-backed, a valid target, a species,
// sortable, removable, and carries the full rich protocol, which it
// executes through the array engine (package sliceiter). ImmutableList
// is a distinct type with no mutator methods at all; conversions between
// the two copy, except that ToImmutable on an ImmutableList returns the
// receiver itself.
package list

import (
	"fmt"
	"iter"
	"sort"

	"github.com/hasbyte1/go-iterate/container"
	"github.com/hasbyte1/go-iterate/sliceiter"
)

// List is a mutable, growable sequence of T backed by a slice.
// The zero value is not usable; construct with [New], [From],
// [WithCapacity], or [Adopt].
type List[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a List from a variadic list of items (copied).
func New[T any](items ...T) *List[T] {
	return From(items)
}

// From creates a List holding a copy of items.
func From[T any](items []T) *List[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &List[T]{items: dst}
}

// WithCapacity creates an empty List pre-sized for capacity elements.
// A negative capacity is treated as 0.
func WithCapacity[T any](capacity int) *List[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &List[T]{items: make([]T, 0, capacity)}
}

// Adopt creates a List that takes ownership of items without copying.
// The caller must not use the slice afterwards.
func Adopt[T any](items []T) *List[T] {
	return &List[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements.
func (l *List[T]) Len() int { return len(l.items) }

// IsEmpty reports whether the list contains no elements.
func (l *List[T]) IsEmpty() bool { return len(l.items) == 0 }

// Get returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (l *List[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, false
	}
	return l.items[index], true
}

// At returns the element at index i.
// It panics when i is out of range, like slice indexing.
func (l *List[T]) At(i int) T { return l.items[i] }

// Set replaces the element at index and reports whether index was in
// range.
func (l *List[T]) Set(index int, item T) bool {
	if index < 0 || index >= len(l.items) {
		return false
	}
	l.items[index] = item
	return true
}

// Elements returns a forward cursor over the elements in list order.
func (l *List[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range l.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Backing returns the live backing slice. Callers must treat it as
// read-only; it is exposed for the array engine.
func (l *List[T]) Backing() []T { return l.items }

// ToSlice returns a copy of the elements.
func (l *List[T]) ToSlice() []T { return sliceiter.ToSlice(l.items) }

// String returns a human-readable representation of the elements.
// It implements [fmt.Stringer].
func (l *List[T]) String() string { return fmt.Sprintf("%v", l.items) }

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Append adds one element at the end.
func (l *List[T]) Append(item T) { l.items = append(l.items, item) }

// AppendAll adds every given element at the end, in order.
func (l *List[T]) AppendAll(items ...T) { l.items = append(l.items, items...) }

// SortInPlace stably reorders the elements so that less defines an
// ascending order. Equal elements keep their relative order.
func (l *List[T]) SortInPlace(less func(a, b T) bool) {
	sort.SliceStable(l.items, func(i, j int) bool { return less(l.items[i], l.items[j]) })
}

// RemoveIf removes every element satisfying pred, preserving the order
// of the remainder, and returns the number removed.
func (l *List[T]) RemoveIf(pred func(T) bool) int {
	kept := l.items[:0]
	for _, item := range l.items {
		if !pred(item) {
			kept = append(kept, item)
		}
	}
	removed := len(l.items) - len(kept)
	var zero T
	for i := len(kept); i < len(l.items); i++ {
		l.items[i] = zero // release references in the truncated tail
	}
	l.items = kept
	return removed
}

// ─────────────────────────────────────────────────────────────────────────────
// Rich protocol (native strategy: the array engine)
// ─────────────────────────────────────────────────────────────────────────────

// SelectInto appends the elements satisfying pred to into, in order.
func (l *List[T]) SelectInto(pred func(T) bool, into container.Target[T]) {
	sliceiter.SelectInto(l.items, pred, into)
}

// RejectInto appends the elements not satisfying pred to into, in order.
func (l *List[T]) RejectInto(pred func(T) bool, into container.Target[T]) {
	sliceiter.RejectInto(l.items, pred, into)
}

// PartitionInto routes every element to selected or rejected in one
// pass, evaluating pred exactly once per element.
func (l *List[T]) PartitionInto(pred func(T) bool, selected, rejected container.Target[T]) {
	sliceiter.PartitionInto(l.items, pred, selected, rejected)
}

// Count returns the number of elements satisfying pred.
func (l *List[T]) Count(pred func(T) bool) int { return sliceiter.Count(l.items, pred) }

// AnySatisfy reports whether at least one element satisfies pred.
func (l *List[T]) AnySatisfy(pred func(T) bool) bool { return sliceiter.AnySatisfy(l.items, pred) }

// AllSatisfy reports whether every element satisfies pred.
func (l *List[T]) AllSatisfy(pred func(T) bool) bool { return sliceiter.AllSatisfy(l.items, pred) }

// NoneSatisfy reports whether no element satisfies pred.
func (l *List[T]) NoneSatisfy(pred func(T) bool) bool { return sliceiter.NoneSatisfy(l.items, pred) }

// Detect returns the first element satisfying pred, or the zero value
// and false when no element matches.
func (l *List[T]) Detect(pred func(T) bool) (T, bool) { return sliceiter.Detect(l.items, pred) }

// First returns the first element, or the zero value and false when
// the list is empty.
func (l *List[T]) First() (T, bool) { return sliceiter.First(l.items) }

// Last returns the last element, or the zero value and false when the
// list is empty.
func (l *List[T]) Last() (T, bool) { return sliceiter.Last(l.items) }

// Min returns the least element under less; ties keep the first seen.
func (l *List[T]) Min(less func(a, b T) bool) (T, bool) { return sliceiter.Min(l.items, less) }

// Max returns the greatest element under less; ties keep the first seen.
func (l *List[T]) Max(less func(a, b T) bool) (T, bool) { return sliceiter.Max(l.items, less) }

// ─────────────────────────────────────────────────────────────────────────────
// Species & conversions
// ─────────────────────────────────────────────────────────────────────────────

// NewEmpty returns a fresh empty List pre-sized for capacity elements,
// so that list-producing operations on a List yield a List.
func (l *List[T]) NewEmpty(capacity int) container.Target[T] {
	return WithCapacity[T](capacity)
}

// Filter returns a new List with only the elements for which pred holds.
func (l *List[T]) Filter(pred func(T) bool) *List[T] {
	return sliceiter.SelectInto(l.items, pred, WithCapacity[T](len(l.items)))
}

// Reject returns a new List without the elements for which pred holds.
// It is the complement of [List.Filter].
func (l *List[T]) Reject(pred func(T) bool) *List[T] {
	return sliceiter.RejectInto(l.items, pred, WithCapacity[T](len(l.items)))
}

// ToImmutable returns an immutable copy of the list. Later mutations of
// the receiver do not affect the copy.
func (l *List[T]) ToImmutable() *ImmutableList[T] {
	return &ImmutableList[T]{items: sliceiter.ToSlice(l.items)}
}
