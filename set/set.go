// Package set provides a hash set over comparable element types, with a
// mutable Set and a frozen ImmutableSet.
//
// A Set answers membership in O(1) and implements the full rich
// protocol, so the dispatcher lets it execute protocol operations
// itself. Traversal order is unspecified: a Set is an unordered source,
// and order-preserving contracts apply to whatever order one traversal
// happens to produce.
package set

import (
	"fmt"
	"iter"

	"github.com/hasbyte1/go-iterate/container"
)

// Set is a mutable hash set of T. The zero value is not usable;
// construct with [New], [From], or [WithCapacity].
type Set[T comparable] struct {
	items map[T]struct{}
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Set from a variadic list of items; duplicates collapse.
func New[T comparable](items ...T) *Set[T] {
	return From(items)
}

// From creates a Set holding the distinct elements of items.
func From[T comparable](items []T) *Set[T] {
	s := WithCapacity[T](len(items))
	for _, item := range items {
		s.items[item] = struct{}{}
	}
	return s
}

// WithCapacity creates an empty Set pre-sized for capacity elements.
// A negative capacity is treated as 0.
func WithCapacity[T comparable](capacity int) *Set[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Set[T]{items: make(map[T]struct{}, capacity)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors & mutation
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of distinct elements.
func (s *Set[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the set contains no elements.
func (s *Set[T]) IsEmpty() bool { return len(s.items) == 0 }

// Contains reports whether item is present, in O(1).
func (s *Set[T]) Contains(item T) bool {
	_, ok := s.items[item]
	return ok
}

// Add inserts item and reports whether the set grew.
func (s *Set[T]) Add(item T) bool {
	if _, ok := s.items[item]; ok {
		return false
	}
	s.items[item] = struct{}{}
	return true
}

// Append inserts item, absorbing duplicates. It makes Set a valid
// operation target: filtering a set yields a set.
func (s *Set[T]) Append(item T) { s.items[item] = struct{}{} }

// Remove deletes item and reports whether it was present.
func (s *Set[T]) Remove(item T) bool {
	if _, ok := s.items[item]; !ok {
		return false
	}
	delete(s.items, item)
	return true
}

// RemoveIf removes every element satisfying pred and returns the number
// removed.
func (s *Set[T]) RemoveIf(pred func(T) bool) int {
	removed := 0
	for item := range s.items {
		if pred(item) {
			delete(s.items, item)
			removed++
		}
	}
	return removed
}

// Elements returns a forward cursor over the elements.
// The order is unspecified and may differ between traversals.
func (s *Set[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// ToSlice returns the elements in a new slice, in unspecified order.
func (s *Set[T]) ToSlice() []T {
	out := make([]T, 0, len(s.items))
	for item := range s.items {
		out = append(out, item)
	}
	return out
}

// String returns a human-readable representation of the elements.
func (s *Set[T]) String() string { return fmt.Sprintf("%v", s.ToSlice()) }

// ─────────────────────────────────────────────────────────────────────────────
// Rich protocol
// ─────────────────────────────────────────────────────────────────────────────

// SelectInto appends the elements satisfying pred to into.
func (s *Set[T]) SelectInto(pred func(T) bool, into container.Target[T]) {
	for item := range s.items {
		if pred(item) {
			into.Append(item)
		}
	}
}

// RejectInto appends the elements not satisfying pred to into.
func (s *Set[T]) RejectInto(pred func(T) bool, into container.Target[T]) {
	for item := range s.items {
		if !pred(item) {
			into.Append(item)
		}
	}
}

// PartitionInto routes every element to selected or rejected,
// evaluating pred exactly once per element.
func (s *Set[T]) PartitionInto(pred func(T) bool, selected, rejected container.Target[T]) {
	for item := range s.items {
		if pred(item) {
			selected.Append(item)
		} else {
			rejected.Append(item)
		}
	}
}

// Count returns the number of elements satisfying pred.
func (s *Set[T]) Count(pred func(T) bool) int {
	n := 0
	for item := range s.items {
		if pred(item) {
			n++
		}
	}
	return n
}

// AnySatisfy reports whether at least one element satisfies pred.
func (s *Set[T]) AnySatisfy(pred func(T) bool) bool {
	for item := range s.items {
		if pred(item) {
			return true
		}
	}
	return false
}

// AllSatisfy reports whether every element satisfies pred.
// True for an empty set.
func (s *Set[T]) AllSatisfy(pred func(T) bool) bool {
	for item := range s.items {
		if !pred(item) {
			return false
		}
	}
	return true
}

// NoneSatisfy reports whether no element satisfies pred.
// True for an empty set.
func (s *Set[T]) NoneSatisfy(pred func(T) bool) bool { return !s.AnySatisfy(pred) }

// Detect returns some element satisfying pred ("first" in the current
// traversal order), or the zero value and false when none matches.
func (s *Set[T]) Detect(pred func(T) bool) (T, bool) {
	for item := range s.items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// First returns some element of the set (the set is unordered), or the
// zero value and false when empty.
func (s *Set[T]) First() (T, bool) {
	for item := range s.items {
		return item, true
	}
	var zero T
	return zero, false
}

// Last returns some element of the set (the set is unordered), or the
// zero value and false when empty.
func (s *Set[T]) Last() (T, bool) {
	var last T
	found := false
	for item := range s.items {
		last = item
		found = true
	}
	return last, found
}

// Min returns the least element under less.
// Returns the zero value and false when empty.
func (s *Set[T]) Min(less func(a, b T) bool) (T, bool) {
	var best T
	found := false
	for item := range s.items {
		if !found || less(item, best) {
			best = item
			found = true
		}
	}
	return best, found
}

// Max returns the greatest element under less.
// Returns the zero value and false when empty.
func (s *Set[T]) Max(less func(a, b T) bool) (T, bool) {
	var best T
	found := false
	for item := range s.items {
		if !found || less(best, item) {
			best = item
			found = true
		}
	}
	return best, found
}

// ─────────────────────────────────────────────────────────────────────────────
// Species & conversions
// ─────────────────────────────────────────────────────────────────────────────

// NewEmpty returns a fresh empty Set pre-sized for capacity elements,
// so that set-producing operations on a Set yield a Set.
func (s *Set[T]) NewEmpty(capacity int) container.Target[T] {
	return WithCapacity[T](capacity)
}

// ToImmutable returns an immutable copy of the set. Later mutations of
// the receiver do not affect the copy.
func (s *Set[T]) ToImmutable() *ImmutableSet[T] {
	items := make(map[T]struct{}, len(s.items))
	for item := range s.items {
		items[item] = struct{}{}
	}
	return &ImmutableSet[T]{items: items}
}
