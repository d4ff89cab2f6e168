package set

import (
	"fmt"
	"iter"
)

// ImmutableSet is a frozen hash set of T. It carries no mutator methods;
// non-mutating operations accept it as a sequential source with an O(1)
// membership hook.
type ImmutableSet[T comparable] struct {
	items map[T]struct{}
}

// ImmutableOf creates an ImmutableSet from a variadic list of items;
// duplicates collapse.
func ImmutableOf[T comparable](items ...T) *ImmutableSet[T] {
	dst := make(map[T]struct{}, len(items))
	for _, item := range items {
		dst[item] = struct{}{}
	}
	return &ImmutableSet[T]{items: dst}
}

// Len returns the number of distinct elements.
func (s *ImmutableSet[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the set contains no elements.
func (s *ImmutableSet[T]) IsEmpty() bool { return len(s.items) == 0 }

// Contains reports whether item is present, in O(1).
func (s *ImmutableSet[T]) Contains(item T) bool {
	_, ok := s.items[item]
	return ok
}

// Elements returns a forward cursor over the elements.
// The order is unspecified and may differ between traversals.
func (s *ImmutableSet[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// ToSlice returns the elements in a new slice, in unspecified order.
func (s *ImmutableSet[T]) ToSlice() []T {
	out := make([]T, 0, len(s.items))
	for item := range s.items {
		out = append(out, item)
	}
	return out
}

// ToSet returns a mutable copy.
func (s *ImmutableSet[T]) ToSet() *Set[T] {
	items := make(map[T]struct{}, len(s.items))
	for item := range s.items {
		items[item] = struct{}{}
	}
	return &Set[T]{items: items}
}

// ToImmutable returns the receiver itself: the set is already immutable,
// so the conversion is an identity, not a copy.
func (s *ImmutableSet[T]) ToImmutable() *ImmutableSet[T] { return s }

// String returns a human-readable representation of the elements.
func (s *ImmutableSet[T]) String() string { return fmt.Sprintf("%v", s.ToSlice()) }
