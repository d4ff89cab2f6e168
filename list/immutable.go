package list

import (
	"fmt"
	"iter"

	"github.com/hasbyte1/go-iterate/container"
	"github.com/hasbyte1/go-iterate/sliceiter"
)

// ImmutableList is a frozen sequence of T. It carries no mutator methods
// at all — structural mutation is rejected at compile time — and it is
// deliberately not array-backed for dispatch purposes, so its backing
// slice never escapes. Non-mutating operations accept it like any other
// indexed source; mutating operations report it as unsupported.
type ImmutableList[T any] struct {
	items []T
}

// ImmutableFrom creates an ImmutableList holding a copy of items.
func ImmutableFrom[T any](items []T) *ImmutableList[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &ImmutableList[T]{items: dst}
}

// ImmutableOf creates an ImmutableList from a variadic list of items.
func ImmutableOf[T any](items ...T) *ImmutableList[T] {
	return ImmutableFrom(items)
}

// Len returns the number of elements.
func (l *ImmutableList[T]) Len() int { return len(l.items) }

// IsEmpty reports whether the list contains no elements.
func (l *ImmutableList[T]) IsEmpty() bool { return len(l.items) == 0 }

// Get returns the element at index together with a presence flag.
func (l *ImmutableList[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, false
	}
	return l.items[index], true
}

// At returns the element at index i.
// It panics when i is out of range, like slice indexing.
func (l *ImmutableList[T]) At(i int) T { return l.items[i] }

// Elements returns a forward cursor over the elements in list order.
func (l *ImmutableList[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range l.items {
			if !yield(item) {
				return
			}
		}
	}
}

// ToSlice returns a copy of the elements.
func (l *ImmutableList[T]) ToSlice() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// ToList returns a mutable copy.
func (l *ImmutableList[T]) ToList() *List[T] { return From(l.items) }

// ToImmutable returns the receiver itself: the list is already
// immutable, so the conversion is an identity, not a copy.
func (l *ImmutableList[T]) ToImmutable() *ImmutableList[T] { return l }

// String returns a human-readable representation of the elements.
func (l *ImmutableList[T]) String() string { return fmt.Sprintf("%v", l.items) }

// ─────────────────────────────────────────────────────────────────────────────
// Rich protocol
// ─────────────────────────────────────────────────────────────────────────────

// The rich protocol is read-only, so the frozen list carries it in full,
// executed by the array engine over the private backing slice.

func (l *ImmutableList[T]) SelectInto(pred func(T) bool, into container.Target[T]) {
	sliceiter.SelectInto(l.items, pred, into)
}

func (l *ImmutableList[T]) RejectInto(pred func(T) bool, into container.Target[T]) {
	sliceiter.RejectInto(l.items, pred, into)
}

func (l *ImmutableList[T]) PartitionInto(pred func(T) bool, selected, rejected container.Target[T]) {
	sliceiter.PartitionInto(l.items, pred, selected, rejected)
}

func (l *ImmutableList[T]) Count(pred func(T) bool) int { return sliceiter.Count(l.items, pred) }

func (l *ImmutableList[T]) AnySatisfy(pred func(T) bool) bool {
	return sliceiter.AnySatisfy(l.items, pred)
}

func (l *ImmutableList[T]) AllSatisfy(pred func(T) bool) bool {
	return sliceiter.AllSatisfy(l.items, pred)
}

func (l *ImmutableList[T]) NoneSatisfy(pred func(T) bool) bool {
	return sliceiter.NoneSatisfy(l.items, pred)
}

func (l *ImmutableList[T]) Detect(pred func(T) bool) (T, bool) {
	return sliceiter.Detect(l.items, pred)
}

func (l *ImmutableList[T]) First() (T, bool) { return sliceiter.First(l.items) }

func (l *ImmutableList[T]) Last() (T, bool) { return sliceiter.Last(l.items) }

func (l *ImmutableList[T]) Min(less func(a, b T) bool) (T, bool) {
	return sliceiter.Min(l.items, less)
}

func (l *ImmutableList[T]) Max(less func(a, b T) bool) (T, bool) {
	return sliceiter.Max(l.items, less)
}
