package container

import "iter"

// ─────────────────────────────────────────────────────────────────────────────
// Source capabilities
// ─────────────────────────────────────────────────────────────────────────────

// Enumerable is the minimal capability every source must have: it can
// produce a forward cursor over its elements.
//
// The returned sequence must be re-iterable — each call to Elements (or
// each range over the same value) starts a fresh traversal from the first
// element. Single-shot sequences are not valid sources.
type Enumerable[T any] interface {
	// Elements returns a forward cursor over the elements in traversal
	// order. For ordered containers this is the container order; for
	// unordered containers the order is unspecified but fixed for the
	// duration of one traversal.
	Elements() iter.Seq[T]
}

// Sized is implemented by sources that know their element count without
// traversing. The count is used as a capacity hint when a result target
// is allocated, never as a substitute for traversal.
type Sized interface {
	// Len returns the number of elements.
	Len() int
}

// Indexed marks a source with O(1) positional access. The random-access
// engine iterates these with an index loop instead of a cursor.
type Indexed[T any] interface {
	Enumerable[T]
	Sized

	// At returns the element at position i (0-based).
	// It panics when i is out of range, like slice indexing.
	At(i int) T
}

// ArrayBacked marks the primary slice-backed representation. The array
// engine bypasses At entirely and loops over the backing slice.
//
// Backing returns the live slice, not a copy; callers outside the
// iteration engines must treat it as read-only.
type ArrayBacked[T any] interface {
	Indexed[T]

	// Backing returns the slice holding the elements.
	Backing() []T
}

// Rich is the full native functional-operation protocol. A source that
// implements it is asked to execute these operations itself — it may hold
// internal structure (sortedness, hash buckets, arithmetic form) that
// beats any external engine. Whatever strategy it uses internally, the
// observable result must match the generic engines exactly.
//
// Operations that introduce a second type parameter (Collect, GroupBy,
// ToMap, …) cannot appear on a Go interface and are always executed by an
// external engine, even for Rich sources.
type Rich[T any] interface {
	Enumerable[T]
	Sized

	// IsEmpty reports whether the source has no elements.
	IsEmpty() bool

	// SelectInto appends the elements satisfying pred to into,
	// preserving traversal order.
	SelectInto(pred func(T) bool, into Target[T])

	// RejectInto appends the elements not satisfying pred to into,
	// preserving traversal order.
	RejectInto(pred func(T) bool, into Target[T])

	// PartitionInto routes every element to selected or rejected,
	// evaluating pred exactly once per element.
	PartitionInto(pred func(T) bool, selected, rejected Target[T])

	// Count returns the number of elements satisfying pred.
	Count(pred func(T) bool) int

	// AnySatisfy reports whether at least one element satisfies pred,
	// stopping at the first match.
	AnySatisfy(pred func(T) bool) bool

	// AllSatisfy reports whether every element satisfies pred, stopping
	// at the first counterexample. True for an empty source.
	AllSatisfy(pred func(T) bool) bool

	// NoneSatisfy reports whether no element satisfies pred, stopping
	// at the first match. True for an empty source.
	NoneSatisfy(pred func(T) bool) bool

	// Detect returns the first element in traversal order satisfying
	// pred, stopping there. Returns the zero value and false when no
	// element matches.
	Detect(pred func(T) bool) (T, bool)

	// First returns the first element in traversal order.
	// Returns the zero value and false when the source is empty.
	First() (T, bool)

	// Last returns the last element in traversal order.
	// Returns the zero value and false when the source is empty.
	Last() (T, bool)

	// Min returns the least element under less. Ties keep the first
	// element seen. Returns the zero value and false when empty.
	Min(less func(a, b T) bool) (T, bool)

	// Max returns the greatest element under less. Ties keep the first
	// element seen. Returns the zero value and false when empty.
	Max(less func(a, b T) bool) (T, bool)
}

// ─────────────────────────────────────────────────────────────────────────────
// Target and mutation capabilities
// ─────────────────────────────────────────────────────────────────────────────

// Target is a mutable container that accumulates operation results.
// Engines only ever append; they never read back, reorder, or retain the
// target after the call returns.
type Target[T any] interface {
	Enumerable[T]
	Sized

	// Append adds one element. Containers with uniqueness semantics
	// (sets) may absorb duplicates instead of growing.
	Append(item T)
}

// Species is the result-builder hook: a source that implements it decides
// what an empty result container of its own family looks like, so that
// filtering a list yields a list and filtering a set yields a set.
type Species[T any] interface {
	// NewEmpty returns a fresh, empty Target of the source's family,
	// pre-sized for capacity elements (capacity may be 0).
	NewEmpty(capacity int) Target[T]
}

// Membership is the O(1) lookup hook. Sources without it are scanned.
type Membership[T any] interface {
	// Contains reports whether item is present.
	Contains(item T) bool
}

// Sortable marks a source whose element order can be mutated in place.
// Sources without it reject in-place sorting as unsupported.
type Sortable[T any] interface {
	// SortInPlace stably reorders the elements so that less defines an
	// ascending order. Equal elements keep their relative order.
	SortInPlace(less func(a, b T) bool)
}

// Removable marks a source that supports in-place removal of matching
// elements. Sources without it reject removal as unsupported.
type Removable[T any] interface {
	// RemoveIf removes every element satisfying pred, preserving the
	// order of the remainder, and returns the number removed.
	RemoveIf(pred func(T) bool) int
}
