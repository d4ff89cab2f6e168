package container

import (
	"iter"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Source adapters
// ─────────────────────────────────────────────────────────────────────────────

// SliceSource exposes a plain Go slice as an array-backed, sortable
// source. It is a view over the caller's slice, not a copy: element
// mutations made by the caller are visible through the source, and
// sorting through the source reorders the caller's slice.
//
// The view cannot change the slice's length, so it is not Removable.
func SliceSource[T any](items []T) Enumerable[T] {
	return sliceSource[T]{items: items}
}

type sliceSource[T any] struct {
	items []T
}

func (s sliceSource[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

func (s sliceSource[T]) Len() int     { return len(s.items) }
func (s sliceSource[T]) At(i int) T   { return s.items[i] }
func (s sliceSource[T]) Backing() []T { return s.items }

func (s sliceSource[T]) SortInPlace(less func(a, b T) bool) {
	sort.SliceStable(s.items, func(i, j int) bool { return less(s.items[i], s.items[j]) })
}

// IndexedSource exposes n virtual elements addressed by at as a
// random-access source. Nothing is materialized; at is called on demand
// and must be consistent for the duration of one operation call.
func IndexedSource[T any](n int, at func(i int) T) Enumerable[T] {
	return indexedSource[T]{n: n, at: at}
}

type indexedSource[T any] struct {
	n  int
	at func(i int) T
}

func (s indexedSource[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.n; i++ {
			if !yield(s.at(i)) {
				return
			}
		}
	}
}

func (s indexedSource[T]) Len() int   { return s.n }
func (s indexedSource[T]) At(i int) T { return s.at(i) }

// SeqSource exposes a bare iter.Seq as a sequential-only source — no
// size hint, no random access. The sequence must be re-iterable: every
// operation call traverses it from the start.
func SeqSource[T any](seq iter.Seq[T]) Enumerable[T] {
	return seqSource[T]{seq: seq}
}

type seqSource[T any] struct {
	seq iter.Seq[T]
}

func (s seqSource[T]) Elements() iter.Seq[T] { return s.seq }
