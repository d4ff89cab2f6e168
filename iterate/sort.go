package iterate

import (
	"sort"

	"github.com/hasbyte1/go-iterate/container"
	"github.com/hasbyte1/go-iterate/list"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sorting & in-place removal (the two mutating operations)
// ─────────────────────────────────────────────────────────────────────────────

// SortInPlace stably reorders the source itself so that less defines an
// ascending order; equal elements keep their relative order. The source
// must carry the [container.Sortable] capability — an immutable or
// order-fixed source returns [ErrUnsupportedOperation] and is left
// unchanged.
func SortInPlace[T any](src container.Enumerable[T], less func(a, b T) bool) error {
	if src == nil {
		return ErrNilSource
	}
	sortable, ok := src.(container.Sortable[T])
	if !ok {
		return ErrUnsupportedOperation
	}
	sortable.SortInPlace(less)
	return nil
}

// Sorted returns a new list holding the source's elements stably sorted
// by less. The source is not touched, so any enumerable source
// qualifies, immutable ones included.
func Sorted[T any](src container.Enumerable[T], less func(a, b T) bool) (*list.List[T], error) {
	items, err := ToSlice(src)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
	return list.Adopt(items), nil
}

// RemoveIf removes every element satisfying pred from the source itself,
// preserving the order of the remainder, and returns the number removed.
// The source must carry the [container.Removable] capability — an
// immutable source returns [ErrUnsupportedOperation] and is left
// unchanged.
func RemoveIf[T any](src container.Enumerable[T], pred func(T) bool) (int, error) {
	if src == nil {
		return 0, ErrNilSource
	}
	removable, ok := src.(container.Removable[T])
	if !ok {
		return 0, ErrUnsupportedOperation
	}
	return removable.RemoveIf(pred), nil
}
