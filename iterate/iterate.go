package iterate

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-iterate/container"
	"github.com/hasbyte1/go-iterate/indexiter"
	"github.com/hasbyte1/go-iterate/list"
	"github.com/hasbyte1/go-iterate/seqiter"
	"github.com/hasbyte1/go-iterate/sliceiter"
)

// ─────────────────────────────────────────────────────────────────────────────
// Emptiness & size
// ─────────────────────────────────────────────────────────────────────────────

// IsEmpty reports whether the source has no elements. It is the one
// null-safe operation: a nil source is empty, not an error.
func IsEmpty[T any](src container.Enumerable[T]) bool {
	if src == nil {
		return true
	}
	if rich, ok := src.(container.Rich[T]); ok {
		return rich.IsEmpty()
	}
	if s, ok := src.(container.Sized); ok {
		return s.Len() == 0
	}
	return seqiter.IsEmpty(src)
}

// NotEmpty reports whether the source has at least one element.
// Like [IsEmpty], it treats a nil source as empty instead of failing.
func NotEmpty[T any](src container.Enumerable[T]) bool { return !IsEmpty(src) }

// SizeOf returns the number of elements, using the source's size hint
// when it has one and counting a full traversal otherwise.
func SizeOf[T any](src container.Enumerable[T]) (int, error) {
	if src == nil {
		return 0, ErrNilSource
	}
	if s, ok := src.(container.Sized); ok {
		return s.Len(), nil
	}
	n := 0
	seqiter.ForEach(src, func(T) { n++ })
	return n, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Membership & element access
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether value is present, using the source's O(1)
// membership hook when it has one and scanning otherwise.
func Contains[T comparable](src container.Enumerable[T], value T) (bool, error) {
	if src == nil {
		return false, ErrNilSource
	}
	if m, ok := src.(container.Membership[T]); ok {
		return m.Contains(value), nil
	}
	return AnySatisfy(src, func(item T) bool { return item == value })
}

// First returns the first element in traversal order, stopping there.
// The flag is false for an empty source.
func First[T any](src container.Enumerable[T]) (T, bool, error) {
	var zero T
	if src == nil {
		return zero, false, ErrNilSource
	}
	if rich, ok := src.(container.Rich[T]); ok {
		item, found := rich.First()
		return item, found, nil
	}
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		item, found := sliceiter.First(ab.Backing())
		return item, found, nil
	}
	if ix, ok := src.(container.Indexed[T]); ok {
		item, found := indexiter.First(ix)
		return item, found, nil
	}
	item, found := seqiter.First(src)
	return item, found, nil
}

// Last returns the last element in traversal order — O(1) for indexed
// sources, a full traversal otherwise. The flag is false for an empty
// source.
func Last[T any](src container.Enumerable[T]) (T, bool, error) {
	var zero T
	if src == nil {
		return zero, false, ErrNilSource
	}
	if rich, ok := src.(container.Rich[T]); ok {
		item, found := rich.Last()
		return item, found, nil
	}
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		item, found := sliceiter.Last(ab.Backing())
		return item, found, nil
	}
	if ix, ok := src.(container.Indexed[T]); ok {
		item, found := indexiter.Last(ix)
		return item, found, nil
	}
	item, found := seqiter.Last(src)
	return item, found, nil
}

// GetOnly returns the source's single element. A source holding zero or
// more than one element returns [ErrNotExactlyOne].
func GetOnly[T any](src container.Enumerable[T]) (T, error) {
	var zero T
	if src == nil {
		return zero, ErrNilSource
	}
	only := list.WithCapacity[T](2)
	seqiter.TakeInto(src, 2, only)
	if only.Len() != 1 {
		return zero, ErrNotExactlyOne
	}
	return only.At(0), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

// ForEach calls fn for every element, in traversal order.
func ForEach[T any](src container.Enumerable[T], fn func(T)) error {
	if src == nil {
		return ErrNilSource
	}
	each(src, fn)
	return nil
}

// ForEachWithIndex calls fn(item, index) for every element, in
// traversal order with 0-based positions.
func ForEachWithIndex[T any](src container.Enumerable[T], fn func(item T, index int)) error {
	if src == nil {
		return ErrNilSource
	}
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		sliceiter.ForEachWithIndex(ab.Backing(), fn)
		return nil
	}
	if ix, ok := src.(container.Indexed[T]); ok {
		indexiter.ForEachWithIndex(ix, fn)
		return nil
	}
	seqiter.ForEachWithIndex(src, fn)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take returns a new list holding at most the first n elements,
// stopping traversal once n have been taken. Returns
// [ErrNegativeCount] for n < 0.
func Take[T any](src container.Enumerable[T], n int) (*list.List[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if n < 0 {
		return nil, ErrNegativeCount
	}
	capacity := n
	if hint := sizeHint(src); hint > 0 && hint < capacity {
		capacity = hint
	}
	into := list.WithCapacity[T](capacity)
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		return sliceiter.TakeInto(ab.Backing(), n, into), nil
	}
	if ix, ok := src.(container.Indexed[T]); ok {
		return indexiter.TakeInto(ix, n, into), nil
	}
	return seqiter.TakeInto(src, n, into), nil
}

// Drop returns a new list holding the elements after the first n.
// Returns [ErrNegativeCount] for n < 0.
func Drop[T any](src container.Enumerable[T], n int) (*list.List[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if n < 0 {
		return nil, ErrNegativeCount
	}
	capacity := 0
	if hint := sizeHint(src); hint > n {
		capacity = hint - n
	}
	into := list.WithCapacity[T](capacity)
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		return sliceiter.DropInto(ab.Backing(), n, into), nil
	}
	if ix, ok := src.(container.Indexed[T]); ok {
		return indexiter.DropInto(ix, n, into), nil
	}
	return seqiter.DropInto(src, n, into), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Export & formatting
// ─────────────────────────────────────────────────────────────────────────────

// AddAllTo appends every element to into, in traversal order, and
// returns into.
func AddAllTo[T any, R container.Target[T]](src container.Enumerable[T], into R) (R, error) {
	if src == nil {
		return into, ErrNilSource
	}
	each(src, func(item T) { into.Append(item) })
	return into, nil
}

// ToSlice materializes the elements into a new slice, in traversal
// order.
func ToSlice[T any](src container.Enumerable[T]) ([]T, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		return sliceiter.ToSlice(ab.Backing()), nil
	}
	if ix, ok := src.(container.Indexed[T]); ok {
		return indexiter.ToSlice(ix), nil
	}
	return seqiter.ToSlice(src), nil
}

// ToList materializes the elements into a new mutable list, in
// traversal order.
func ToList[T any](src container.Enumerable[T]) (*list.List[T], error) {
	items, err := ToSlice(src)
	if err != nil {
		return nil, err
	}
	return list.Adopt(items), nil
}

// MakeString joins the elements' default formatting with sep, in
// traversal order, e.g. "1, 2, 3".
func MakeString[T any](src container.Enumerable[T], sep string) (string, error) {
	if src == nil {
		return "", ErrNilSource
	}
	var b strings.Builder
	firstItem := true
	each(src, func(item T) {
		if !firstItem {
			b.WriteString(sep)
		}
		fmt.Fprintf(&b, "%v", item)
		firstItem = false
	})
	return b.String(), nil
}
