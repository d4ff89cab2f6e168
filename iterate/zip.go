package iterate

import (
	"github.com/hasbyte1/go-iterate/container"
	"github.com/hasbyte1/go-iterate/indexiter"
	"github.com/hasbyte1/go-iterate/list"
	"github.com/hasbyte1/go-iterate/seqiter"
	"github.com/hasbyte1/go-iterate/sliceiter"
)

// ─────────────────────────────────────────────────────────────────────────────
// Zip / ZipWithIndex
// ─────────────────────────────────────────────────────────────────────────────

// Zip pairs the elements of src and other positionally into a new list.
// The result length is the length of the shorter source; trailing
// unmatched elements of the longer one are silently dropped.
func Zip[A, B any](src container.Enumerable[A], other container.Enumerable[B]) (*list.List[container.Pair[A, B]], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if other == nil {
		return nil, ErrNilOther
	}
	capacity := sizeHint(src)
	if n := sizeHint[B](other); n > 0 && (capacity == 0 || n < capacity) {
		capacity = n
	}
	return ZipInto(src, other, list.WithCapacity[container.Pair[A, B]](capacity))
}

// ZipInto pairs the elements of src and other positionally, appending
// the pairs to into, and returns into. Dispatch follows src's
// capabilities; other only needs to enumerate.
func ZipInto[A, B any, R container.Target[container.Pair[A, B]]](src container.Enumerable[A], other container.Enumerable[B], into R) (R, error) {
	if src == nil {
		return into, ErrNilSource
	}
	if other == nil {
		return into, ErrNilOther
	}
	if ab, ok := src.(container.ArrayBacked[A]); ok {
		return sliceiter.ZipInto(ab.Backing(), other.Elements(), into), nil
	}
	if ix, ok := src.(container.Indexed[A]); ok {
		return indexiter.ZipInto(ix, other.Elements(), into), nil
	}
	return seqiter.ZipInto(src, other.Elements(), into), nil
}

// ZipWithIndex pairs every element with its 0-based traversal position
// in a new list.
func ZipWithIndex[T any](src container.Enumerable[T]) (*list.List[container.Pair[T, int]], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	return ZipWithIndexInto(src, list.WithCapacity[container.Pair[T, int]](sizeHint(src)))
}

// ZipWithIndexInto pairs every element with its 0-based traversal
// position, appending the pairs to into, and returns into.
func ZipWithIndexInto[T any, R container.Target[container.Pair[T, int]]](src container.Enumerable[T], into R) (R, error) {
	if src == nil {
		return into, ErrNilSource
	}
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		return sliceiter.ZipWithIndexInto(ab.Backing(), into), nil
	}
	if ix, ok := src.(container.Indexed[T]); ok {
		return indexiter.ZipWithIndexInto(ix, into), nil
	}
	return seqiter.ZipWithIndexInto(src, into), nil
}
