package iterate

import (
	"github.com/hasbyte1/go-iterate/container"
	"github.com/hasbyte1/go-iterate/indexiter"
	"github.com/hasbyte1/go-iterate/list"
	"github.com/hasbyte1/go-iterate/seqiter"
	"github.com/hasbyte1/go-iterate/sliceiter"
)

// Operations in this file introduce a second element type, which Go
// methods cannot do, so they exist only as package-level functions and
// never self-dispatch: the most specific external engine runs them even
// for rich sources. Transformed results are always lists — the element
// type changes, so the source's family does not carry over.

// ─────────────────────────────────────────────────────────────────────────────
// Map / FlatMap
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new list holding fn(element) for every element, in
// traversal order. The result length always equals the source length.
func Map[T, U any](src container.Enumerable[T], fn func(T) U) (*list.List[U], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	return MapInto(src, fn, list.WithCapacity[U](sizeHint(src)))
}

// MapInto appends fn(element) for every element to into, in traversal
// order, and returns into.
func MapInto[T, U any, R container.Target[U]](src container.Enumerable[T], fn func(T) U, into R) (R, error) {
	if src == nil {
		return into, ErrNilSource
	}
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		return sliceiter.CollectInto(ab.Backing(), fn, into), nil
	}
	if ix, ok := src.(container.Indexed[T]); ok {
		return indexiter.CollectInto(ix, fn, into), nil
	}
	return seqiter.CollectInto(src, fn, into), nil
}

// FlatMap applies fn to every element and concatenates the returned
// slices into a new list, preserving outer-then-inner order.
func FlatMap[T, U any](src container.Enumerable[T], fn func(T) []U) (*list.List[U], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	return FlatMapInto(src, fn, list.WithCapacity[U](sizeHint(src)))
}

// FlatMapInto applies fn to every element and appends every element of
// each returned slice to into, preserving outer-then-inner order.
func FlatMapInto[T, U any, R container.Target[U]](src container.Enumerable[T], fn func(T) []U, into R) (R, error) {
	if src == nil {
		return into, ErrNilSource
	}
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		return sliceiter.FlatCollectInto(ab.Backing(), fn, into), nil
	}
	if ix, ok := src.(container.Indexed[T]); ok {
		return indexiter.FlatCollectInto(ix, fn, into), nil
	}
	return seqiter.FlatCollectInto(src, fn, into), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Reduce
// ─────────────────────────────────────────────────────────────────────────────

// Reduce left-folds the source into seed, applying fn strictly in
// traversal order on the calling goroutine, so order-dependent
// accumulators get deterministic results.
func Reduce[T, U any](src container.Enumerable[T], seed U, fn func(acc U, item T) U) (U, error) {
	if src == nil {
		return seed, ErrNilSource
	}
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		return sliceiter.Reduce(ab.Backing(), seed, fn), nil
	}
	if ix, ok := src.(container.Indexed[T]); ok {
		return indexiter.Reduce(ix, seed, fn), nil
	}
	return seqiter.Reduce(src, seed, fn), nil
}
