package iterate

import (
	"github.com/hasbyte1/go-iterate/container"
	"github.com/hasbyte1/go-iterate/indexiter"
	"github.com/hasbyte1/go-iterate/seqiter"
	"github.com/hasbyte1/go-iterate/sliceiter"
)

// ─────────────────────────────────────────────────────────────────────────────
// Filter / Reject / Partition
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new container holding the elements satisfying pred,
// in traversal order. The result's family follows the source: a list
// source yields a list, a set source yields a set.
func Filter[T any](src container.Enumerable[T], pred func(T) bool) (container.Target[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	return FilterInto(src, pred, newTarget(src))
}

// FilterInto appends the elements satisfying pred to into, in traversal
// order, and returns into.
func FilterInto[T any, R container.Target[T]](src container.Enumerable[T], pred func(T) bool, into R) (R, error) {
	if src == nil {
		return into, ErrNilSource
	}
	if rich, ok := src.(container.Rich[T]); ok {
		rich.SelectInto(pred, into)
		return into, nil
	}
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		return sliceiter.SelectInto(ab.Backing(), pred, into), nil
	}
	if ix, ok := src.(container.Indexed[T]); ok {
		return indexiter.SelectInto(ix, pred, into), nil
	}
	return seqiter.SelectInto(src, pred, into), nil
}

// Reject returns a new container holding the elements not satisfying
// pred, in traversal order — the complement of [Filter].
func Reject[T any](src container.Enumerable[T], pred func(T) bool) (container.Target[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	return RejectInto(src, pred, newTarget(src))
}

// RejectInto appends the elements not satisfying pred to into, in
// traversal order, and returns into.
func RejectInto[T any, R container.Target[T]](src container.Enumerable[T], pred func(T) bool, into R) (R, error) {
	if src == nil {
		return into, ErrNilSource
	}
	if rich, ok := src.(container.Rich[T]); ok {
		rich.RejectInto(pred, into)
		return into, nil
	}
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		return sliceiter.RejectInto(ab.Backing(), pred, into), nil
	}
	if ix, ok := src.(container.Indexed[T]); ok {
		return indexiter.RejectInto(ix, pred, into), nil
	}
	return seqiter.RejectInto(src, pred, into), nil
}

// Partition splits the source into the elements satisfying pred
// (selected) and the rest (rejected) in a single pass, so pred is
// evaluated exactly once per element. Both groups preserve traversal
// order and follow the source's family.
func Partition[T any](src container.Enumerable[T], pred func(T) bool) (selected, rejected container.Target[T], err error) {
	if src == nil {
		return nil, nil, ErrNilSource
	}
	selected, rejected = newTarget(src), newTarget(src)
	if err := PartitionInto(src, pred, selected, rejected); err != nil {
		return nil, nil, err
	}
	return selected, rejected, nil
}

// PartitionInto routes every element to selected or rejected in a
// single pass, evaluating pred exactly once per element.
func PartitionInto[T any](src container.Enumerable[T], pred func(T) bool, selected, rejected container.Target[T]) error {
	if src == nil {
		return ErrNilSource
	}
	if rich, ok := src.(container.Rich[T]); ok {
		rich.PartitionInto(pred, selected, rejected)
		return nil
	}
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		sliceiter.PartitionInto(ab.Backing(), pred, selected, rejected)
		return nil
	}
	if ix, ok := src.(container.Indexed[T]); ok {
		indexiter.PartitionInto(ix, pred, selected, rejected)
		return nil
	}
	seqiter.PartitionInto(src, pred, selected, rejected)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Quantifiers
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of elements satisfying pred.
func Count[T any](src container.Enumerable[T], pred func(T) bool) (int, error) {
	if src == nil {
		return 0, ErrNilSource
	}
	if rich, ok := src.(container.Rich[T]); ok {
		return rich.Count(pred), nil
	}
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		return sliceiter.Count(ab.Backing(), pred), nil
	}
	if ix, ok := src.(container.Indexed[T]); ok {
		return indexiter.Count(ix, pred), nil
	}
	return seqiter.Count(src, pred), nil
}

// AnySatisfy reports whether at least one element satisfies pred.
// Traversal stops at the first match: pred is not invoked again after
// it returns true.
func AnySatisfy[T any](src container.Enumerable[T], pred func(T) bool) (bool, error) {
	if src == nil {
		return false, ErrNilSource
	}
	if rich, ok := src.(container.Rich[T]); ok {
		return rich.AnySatisfy(pred), nil
	}
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		return sliceiter.AnySatisfy(ab.Backing(), pred), nil
	}
	if ix, ok := src.(container.Indexed[T]); ok {
		return indexiter.AnySatisfy(ix, pred), nil
	}
	return seqiter.AnySatisfy(src, pred), nil
}

// AllSatisfy reports whether every element satisfies pred, stopping at
// the first counterexample. True for an empty source.
func AllSatisfy[T any](src container.Enumerable[T], pred func(T) bool) (bool, error) {
	if src == nil {
		return false, ErrNilSource
	}
	if rich, ok := src.(container.Rich[T]); ok {
		return rich.AllSatisfy(pred), nil
	}
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		return sliceiter.AllSatisfy(ab.Backing(), pred), nil
	}
	if ix, ok := src.(container.Indexed[T]); ok {
		return indexiter.AllSatisfy(ix, pred), nil
	}
	return seqiter.AllSatisfy(src, pred), nil
}

// NoneSatisfy reports whether no element satisfies pred, stopping at
// the first match. True for an empty source.
func NoneSatisfy[T any](src container.Enumerable[T], pred func(T) bool) (bool, error) {
	if src == nil {
		return false, ErrNilSource
	}
	if rich, ok := src.(container.Rich[T]); ok {
		return rich.NoneSatisfy(pred), nil
	}
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		return sliceiter.NoneSatisfy(ab.Backing(), pred), nil
	}
	if ix, ok := src.(container.Indexed[T]); ok {
		return indexiter.NoneSatisfy(ix, pred), nil
	}
	return seqiter.NoneSatisfy(src, pred), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Detection
// ─────────────────────────────────────────────────────────────────────────────

// Detect returns the first element in traversal order satisfying pred,
// stopping traversal there. The flag is false when no element matches;
// absence is not an error.
func Detect[T any](src container.Enumerable[T], pred func(T) bool) (T, bool, error) {
	var zero T
	if src == nil {
		return zero, false, ErrNilSource
	}
	if rich, ok := src.(container.Rich[T]); ok {
		item, found := rich.Detect(pred)
		return item, found, nil
	}
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		item, found := sliceiter.Detect(ab.Backing(), pred)
		return item, found, nil
	}
	if ix, ok := src.(container.Indexed[T]); ok {
		item, found := indexiter.Detect(ix, pred)
		return item, found, nil
	}
	item, found := seqiter.Detect(src, pred)
	return item, found, nil
}

// DetectIfNone returns the first element satisfying pred, or fallback
// when no element matches.
func DetectIfNone[T any](src container.Enumerable[T], pred func(T) bool, fallback T) (T, error) {
	item, found, err := Detect(src, pred)
	if err != nil {
		return fallback, err
	}
	if !found {
		return fallback, nil
	}
	return item, nil
}

// DetectIndex returns the 0-based traversal position of the first
// element satisfying pred, or -1 when no element matches.
func DetectIndex[T any](src container.Enumerable[T], pred func(T) bool) (int, error) {
	if src == nil {
		return -1, ErrNilSource
	}
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		return sliceiter.DetectIndex(ab.Backing(), pred), nil
	}
	if ix, ok := src.(container.Indexed[T]); ok {
		return indexiter.DetectIndex(ix, pred), nil
	}
	return seqiter.DetectIndex(src, pred), nil
}
