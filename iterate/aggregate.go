package iterate

import (
	"cmp"

	"github.com/hasbyte1/go-iterate/container"
	"github.com/hasbyte1/go-iterate/dict"
	"github.com/hasbyte1/go-iterate/indexiter"
	"github.com/hasbyte1/go-iterate/seqiter"
	"github.com/hasbyte1/go-iterate/sliceiter"
)

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy builds a multimap from keyFn(element) to the elements that
// produced that key. Elements within a group keep their relative
// traversal order.
func GroupBy[T any, K comparable](src container.Enumerable[T], keyFn func(T) K) (*dict.Multimap[K, T], error) {
	return GroupByInto(src, keyFn, dict.NewMultimap[K, T]())
}

// GroupByInto appends every element to into under keyFn(element) and
// returns into.
func GroupByInto[T any, K comparable](src container.Enumerable[T], keyFn func(T) K, into *dict.Multimap[K, T]) (*dict.Multimap[K, T], error) {
	if src == nil {
		return into, ErrNilSource
	}
	each(src, func(item T) { into.Put(keyFn(item), item) })
	return into, nil
}

// GroupByEach builds a multimap like [GroupBy], but keysFn returns any
// number of keys per element and the element is inserted under every
// one of them. An element yielding no keys appears in no group.
func GroupByEach[T any, K comparable](src container.Enumerable[T], keysFn func(T) []K) (*dict.Multimap[K, T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	into := dict.NewMultimap[K, T]()
	each(src, func(item T) {
		for _, k := range keysFn(item) {
			into.Put(k, item)
		}
	})
	return into, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Keyed maps & aggregation
// ─────────────────────────────────────────────────────────────────────────────

// ToMap builds a map from keyFn(element) to valueFn(element). When two
// elements derive the same key, the later one in traversal order wins —
// last write wins, by contract. For merging instead of overwriting, use
// [AggregateBy].
func ToMap[T any, K comparable, V any](src container.Enumerable[T], keyFn func(T) K, valueFn func(T) V) (*dict.Map[K, V], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	return ToMapInto(src, keyFn, valueFn, dict.NewMap[K, V](sizeHint(src)))
}

// ToMapInto stores keyFn(element) → valueFn(element) for every element
// into the given map, later elements overwriting earlier ones for the
// same key, and returns into.
func ToMapInto[T any, K comparable, V any](src container.Enumerable[T], keyFn func(T) K, valueFn func(T) V, into *dict.Map[K, V]) (*dict.Map[K, V], error) {
	if src == nil {
		return into, ErrNilSource
	}
	each(src, func(item T) { into.Put(keyFn(item), valueFn(item)) })
	return into, nil
}

// AggregateBy folds the elements sharing a key into one value per key:
// the value starts as seedFn() and every element is combined into it
// with combine, in traversal order. Unlike [ToMap], duplicate keys
// merge rather than overwrite.
func AggregateBy[T any, K comparable, V any](src container.Enumerable[T], keyFn func(T) K, seedFn func() V, combine func(acc V, item T) V) (*dict.Map[K, V], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	into := dict.NewMap[K, V](0)
	each(src, func(item T) {
		k := keyFn(item)
		acc, ok := into.Get(k)
		if !ok {
			acc = seedFn()
		}
		into.Put(k, combine(acc, item))
	})
	return into, nil
}

// AggregateInPlaceBy is [AggregateBy] for mutable accumulators: mutate
// alters the per-key value in place (V is typically a pointer type), so
// no map write happens after the value is first stored.
func AggregateInPlaceBy[T any, K comparable, V any](src container.Enumerable[T], keyFn func(T) K, seedFn func() V, mutate func(acc V, item T)) (*dict.Map[K, V], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	into := dict.NewMap[K, V](0)
	each(src, func(item T) {
		mutate(into.GetOrPut(keyFn(item), seedFn), item)
	})
	return into, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Chunking
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits the source into consecutive groups of at most size
// elements, preserving traversal order; the last group may be shorter.
// Returns [ErrInvalidChunkSize] when size <= 0.
func Chunk[T any](src container.Enumerable[T], size int) ([][]T, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if size <= 0 {
		return nil, ErrInvalidChunkSize
	}
	chunks := make([][]T, 0, (sizeHint(src)+size-1)/size)
	var current []T
	each(src, func(item T) {
		if current == nil {
			current = make([]T, 0, size)
		}
		current = append(current, item)
		if len(current) == size {
			chunks = append(chunks, current)
			current = nil
		}
	})
	if current != nil {
		chunks = append(chunks, current)
	}
	return chunks, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Extremes
// ─────────────────────────────────────────────────────────────────────────────

// Min returns the least element under less in a single pass. The first
// element is the initial best and ties keep the first seen. The flag is
// false for an empty source.
func Min[T any](src container.Enumerable[T], less func(a, b T) bool) (T, bool, error) {
	var zero T
	if src == nil {
		return zero, false, ErrNilSource
	}
	if rich, ok := src.(container.Rich[T]); ok {
		item, found := rich.Min(less)
		return item, found, nil
	}
	item, found := minSeq(src, less)
	return item, found, nil
}

// Max returns the greatest element under less in a single pass. The
// first element is the initial best and ties keep the first seen. The
// flag is false for an empty source.
func Max[T any](src container.Enumerable[T], less func(a, b T) bool) (T, bool, error) {
	var zero T
	if src == nil {
		return zero, false, ErrNilSource
	}
	if rich, ok := src.(container.Rich[T]); ok {
		item, found := rich.Max(less)
		return item, found, nil
	}
	item, found := maxSeq(src, less)
	return item, found, nil
}

// MinOf is [Min] under the natural order of an ordered element type.
func MinOf[T cmp.Ordered](src container.Enumerable[T]) (T, bool, error) {
	return Min(src, func(a, b T) bool { return a < b })
}

// MaxOf is [Max] under the natural order of an ordered element type.
func MaxOf[T cmp.Ordered](src container.Enumerable[T]) (T, bool, error) {
	return Max(src, func(a, b T) bool { return a < b })
}

// MinBy returns the element whose keyFn value is least; ties keep the
// first seen.
func MinBy[T any, K cmp.Ordered](src container.Enumerable[T], keyFn func(T) K) (T, bool, error) {
	return Min(src, func(a, b T) bool { return keyFn(a) < keyFn(b) })
}

// MaxBy returns the element whose keyFn value is greatest; ties keep
// the first seen.
func MaxBy[T any, K cmp.Ordered](src container.Enumerable[T], keyFn func(T) K) (T, bool, error) {
	return Max(src, func(a, b T) bool { return keyFn(a) < keyFn(b) })
}

func minSeq[T any](src container.Enumerable[T], less func(a, b T) bool) (T, bool) {
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		return sliceiter.Min(ab.Backing(), less)
	}
	if ix, ok := src.(container.Indexed[T]); ok {
		return indexiter.Min(ix, less)
	}
	return seqiter.Min(src, less)
}

func maxSeq[T any](src container.Enumerable[T], less func(a, b T) bool) (T, bool) {
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		return sliceiter.Max(ab.Backing(), less)
	}
	if ix, ok := src.(container.Indexed[T]); ok {
		return indexiter.Max(ix, less)
	}
	return seqiter.Max(src, less)
}
