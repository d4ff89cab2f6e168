// Package numeric is the primitive-specialization surface of the
// module. The per-type code generation of classic collection libraries
// maps to Go monomorphized generics: instantiating any engine or
// container at a numeric element type already yields unboxed code, so
// what remains here is the constraint set and the arithmetic reductions
// that only make sense for numbers.
//
// Every function dispatches over the same capability precedence as
// package iterate — array-backed, then indexed, then sequential — and
// shares its error taxonomy.
package numeric

import (
	"github.com/hasbyte1/go-iterate/container"
	"github.com/hasbyte1/go-iterate/indexiter"
	"github.com/hasbyte1/go-iterate/iterate"
	"github.com/hasbyte1/go-iterate/seqiter"
	"github.com/hasbyte1/go-iterate/sliceiter"
)

// Integer constrains to the built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float constrains to the built-in floating-point types.
type Float interface {
	~float32 | ~float64
}

// Real constrains to every built-in real numeric type.
type Real interface {
	Integer | Float
}

// Sum returns the sum of all elements. An empty source sums to zero.
func Sum[N Real](src container.Enumerable[N]) (N, error) {
	return SumBy(src, func(n N) N { return n })
}

// SumBy returns the sum of fn(element) over all elements, applied in
// traversal order. An empty source sums to zero.
func SumBy[T any, N Real](src container.Enumerable[T], fn func(T) N) (N, error) {
	var zero N
	if src == nil {
		return zero, iterate.ErrNilSource
	}
	add := func(acc N, item T) N { return acc + fn(item) }
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		return sliceiter.Reduce(ab.Backing(), zero, add), nil
	}
	if ix, ok := src.(container.Indexed[T]); ok {
		return indexiter.Reduce(ix, zero, add), nil
	}
	return seqiter.Reduce(src, zero, add), nil
}

// Average returns the arithmetic mean of all elements.
// Returns 0 and false for an empty source.
func Average[N Real](src container.Enumerable[N]) (float64, bool, error) {
	return AverageBy(src, func(n N) N { return n })
}

// AverageBy returns the arithmetic mean of fn(element) over all
// elements. Returns 0 and false for an empty source.
func AverageBy[T any, N Real](src container.Enumerable[T], fn func(T) N) (float64, bool, error) {
	if src == nil {
		return 0, false, iterate.ErrNilSource
	}
	var sum float64
	n := 0
	acc := func(item T) {
		sum += float64(fn(item))
		n++
	}
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		sliceiter.ForEach(ab.Backing(), acc)
	} else if ix, ok := src.(container.Indexed[T]); ok {
		indexiter.ForEach(ix, acc)
	} else {
		seqiter.ForEach(src, acc)
	}
	if n == 0 {
		return 0, false, nil
	}
	return sum / float64(n), true, nil
}
