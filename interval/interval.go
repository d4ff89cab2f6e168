// Package interval provides a lazy arithmetic progression over integer
// types. An Interval stores only its bounds and step; elements are
// computed on demand, so random access, membership, and the extremes are
// all O(1). It is immutable by construction and demonstrates why a
// container with internal structure is allowed to self-dispatch: no
// external engine can answer First or Contains without traversing.
package interval

import (
	"errors"
	"fmt"
	"iter"

	"github.com/hasbyte1/go-iterate/container"
	"github.com/hasbyte1/go-iterate/indexiter"
	"github.com/hasbyte1/go-iterate/list"
	"github.com/hasbyte1/go-iterate/numeric"
)

// Sentinel errors returned by the interval constructors.
var (
	// ErrZeroStep is returned when the step is 0.
	ErrZeroStep = errors.New("interval: step must not be zero")

	// ErrStepDirection is returned when the step points away from the
	// end bound, e.g. FromToBy(1, 10, -1).
	ErrStepDirection = errors.New("interval: step direction does not reach the end bound")

	// ErrRangeOverflow is returned when the span to-from is not
	// representable in the element type, e.g. an int64 interval covering
	// more than half the type's domain.
	ErrRangeOverflow = errors.New("interval: element count is not representable")
)

// Interval is the inclusive arithmetic progression from, from+step,
// from+2·step, … up to the last value not past to. It always holds at
// least one element (from itself).
type Interval[N numeric.Integer] struct {
	from, to, step N
	size           int
}

// FromTo creates the interval from..to inclusive with step 1 or -1,
// matching the direction of the bounds. Descending intervals over
// unsigned element types are valid: the step wraps, and modular
// arithmetic still decrements by one per position. Panics when the
// span is not representable in N (see [ErrRangeOverflow]).
func FromTo[N numeric.Integer](from, to N) *Interval[N] {
	var iv *Interval[N]
	var err error
	if to < from {
		iv, err = build(from, to, N(0)-N(1), from-to)
	} else {
		iv, err = build(from, to, N(1), to-from)
	}
	if err != nil {
		panic(fmt.Sprintf("interval: FromTo(%v, %v): span is not representable", from, to))
	}
	return iv
}

// FromToBy creates the interval from..to inclusive advancing by step.
// Returns [ErrZeroStep] when step is 0, [ErrStepDirection] when step
// points away from to, and [ErrRangeOverflow] when the span to-from is
// not representable in N.
func FromToBy[N numeric.Integer](from, to, step N) (*Interval[N], error) {
	if step == 0 {
		return nil, ErrZeroStep
	}
	if step > 0 {
		if to < from {
			return nil, ErrStepDirection
		}
		return build(from, to, step, (to-from)/step)
	}
	if to > from {
		return nil, ErrStepDirection
	}
	return build(from, to, step, (from-to)/(N(0)-step))
}

// build finishes construction from a precomputed position span. A span
// that wrapped during subtraction, or a size past the int range, shows
// up as a non-positive size.
func build[N numeric.Integer](from, to, step, span N) (*Interval[N], error) {
	size := int(span) + 1
	if size <= 0 {
		return nil, ErrRangeOverflow
	}
	return &Interval[N]{from: from, to: to, step: step, size: size}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// ascending reports the traversal direction. It is derived from the
// bounds, not the step's sign: a descending step over an unsigned
// element type compares as a large positive value.
func (iv *Interval[N]) ascending() bool { return iv.from <= iv.to }

// magnitude returns the step's absolute distance per position.
func (iv *Interval[N]) magnitude() N {
	if iv.ascending() {
		return iv.step
	}
	return N(0) - iv.step
}

// Len returns the number of elements, without traversing.
func (iv *Interval[N]) Len() int { return iv.size }

// IsEmpty reports false: an interval always holds at least one element.
func (iv *Interval[N]) IsEmpty() bool { return false }

// At returns the element at position i in O(1).
// It panics when i is out of range, like slice indexing.
func (iv *Interval[N]) At(i int) N {
	if i < 0 || i >= iv.size {
		panic(fmt.Sprintf("interval: index out of range [%d] with length %d", i, iv.size))
	}
	return iv.from + N(i)*iv.step
}

// Elements returns a forward cursor over the progression.
func (iv *Interval[N]) Elements() iter.Seq[N] {
	return func(yield func(N) bool) {
		for i := 0; i < iv.size; i++ {
			if !yield(iv.from + N(i)*iv.step) {
				return
			}
		}
	}
}

// Contains reports whether value lies on the progression, in O(1)
// arithmetic rather than a scan.
func (iv *Interval[N]) Contains(value N) bool {
	if iv.ascending() {
		if value < iv.from || value > iv.At(iv.size-1) {
			return false
		}
		return (value-iv.from)%iv.step == 0
	}
	if value > iv.from || value < iv.At(iv.size-1) {
		return false
	}
	return (iv.from-value)%iv.magnitude() == 0
}

// Reverse returns the interval traversing the same elements in the
// opposite direction.
func (iv *Interval[N]) Reverse() *Interval[N] {
	return &Interval[N]{
		from: iv.At(iv.size - 1),
		to:   iv.from,
		step: N(0) - iv.step,
		size: iv.size,
	}
}

// ToSlice materializes the progression into a new slice.
func (iv *Interval[N]) ToSlice() []N {
	out := make([]N, iv.size)
	for i := range out {
		out[i] = iv.from + N(i)*iv.step
	}
	return out
}

// ToList materializes the progression into a mutable list.
func (iv *Interval[N]) ToList() *list.List[N] { return list.Adopt(iv.ToSlice()) }

// String returns a human-readable representation, e.g. "[1 3 5]".
func (iv *Interval[N]) String() string { return fmt.Sprintf("%v", iv.ToSlice()) }

// ─────────────────────────────────────────────────────────────────────────────
// Rich protocol
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element in O(1). The flag is always true.
func (iv *Interval[N]) First() (N, bool) { return iv.from, true }

// Last returns the last element in O(1). The flag is always true.
func (iv *Interval[N]) Last() (N, bool) { return iv.At(iv.size - 1), true }

// MinValue returns the numerically least element in O(1).
func (iv *Interval[N]) MinValue() N {
	if iv.ascending() {
		return iv.from
	}
	return iv.At(iv.size - 1)
}

// MaxValue returns the numerically greatest element in O(1).
func (iv *Interval[N]) MaxValue() N {
	if iv.ascending() {
		return iv.At(iv.size - 1)
	}
	return iv.from
}

// Min returns the least element under an arbitrary comparator; ties
// keep the first seen. The flag is always true.
func (iv *Interval[N]) Min(less func(a, b N) bool) (N, bool) { return indexiter.Min[N](iv, less) }

// Max returns the greatest element under an arbitrary comparator; ties
// keep the first seen. The flag is always true.
func (iv *Interval[N]) Max(less func(a, b N) bool) (N, bool) { return indexiter.Max[N](iv, less) }

// SelectInto appends the elements satisfying pred to into, in order.
func (iv *Interval[N]) SelectInto(pred func(N) bool, into container.Target[N]) {
	indexiter.SelectInto[N](iv, pred, into)
}

// RejectInto appends the elements not satisfying pred to into, in order.
func (iv *Interval[N]) RejectInto(pred func(N) bool, into container.Target[N]) {
	indexiter.RejectInto[N](iv, pred, into)
}

// PartitionInto routes every element to selected or rejected,
// evaluating pred exactly once per element.
func (iv *Interval[N]) PartitionInto(pred func(N) bool, selected, rejected container.Target[N]) {
	indexiter.PartitionInto[N](iv, pred, selected, rejected)
}

// Count returns the number of elements satisfying pred.
func (iv *Interval[N]) Count(pred func(N) bool) int { return indexiter.Count[N](iv, pred) }

// AnySatisfy reports whether at least one element satisfies pred.
func (iv *Interval[N]) AnySatisfy(pred func(N) bool) bool { return indexiter.AnySatisfy[N](iv, pred) }

// AllSatisfy reports whether every element satisfies pred.
func (iv *Interval[N]) AllSatisfy(pred func(N) bool) bool { return indexiter.AllSatisfy[N](iv, pred) }

// NoneSatisfy reports whether no element satisfies pred.
func (iv *Interval[N]) NoneSatisfy(pred func(N) bool) bool {
	return indexiter.NoneSatisfy[N](iv, pred)
}

// Detect returns the first element satisfying pred, or the zero value
// and false when no element matches.
func (iv *Interval[N]) Detect(pred func(N) bool) (N, bool) { return indexiter.Detect[N](iv, pred) }
