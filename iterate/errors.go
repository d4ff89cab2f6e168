package iterate

import (
	"errors"
	"fmt"
)

// The error taxonomy has two roots. Every specific sentinel wraps one of
// them, so callers can match either the exact condition or the class:
//
//	errors.Is(err, iterate.ErrNilSource)        // the condition
//	errors.Is(err, iterate.ErrInvalidArgument)  // the class
var (
	// ErrInvalidArgument is the root of all argument errors: a nil or
	// otherwise unusable source, a non-positive chunk size, a negative
	// element count. Never retried, never silently defaulted.
	ErrInvalidArgument = errors.New("iterate: invalid argument")

	// ErrUnsupportedOperation is returned when a mutating operation is
	// requested on a source that lacks the required mutation
	// capability. The source is left unchanged.
	ErrUnsupportedOperation = errors.New("iterate: unsupported operation")
)

// Specific argument errors.
var (
	// ErrNilSource is returned by every operation handed a nil source.
	// The only exceptions are [IsEmpty] and [NotEmpty], which treat nil
	// as an empty source.
	ErrNilSource = fmt.Errorf("%w: nil source", ErrInvalidArgument)

	// ErrNilOther is returned by [Zip] when the second source is nil.
	ErrNilOther = fmt.Errorf("%w: nil second source", ErrInvalidArgument)

	// ErrInvalidChunkSize is returned by [Chunk] when size <= 0.
	ErrInvalidChunkSize = fmt.Errorf("%w: chunk size must be greater than 0", ErrInvalidArgument)

	// ErrNegativeCount is returned by [Take] and [Drop] for a negative n.
	ErrNegativeCount = fmt.Errorf("%w: count must not be negative", ErrInvalidArgument)

	// ErrNotExactlyOne is returned by [GetOnly] when the source does
	// not hold exactly one element.
	ErrNotExactlyOne = fmt.Errorf("%w: source does not hold exactly one element", ErrInvalidArgument)
)
