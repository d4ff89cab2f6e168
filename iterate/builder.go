package iterate

import (
	"github.com/hasbyte1/go-iterate/container"
	"github.com/hasbyte1/go-iterate/indexiter"
	"github.com/hasbyte1/go-iterate/list"
	"github.com/hasbyte1/go-iterate/seqiter"
	"github.com/hasbyte1/go-iterate/sliceiter"
)

// sizeHint returns the source's element count when it is known without
// traversal, else 0. Used only to pre-size targets.
func sizeHint[T any](src container.Enumerable[T]) int {
	if s, ok := src.(container.Sized); ok {
		return s.Len()
	}
	return 0
}

// newTarget builds the result container for an operation that was not
// handed one: the source's own family when it declares one, else a list
// sized by the source's hint.
func newTarget[T any](src container.Enumerable[T]) container.Target[T] {
	n := sizeHint(src)
	if sp, ok := src.(container.Species[T]); ok {
		return sp.NewEmpty(n)
	}
	return list.WithCapacity[T](n)
}

// each traverses src with the most specific engine available and calls
// fn per element. Used by the operations whose work happens entirely in
// fn (grouping, keyed aggregation, chunking), where self-dispatch cannot
// apply because the operation's result type is not expressible on the
// rich protocol.
func each[T any](src container.Enumerable[T], fn func(T)) {
	if ab, ok := src.(container.ArrayBacked[T]); ok {
		sliceiter.ForEach(ab.Backing(), fn)
		return
	}
	if ix, ok := src.(container.Indexed[T]); ok {
		indexiter.ForEach(ix, fn)
		return
	}
	seqiter.ForEach(src, fn)
}
