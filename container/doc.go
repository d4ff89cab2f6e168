// Package container defines the capability contracts that connect data
// sources to the iteration engines in this module.
//
// # Capabilities
//
// A source announces what it can do by implementing a subset of small
// interfaces. The dispatcher in package iterate inspects these once per
// call, picks the most specific traversal engine that applies, and the
// chosen engine produces a result that is identical — element for
// element — to what any other engine would have produced. Capability is
// a performance axis, never a behaviour axis.
//
//	Enumerable[T]   forward cursor (the only mandatory capability)
//	Sized           known element count, used as a capacity hint
//	Indexed[T]      O(1) positional access
//	ArrayBacked[T]  the primary slice-backed representation
//	Rich[T]         full native functional protocol (self-dispatch)
//	Target[T]       mutable result accumulator
//	Species[T]      family-preserving empty-target factory
//	Membership[T]   O(1) element lookup
//	Sortable[T]     in-place stable reordering
//	Removable[T]    in-place removal of matching elements
//
// # Adapters
//
// Plain caller data that is not wrapped in one of this module's container
// types can still participate through the adapter constructors:
//
//	container.SliceSource([]int{1, 2, 3})        // array-backed view
//	container.IndexedSource(n, func(i int) T …)  // virtual random access
//	container.SeqSource(slices.Values(items))    // sequential-only view
//
// Adapters are views, not copies: SliceSource reads (and, for sorting,
// reorders) the caller's own slice.
package container
