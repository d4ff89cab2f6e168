// Package iterate provides uniform bulk operations — filter, map,
// reduce, group, partition, zip, sort, min/max, membership — over any
// source that can enumerate its elements, without the caller knowing the
// source's concrete representation.
//
// # Capability-directed dispatch
//
// Every operation inspects the source's capabilities once and forwards
// the call to the most specific execution strategy that applies, in
// fixed precedence order:
//
//  1. a nil source fails with [ErrNilSource] ([IsEmpty] and [NotEmpty]
//     are the deliberate exceptions and treat nil as empty),
//  2. a source implementing the full [container.Rich] protocol executes
//     the operation itself,
//  3. an array-backed source runs on the array engine (package sliceiter),
//  4. an indexed source runs on the random-access engine (package indexiter),
//  5. anything else runs on the sequential engine (package seqiter).
//
// Which path executes is never observable in the result: for the same
// elements, every path returns the same elements in the same order
// (where the operation preserves order). Capability is a performance
// axis only.
//
// # Targets and result families
//
// Operations ending in Into append into a caller-supplied target and
// return it. The other forms build the target themselves: a source that
// knows its own family (a list, a set) decides what the result container
// looks like through [container.Species], so filtering a set yields a
// set; any other source yields a list, pre-sized when the source has a
// size hint.
//
// # Error model
//
// Failures are deterministic functions of the input, split into two
// classes: [ErrInvalidArgument] and [ErrUnsupportedOperation]. The
// absence of a match is not an error — lookups return a comma-ok flag.
// Caller-supplied functions are never wrapped or recovered: a panic in a
// predicate propagates unchanged. Passing a nil function panics, as with
// a nil comparator in the standard sort package.
//
// Operations run synchronously on the caller's goroutine and never
// retain the source or target after returning. A source must not be
// mutated while an operation over it is in progress.
package iterate
