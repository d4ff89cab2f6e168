// Package dict provides the key-value containers produced by the
// key-deriving operations in package iterate: Map (the ToMap and
// AggregateBy target), ImmutableMap (its frozen variant), and Multimap
// (the GroupBy result).
//
// All views handed out by these types — Keys, Values, ToGoMap — are
// copies: there is no path from a view back into the container's
// internal state, so a frozen map cannot be structurally mutated at all.
package dict

import (
	"fmt"

	"github.com/hasbyte1/go-iterate/container"
)

// Map is a mutable hash map from K to V. The zero value is not usable;
// construct with [NewMap] or [MapFrom].
type Map[K comparable, V any] struct {
	entries map[K]V
}

// NewMap creates an empty Map pre-sized for capacity entries.
// A negative capacity is treated as 0.
func NewMap[K comparable, V any](capacity int) *Map[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Map[K, V]{entries: make(map[K]V, capacity)}
}

// MapFrom creates a Map holding a copy of the entries of m.
func MapFrom[K comparable, V any](m map[K]V) *Map[K, V] {
	dst := make(map[K]V, len(m))
	for k, v := range m {
		dst[k] = v
	}
	return &Map[K, V]{entries: dst}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.entries) }

// IsEmpty reports whether the map contains no entries.
func (m *Map[K, V]) IsEmpty() bool { return len(m.entries) == 0 }

// Put stores value under key. An existing entry for key is overwritten:
// the last write wins.
func (m *Map[K, V]) Put(key K, value V) { m.entries[key] = value }

// Get returns the value stored under key together with a presence flag.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// GetOrPut returns the value stored under key, first storing factory()
// when the key is absent. It is the in-place aggregation hook: the
// returned value can be mutated through a pointer type without another
// map write.
func (m *Map[K, V]) GetOrPut(key K, factory func() V) V {
	if v, ok := m.entries[key]; ok {
		return v
	}
	v := factory()
	m.entries[key] = v
	return v
}

// ContainsKey reports whether an entry exists for key.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.entries[key]
	return ok
}

// Remove deletes the entry for key and reports whether it existed.
func (m *Map[K, V]) Remove(key K) bool {
	if _, ok := m.entries[key]; !ok {
		return false
	}
	delete(m.entries, key)
	return true
}

// Keys returns the keys in a new slice, in unspecified order.
// Mutating the slice does not affect the map.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, len(m.entries))
	for k := range m.entries {
		out = append(out, k)
	}
	return out
}

// Values returns the values in a new slice, in unspecified order.
// Mutating the slice does not affect the map.
func (m *Map[K, V]) Values() []V {
	out := make([]V, 0, len(m.entries))
	for _, v := range m.entries {
		out = append(out, v)
	}
	return out
}

// ForEach calls fn for every entry, in unspecified order.
func (m *Map[K, V]) ForEach(fn func(key K, value V)) {
	for k, v := range m.entries {
		fn(k, v)
	}
}

// ToGoMap returns the entries as a plain Go map (copied).
func (m *Map[K, V]) ToGoMap() map[K]V {
	out := make(map[K]V, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}

// ToImmutable returns an immutable copy of the map. Later mutations of
// the receiver do not affect the copy.
func (m *Map[K, V]) ToImmutable() *ImmutableMap[K, V] {
	return &ImmutableMap[K, V]{entries: m.ToGoMap()}
}

// String returns a human-readable representation of the entries.
func (m *Map[K, V]) String() string { return fmt.Sprintf("%v", m.entries) }

// compile-time capability checks for the containers in this package
var (
	_ container.Sized = (*Map[string, int])(nil)
	_ container.Sized = (*ImmutableMap[string, int])(nil)
	_ container.Sized = (*Multimap[string, int])(nil)
)
