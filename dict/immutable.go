package dict

import "fmt"

// ImmutableMap is a frozen hash map from K to V. It carries no mutator
// methods, and every view it returns is a copy, so its state cannot be
// changed through any exposed surface.
type ImmutableMap[K comparable, V any] struct {
	entries map[K]V
}

// ImmutableMapFrom creates an ImmutableMap holding a copy of the
// entries of m.
func ImmutableMapFrom[K comparable, V any](m map[K]V) *ImmutableMap[K, V] {
	dst := make(map[K]V, len(m))
	for k, v := range m {
		dst[k] = v
	}
	return &ImmutableMap[K, V]{entries: dst}
}

// Len returns the number of entries.
func (m *ImmutableMap[K, V]) Len() int { return len(m.entries) }

// IsEmpty reports whether the map contains no entries.
func (m *ImmutableMap[K, V]) IsEmpty() bool { return len(m.entries) == 0 }

// Get returns the value stored under key together with a presence flag.
func (m *ImmutableMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// ContainsKey reports whether an entry exists for key.
func (m *ImmutableMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.entries[key]
	return ok
}

// Keys returns the keys in a new slice, in unspecified order.
// Mutating the slice does not affect the map.
func (m *ImmutableMap[K, V]) Keys() []K {
	out := make([]K, 0, len(m.entries))
	for k := range m.entries {
		out = append(out, k)
	}
	return out
}

// Values returns the values in a new slice, in unspecified order.
// Mutating the slice does not affect the map.
func (m *ImmutableMap[K, V]) Values() []V {
	out := make([]V, 0, len(m.entries))
	for _, v := range m.entries {
		out = append(out, v)
	}
	return out
}

// ForEach calls fn for every entry, in unspecified order.
func (m *ImmutableMap[K, V]) ForEach(fn func(key K, value V)) {
	for k, v := range m.entries {
		fn(k, v)
	}
}

// ToMap returns a mutable copy.
func (m *ImmutableMap[K, V]) ToMap() *Map[K, V] {
	return MapFrom(m.entries)
}

// ToImmutable returns the receiver itself: the map is already immutable,
// so the conversion is an identity, not a copy.
func (m *ImmutableMap[K, V]) ToImmutable() *ImmutableMap[K, V] { return m }

// String returns a human-readable representation of the entries.
func (m *ImmutableMap[K, V]) String() string { return fmt.Sprintf("%v", m.entries) }
