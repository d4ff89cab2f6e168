package dict

import (
	"fmt"

	"github.com/hasbyte1/go-iterate/list"
)

// Multimap maps each key to an ordered group of values. It is the
// GroupBy result type: values within a group keep the relative order in
// which they were put, and keys keep their first-insertion order for
// deterministic iteration.
type Multimap[K comparable, V any] struct {
	groups map[K]*list.List[V]
	keys   []K // first-insertion order
}

// NewMultimap creates an empty Multimap.
func NewMultimap[K comparable, V any]() *Multimap[K, V] {
	return &Multimap[K, V]{groups: make(map[K]*list.List[V])}
}

// Put appends value to the group for key, creating the group when key is
// new.
func (m *Multimap[K, V]) Put(key K, value V) {
	group, ok := m.groups[key]
	if !ok {
		group = list.New[V]()
		m.groups[key] = group
		m.keys = append(m.keys, key)
	}
	group.Append(value)
}

// PutAll appends every value to the group for key, in order.
func (m *Multimap[K, V]) PutAll(key K, values ...V) {
	for _, v := range values {
		m.Put(key, v)
	}
}

// Get returns the group for key. The group is never nil: an absent key
// yields a fresh empty list that is not stored in the multimap.
func (m *Multimap[K, V]) Get(key K) *list.List[V] {
	if group, ok := m.groups[key]; ok {
		return group
	}
	return list.New[V]()
}

// ContainsKey reports whether key has a group.
func (m *Multimap[K, V]) ContainsKey(key K) bool {
	_, ok := m.groups[key]
	return ok
}

// Len returns the total number of key-value pairs across all groups.
func (m *Multimap[K, V]) Len() int {
	n := 0
	for _, group := range m.groups {
		n += group.Len()
	}
	return n
}

// KeyLen returns the number of distinct keys.
func (m *Multimap[K, V]) KeyLen() int { return len(m.keys) }

// IsEmpty reports whether the multimap holds no pairs.
func (m *Multimap[K, V]) IsEmpty() bool { return len(m.keys) == 0 }

// Keys returns the keys in first-insertion order (copied).
func (m *Multimap[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// ForEach calls fn for every key-value pair: keys in first-insertion
// order, values within a key in put order.
func (m *Multimap[K, V]) ForEach(fn func(key K, value V)) {
	for _, k := range m.keys {
		for v := range m.groups[k].Elements() {
			fn(k, v)
		}
	}
}

// ForEachKey calls fn once per key, in first-insertion order, with the
// key's group.
func (m *Multimap[K, V]) ForEachKey(fn func(key K, group *list.List[V])) {
	for _, k := range m.keys {
		fn(k, m.groups[k])
	}
}

// String returns a human-readable representation of the groups, keys in
// first-insertion order.
func (m *Multimap[K, V]) String() string {
	out := make(map[K][]V, len(m.keys))
	for _, k := range m.keys {
		out[k] = m.groups[k].ToSlice()
	}
	return fmt.Sprintf("%v", out)
}
