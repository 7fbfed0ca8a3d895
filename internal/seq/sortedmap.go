package seq

import (
	"sort"

	"github.com/dkoosis/drill/internal/errors"
)

// SortedMap keeps string keys in ascending order. Adding or deleting a key
// is structural; overwriting the value of an existing key is not.
type SortedMap[V any] struct {
	keys    []string
	values  map[string]V
	version uint64
}

// Entry is one key/value pair handed out during iteration.
type Entry[V any] struct {
	Key   string
	Value V
}

// NewSortedMap creates an empty sorted map.
func NewSortedMap[V any]() *SortedMap[V] {
	return &SortedMap[V]{
		values: make(map[string]V),
	}
}

// Put inserts or overwrites. Returns true when the key was new.
func (m *SortedMap[V]) Put(key string, value V) bool {
	if _, exists := m.values[key]; exists {
		m.values[key] = value
		return false
	}

	i := sort.SearchStrings(m.keys, key)
	m.keys = append(m.keys, "")
	copy(m.keys[i+1:], m.keys[i:])
	m.keys[i] = key
	m.values[key] = value
	m.version++
	return true
}

// Get returns the value for key.
func (m *SortedMap[V]) Get(key string) (V, bool) {
	value, exists := m.values[key]
	return value, exists
}

// Delete removes key. Returns true when the key existed.
func (m *SortedMap[V]) Delete(key string) bool {
	if _, exists := m.values[key]; !exists {
		return false
	}

	i := sort.SearchStrings(m.keys, key)
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	delete(m.values, key)
	m.version++
	return true
}

// Len returns the number of entries.
func (m *SortedMap[V]) Len() int {
	return len(m.keys)
}

// Keys returns a copy of the keys in ascending order.
func (m *SortedMap[V]) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Iterator returns a cursor over the entries in key order, pinned to the
// map's current version.
func (m *SortedMap[V]) Iterator() *MapIterator[V] {
	return &MapIterator[V]{
		m:       m,
		version: m.version,
		next:    0,
		last:    -1,
	}
}

// MapIterator walks a SortedMap in key order and detects structural
// changes made behind its back.
type MapIterator[V any] struct {
	m       *SortedMap[V]
	version uint64
	next    int
	last    int
}

// HasNext reports whether another entry remains.
func (it *MapIterator[V]) HasNext() bool {
	return it.next < len(it.m.keys)
}

// Next returns the next entry, or a concurrent-modification error if the
// map gained or lost a key since the cursor was created.
func (it *MapIterator[V]) Next() (Entry[V], error) {
	if it.version != it.m.version {
		return Entry[V]{}, errors.NewConcurrentModification(
			errors.ErrCodeStaleIterator,
			"map modified during iteration",
		)
	}
	if it.next >= len(it.m.keys) {
		return Entry[V]{}, errors.NewInvalidState(
			errors.ErrCodeExhaustedCursor,
			"iterator exhausted",
		)
	}

	key := it.m.keys[it.next]
	it.last = it.next
	it.next++
	return Entry[V]{Key: key, Value: it.m.values[key]}, nil
}

// Remove deletes the entry most recently returned by Next, keeping the
// iterator valid.
func (it *MapIterator[V]) Remove() error {
	if it.version != it.m.version {
		return errors.NewConcurrentModification(
			errors.ErrCodeStaleIterator,
			"map modified during iteration",
		)
	}
	if it.last < 0 {
		return errors.NewInvalidState(
			errors.ErrCodeExhaustedCursor,
			"Remove without a preceding Next",
		)
	}

	it.m.Delete(it.m.keys[it.last])
	it.next = it.last
	it.last = -1
	it.version = it.m.version
	return nil
}
