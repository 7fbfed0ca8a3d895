package seq

import (
	"sort"

	"github.com/dkoosis/drill/internal/errors"
)

// OrderedSet keeps unique elements sorted by a caller-supplied ordering.
// Two elements compare equal when the ordering ranks neither before the
// other, so uniqueness follows the ordering, not any notion of deep
// equality: an ordering that ignores a field treats elements differing
// only in that field as duplicates.
type OrderedSet[T any] struct {
	items   []T
	less    func(a, b T) bool
	version uint64
}

// NewOrderedSet creates an empty set ordered by less.
func NewOrderedSet[T any](less func(a, b T) bool) *OrderedSet[T] {
	return &OrderedSet[T]{less: less}
}

// search returns the insertion index for item and whether an element
// comparing equal to it is already there.
func (s *OrderedSet[T]) search(item T) (int, bool) {
	i := sort.Search(len(s.items), func(j int) bool {
		return !s.less(s.items[j], item)
	})
	if i < len(s.items) && !s.less(item, s.items[i]) {
		return i, true
	}
	return i, false
}

// Add inserts item, keeping the set sorted. Returns true when the item
// was new; an item comparing equal to an existing element is rejected and
// the existing element stays.
func (s *OrderedSet[T]) Add(item T) bool {
	i, exists := s.search(item)
	if exists {
		return false
	}

	var zero T
	s.items = append(s.items, zero)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = item
	s.version++
	return true
}

// Contains reports whether an element comparing equal to item is present.
func (s *OrderedSet[T]) Contains(item T) bool {
	_, exists := s.search(item)
	return exists
}

// Remove deletes the element comparing equal to item. Returns true when
// an element was removed.
func (s *OrderedSet[T]) Remove(item T) bool {
	i, exists := s.search(item)
	if !exists {
		return false
	}

	s.items = append(s.items[:i], s.items[i+1:]...)
	s.version++
	return true
}

// Len returns the number of elements.
func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the elements in sorted order.
func (s *OrderedSet[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Min returns the smallest element under the set's ordering.
func (s *OrderedSet[T]) Min() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[0], true
}

// Max returns the largest element under the set's ordering.
func (s *OrderedSet[T]) Max() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Iterator returns a cursor over the elements in sorted order, pinned to
// the set's current version.
func (s *OrderedSet[T]) Iterator() *SetIterator[T] {
	return &SetIterator[T]{
		set:     s,
		version: s.version,
		next:    0,
		last:    -1,
	}
}

// SetIterator walks an OrderedSet in sorted order and detects structural
// changes made behind its back.
type SetIterator[T any] struct {
	set     *OrderedSet[T]
	version uint64
	next    int
	last    int
}

// HasNext reports whether another element remains. It never trips the
// guard; callers learn about staleness from Next.
func (it *SetIterator[T]) HasNext() bool {
	return it.next < len(it.set.items)
}

// Next returns the next element, or a concurrent-modification error if
// the set gained or lost an element since the cursor was created.
func (it *SetIterator[T]) Next() (T, error) {
	var zero T
	if it.version != it.set.version {
		return zero, errors.NewConcurrentModification(
			errors.ErrCodeStaleIterator,
			"set modified during iteration",
		)
	}
	if it.next >= len(it.set.items) {
		return zero, errors.NewInvalidState(
			errors.ErrCodeExhaustedCursor,
			"iterator exhausted",
		)
	}

	item := it.set.items[it.next]
	it.last = it.next
	it.next++
	return item, nil
}

// Remove deletes the element most recently returned by Next, keeping the
// iterator valid.
func (it *SetIterator[T]) Remove() error {
	if it.version != it.set.version {
		return errors.NewConcurrentModification(
			errors.ErrCodeStaleIterator,
			"set modified during iteration",
		)
	}
	if it.last < 0 {
		return errors.NewInvalidState(
			errors.ErrCodeExhaustedCursor,
			"Remove without a preceding Next",
		)
	}

	it.set.items = append(it.set.items[:it.last], it.set.items[it.last+1:]...)
	it.set.version++
	it.next = it.last
	it.last = -1
	it.version = it.set.version
	return nil
}
