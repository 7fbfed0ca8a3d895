// Package seq provides ordered and keyed containers whose iterators are
// fail-fast: any structural change made by something other than the
// iterator's own cursor invalidates the iterator, and the next access
// reports a concurrent-modification error instead of reading through the
// change. Overwriting an existing value is not structural.
package seq

import (
	"fmt"

	"github.com/dkoosis/drill/internal/errors"
)

// List is an ordered container with a version stamp incremented on every
// structural mutation.
type List[T any] struct {
	items   []T
	version uint64
}

// NewList creates a list seeded with the given items.
func NewList[T any](items ...T) *List[T] {
	l := &List[T]{items: make([]T, len(items))}
	copy(l.items, items)
	return l
}

// Append adds an item to the end of the list.
func (l *List[T]) Append(item T) {
	l.items = append(l.items, item)
	l.version++
}

// Insert places an item at index i, shifting later items right.
func (l *List[T]) Insert(i int, item T) error {
	if i < 0 || i > len(l.items) {
		return errors.NewInvalidArgument(
			errors.ErrCodeValidationFailed,
			fmt.Sprintf("insert index %d out of range [0,%d]", i, len(l.items)),
		)
	}

	l.items = append(l.items, item)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = item
	l.version++
	return nil
}

// RemoveAt deletes the item at index i.
func (l *List[T]) RemoveAt(i int) error {
	if i < 0 || i >= len(l.items) {
		return errors.NewInvalidArgument(
			errors.ErrCodeValidationFailed,
			fmt.Sprintf("remove index %d out of range [0,%d)", i, len(l.items)),
		)
	}

	l.items = append(l.items[:i], l.items[i+1:]...)
	l.version++
	return nil
}

// Get returns the item at index i.
func (l *List[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(l.items) {
		return zero, errors.NewInvalidArgument(
			errors.ErrCodeValidationFailed,
			fmt.Sprintf("index %d out of range [0,%d)", i, len(l.items)),
		)
	}

	return l.items[i], nil
}

// Set overwrites the item at index i. Not a structural change: live
// iterators stay valid.
func (l *List[T]) Set(i int, item T) error {
	if i < 0 || i >= len(l.items) {
		return errors.NewInvalidArgument(
			errors.ErrCodeValidationFailed,
			fmt.Sprintf("index %d out of range [0,%d)", i, len(l.items)),
		)
	}

	l.items[i] = item
	return nil
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Items returns a copy of the underlying slice.
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Iterator returns a cursor over the list, pinned to its current version.
func (l *List[T]) Iterator() *ListIterator[T] {
	return &ListIterator[T]{
		list:    l,
		version: l.version,
		next:    0,
		last:    -1,
	}
}

// ListIterator walks a List and detects structural changes made behind
// its back.
type ListIterator[T any] struct {
	list    *List[T]
	version uint64
	next    int
	last    int // index handed out by the latest Next, -1 when consumed
}

// HasNext reports whether another item remains. It never trips the guard;
// callers learn about staleness from Next.
func (it *ListIterator[T]) HasNext() bool {
	return it.next < len(it.list.items)
}

// Next returns the next item, or a concurrent-modification error if the
// list changed structurally since the cursor was created.
func (it *ListIterator[T]) Next() (T, error) {
	var zero T
	if it.version != it.list.version {
		return zero, errors.NewConcurrentModification(
			errors.ErrCodeStaleIterator,
			"list modified during iteration",
		)
	}
	if it.next >= len(it.list.items) {
		return zero, errors.NewInvalidState(
			errors.ErrCodeExhaustedCursor,
			"iterator exhausted",
		)
	}

	item := it.list.items[it.next]
	it.last = it.next
	it.next++
	return item, nil
}

// Remove deletes the item most recently returned by Next. Removal through
// the cursor keeps the iterator valid.
func (it *ListIterator[T]) Remove() error {
	if it.version != it.list.version {
		return errors.NewConcurrentModification(
			errors.ErrCodeStaleIterator,
			"list modified during iteration",
		)
	}
	if it.last < 0 {
		return errors.NewInvalidState(
			errors.ErrCodeExhaustedCursor,
			"Remove without a preceding Next",
		)
	}

	if err := it.list.RemoveAt(it.last); err != nil {
		return err
	}

	it.next = it.last
	it.last = -1
	it.version = it.list.version
	return nil
}
