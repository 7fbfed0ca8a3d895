package drills

import (
	"fmt"
	"io"

	"github.com/dkoosis/drill/internal/registry"
	"github.com/dkoosis/drill/internal/seq"
)

const failFastTranscript = `=== fail-fast iteration ===
list: [alpha beta gamma]
next: alpha
append delta while iterating
next failed: [ERR_STALE_ITERATOR] concurrent_modification: list modified during iteration
overwrite is not structural
next after Set: beta
`

func runFailFast(w io.Writer) error {
	fmt.Fprintln(w, "=== fail-fast iteration ===")

	list := seq.NewList("alpha", "beta", "gamma")
	fmt.Fprintln(w, "list:", list.Items())

	it := list.Iterator()
	v, err := it.Next()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "next:", v)

	fmt.Fprintln(w, "append delta while iterating")
	list.Append("delta")

	if _, err := it.Next(); err != nil {
		fmt.Fprintln(w, "next failed:", err)
	}

	fmt.Fprintln(w, "overwrite is not structural")
	fresh := list.Iterator()
	if _, err := fresh.Next(); err != nil {
		return err
	}
	if err := list.Set(0, "ALPHA"); err != nil {
		return err
	}
	v, err = fresh.Next()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "next after Set:", v)

	return nil
}

const cursorRemovalTranscript = `=== cursor-owned removal ===
list: [1 2 3 4 5 6]
removing even values through the cursor
kept: 1
kept: 3
kept: 5
list after: [1 3 5]
`

func runCursorRemoval(w io.Writer) error {
	fmt.Fprintln(w, "=== cursor-owned removal ===")

	list := seq.NewList(1, 2, 3, 4, 5, 6)
	fmt.Fprintln(w, "list:", list.Items())

	fmt.Fprintln(w, "removing even values through the cursor")
	it := list.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return err
		}
		if v%2 == 0 {
			if err := it.Remove(); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintln(w, "kept:", v)
	}

	fmt.Fprintln(w, "list after:", list.Items())

	return nil
}

const sortedMapTranscript = `=== sorted map ===
keys in order: [apple banana cherry]
apple -> 1
overwrite apple while iterating (not structural)
next: apple=10
delete banana while iterating (structural)
next failed: [ERR_STALE_ITERATOR] concurrent_modification: map modified during iteration
`

func runSortedMap(w io.Writer) error {
	fmt.Fprintln(w, "=== sorted map ===")

	m := seq.NewSortedMap[int]()
	m.Put("cherry", 3)
	m.Put("apple", 1)
	m.Put("banana", 2)
	fmt.Fprintln(w, "keys in order:", m.Keys())

	v, _ := m.Get("apple")
	fmt.Fprintln(w, "apple ->", v)

	it := m.Iterator()
	fmt.Fprintln(w, "overwrite apple while iterating (not structural)")
	m.Put("apple", 10)

	entry, err := it.Next()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "next: %s=%d\n", entry.Key, entry.Value)

	fmt.Fprintln(w, "delete banana while iterating (structural)")
	m.Delete("banana")

	if _, err := it.Next(); err != nil {
		fmt.Fprintln(w, "next failed:", err)
	}

	return nil
}

const orderedSetTranscript = `=== ordered set ===
ordering by rating only
add {asha 1000}: true
add {ravi 1000}: false
members: [{asha 1000}]
ordering by rating, then name
add {asha 1000}: true
add {ravi 1000}: true
add {meera 900}: true
members: [{meera 900} {asha 1000} {ravi 1000}]
add while iterating (structural)
next failed: [ERR_STALE_ITERATOR] concurrent_modification: set modified during iteration
`

type entrant struct {
	name   string
	rating int
}

func runOrderedSet(w io.Writer) error {
	fmt.Fprintln(w, "=== ordered set ===")

	byRating := func(a, b entrant) bool { return a.rating < b.rating }

	fmt.Fprintln(w, "ordering by rating only")
	s := seq.NewOrderedSet(byRating)
	for _, e := range []entrant{{"asha", 1000}, {"ravi", 1000}} {
		fmt.Fprintf(w, "add %v: %v\n", e, s.Add(e))
	}
	fmt.Fprintln(w, "members:", s.Items())

	byRatingThenName := func(a, b entrant) bool {
		if a.rating != b.rating {
			return a.rating < b.rating
		}
		return a.name < b.name
	}

	fmt.Fprintln(w, "ordering by rating, then name")
	s = seq.NewOrderedSet(byRatingThenName)
	for _, e := range []entrant{{"asha", 1000}, {"ravi", 1000}, {"meera", 900}} {
		fmt.Fprintf(w, "add %v: %v\n", e, s.Add(e))
	}
	fmt.Fprintln(w, "members:", s.Items())

	it := s.Iterator()
	fmt.Fprintln(w, "add while iterating (structural)")
	s.Add(entrant{"zoya", 1100})

	if _, err := it.Next(); err != nil {
		fmt.Fprintln(w, "next failed:", err)
	}

	return nil
}

func seqDrills() []*registry.DrillInfo {
	return []*registry.DrillInfo{
		{
			Name:       "fail-fast",
			Topic:      "seq",
			Summary:    "structural mutation outside the cursor is detected, never silently tolerated",
			Note:       "fail-fast-iteration",
			Transcript: failFastTranscript,
			Run:        runFailFast,
		},
		{
			Name:       "cursor-removal",
			Topic:      "seq",
			Summary:    "removal during traversal is only safe through the cursor's own Remove",
			Note:       "fail-fast-iteration",
			Transcript: cursorRemovalTranscript,
			Run:        runCursorRemoval,
		},
		{
			Name:       "sorted-map",
			Topic:      "seq",
			Summary:    "keyed containers fail fast too; value overwrite is not structural",
			Note:       "fail-fast-iteration",
			Transcript: sortedMapTranscript,
			Run:        runSortedMap,
		},
		{
			Name:       "ordered-set",
			Topic:      "seq",
			Summary:    "set uniqueness follows the ordering; compare-equal means duplicate",
			Note:       "fail-fast-iteration",
			Transcript: orderedSetTranscript,
			Run:        runOrderedSet,
		},
	}
}
