package drills

import (
	"fmt"
	"io"
	"strings"

	"github.com/dkoosis/drill/internal/registry"
)

const slicesTranscript = `=== slices and aliasing ===
original: [1 2 3 4 5]
reversed copy: [5 4 3 2 1]
original untouched: [1 2 3 4 5]
alias := original; alias[0] = 99
original sees it: [99 2 3 4 5]
clone := slices copy; clone[1] = 77
original does not: [99 2 3 4 5]
`

func runSlices(w io.Writer) error {
	fmt.Fprintln(w, "=== slices and aliasing ===")

	original := []int{1, 2, 3, 4, 5}
	fmt.Fprintln(w, "original:", original)

	reversed := make([]int, len(original))
	for i, v := range original {
		reversed[len(original)-1-i] = v
	}
	fmt.Fprintln(w, "reversed copy:", reversed)
	fmt.Fprintln(w, "original untouched:", original)

	alias := original
	alias[0] = 99
	fmt.Fprintln(w, "alias := original; alias[0] = 99")
	fmt.Fprintln(w, "original sees it:", original)

	clone := make([]int, len(original))
	copy(clone, original)
	clone[1] = 77
	fmt.Fprintln(w, "clone := slices copy; clone[1] = 77")
	fmt.Fprintln(w, "original does not:", original)

	return nil
}

const stringsTranscript = `=== string building ===
words: [go is fun]
joined: go-is-fun
builder result: go-is-fun!
upper: GO-IS-FUN!
contains "fun": true
original joined value unchanged: go-is-fun
`

func runStrings(w io.Writer) error {
	fmt.Fprintln(w, "=== string building ===")

	words := []string{"go", "is", "fun"}
	fmt.Fprintln(w, "words:", words)

	joined := strings.Join(words, "-")
	fmt.Fprintln(w, "joined:", joined)

	var b strings.Builder
	b.WriteString(joined)
	b.WriteString("!")
	built := b.String()
	fmt.Fprintln(w, "builder result:", built)

	fmt.Fprintln(w, "upper:", strings.ToUpper(built))
	fmt.Fprintf(w, "contains %q: %v\n", "fun", strings.Contains(built, "fun"))

	// strings are immutable values: deriving built never touched joined
	fmt.Fprintln(w, "original joined value unchanged:", joined)

	return nil
}

const branchingTranscript = `=== branching ===
score 76 -> grade C
cases break by default; no fallthrough unless asked
day 6 -> weekend
fallthrough is explicit and opt-in
cases visited from 2: [two three]
month 2 has 28 days
`

func runBranching(w io.Writer) error {
	fmt.Fprintln(w, "=== branching ===")

	// tagless switch reads as an if/else ladder
	score := 76
	var grade string
	switch {
	case score >= 90:
		grade = "A"
	case score >= 80:
		grade = "B"
	case score >= 70:
		grade = "C"
	default:
		grade = "D"
	}
	fmt.Fprintf(w, "score %d -> grade %s\n", score, grade)

	fmt.Fprintln(w, "cases break by default; no fallthrough unless asked")
	day := 6
	var dayName string
	switch day {
	case 1, 2, 3, 4, 5:
		dayName = "weekday"
	case 6, 7:
		dayName = "weekend"
	default:
		dayName = "invalid"
	}
	fmt.Fprintf(w, "day %d -> %s\n", day, dayName)

	fmt.Fprintln(w, "fallthrough is explicit and opt-in")
	var visited []string
	switch 2 {
	case 1:
		visited = append(visited, "one")
		fallthrough
	case 2:
		visited = append(visited, "two")
		fallthrough
	case 3:
		visited = append(visited, "three")
	default:
		visited = append(visited, "other")
	}
	fmt.Fprintln(w, "cases visited from 2:", visited)

	month := 2
	var days int
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		days = 31
	case 4, 6, 9, 11:
		days = 30
	case 2:
		days = 28
	}
	fmt.Fprintf(w, "month %d has %d days\n", month, days)

	return nil
}

const loopsTranscript = `=== loops ===
count 0..4: 0 1 2 3 4
odd values below 9: 1 3 5 7
sum of digits of 12345: 15
found 5 at row 1, col 1
range copies the element: [10 20 30]
index writes reach the slice: [100 200 300]
`

func runLoops(w io.Writer) error {
	fmt.Fprintln(w, "=== loops ===")

	fmt.Fprint(w, "count 0..4:")
	for i := 0; i < 5; i++ {
		fmt.Fprintf(w, " %d", i)
	}
	fmt.Fprintln(w)

	fmt.Fprint(w, "odd values below 9:")
	for i := 1; i <= 10; i++ {
		if i%2 == 0 {
			continue
		}
		if i == 9 {
			break
		}
		fmt.Fprintf(w, " %d", i)
	}
	fmt.Fprintln(w)

	// condition-only for is the while loop
	n := 12345
	sum := 0
	for rest := n; rest > 0; rest /= 10 {
		sum += rest % 10
	}
	fmt.Fprintf(w, "sum of digits of %d: %d\n", n, sum)

	grid := [][]int{{1, 2, 3}, {4, 5, 6}}
	target := 5
search:
	for r, row := range grid {
		for c, v := range row {
			if v == target {
				fmt.Fprintf(w, "found %d at row %d, col %d\n", target, r, c)
				break search
			}
		}
	}

	nums := []int{10, 20, 30}
	for _, v := range nums {
		v *= 10 // only the copy changes
	}
	fmt.Fprintln(w, "range copies the element:", nums)

	for i := range nums {
		nums[i] *= 10
	}
	fmt.Fprintln(w, "index writes reach the slice:", nums)

	return nil
}

func basicsDrills() []*registry.DrillInfo {
	return []*registry.DrillInfo{
		{
			Name:       "slices",
			Topic:      "basics",
			Summary:    "assignment aliases a slice; copying is explicit",
			Transcript: slicesTranscript,
			Run:        runSlices,
		},
		{
			Name:       "strings",
			Topic:      "basics",
			Summary:    "strings are immutable values; build with strings.Builder",
			Transcript: stringsTranscript,
			Run:        runStrings,
		},
		{
			Name:       "branching",
			Topic:      "basics",
			Summary:    "switch cases break on their own; fallthrough is opt-in",
			Transcript: branchingTranscript,
			Run:        runBranching,
		},
		{
			Name:       "loops",
			Topic:      "basics",
			Summary:    "for is the only loop; range hands out copies",
			Transcript: loopsTranscript,
			Run:        runLoops,
		},
	}
}
