//go:build property

package scorecard

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestScorecardProperties checks that no mutation outside the card ever
// reaches internal state, for arbitrary score slices.
func TestScorecardProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(8642)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	genScores := gen.SliceOf(gen.IntRange(0, 1000))

	properties.Property("mutating the source slice never changes the card", prop.ForAll(
		func(scores []int) bool {
			card, err := New("ada", scores)
			if err != nil {
				return false
			}

			before := card.Scores()
			for i := range scores {
				scores[i] = -1
			}

			after := card.Scores()
			if len(before) != len(after) {
				return false
			}
			for i := range before {
				if before[i] != after[i] {
					return false
				}
			}
			return true
		},
		genScores,
	))

	properties.Property("mutating an exposed copy never changes the card", prop.ForAll(
		func(scores []int) bool {
			card, err := New("ada", scores)
			if err != nil {
				return false
			}

			exposed := card.Scores()
			for i := range exposed {
				exposed[i] = -1
			}

			for i, s := range card.Scores() {
				if s != scores[i] {
					return false
				}
			}
			return true
		},
		genScores,
	))

	properties.Property("total equals the sum of recorded scores", prop.ForAll(
		func(scores []int) bool {
			card, err := New("ada", scores)
			if err != nil {
				return false
			}

			expected := 0
			for _, s := range scores {
				expected += s
			}
			return card.Total() == expected
		},
		genScores,
	))

	properties.TestingRun(t)
}
