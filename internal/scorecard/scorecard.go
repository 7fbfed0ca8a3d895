// Package scorecard demonstrates defensive copying at trust boundaries: a
// Scorecard never aliases a caller's slice, so mutation on either side of
// the boundary cannot reach the other.
package scorecard

import (
	"fmt"
	"strings"

	"github.com/dkoosis/drill/internal/errors"
)

// Scorecard owns a player's scores. Both the constructor and every
// accessor copy, so internal state is reachable only through methods.
type Scorecard struct {
	player string
	scores []int
}

// New validates the player name and copies the caller's scores.
func New(player string, scores []int) (*Scorecard, error) {
	if strings.TrimSpace(player) == "" {
		return nil, errors.NewInvalidArgument(errors.ErrCodeBlankOwner, "player must not be blank")
	}
	for i, s := range scores {
		if s < 0 {
			return nil, errors.NewInvalidArgument(
				errors.ErrCodeNegativeOpening,
				fmt.Sprintf("score[%d] must be >= 0, got %d", i, s),
			)
		}
	}

	owned := make([]int, len(scores))
	copy(owned, scores)

	return &Scorecard{player: player, scores: owned}, nil
}

// Player returns the player name.
func (c *Scorecard) Player() string {
	return c.player
}

// Scores returns a copy of the scores. Mutating it never changes the card.
func (c *Scorecard) Scores() []int {
	out := make([]int, len(c.scores))
	copy(out, c.scores)
	return out
}

// Record appends a score through the boundary.
func (c *Scorecard) Record(score int) error {
	if score < 0 {
		return errors.NewInvalidArgument(
			errors.ErrCodeNegativeOpening,
			fmt.Sprintf("score must be >= 0, got %d", score),
		)
	}
	c.scores = append(c.scores, score)
	return nil
}

// Total returns the sum of all recorded scores.
func (c *Scorecard) Total() int {
	total := 0
	for _, s := range c.scores {
		total += s
	}
	return total
}

// Best returns the highest recorded score, or zero for an empty card.
func (c *Scorecard) Best() int {
	best := 0
	for _, s := range c.scores {
		if s > best {
			best = s
		}
	}
	return best
}

// String renders the card for transcripts.
func (c *Scorecard) String() string {
	return fmt.Sprintf("Scorecard{player=%q, scores=%v}", c.player, c.scores)
}
