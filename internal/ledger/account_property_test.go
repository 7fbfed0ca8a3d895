//go:build property

package ledger

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dkoosis/drill/internal/errors"
)

// TestAccountProperties validates the construction and withdrawal invariants
// for all inputs, not just hand-picked cases.
func TestAccountProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("every negative opening is rejected", prop.ForAll(
		func(opening int64) bool {
			account, err := OpenAccount("A-1", opening)
			return account == nil && errors.IsInvalidArgument(err)
		},
		gen.Int64Range(-1_000_000_000, -1),
	))

	properties.Property("every non-negative opening succeeds with that balance", prop.ForAll(
		func(opening int64) bool {
			account, err := OpenAccount("A-1", opening)
			return err == nil && account.Balance() == opening
		},
		gen.Int64Range(0, 1_000_000_000),
	))

	properties.Property("overdraft always fails and never moves the balance", prop.ForAll(
		func(opening int64, over int64) bool {
			account, err := OpenAccount("A-1", opening)
			if err != nil {
				return false
			}

			withdrawErr := account.Withdraw(opening + over)
			return errors.IsInvalidState(withdrawErr) && account.Balance() == opening
		},
		gen.Int64Range(0, 1_000_000),
		gen.Int64Range(1, 1_000_000),
	))

	properties.Property("deposit then withdraw of the same amount is identity", prop.ForAll(
		func(opening int64, amount int64) bool {
			account, err := OpenAccount("A-1", opening)
			if err != nil {
				return false
			}

			if err := account.Deposit(amount); err != nil {
				return false
			}
			if err := account.Withdraw(amount); err != nil {
				return false
			}
			return account.Balance() == opening
		},
		gen.Int64Range(0, 1_000_000),
		gen.Int64Range(1, 1_000_000),
	))

	properties.TestingRun(t)
}
