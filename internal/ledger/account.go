// Package ledger implements a validated bank-account value object. An
// Account can only be obtained through OpenAccount, which rejects invalid
// input atomically: no account value is observable in an invalid state.
package ledger

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dkoosis/drill/internal/errors"
)

// Account holds a balance in cents for a named owner. The zero value is
// not usable; construct through OpenAccount.
type Account struct {
	number  uuid.UUID
	owner   string
	balance int64
}

// OpenAccount validates the raw inputs and returns a new account, or an
// invalid-argument error. Failure is atomic.
func OpenAccount(owner string, opening int64) (*Account, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, errors.NewInvalidArgument(errors.ErrCodeBlankOwner, "owner must not be blank")
	}
	if opening < 0 {
		return nil, errors.NewInvalidArgument(
			errors.ErrCodeNegativeOpening,
			fmt.Sprintf("opening balance must be >= 0, got %d", opening),
		).WithContext("opening", opening)
	}

	return &Account{
		number:  uuid.New(),
		owner:   owner,
		balance: opening,
	}, nil
}

// Number returns the account number.
func (a *Account) Number() uuid.UUID {
	return a.number
}

// Owner returns the account owner.
func (a *Account) Owner() string {
	return a.owner
}

// Balance returns the current balance in cents.
func (a *Account) Balance() int64 {
	return a.balance
}

// Deposit adds a positive amount to the balance.
func (a *Account) Deposit(amount int64) error {
	if amount <= 0 {
		return errors.NewInvalidArgument(
			errors.ErrCodeNonPositive,
			fmt.Sprintf("deposit amount must be > 0, got %d", amount),
		)
	}

	a.balance += amount
	return nil
}

// Withdraw removes a positive amount from the balance. Withdrawing more
// than the balance fails with an invalid-state error and leaves the
// balance unchanged.
func (a *Account) Withdraw(amount int64) error {
	if amount <= 0 {
		return errors.NewInvalidArgument(
			errors.ErrCodeNonPositive,
			fmt.Sprintf("withdraw amount must be > 0, got %d", amount),
		)
	}
	if amount > a.balance {
		return errors.NewInvalidState(
			errors.ErrCodeOverdraft,
			fmt.Sprintf("withdraw %d exceeds balance %d", amount, a.balance),
		).WithContext("requested", amount).WithContext("balance", a.balance)
	}

	a.balance -= amount
	return nil
}

// String renders the account for transcripts. The account number is
// omitted so output stays deterministic.
func (a *Account) String() string {
	return fmt.Sprintf("Account{owner=%q, balance=%d}", a.owner, a.balance)
}

// OpenRequest is the boundary shape for opening an account, validated by
// struct tags before the domain constructor runs.
type OpenRequest struct {
	Owner   string `json:"owner" validate:"required,min=1"`
	Opening int64  `json:"opening" validate:"gte=0"`
}

var validate = validator.New()

// Open validates the request shape and then opens the account. Tag
// validation failures surface as invalid-argument errors so callers see
// one taxonomy regardless of which layer rejected the input.
func Open(req OpenRequest) (*Account, error) {
	if err := validate.Struct(req); err != nil {
		return nil, (&errors.DrillError{
			Kind:        errors.KindInvalidArgument,
			Code:        errors.ErrCodeValidationFailed,
			Message:     "invalid open request",
			Cause:       err,
			Recoverable: true,
		})
	}

	return OpenAccount(req.Owner, req.Opening)
}
