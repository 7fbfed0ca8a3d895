package drills

import (
	"fmt"
	"io"

	"github.com/dkoosis/drill/internal/ledger"
	"github.com/dkoosis/drill/internal/registry"
)

const constructionTranscript = `=== constructor validation ===
blocked: [ERR_BLANK_OWNER] invalid_argument: owner must not be blank
blocked: [ERR_NEGATIVE_OPENING] invalid_argument: opening balance must be >= 0, got -500
opened: Account{owner="A-1", balance=100}
id length=3
`

func runConstruction(w io.Writer) error {
	fmt.Fprintln(w, "=== constructor validation ===")

	if _, err := ledger.OpenAccount("  ", 100); err != nil {
		fmt.Fprintln(w, "blocked:", err)
	}
	if _, err := ledger.OpenAccount("A-1", -500); err != nil {
		fmt.Fprintln(w, "blocked:", err)
	}

	account, err := ledger.OpenAccount("A-1", 100)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "opened:", account)
	fmt.Fprintf(w, "id length=%d\n", len(account.Owner()))

	return nil
}

const overdraftTranscript = `=== overdraft protection ===
opened: Account{owner="A-1", balance=100}
deposit 50 -> balance 150
withdraw 40 -> balance 110
blocked: [ERR_OVERDRAFT] invalid_state: withdraw 500 exceeds balance 110
balance unchanged: 110
`

func runOverdraft(w io.Writer) error {
	fmt.Fprintln(w, "=== overdraft protection ===")

	account, err := ledger.OpenAccount("A-1", 100)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "opened:", account)

	if err := account.Deposit(50); err != nil {
		return err
	}
	fmt.Fprintf(w, "deposit 50 -> balance %d\n", account.Balance())

	if err := account.Withdraw(40); err != nil {
		return err
	}
	fmt.Fprintf(w, "withdraw 40 -> balance %d\n", account.Balance())

	if err := account.Withdraw(500); err != nil {
		fmt.Fprintln(w, "blocked:", err)
	}
	fmt.Fprintf(w, "balance unchanged: %d\n", account.Balance())

	return nil
}

func ledgerDrills() []*registry.DrillInfo {
	return []*registry.DrillInfo{
		{
			Name:       "construction",
			Topic:      "ledger",
			Summary:    "constructor validation fails atomically, so no invalid account is observable",
			Note:       "value-objects",
			Transcript: constructionTranscript,
			Run:        runConstruction,
		},
		{
			Name:       "overdraft",
			Topic:      "ledger",
			Summary:    "withdrawing more than the balance fails and leaves the balance unchanged",
			Note:       "value-objects",
			Transcript: overdraftTranscript,
			Run:        runOverdraft,
		},
	}
}
