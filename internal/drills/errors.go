package drills

import (
	"fmt"
	"io"

	"github.com/dkoosis/drill/internal/errors"
	"github.com/dkoosis/drill/internal/ledger"
	"github.com/dkoosis/drill/internal/registry"
)

const taxonomyTranscript = `=== error kinds ===
bad input -> invalid_argument (recoverable=true)
bad transition -> invalid_state (recoverable=true)
stale cursor -> concurrent_modification (recoverable=false)
classifying a real failure:
withdraw on a fresh account: [ERR_OVERDRAFT] invalid_state: withdraw 50 exceeds balance 0
kind=invalid_state recoverable=true
`

func runTaxonomy(w io.Writer) error {
	fmt.Fprintln(w, "=== error kinds ===")

	samples := []struct {
		label string
		err   error
	}{
		{"bad input", errors.NewInvalidArgument(errors.ErrCodeNonPositive, "amount must be > 0")},
		{"bad transition", errors.NewInvalidState(errors.ErrCodeOverdraft, "balance exceeded")},
		{"stale cursor", errors.NewConcurrentModification(errors.ErrCodeStaleIterator, "modified during iteration")},
	}
	for _, s := range samples {
		fmt.Fprintf(w, "%s -> %s (recoverable=%v)\n", s.label, errors.KindOf(s.err), errors.IsRecoverable(s.err))
	}

	fmt.Fprintln(w, "classifying a real failure:")
	account, err := ledger.OpenAccount("A-1", 0)
	if err != nil {
		return err
	}

	werr := account.Withdraw(50)
	fmt.Fprintln(w, "withdraw on a fresh account:", werr)
	fmt.Fprintf(w, "kind=%s recoverable=%v\n", errors.KindOf(werr), errors.IsRecoverable(werr))

	return nil
}

func errorDrills() []*registry.DrillInfo {
	return []*registry.DrillInfo{
		{
			Name:       "taxonomy",
			Topic:      "errors",
			Summary:    "branch on error kind, not message text",
			Note:       "error-handling",
			Transcript: taxonomyTranscript,
			Run:        runTaxonomy,
		},
	}
}
