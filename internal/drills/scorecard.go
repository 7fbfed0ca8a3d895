package drills

import (
	"fmt"
	"io"

	"github.com/dkoosis/drill/internal/registry"
	"github.com/dkoosis/drill/internal/scorecard"
)

const defensiveCopyTranscript = `=== defensive copy ===
card: Scorecard{player="ada", scores=[10 20 30]}
caller mutates source slice: [999 20 30]
card unchanged: Scorecard{player="ada", scores=[10 20 30]}
exposed copy mutated: [10 999 30]
card unchanged: Scorecard{player="ada", scores=[10 20 30]}
total=60 best=30
`

func runDefensiveCopy(w io.Writer) error {
	fmt.Fprintln(w, "=== defensive copy ===")

	raw := []int{10, 20, 30}
	card, err := scorecard.New("ada", raw)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "card:", card)

	raw[0] = 999
	fmt.Fprintln(w, "caller mutates source slice:", raw)
	fmt.Fprintln(w, "card unchanged:", card)

	exposed := card.Scores()
	exposed[1] = 999
	fmt.Fprintln(w, "exposed copy mutated:", exposed)
	fmt.Fprintln(w, "card unchanged:", card)

	fmt.Fprintf(w, "total=%d best=%d\n", card.Total(), card.Best())

	return nil
}

func scorecardDrills() []*registry.DrillInfo {
	return []*registry.DrillInfo{
		{
			Name:       "defensive-copy",
			Topic:      "scorecard",
			Summary:    "copying on ingest and expose keeps internal state unreachable from outside",
			Note:       "value-objects",
			Transcript: defensiveCopyTranscript,
			Run:        runDefensiveCopy,
		},
	}
}
