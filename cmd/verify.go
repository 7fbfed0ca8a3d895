package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkoosis/drill/internal/config"
	"github.com/dkoosis/drill/internal/di"
)

var verifyCmd = &cobra.Command{
	Use:     "verify [name...]",
	Aliases: []string{"v"},
	Short:   "Re-run drills and diff against their recorded transcripts",
	Long: `Verify re-runs drills and compares the live output with the recorded
transcript, reporting the first divergent line. With no arguments the
whole catalog is verified. Exits non-zero on any drift.

Examples:
  drill verify                    # Whole catalog
  drill verify overdraft          # One drill`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	container := di.NewServiceContainer(cfg)
	if err := container.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize service container: %w", err)
	}
	defer container.Shutdown(context.Background())

	r, err := container.GetRunner()
	if err != nil {
		return fmt.Errorf("failed to get runner: %w", err)
	}
	reg, err := container.GetRegistry()
	if err != nil {
		return fmt.Errorf("failed to get drill registry: %w", err)
	}

	names := args
	if len(names) == 0 {
		for _, drill := range reg.GetAll() {
			names = append(names, drill.Name)
		}
	}

	ctx := cmd.Context()
	drifted := 0
	for _, name := range names {
		v, err := r.Verify(ctx, name)
		if err != nil {
			return err
		}
		if v.Match {
			fmt.Printf("ok    %s\n", name)
			continue
		}
		drifted++
		fmt.Printf("DRIFT %s at line %d\n", name, v.Line)
		fmt.Printf("      want: %s\n", v.Want)
		fmt.Printf("      got:  %s\n", v.Got)
	}

	if drifted > 0 {
		return fmt.Errorf("%d of %d drills drifted from their transcripts", drifted, len(names))
	}

	fmt.Printf("\nAll %d drills match their transcripts.\n", len(names))
	return nil
}
