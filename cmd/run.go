package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkoosis/drill/internal/config"
	"github.com/dkoosis/drill/internal/di"
)

var runCmd = &cobra.Command{
	Use:     "run [name...]",
	Aliases: []string{"r"},
	Short:   "Run drills and print their transcripts",
	Long: `Run one or more drills by name and print their transcripts.

Examples:
  drill run overdraft             # One drill
  drill run overdraft fail-fast   # Several drills
  drill run --all                 # The whole catalog`,
	RunE: runRun,
}

var runAll bool

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runAll, "all", "a", false, "run every drill in the catalog")
}

func runRun(cmd *cobra.Command, args []string) error {
	if !runAll && len(args) == 0 {
		return fmt.Errorf("name at least one drill, or pass --all")
	}

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

	ctx := cmd.Context()

	if runAll {
		results, err := r.RunAll(ctx)
		if err != nil {
			return err
		}
		for i, result := range results {
			if i > 0 {
				fmt.Println()
			}
			fmt.Print(result.Transcript)
			if result.Err != nil {
				fmt.Fprintf(os.Stderr, "drill %s failed: %v\n", result.Drill, result.Err)
			}
		}
		return nil
	}

	for i, name := range args {
		result, err := r.Run(ctx, name)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(result.Transcript)
		if result.Err != nil {
			return fmt.Errorf("drill %s failed: %w", name, result.Err)
		}
	}

	return nil
}
