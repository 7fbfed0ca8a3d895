package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dkoosis/drill/internal/config"
	"github.com/dkoosis/drill/internal/di"
)

var notesCmd = &cobra.Command{
	Use:     "notes [name]",
	Aliases: []string{"n"},
	Short:   "List study notes or print one",
	Long: `With no arguments, list the available study notes. With a name,
print that note.

Examples:
  drill notes                     # List notes
  drill notes value-objects       # Print one note`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNotes,
}

func init() {
	rootCmd.AddCommand(notesCmd)
}

func runNotes(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	container := di.NewServiceContainer(cfg)
	if err := container.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize service container: %w", err)
	}
	defer container.Shutdown(context.Background())

	catalog, err := container.GetNotes()
	if err != nil {
		return fmt.Errorf("failed to load notes: %w", err)
	}

	if len(args) == 1 {
		note, err := catalog.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Print(note.Body)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "NAME\tTITLE")
	fmt.Fprintln(w, "----\t-----")
	for _, note := range catalog.List() {
		fmt.Fprintf(w, "%s\t%s\n", note.Name, note.Title)
	}
	fmt.Fprintf(w, "\nTotal: %d notes\n", catalog.Len())

	return nil
}
