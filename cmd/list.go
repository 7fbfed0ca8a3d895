package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/drill/internal/config"
	"github.com/dkoosis/drill/internal/di"
	"github.com/dkoosis/drill/internal/registry"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List all drills",
	Long: `List the drill catalog with topics and summaries.

Examples:
  drill list                      # Table format
  drill list -f json              # JSON output
  drill list --format yaml        # YAML output
  drill list -t seq               # Only the seq topic`,
	RunE: runList,
}

var (
	listFormat string
	listTopic  string
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listFormat, "format", "f", "", "output format (table, json, yaml)")
	listCmd.Flags().StringVarP(&listTopic, "topic", "t", "", "only drills for this topic")

	AddFlagValidation(listCmd, "format", ValidateFormat)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	container := di.NewServiceContainer(cfg)
	if err := container.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize service container: %w", err)
	}
	defer container.Shutdown(context.Background())

	reg, err := container.GetRegistry()
	if err != nil {
		return fmt.Errorf("failed to get drill registry: %w", err)
	}

	var drills []*registry.DrillInfo
	if listTopic != "" {
		drills = reg.GetByTopic(listTopic)
	} else {
		drills = reg.GetAll()
	}

	if len(drills) == 0 {
		fmt.Println("No drills found.")
		return nil
	}

	format := listFormat
	if format == "" {
		format = cfg.Output.Format
	}

	switch strings.ToLower(format) {
	case "json":
		return outputListJSON(drills)
	case "yaml":
		return outputListYAML(drills)
	case "table":
		return outputListTable(drills)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func listItems(drills []*registry.DrillInfo) []map[string]string {
	out := make([]map[string]string, len(drills))
	for i, drill := range drills {
		out[i] = map[string]string{
			"name":    drill.Name,
			"topic":   drill.Topic,
			"summary": drill.Summary,
		}
		if drill.Note != "" {
			out[i]["note"] = drill.Note
		}
	}
	return out
}

func outputListJSON(drills []*registry.DrillInfo) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(listItems(drills))
}

func outputListYAML(drills []*registry.DrillInfo) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer encoder.Close()
	return encoder.Encode(listItems(drills))
}

var topicCaser = cases.Title(language.English)

func outputListTable(drills []*registry.DrillInfo) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "TOPIC\tNAME\tSUMMARY")
	fmt.Fprintln(w, "-----\t----\t-------")

	lastTopic := ""
	for _, drill := range drills {
		topic := ""
		if drill.Topic != lastTopic {
			topic = topicCaser.String(drill.Topic)
			lastTopic = drill.Topic
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", topic, drill.Name, drill.Summary)
	}

	fmt.Fprintf(w, "\nTotal: %d drills\n", len(drills))

	return nil
}
