package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modelpareto/pareto/internal/cmd/output"
	"github.com/modelpareto/pareto/pkg/dataset"
)

var (
	listProvider string
	listFamily   string
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List models in the dataset",
	GroupID: "data",
	Long: `List every model in the dataset, sorted by provider, family, and ID.

Filters narrow the listing; the exit code is non-zero when nothing
matches.

Examples:
  pareto list
  pareto list --provider OpenAI
  pareto list --family Claude -o json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listProvider, "provider", "", "Filter by provider")
	listCmd.Flags().StringVar(&listFamily, "family", "", "Filter by family")
}

func runList(cmd *cobra.Command, _ []string) error {
	ds := dataset.New(globalFlags.DataDir)
	summaries, err := ds.ListModels(dataset.ListFilter{
		Provider: listProvider,
		Family:   listFamily,
	})
	if err != nil {
		return err
	}

	if len(summaries) == 0 {
		cmd.SilenceUsage = true
		return fmt.Errorf("no models match")
	}

	return output.FormatModels(summaries, output.Format(globalFlags.Output))
}
