package cmd

import (
	"github.com/spf13/cobra"

	"github.com/modelpareto/pareto/internal/cmd/output"
	"github.com/modelpareto/pareto/pkg/dataset"
)

// queryCmd represents the query command.
var queryCmd = &cobra.Command{
	Use:     "query <model-id>",
	Short:   "Show one model record",
	GroupID: "data",
	Long: `Look up a single model by its identifier across the whole dataset
and show the full record plus the file it lives in.

The exit code is non-zero when no file contains the model.

Examples:
  pareto query gpt-4o
  pareto query claude-sonnet-4 -o yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	ds := dataset.New(globalFlags.DataDir)
	info, err := ds.QueryModel(args[0])
	if err != nil {
		cmd.SilenceUsage = true
		return err
	}

	format := output.Format(globalFlags.Output)
	// A full record nests too deep for a table; JSON reads better.
	if format == output.FormatTable || format == "" {
		format = output.FormatJSON
	}
	return output.FormatAny(info, format)
}
