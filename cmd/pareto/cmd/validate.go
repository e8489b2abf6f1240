package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modelpareto/pareto/internal/cmd/output"
	"github.com/modelpareto/pareto/pkg/dataset"
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:     "validate",
	Short:   "Validate dataset integrity",
	GroupID: "data",
	Long: `Validate the whole dataset and report every finding.

Checks:
  - benchmark IDs are unique across category files (error)
  - model IDs are unique across all model files (error)
  - benchmark references in models resolve to known benchmarks (warning)

Warnings never make the dataset invalid; errors always do. The exit code
is non-zero when the dataset is invalid.

Examples:
  pareto validate
  pareto validate -o json`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	ds := dataset.New(globalFlags.DataDir)
	report, err := ds.Validate()
	if err != nil {
		return err
	}

	format := output.Format(globalFlags.Output)
	if format == output.FormatTable || format == "" {
		printReport(report)
	} else {
		if err := output.FormatAny(report, format); err != nil {
			return err
		}
	}

	if !report.Valid {
		cmd.SilenceUsage = true
		return fmt.Errorf("dataset is invalid: %d errors", len(report.Errors))
	}
	return nil
}
