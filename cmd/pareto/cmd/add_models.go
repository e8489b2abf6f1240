package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modelpareto/pareto/pkg/dataset"
)

var addModelsDryRun bool

// addModelsCmd represents the add-models command.
var addModelsCmd = &cobra.Command{
	Use:     "add-models <batch.json>",
	Short:   "Merge a batch of model records into the dataset",
	GroupID: "data",
	Long: `Merge model records from a JSON batch file into one destination file.
The batch names its destination with either "provider" (resolved to
models/<provider>.json) or an explicit "target_file"; the destination
must already exist.

New models are appended; existing models are updated field-by-field, so
fields absent from the batch record are preserved. Identical records are
skipped. Benchmark keys referenced by a model but missing from the
benchmark index are reported as advisory warnings.

Examples:
  pareto add-models new_models.json
  pareto add-models new_models.json --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runAddModels,
}

func init() {
	rootCmd.AddCommand(addModelsCmd)
	addModelsCmd.Flags().BoolVar(&addModelsDryRun, "dry-run", false,
		"Classify the batch without writing any file")
}

func runAddModels(cmd *cobra.Command, args []string) error {
	batch, err := dataset.ReadModelBatch(args[0])
	if err != nil {
		return err
	}

	ds := dataset.New(globalFlags.DataDir)
	result, err := ds.AddModels(batch, dataset.MergeOptions{DryRun: addModelsDryRun})
	if err != nil {
		return err
	}

	printResult(result, addModelsDryRun)

	if result.HasErrors() {
		cmd.SilenceUsage = true
		return fmt.Errorf("%d records failed", len(result.Errors))
	}
	return nil
}
