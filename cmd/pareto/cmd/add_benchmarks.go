package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modelpareto/pareto/pkg/dataset"
)

var addBenchmarksDryRun bool

// addBenchmarksCmd represents the add-benchmarks command.
var addBenchmarksCmd = &cobra.Command{
	Use:     "add-benchmarks <batch.json>",
	Short:   "Merge a batch of benchmark records into the dataset",
	GroupID: "data",
	Long: `Merge benchmark records from a JSON batch file into their category
files. Each record carries an optional "category" key (knowledge, coding,
math, reasoning); records without one default to knowledge.

Records are classified independently: new keys are added, keys whose data
changed are updated, identical keys are skipped. A record targeting a
missing category file is reported as an error without stopping the rest
of the batch.

Examples:
  pareto add-benchmarks new_benchmarks.json
  pareto add-benchmarks new_benchmarks.json --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runAddBenchmarks,
}

func init() {
	rootCmd.AddCommand(addBenchmarksCmd)
	addBenchmarksCmd.Flags().BoolVar(&addBenchmarksDryRun, "dry-run", false,
		"Classify the batch without writing any file")
}

func runAddBenchmarks(cmd *cobra.Command, args []string) error {
	batch, err := dataset.ReadBenchmarkBatch(args[0])
	if err != nil {
		return err
	}

	ds := dataset.New(globalFlags.DataDir)
	result, err := ds.AddBenchmarks(batch, dataset.MergeOptions{DryRun: addBenchmarksDryRun})
	if err != nil {
		return err
	}

	printResult(result, addBenchmarksDryRun)

	if result.HasErrors() {
		cmd.SilenceUsage = true
		return fmt.Errorf("%d records failed", len(result.Errors))
	}
	return nil
}
