package cmd

import (
	"fmt"

	"github.com/modelpareto/pareto/internal/cmd/emoji"
	"github.com/modelpareto/pareto/pkg/dataset"
)

// printResult renders a merge result for human consumption. Every
// classified record is shown, grouped by outcome, so a dry run reads
// exactly like the real merge would.
func printResult(result *dataset.Result, dryRun bool) {
	if dryRun {
		fmt.Println("Dry run: no files were written.")
		fmt.Println()
	}

	if len(result.Added) > 0 {
		fmt.Printf("Added (%d):\n", len(result.Added))
		for _, id := range result.Added {
			fmt.Printf("  %s %s\n", emoji.Added, id)
		}
	}
	if len(result.Updated) > 0 {
		fmt.Printf("Updated (%d):\n", len(result.Updated))
		for _, id := range result.Updated {
			fmt.Printf("  %s %s\n", emoji.Updated, id)
		}
	}
	if len(result.Skipped) > 0 {
		fmt.Printf("Skipped (%d):\n", len(result.Skipped))
		for _, id := range result.Skipped {
			fmt.Printf("  %s %s\n", emoji.Skipped, id)
		}
	}
	if len(result.MissingBenchmarks) > 0 {
		fmt.Printf("Missing benchmark references (%d):\n", len(result.MissingBenchmarks))
		for _, ref := range result.MissingBenchmarks {
			fmt.Printf("  %s %s\n", emoji.Warning, ref)
		}
	}
	if len(result.Errors) > 0 {
		fmt.Printf("Errors (%d):\n", len(result.Errors))
		for _, msg := range result.Errors {
			fmt.Printf("  %s %s\n", emoji.Error, msg)
		}
	}

	if !result.HasChanges() && !result.HasErrors() {
		fmt.Println("Nothing to do.")
	}
}

// printReport renders a validation report.
func printReport(report *dataset.Report) {
	for _, msg := range report.Errors {
		fmt.Printf("%s %s\n", emoji.Error, msg)
	}
	for _, msg := range report.Warnings {
		fmt.Printf("%s %s\n", emoji.Warning, msg)
	}

	if report.Valid {
		fmt.Printf("%s Dataset is valid (%d warnings)\n", emoji.Success, len(report.Warnings))
	} else {
		fmt.Printf("%s Dataset is invalid: %d errors, %d warnings\n",
			emoji.Error, len(report.Errors), len(report.Warnings))
	}
}
