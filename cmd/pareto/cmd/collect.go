package cmd

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/modelpareto/pareto/internal/cmd/emoji"
	"github.com/modelpareto/pareto/internal/scrape"
	"github.com/modelpareto/pareto/pkg/dataset"
	"github.com/modelpareto/pareto/pkg/errors"
)

var (
	collectSources string
	collectModel   string
	collectDryRun  bool
)

// collectCmd represents the collect command.
var collectCmd = &cobra.Command{
	Use:     "collect",
	Short:   "Collect current pricing from provider pages",
	GroupID: "collect",
	Long: `Fetch provider pricing pages, extract current prices with the Gemini
API, and merge the results into the dataset.

One provider failing never stops the run: its failure is reported and the
remaining providers are still collected. Merging honors the same
classification rules as add-models, and --dry-run reports what would
change without writing anything.

Requires GEMINI_API_KEY (or GOOGLE_API_KEY) in the environment or an
.env file.

Examples:
  pareto collect --dry-run
  pareto collect --sources sources.yaml
  pareto collect --gemini-model gemini-2.0-flash`,
	Args: cobra.NoArgs,
	RunE: runCollect,
}

func init() {
	rootCmd.AddCommand(collectCmd)
	collectCmd.Flags().StringVar(&collectSources, "sources", "",
		"YAML file listing provider pricing pages (default: built-in sources)")
	collectCmd.Flags().StringVar(&collectModel, "gemini-model", "",
		"Gemini model used for extraction")
	collectCmd.Flags().BoolVar(&collectDryRun, "dry-run", false,
		"Collect and classify without writing any file")
}

func runCollect(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	sources, err := scrape.LoadSources(collectSources)
	if err != nil {
		return err
	}

	apiKey := viper.GetString("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = viper.GetString("GOOGLE_API_KEY")
	}
	parser, err := scrape.NewGeminiParser(ctx, apiKey, collectModel)
	if err != nil {
		if stderrors.Is(err, errors.ErrAPIKeyRequired) {
			cmd.SilenceUsage = true
			return fmt.Errorf("GEMINI_API_KEY not set: %w", err)
		}
		return err
	}

	scraper := scrape.NewScraper(scrape.NewTransport(), parser)
	batches, failures := scraper.CollectPricing(ctx, sources)

	for _, failure := range failures {
		fmt.Printf("%s %v\n", emoji.Error, failure)
	}

	ds := dataset.New(globalFlags.DataDir)
	failed := len(failures)
	for _, batch := range batches {
		fmt.Printf("\n%s %s (%d models)\n", emoji.Info, batch.Provider, len(batch.Models))
		result, err := ds.AddModels(&batch, dataset.MergeOptions{DryRun: collectDryRun})
		if err != nil {
			return err
		}
		printResult(result, collectDryRun)
		if result.HasErrors() {
			failed++
		}
	}

	if failed > 0 {
		cmd.SilenceUsage = true
		return fmt.Errorf("%d providers had failures", failed)
	}
	return nil
}
