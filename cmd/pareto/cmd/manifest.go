package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modelpareto/pareto/internal/cmd/emoji"
	"github.com/modelpareto/pareto/pkg/dataset"
)

// manifestCmd represents the manifest command.
var manifestCmd = &cobra.Command{
	Use:     "manifest",
	Short:   "Rebuild the model file manifest",
	GroupID: "data",
	Long: `Rebuild manifest.json at the dataset root from the model tree.

The manifest lists every model file by root-relative path so consumers
can find the files without walking the tree. Run it after adding or
removing model files.

Examples:
  pareto manifest`,
	Args: cobra.NoArgs,
	RunE: runManifest,
}

func init() {
	rootCmd.AddCommand(manifestCmd)
}

func runManifest(cmd *cobra.Command, _ []string) error {
	ds := dataset.New(globalFlags.DataDir)
	manifest, err := ds.WriteManifest()
	if err != nil {
		cmd.SilenceUsage = true
		return err
	}

	fmt.Printf("%s Updated %s with %d model files\n",
		emoji.Success, dataset.ManifestFileName, len(manifest.ModelFiles))
	return nil
}
