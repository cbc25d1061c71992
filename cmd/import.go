package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sterance/relic-info-extractor/internal/config"
	"github.com/sterance/relic-info-extractor/internal/ui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import <csv>",
		Short: "Import relic rows from the game's parameter CSV",
		Long: `Imports the delimited parameter export, replacing the current dataset.
Each accepted row becomes one record; names are standardized, duplicate and
truncated-variant entries are merged, and level groups are auto-filled. The
result is written to the project file.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
	rootCmd.AddCommand(cmd)
}

func runImport(_ *cobra.Command, args []string) error {
	printer := ui.New()
	cfg := config.Load()

	profile, err := loadProfile(cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	d, err := openDataset(cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	result, err := d.ImportCSV(args[0], profile)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	if err := saveDataset(cfg, d); err != nil {
		printer.Error(err.Error())
		return err
	}

	printer.ImportSummary(result.Imported, result.Skipped, d.Len())
	return nil
}
