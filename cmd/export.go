package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sterance/relic-info-extractor/internal/config"
	"github.com/sterance/relic-info-extractor/internal/ui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export [json]",
		Short: "Export the curated dataset as interchange JSON",
		Long: `Writes the dataset in the external interchange schema: blank fields and
internal ids are dropped, game ids become the "ids" array, and the stacks
flag becomes a boolean. The output path defaults to the configured
export_path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExport,
	}
	rootCmd.AddCommand(cmd)
}

func runExport(_ *cobra.Command, args []string) error {
	printer := ui.New()
	cfg := config.Load()

	d, err := requireDataset(cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	path := cfg.ExportPath
	if len(args) == 1 {
		path = args[0]
	}

	if err := d.ExportJSON(path); err != nil {
		printer.Error(err.Error())
		return err
	}

	printer.Saved("export", path)
	return nil
}
