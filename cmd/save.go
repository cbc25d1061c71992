package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sterance/relic-info-extractor/internal/config"
	"github.com/sterance/relic-info-extractor/internal/relic"
	"github.com/sterance/relic-info-extractor/internal/ui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "save <rproj>",
		Short: "Save the project snapshot to an explicit path",
		Args:  cobra.ExactArgs(1),
		RunE:  runSave,
	}
	rootCmd.AddCommand(cmd)
}

func runSave(_ *cobra.Command, args []string) error {
	printer := ui.New()
	cfg := config.Load()

	d, err := requireDataset(cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	if err := relic.SaveSnapshot(args[0], d); err != nil {
		printer.Error(err.Error())
		return err
	}

	printer.Saved("project", args[0])
	return nil
}
