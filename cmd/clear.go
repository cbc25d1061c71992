package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sterance/relic-info-extractor/internal/config"
	"github.com/sterance/relic-info-extractor/internal/ui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all records from the project",
		Long: `Drops every record. The id counter and remembered field values are kept,
so ids assigned later in the session never collide with exported ones.`,
		Args: cobra.NoArgs,
		RunE: runClear,
	}
	rootCmd.AddCommand(cmd)
}

func runClear(_ *cobra.Command, _ []string) error {
	printer := ui.New()
	cfg := config.Load()

	d, err := requireDataset(cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	n := d.Len()
	d.Clear()

	if err := saveDataset(cfg, d); err != nil {
		printer.Error(err.Error())
		return err
	}

	printer.Info(fmt.Sprintf("cleared %d records", n))
	return nil
}
