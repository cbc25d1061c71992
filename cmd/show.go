package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sterance/relic-info-extractor/internal/config"
	"github.com/sterance/relic-info-extractor/internal/ui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current dataset as a table",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(_ *cobra.Command, _ []string) error {
	printer := ui.New()
	cfg := config.Load()

	d, err := requireDataset(cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	fmt.Fprint(os.Stdout, ui.RecordTable(d.Records))
	printer.Info(fmt.Sprintf("%d records", d.Len()))
	return nil
}
