package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sterance/relic-info-extractor/internal/config"
	"github.com/sterance/relic-info-extractor/internal/relic"
	"github.com/sterance/relic-info-extractor/internal/ui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "load <rproj>",
		Short: "Load a project snapshot, replacing the current session",
		Long: `Reads a saved project file into the session. Snapshots from older versions
are migrated on load (legacy stack_id/stack_group keys are renamed). A file
missing its record list or id counter is rejected and the current project is
left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: runLoad,
	}
	rootCmd.AddCommand(cmd)
}

func runLoad(_ *cobra.Command, args []string) error {
	printer := ui.New()
	cfg := config.Load()

	d, err := relic.LoadSnapshot(args[0])
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	if err := saveDataset(cfg, d); err != nil {
		printer.Error(err.Error())
		return err
	}

	printer.Loaded(args[0], d.Len())
	return nil
}
