package cmd

import (
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/sterance/relic-info-extractor/internal/config"
	"github.com/sterance/relic-info-extractor/internal/relic"
	"github.com/sterance/relic-info-extractor/internal/ui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "watch <csv>",
		Short: "Re-import the CSV whenever it changes",
		Long: `Runs an initial import, then watches the source file and repeats the full
import pipeline each time it is written. Useful while iterating on the
game's parameter export. Stop with ctrl-c.`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}
	rootCmd.AddCommand(cmd)
}

func runWatch(_ *cobra.Command, args []string) error {
	printer := ui.New()
	cfg := config.Load()
	path := args[0]

	profile, err := loadProfile(cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	reimport := func() {
		d, err := openDataset(cfg)
		if err != nil {
			printer.Error(err.Error())
			return
		}
		result, err := d.ImportCSV(path, profile)
		if err != nil {
			// A partially-written file can fail to parse; the next event
			// will retry with the complete contents.
			printer.Warn(err.Error())
			return
		}
		if err := saveDataset(cfg, d); err != nil {
			printer.Error(err.Error())
			return
		}
		printer.ImportSummary(result.Imported, result.Skipped, d.Len())
	}

	reimport()

	w, err := relic.NewSourceWatcher(path, time.Duration(cfg.WatchDebounceMS)*time.Millisecond)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	if err := w.Start(); err != nil {
		printer.Error(err.Error())
		return err
	}
	defer w.Stop()

	printer.Watching(path)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	for {
		select {
		case <-w.Changes:
			reimport()
		case <-interrupt:
			printer.Info("stopping watch")
			return nil
		}
	}
}
