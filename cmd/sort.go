package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sterance/relic-info-extractor/internal/config"
	"github.com/sterance/relic-info-extractor/internal/ui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "sort <column>",
		Short: "Sort the dataset by a column",
		Long: `Reorders the records by the given column (id, gameIds, name, category,
displayGroup, levelGroupId, levelGroup, level, nightfarer, deep, debuff,
stacks). Sorting the same column twice flips the direction. The order is
stored in the project file.`,
		Args: cobra.ExactArgs(1),
		RunE: runSort,
	}
	rootCmd.AddCommand(cmd)
}

func runSort(_ *cobra.Command, args []string) error {
	printer := ui.New()
	cfg := config.Load()

	d, err := requireDataset(cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	if err := d.SortBy(args[0]); err != nil {
		printer.Error(err.Error())
		return err
	}

	if err := saveDataset(cfg, d); err != nil {
		printer.Error(err.Error())
		return err
	}

	direction := "ascending"
	if d.SortReverse {
		direction = "descending"
	}
	printer.Info("sorted by " + args[0] + " " + direction)
	return nil
}
