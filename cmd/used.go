package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sterance/relic-info-extractor/internal/config"
	"github.com/sterance/relic-info-extractor/internal/ui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "used",
		Short: "List values previously assigned to each editable field",
		Args:  cobra.NoArgs,
		RunE:  runUsed,
	}
	rootCmd.AddCommand(cmd)
}

func runUsed(_ *cobra.Command, _ []string) error {
	printer := ui.New()
	cfg := config.Load()

	d, err := requireDataset(cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	sections := []struct {
		name   string
		values []string
	}{
		{"category", d.UsedCategories.Sorted()},
		{"displayGroup", d.UsedDisplayGroups.Sorted()},
		{"levelGroup", d.UsedLevelGroups.Sorted()},
		{"level", d.UsedLevels.Sorted()},
		{"stacks", d.UsedStacks.Sorted()},
	}
	for _, s := range sections {
		if len(s.values) == 0 {
			continue
		}
		fmt.Fprintf(os.Stdout, "%s: %s\n", s.name, strings.Join(s.values, ", "))
	}
	return nil
}
