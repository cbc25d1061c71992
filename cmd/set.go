package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sterance/relic-info-extractor/internal/config"
	"github.com/sterance/relic-info-extractor/internal/relic"
	"github.com/sterance/relic-info-extractor/internal/ui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set an editable field on one or more records",
		Long: `Assigns a value to one of the operator-editable fields (category,
displayGroup, levelGroup, level, stacks) on the records named by --ids.
An empty --value clears the field. Assigned values are remembered per field
and listed by "relics used".`,
		RunE: runSet,
	}
	cmd.Flags().IntSlice("ids", nil, "record ids to update")
	cmd.Flags().String("field", "", "field to set")
	cmd.Flags().String("value", "", "value to assign (empty clears)")
	_ = cmd.MarkFlagRequired("ids")
	_ = cmd.MarkFlagRequired("field")
	rootCmd.AddCommand(cmd)
}

func runSet(cmd *cobra.Command, _ []string) error {
	printer := ui.New()
	cfg := config.Load()

	ids, _ := cmd.Flags().GetIntSlice("ids")
	field, _ := cmd.Flags().GetString("field")
	value, _ := cmd.Flags().GetString("value")

	d, err := requireDataset(cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	updated, err := d.SetField(ids, relic.Field(field), value)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	if updated == 0 {
		printer.Warn(fmt.Sprintf("no records matched ids %v", ids))
	}

	if err := saveDataset(cfg, d); err != nil {
		printer.Error(err.Error())
		return err
	}

	printer.Updated(field, value, updated)
	return nil
}
