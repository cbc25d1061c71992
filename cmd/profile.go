package cmd

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/sterance/relic-info-extractor/internal/config"
	"github.com/sterance/relic-info-extractor/internal/ui"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect the import profile",
}

func init() {
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective import profile as TOML",
		Args:  cobra.NoArgs,
		RunE:  runProfileShow,
	}
	profileCmd.AddCommand(show)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(_ *cobra.Command, _ []string) error {
	printer := ui.New()
	cfg := config.Load()

	profile, err := loadProfile(cfg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	data, err := toml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
