// Package cmd implements the relics command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "relics",
	Short: "Relic dataset extractor and curator",
	Long: `Relics ingests the game's relic parameter CSV, reconciles the rows into a
curated dataset (duplicate merging, name standardization, level-group
autofill), and exports the result as portable JSON. Work in progress is kept
in a versioned project file between invocations.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .relics.yaml)")
	rootCmd.PersistentFlags().String("project", "", "project file (default relics.rproj)")
	rootCmd.PersistentFlags().String("profile", "", "import profile TOML (default built-in mapping)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("project_path", rootCmd.PersistentFlags().Lookup("project"))
	_ = viper.BindPFlag("profile_path", rootCmd.PersistentFlags().Lookup("profile"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".relics")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("RELICS")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
