package cmd

import (
	"fmt"
	"os"

	"github.com/sterance/relic-info-extractor/internal/config"
	"github.com/sterance/relic-info-extractor/internal/relic"
)

// loadProfile returns the effective import profile: the configured TOML
// file when set, the built-in mapping otherwise.
func loadProfile(cfg config.Config) (relic.ImportProfile, error) {
	if cfg.ProfilePath == "" {
		return relic.DefaultProfile(), nil
	}
	return relic.LoadProfile(cfg.ProfilePath)
}

// openDataset loads the session's project file, or starts an empty dataset
// when none exists yet.
func openDataset(cfg config.Config) (*relic.Dataset, error) {
	if _, err := os.Stat(cfg.ProjectPath); os.IsNotExist(err) {
		return relic.New(), nil
	}
	return relic.LoadSnapshot(cfg.ProjectPath)
}

// requireDataset is openDataset for commands that make no sense without an
// existing project.
func requireDataset(cfg config.Config) (*relic.Dataset, error) {
	if _, err := os.Stat(cfg.ProjectPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("no project at %s; run `relics import` first", cfg.ProjectPath)
	}
	return relic.LoadSnapshot(cfg.ProjectPath)
}

// saveDataset persists the session back to the project file.
func saveDataset(cfg config.Config, d *relic.Dataset) error {
	return relic.SaveSnapshot(cfg.ProjectPath, d)
}
