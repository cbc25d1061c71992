package relic

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// FactionColumn binds a boolean source column to the faction tag it grants.
type FactionColumn struct {
	Column string `toml:"column"`
	Name   string `toml:"name"`
}

// ImportProfile describes how raw game rows map onto relic records. The
// zero-valued fields of a loaded profile fall back to the built-in defaults,
// which match the game's parameter export layout.
type ImportProfile struct {
	Delimiter           string          `toml:"delimiter"`
	NameColumn          string          `toml:"name_column"`
	NamePrefixes        []string        `toml:"name_prefixes"`
	GameIDColumns       []string        `toml:"game_id_columns"`
	DebuffColumn        string          `toml:"debuff_column"`
	NumericEffectColumn string          `toml:"numeric_effect_column"`
	GroupColumn         string          `toml:"level_group_column"`
	Factions            []FactionColumn `toml:"factions"`
}

// DefaultProfile returns the built-in column mapping.
func DefaultProfile() ImportProfile {
	return ImportProfile{
		Delimiter:  ",",
		NameColumn: "Name",
		// Order matters: the longer prefix is tried first.
		NamePrefixes: []string{"Character Relic: ", "Relic: "},
		GameIDColumns: []string{
			"ID", "passiveSpEffectId_1", "passiveSpEffectId_2", "passiveSpEffectId_3",
		},
		DebuffColumn:        "isDebuff",
		NumericEffectColumn: "isNumericEffect",
		GroupColumn:         "attachFilterParamId",
		Factions: []FactionColumn{
			{Column: "allowWylder", Name: "Wylder"},
			{Column: "allowGuardian", Name: "Guardian"},
			{Column: "allowIroneye", Name: "Ironeye"},
			{Column: "allowDuchess", Name: "Duchess"},
			{Column: "allowRaider", Name: "Raider"},
			{Column: "allowRevenant", Name: "Revenant"},
			{Column: "allowRecluse", Name: "Recluse"},
			{Column: "allowExecutor", Name: "Executor"},
		},
	}
}

// FactionNames returns the faction tags in profile order.
func (p ImportProfile) FactionNames() []string {
	names := make([]string, 0, len(p.Factions))
	for _, f := range p.Factions {
		names = append(names, f.Name)
	}
	return names
}

// LoadProfile reads a TOML profile file and applies the built-in defaults
// for any fields left unset.
func LoadProfile(path string) (ImportProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportProfile{}, fmt.Errorf("reading profile: %w", err)
	}

	var p ImportProfile
	if err := toml.Unmarshal(data, &p); err != nil {
		return ImportProfile{}, fmt.Errorf("parsing profile: %w", err)
	}

	defaults := DefaultProfile()
	if p.Delimiter == "" {
		p.Delimiter = defaults.Delimiter
	}
	if p.NameColumn == "" {
		p.NameColumn = defaults.NameColumn
	}
	if len(p.NamePrefixes) == 0 {
		p.NamePrefixes = defaults.NamePrefixes
	}
	if len(p.GameIDColumns) == 0 {
		p.GameIDColumns = defaults.GameIDColumns
	}
	if p.DebuffColumn == "" {
		p.DebuffColumn = defaults.DebuffColumn
	}
	if p.NumericEffectColumn == "" {
		p.NumericEffectColumn = defaults.NumericEffectColumn
	}
	if p.GroupColumn == "" {
		p.GroupColumn = defaults.GroupColumn
	}
	if len(p.Factions) == 0 {
		p.Factions = defaults.Factions
	}
	return p, nil
}
