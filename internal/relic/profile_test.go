package relic

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultProfile(t *testing.T) {
	t.Parallel()

	p := DefaultProfile()
	if p.Delimiter != "," {
		t.Errorf("delimiter = %q, want %q", p.Delimiter, ",")
	}
	if want := []string{"Character Relic: ", "Relic: "}; !reflect.DeepEqual(p.NamePrefixes, want) {
		t.Errorf("name prefixes = %v, want %v", p.NamePrefixes, want)
	}
	if len(p.Factions) != 8 {
		t.Fatalf("got %d factions, want 8", len(p.Factions))
	}
	if !reflect.DeepEqual(p.FactionNames(), Nightfarers) {
		t.Errorf("faction names = %v, want %v", p.FactionNames(), Nightfarers)
	}
}

func TestLoadProfile(t *testing.T) {
	t.Parallel()

	content := `
delimiter = ";"
name_column = "RowName"

[[factions]]
column = "allowHero"
name = "Hero"
`
	path := filepath.Join(t.TempDir(), "profile.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProfile(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Delimiter != ";" {
		t.Errorf("delimiter = %q, want %q", p.Delimiter, ";")
	}
	if p.NameColumn != "RowName" {
		t.Errorf("name column = %q, want %q", p.NameColumn, "RowName")
	}
	if want := []FactionColumn{{Column: "allowHero", Name: "Hero"}}; !reflect.DeepEqual(p.Factions, want) {
		t.Errorf("factions = %v, want %v", p.Factions, want)
	}

	defaults := DefaultProfile()
	if !reflect.DeepEqual(p.NamePrefixes, defaults.NamePrefixes) {
		t.Errorf("unset name prefixes must fall back to defaults, got %v", p.NamePrefixes)
	}
	if p.DebuffColumn != defaults.DebuffColumn {
		t.Errorf("unset debuff column = %q, want default %q", p.DebuffColumn, defaults.DebuffColumn)
	}
}

func TestLoadProfileMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadProfile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("want error for missing profile")
	}
}

func TestLoadProfileBadTOML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("delimiter = [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProfile(path); err == nil {
		t.Fatal("want error for malformed profile")
	}
}
