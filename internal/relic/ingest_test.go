package relic

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "relics.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImportCSV(t *testing.T) {
	t.Parallel()

	src := "" +
		"Name,ID,passiveSpEffectId_1,isDebuff,isNumericEffect,attachFilterParamId,allowWylder,allowGuardian\n" +
		"Relic: Crimson Flask,100,0,0,1,7,1,0\n" +
		"Character Relic: Sharp Fang,101,205,1,0,0,1,1\n" +
		"Goods: Smithing Stone,102,0,0,1,0,0,0\n"

	d := New()
	res, err := d.ImportCSV(writeSource(t, src), DefaultProfile())
	if err != nil {
		t.Fatal(err)
	}
	if res.Imported != 2 || res.Skipped != 1 {
		t.Fatalf("result = %+v, want 2 imported, 1 skipped", res)
	}
	if d.NextID != 4 {
		t.Errorf("next id = %d, want 4: skipped rows still consume ids", d.NextID)
	}
	if len(d.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(d.Records))
	}

	first := d.Records[0]
	if first.ID != 1 || first.Name != "[Wylder] Crimson Flask" {
		t.Errorf("first record = id %d name %q, want id 1 name %q", first.ID, first.Name, "[Wylder] Crimson Flask")
	}
	if first.DisplayGroup != "Wylder" {
		t.Errorf("first display group = %q, want Wylder", first.DisplayGroup)
	}
	if want := (IDList{100}); !reflect.DeepEqual(first.GameIDs, want) {
		t.Errorf("first game ids = %v, want %v", first.GameIDs, want)
	}
	if first.Nightfarer != "Wylder" {
		t.Errorf("first nightfarer = %q, want Wylder", first.Nightfarer)
	}
	if first.Deep || first.Debuff {
		t.Errorf("first deep=%v debuff=%v, want false/false", first.Deep, first.Debuff)
	}
	if first.LevelGroupID != 7 {
		t.Errorf("first level group id = %d, want 7", first.LevelGroupID)
	}

	second := d.Records[1]
	if second.Name != "Sharp Fang" {
		t.Errorf("second name = %q, want %q", second.Name, "Sharp Fang")
	}
	if !second.Deep {
		t.Error("numeric-effect 0 must mark the record deep")
	}
	if !second.Debuff || second.Category != "Debuff" {
		t.Errorf("debuff=%v category=%q, want debuff with Debuff category", second.Debuff, second.Category)
	}
	if second.Nightfarer != "" {
		t.Errorf("two allowed factions must leave nightfarer blank, got %q", second.Nightfarer)
	}
	if want := (IDList{101, 205}); !reflect.DeepEqual(second.GameIDs, want) {
		t.Errorf("second game ids = %v, want %v", second.GameIDs, want)
	}
}

func TestImportCSVStandardizesAndMerges(t *testing.T) {
	t.Parallel()

	src := "" +
		"Name,ID,allowWylder\n" +
		"Relic: Power Strike,10,1\n" +
		"Relic: Wylder: Power Strike,10,1\n"

	d := New()
	res, err := d.ImportCSV(writeSource(t, src), DefaultProfile())
	if err != nil {
		t.Fatal(err)
	}
	if res.Imported != 2 {
		t.Fatalf("imported = %d, want 2", res.Imported)
	}
	if len(d.Records) != 1 {
		t.Fatalf("got %d records after merge, want 1", len(d.Records))
	}
	r := d.Records[0]
	if r.Name != "[Wylder] Power Strike" {
		t.Errorf("merged name = %q, want %q", r.Name, "[Wylder] Power Strike")
	}
	if r.DisplayGroup != "Wylder" {
		t.Errorf("display group = %q, want Wylder", r.DisplayGroup)
	}
}

func TestImportCSVBadPathLeavesDatasetUntouched(t *testing.T) {
	t.Parallel()

	d := New()
	d.Records = []*Record{{ID: 1, Name: "Keep Me"}}
	d.NextID = 2

	_, err := d.ImportCSV(filepath.Join(t.TempDir(), "missing.csv"), DefaultProfile())
	if err == nil {
		t.Fatal("want error for missing source")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if len(d.Records) != 1 || d.Records[0].Name != "Keep Me" || d.NextID != 2 {
		t.Error("failed import must not modify the dataset")
	}
}

func TestImportCSVEmptyFile(t *testing.T) {
	t.Parallel()

	d := New()
	_, err := d.ImportCSV(writeSource(t, ""), DefaultProfile())
	if !errors.Is(err, ErrNoHeader) {
		t.Fatalf("err = %v, want ErrNoHeader", err)
	}
}

func TestImportCSVCustomDelimiter(t *testing.T) {
	t.Parallel()

	p := DefaultProfile()
	p.Delimiter = ";"
	src := "Name;ID\nRelic: Iron Will;42\n"

	d := New()
	res, err := d.ImportCSV(writeSource(t, src), p)
	if err != nil {
		t.Fatal(err)
	}
	if res.Imported != 1 {
		t.Fatalf("imported = %d, want 1", res.Imported)
	}
	if d.Records[0].Name != "Iron Will" {
		t.Errorf("name = %q, want %q", d.Records[0].Name, "Iron Will")
	}
}

func TestParseBool(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"true", "1", "yes", "on", "t", "y", " TRUE "} {
		if !parseBool(v) {
			t.Errorf("parseBool(%q) = false, want true", v)
		}
	}
	for _, v := range []string{"", "0", "false", "no", "off", "2"} {
		if parseBool(v) {
			t.Errorf("parseBool(%q) = true, want false", v)
		}
	}
}

func TestAcceptName(t *testing.T) {
	t.Parallel()

	prefixes := DefaultProfile().NamePrefixes

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Relic: Crimson Flask", "Crimson Flask", true},
		{"Character Relic: Sharp Fang", "Sharp Fang", true},
		{"  Relic: Padded  ", "Padded", true},
		{"Goods: Smithing Stone", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := acceptName(tt.in, prefixes)
		if got != tt.want || ok != tt.ok {
			t.Errorf("acceptName(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
