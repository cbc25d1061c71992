package relic

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	d := New()
	d.Records = []*Record{
		{
			ID:           1,
			GameIDs:      IDList{100, 205},
			Name:         "[Wylder] Crimson Flask",
			Category:     "Recovery",
			DisplayGroup: "Wylder",
			LevelGroupID: 7,
			LevelGroup:   "Crimson Flask",
			Level:        "2",
			Nightfarer:   "Wylder",
			Deep:         true,
			Stacks:       StacksYes,
		},
		{ID: 2, Name: "Sharp Fang", Debuff: true},
	}
	d.NextID = 9
	d.UsedCategories.Add("Recovery")
	d.UsedLevelGroups.Add("Crimson Flask")
	d.SortColumn = "name"
	d.SortReverse = true

	path := filepath.Join(t.TempDir(), "relics.rproj")
	if err := SaveSnapshot(path, d); err != nil {
		t.Fatal(err)
	}

	got, err := LoadSnapshot(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, d) {
		t.Errorf("round trip mismatch:\ngot:  %+v\nwant: %+v", got, d)
	}
}

func TestSnapshotSaveEmptyDataset(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.rproj")
	if err := SaveSnapshot(path, New()); err != nil {
		t.Fatal(err)
	}
	got, err := LoadSnapshot(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Records) != 0 || got.NextID != 1 {
		t.Errorf("empty round trip: records=%d nextId=%d", len(got.Records), got.NextID)
	}
}

func TestLoadSnapshotMigratesLegacyKeys(t *testing.T) {
	t.Parallel()

	legacy := `{
  "version": "1.0",
  "data": [
    {
      "id": 1,
      "gameIds": "100, 205",
      "name": "Crimson Flask",
      "stack_id": 7,
      "stack_group": "Crimson Flask"
    }
  ],
  "nextId": 2,
  "used_stack_groups": ["Crimson Flask"]
}`
	path := filepath.Join(t.TempDir(), "legacy.rproj")
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := LoadSnapshot(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(d.Records))
	}
	r := d.Records[0]
	if r.LevelGroupID != 7 {
		t.Errorf("stack_id not migrated: level group id = %d, want 7", r.LevelGroupID)
	}
	if r.LevelGroup != "Crimson Flask" {
		t.Errorf("stack_group not migrated: level group = %q", r.LevelGroup)
	}
	if want := (IDList{100, 205}); !reflect.DeepEqual(r.GameIDs, want) {
		t.Errorf("comma-string game ids = %v, want %v", r.GameIDs, want)
	}
	if !d.UsedLevelGroups.Has("Crimson Flask") {
		t.Error("used_stack_groups not migrated to usedLevelGroups")
	}
}

func TestLoadSnapshotMissingKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"missing data", `{"version": "1.0", "nextId": 2}`},
		{"missing nextId", `{"version": "1.0", "data": []}`},
		{"not an object", `[1, 2, 3]`},
		{"not json", `relic soup`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.rproj")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadSnapshot(path)
			if err == nil {
				t.Fatal("want error")
			}
			var ferr *FormatError
			if !errors.As(err, &ferr) {
				t.Errorf("error type = %T, want *FormatError", err)
			}
		})
	}
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "nope.rproj"))
	if err == nil {
		t.Fatal("want error for missing file")
	}
	var ferr *FormatError
	if errors.As(err, &ferr) {
		t.Error("unreadable file must not be reported as a format problem")
	}
}
