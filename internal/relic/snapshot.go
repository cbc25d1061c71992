package relic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// SnapshotVersion is written into every saved project file.
const SnapshotVersion = "1.0"

// snapshotFile is the on-disk project form: the full dataset plus the
// UI-adjacent sort state. NextID is a pointer so a missing key can be told
// apart from a legitimate zero.
type snapshotFile struct {
	Version           string    `json:"version"`
	Data              []*Record `json:"data"`
	NextID            *int      `json:"nextId"`
	UsedCategories    []string  `json:"usedCategories"`
	UsedDisplayGroups []string  `json:"usedDisplayGroups"`
	UsedLevelGroups   []string  `json:"usedLevelGroups"`
	UsedLevels        []string  `json:"usedLevels"`
	UsedStacks        []string  `json:"usedStacks"`
	SortColumn        string    `json:"sortColumn"`
	SortReverse       bool      `json:"sortReverse"`
}

// SaveSnapshot writes the dataset to path as a versioned project file,
// atomically (write temp + rename).
func SaveSnapshot(path string, d *Dataset) error {
	nextID := d.NextID
	snap := snapshotFile{
		Version:           SnapshotVersion,
		Data:              d.Records,
		NextID:            &nextID,
		UsedCategories:    d.UsedCategories.Sorted(),
		UsedDisplayGroups: d.UsedDisplayGroups.Sorted(),
		UsedLevelGroups:   d.UsedLevelGroups.Sorted(),
		UsedLevels:        d.UsedLevels.Sorted(),
		UsedStacks:        d.UsedStacks.Sorted(),
		SortColumn:        d.SortColumn,
		SortReverse:       d.SortReverse,
	}
	if snap.Data == nil {
		snap.Data = []*Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("marshaling project: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing temp project file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming project file: %w", err)
	}
	return nil
}

// LoadSnapshot reads a project file, migrating legacy key names first. It
// either returns a complete dataset or an error; the caller's current state
// is never touched by a failed load.
func LoadSnapshot(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, &FormatError{Path: path, Reason: err.Error()}
	}

	if err := migrateSnapshot(root); err != nil {
		return nil, &FormatError{Path: path, Reason: err.Error()}
	}

	if _, ok := root["data"]; !ok {
		return nil, &FormatError{Path: path, Reason: "missing record list"}
	}
	if _, ok := root["nextId"]; !ok {
		return nil, &FormatError{Path: path, Reason: "missing nextId"}
	}

	merged, err := json.Marshal(root)
	if err != nil {
		return nil, &FormatError{Path: path, Reason: err.Error()}
	}
	var snap snapshotFile
	if err := json.Unmarshal(merged, &snap); err != nil {
		return nil, &FormatError{Path: path, Reason: err.Error()}
	}
	if snap.NextID == nil {
		return nil, &FormatError{Path: path, Reason: "missing nextId"}
	}

	d := New()
	d.Records = snap.Data
	d.NextID = *snap.NextID
	d.UsedCategories = NewStringSet(snap.UsedCategories...)
	d.UsedDisplayGroups = NewStringSet(snap.UsedDisplayGroups...)
	d.UsedLevelGroups = NewStringSet(snap.UsedLevelGroups...)
	d.UsedLevels = NewStringSet(snap.UsedLevels...)
	d.UsedStacks = NewStringSet(snap.UsedStacks...)
	d.SortColumn = snap.SortColumn
	d.SortReverse = snap.SortReverse
	return d, nil
}

// migrateSnapshot renames legacy keys in place: per-record stack_id and
// stack_group become levelGroupId and levelGroup, and the root-level
// used_stack_groups becomes usedLevelGroups. Values are never altered, and
// running the migration on an already-current snapshot changes nothing.
func migrateSnapshot(root map[string]json.RawMessage) error {
	renameKey(root, "used_stack_groups", "usedLevelGroups")

	raw, ok := root["data"]
	if !ok {
		return nil
	}
	var items []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("record list: %w", err)
	}

	changed := false
	for _, item := range items {
		if renameKey(item, "stack_id", "levelGroupId") {
			changed = true
		}
		if renameKey(item, "stack_group", "levelGroup") {
			changed = true
		}
	}
	if !changed {
		return nil
	}

	migrated, err := json.Marshal(items)
	if err != nil {
		return err
	}
	root["data"] = migrated
	return nil
}

// renameKey moves m[old] to m[new] unless the new key already exists.
func renameKey(m map[string]json.RawMessage, old, new string) bool {
	v, ok := m[old]
	if !ok {
		return false
	}
	if _, exists := m[new]; !exists {
		m[new] = v
	}
	delete(m, old)
	return true
}
