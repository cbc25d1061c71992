package relic

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ExternalRecord is the interchange form of a record. Blank fields are
// omitted, internal ids never appear, game ids become the "ids" array, and
// the stacks flag becomes a real boolean.
type ExternalRecord struct {
	IDs          []int  `json:"ids,omitempty"`
	Name         string `json:"name,omitempty"`
	Category     string `json:"category,omitempty"`
	DisplayGroup string `json:"displayGroup,omitempty"`
	LevelGroup   string `json:"levelGroup,omitempty"`
	Level        any    `json:"level,omitempty"`
	Nightfarer   string `json:"nightfarer,omitempty"`
	Deep         bool   `json:"deep"`
	Debuff       bool   `json:"debuff"`
	Stacks       *bool  `json:"stacks,omitempty"`
}

// ExportRecords maps the dataset to the external interchange schema in
// dataset order.
func (d *Dataset) ExportRecords() []ExternalRecord {
	out := make([]ExternalRecord, 0, len(d.Records))
	for _, r := range d.Records {
		ext := ExternalRecord{
			Name:         r.Name,
			Category:     r.Category,
			DisplayGroup: r.DisplayGroup,
			LevelGroup:   r.LevelGroup,
			Nightfarer:   r.Nightfarer,
			Deep:         r.Deep,
			Debuff:       r.Debuff,
		}
		if len(r.GameIDs) > 0 {
			ext.IDs = append([]int(nil), r.GameIDs...)
		}
		if lvl := string(r.Level); lvl != "" {
			// Auto-filled levels are numeric; keep them numbers on the wire.
			if n, err := strconv.Atoi(lvl); err == nil {
				ext.Level = n
			} else {
				ext.Level = lvl
			}
		}
		if v, ok := r.Stacks.Bool(); ok {
			b := v
			ext.Stacks = &b
		}
		out = append(out, ext)
	}
	return out
}

// WriteExport renders the records as pretty-printed UTF-8 JSON with two
// space indentation. Non-ASCII text is written as-is, not escaped.
func WriteExport(w io.Writer, records []ExternalRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}

// ExportJSON writes the dataset's external form to path atomically.
func (d *Dataset) ExportJSON(path string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	if err := WriteExport(f, d.ExportRecords()); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encoding export: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing export: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming export file: %w", err)
	}
	return nil
}
