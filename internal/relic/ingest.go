package relic

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"
)

// ImportResult summarizes one import run.
type ImportResult struct {
	Imported int
	Skipped  int
}

// ImportCSV replaces the dataset with records derived from the delimited
// file at path, then runs the full reconciliation pipeline: standardize,
// merge duplicates, prefill derived fields, autofill level groups.
//
// The whole file is read and parsed before the dataset is touched, so an
// unreadable or undecodable source leaves the current contents unchanged.
func (d *Dataset) ImportCSV(path string, p ImportProfile) (ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{}, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	rd := csv.NewReader(f)
	if p.Delimiter != "" {
		rd.Comma = []rune(p.Delimiter)[0]
	}
	// Rows may be ragged; missing cells read as empty, extras are ignored.
	rd.FieldsPerRecord = -1

	rows, err := rd.ReadAll()
	if err != nil {
		return ImportResult{}, &ParseError{Path: path, Err: err}
	}
	if len(rows) == 0 {
		return ImportResult{}, &ParseError{Path: path, Err: ErrNoHeader}
	}

	header := headerIndex(rows[0])
	records, result := parseRows(rows[1:], header, p)

	// Commit: wholly replace contents and reset session counters.
	d.Records = records
	d.NextID = len(rows[1:]) + 1
	d.UsedCategories = NewStringSet()
	d.UsedDisplayGroups = NewStringSet()
	d.UsedLevelGroups = NewStringSet()
	d.UsedLevels = NewStringSet()
	d.UsedStacks = NewStringSet()

	tags := p.FactionNames()
	d.standardizeNames(tags)
	d.Records = MergeDuplicates(d.Records, tags)
	d.prefillDerived()
	AutofillGroups(d.Records, tags)

	return result, nil
}

// headerIndex maps column names to their position. The first occurrence of
// a duplicated column name wins.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, col := range header {
		col = strings.TrimSpace(col)
		if _, ok := idx[col]; !ok {
			idx[col] = i
		}
	}
	return idx
}

// parseRows derives zero or one record per raw row. Every row consumes an
// id, including skipped rows, so ids track source row position.
func parseRows(rows [][]string, header map[string]int, p ImportProfile) ([]*Record, ImportResult) {
	var result ImportResult
	records := make([]*Record, 0, len(rows))

	nextID := 1
	for _, row := range rows {
		get := func(col string) string {
			i, ok := header[col]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		rec := deriveRecord(get, nextID, p)
		nextID++
		if rec == nil {
			result.Skipped++
			continue
		}
		records = append(records, rec)
		result.Imported++
	}
	return records, result
}

// deriveRecord applies the field-derivation rules to one raw row. Returns
// nil when the row's name lacks a required prefix.
func deriveRecord(get func(string) string, id int, p ImportProfile) *Record {
	name, ok := acceptName(get(p.NameColumn), p.NamePrefixes)
	if !ok {
		return nil
	}

	rec := &Record{ID: id, Name: name}

	var gameIDs []int
	for _, col := range p.GameIDColumns {
		v := strings.TrimSpace(get(col))
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			continue
		}
		gameIDs = append(gameIDs, n)
	}
	rec.GameIDs = NormalizeIDs(gameIDs)

	rec.Debuff = parseBool(get(p.DebuffColumn))

	// Inverted on purpose: a "0" numeric-effect marker means a deep relic.
	rec.Deep = strings.TrimSpace(get(p.NumericEffectColumn)) == "0"

	var factions []string
	for _, f := range p.Factions {
		if parseBool(get(f.Column)) {
			factions = append(factions, f.Name)
		}
	}
	if len(factions) == 1 {
		rec.Nightfarer = factions[0]
	}

	if v := strings.TrimSpace(get(p.GroupColumn)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			rec.LevelGroupID = n
		}
	}

	return rec
}

// acceptName strips the first matching required prefix; ok is false when no
// prefix matches and the row must be skipped.
func acceptName(raw string, prefixes []string) (string, bool) {
	name := strings.TrimSpace(raw)
	for _, prefix := range prefixes {
		if strings.HasPrefix(name, prefix) {
			return name[len(prefix):], true
		}
	}
	return "", false
}

// parseBool is the permissive boolean parse used for source flags.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on", "t", "y":
		return true
	}
	return false
}

// prefillDerived back-fills display fields that follow mechanically from the
// standardized data: the display group from a leading "[Tag]" bracket, and
// the Debuff category for debuff records that have no category yet.
func (d *Dataset) prefillDerived() {
	for _, r := range d.Records {
		name := strings.TrimSpace(r.Name)
		if strings.HasPrefix(name, "[") {
			if end := strings.Index(name, "]"); end > 1 {
				if tag := strings.TrimSpace(name[1:end]); tag != "" {
					r.DisplayGroup = tag
				}
			}
		}
		if r.Debuff && strings.TrimSpace(r.Category) == "" {
			r.Category = "Debuff"
		}
	}
}
