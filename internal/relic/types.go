// Package relic implements the relic dataset reconciliation core: CSV
// ingestion, name standardization, duplicate merging, level-group autofill,
// export transformation, and project snapshots.
package relic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Nightfarers lists the eight player-class tags in the order they are tried
// during name standardization. The order is part of the matching contract:
// the first tag whose pattern matches wins.
var Nightfarers = []string{
	"Wylder", "Guardian", "Ironeye", "Duchess",
	"Raider", "Revenant", "Recluse", "Executor",
}

// Record is a single curated relic entry. String fields use "" for unset;
// Stacks carries an explicit three-state type because its exported form is a
// boolean and "unset" must stay distinguishable from a cleared value.
type Record struct {
	ID           int        `json:"id"`
	GameIDs      IDList     `json:"gameIds"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	DisplayGroup string     `json:"displayGroup"`
	LevelGroupID int        `json:"levelGroupId"`
	LevelGroup   string     `json:"levelGroup"`
	Level        FlexString `json:"level"`
	Nightfarer   string     `json:"nightfarer"`
	Deep         bool       `json:"deep"`
	Debuff       bool       `json:"debuff"`
	Stacks       Stacks     `json:"stacks"`
}

// IDList is a sorted, de-duplicated set of game ids. It decodes from either
// a JSON array of integers or the legacy comma-separated string form.
type IDList []int

// UnmarshalJSON accepts [10, 20], "10, 20", or null.
func (l *IDList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*l = nil
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = parseIDString(s)
		return nil
	}
	var ids []int
	if err := json.Unmarshal(b, &ids); err != nil {
		return err
	}
	*l = NormalizeIDs(ids)
	return nil
}

// parseIDString parses "10, 20, 30" into a normalized id list. Tokens that
// fail to parse are dropped rather than failing the whole value.
func parseIDString(s string) IDList {
	var ids []int
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		ids = append(ids, n)
	}
	return NormalizeIDs(ids)
}

// NormalizeIDs returns ids sorted ascending with duplicates removed.
func NormalizeIDs(ids []int) IDList {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(ids))
	out := make(IDList, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// UnionIDs returns the normalized union of two id lists.
func UnionIDs(a, b IDList) IDList {
	merged := make([]int, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return NormalizeIDs(merged)
}

// IntersectIDs reports whether two id lists share at least one id.
func IntersectIDs(a, b IDList) bool {
	set := make(map[int]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}

// Stacks is the three-state stacking flag: unset, yes, or no.
type Stacks int

const (
	StacksUnset Stacks = iota
	StacksYes
	StacksNo
)

// ParseStacks converts the user-facing string form. Blank means unset.
func ParseStacks(s string) (Stacks, error) {
	switch strings.TrimSpace(s) {
	case "":
		return StacksUnset, nil
	case "Yes":
		return StacksYes, nil
	case "No":
		return StacksNo, nil
	}
	return StacksUnset, fmt.Errorf("stacks value must be Yes, No, or blank, got %q", s)
}

// String returns "", "Yes", or "No".
func (s Stacks) String() string {
	switch s {
	case StacksYes:
		return "Yes"
	case StacksNo:
		return "No"
	}
	return ""
}

// Bool returns the boolean export form; ok is false when unset.
func (s Stacks) Bool() (value, ok bool) {
	switch s {
	case StacksYes:
		return true, true
	case StacksNo:
		return false, true
	}
	return false, false
}

// MarshalJSON keeps the snapshot wire form as ""/"Yes"/"No".
func (s Stacks) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts the string form, a bare boolean, or null. Unknown
// strings degrade to unset rather than failing the snapshot load.
func (s *Stacks) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "null":
		*s = StacksUnset
		return nil
	case "true":
		*s = StacksYes
		return nil
	case "false":
		*s = StacksNo
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	parsed, err := ParseStacks(str)
	if err != nil {
		parsed = StacksUnset
	}
	*s = parsed
	return nil
}

// FlexString is a string that also decodes from a JSON number. Older
// snapshots stored auto-filled levels as integers.
type FlexString string

// UnmarshalJSON accepts "3", 3, or null.
func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// StringSet tracks values previously assigned by the operator. It carries no
// consistency constraint against current record contents.
type StringSet map[string]struct{}

// NewStringSet builds a set from the given values.
func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts a value. Blank values are ignored.
func (s StringSet) Add(v string) {
	if v == "" {
		return
	}
	s[v] = struct{}{}
}

// Has reports membership.
func (s StringSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Sorted returns the members in ascending order.
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
