package relic

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Field names an operator-editable record field.
type Field string

const (
	FieldCategory     Field = "category"
	FieldDisplayGroup Field = "displayGroup"
	FieldLevelGroup   Field = "levelGroup"
	FieldLevel        Field = "level"
	FieldStacks       Field = "stacks"
)

// Dataset is the session's working collection: the ordered records, the id
// counter, the per-field used-value sets, and the last sort applied. It is
// the single explicit context object threaded through every operation; one
// operator session mutates it synchronously.
type Dataset struct {
	Records []*Record
	NextID  int

	UsedCategories    StringSet
	UsedDisplayGroups StringSet
	UsedLevelGroups   StringSet
	UsedLevels        StringSet
	UsedStacks        StringSet

	SortColumn  string
	SortReverse bool
}

// New returns an empty dataset ready for import or snapshot load.
func New() *Dataset {
	return &Dataset{
		NextID:            1,
		UsedCategories:    NewStringSet(),
		UsedDisplayGroups: NewStringSet(),
		UsedLevelGroups:   NewStringSet(),
		UsedLevels:        NewStringSet(),
		UsedStacks:        NewStringSet(),
	}
}

// Clear drops all records. The id counter and used-value sets survive, so
// ids are never reused within a session.
func (d *Dataset) Clear() {
	d.Records = nil
}

// Len returns the record count.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Get returns the record with the given id, or nil.
func (d *Dataset) Get(id int) *Record {
	for _, r := range d.Records {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// SetField assigns value to field on every record whose id is in ids and
// returns how many records changed. A blank value clears the field. Non-
// blank values are remembered in the field's used-value set.
func (d *Dataset) SetField(ids []int, field Field, value string) (int, error) {
	value = strings.TrimSpace(value)

	var assign func(*Record)
	switch field {
	case FieldCategory:
		assign = func(r *Record) { r.Category = value }
	case FieldDisplayGroup:
		assign = func(r *Record) { r.DisplayGroup = value }
	case FieldLevelGroup:
		assign = func(r *Record) { r.LevelGroup = value }
	case FieldLevel:
		assign = func(r *Record) { r.Level = FlexString(value) }
	case FieldStacks:
		st, err := ParseStacks(value)
		if err != nil {
			return 0, err
		}
		assign = func(r *Record) { r.Stacks = st }
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	wanted := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	updated := 0
	for _, r := range d.Records {
		if _, ok := wanted[r.ID]; !ok {
			continue
		}
		assign(r)
		updated++
	}

	if value != "" {
		d.usedSet(field).Add(value)
	}
	return updated, nil
}

// usedSet returns the used-value set backing an editable field.
func (d *Dataset) usedSet(field Field) StringSet {
	switch field {
	case FieldCategory:
		return d.UsedCategories
	case FieldDisplayGroup:
		return d.UsedDisplayGroups
	case FieldLevelGroup:
		return d.UsedLevelGroups
	case FieldLevel:
		return d.UsedLevels
	case FieldStacks:
		return d.UsedStacks
	}
	return nil
}

// sortColumns is the set of valid SortBy arguments.
var sortColumns = map[string]struct{}{
	"id": {}, "gameIds": {}, "name": {}, "category": {},
	"displayGroup": {}, "levelGroupId": {}, "levelGroup": {},
	"level": {}, "nightfarer": {}, "deep": {}, "debuff": {}, "stacks": {},
}

// SortBy reorders the records by column. Sorting the same column again
// flips the direction; a new column starts ascending. The applied column
// and direction are remembered for the next snapshot save.
func (d *Dataset) SortBy(column string) error {
	if _, ok := sortColumns[column]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}

	if d.SortColumn == column {
		d.SortReverse = !d.SortReverse
	} else {
		d.SortColumn = column
		d.SortReverse = false
	}

	sort.SliceStable(d.Records, func(i, j int) bool {
		a, b := d.Records[i], d.Records[j]
		if d.SortReverse {
			a, b = b, a
		}
		return lessByColumn(a, b, column)
	})
	return nil
}

// lessByColumn compares two records under a column's natural key: numeric
// for id-like and level columns, boolean for flags, first game id for the
// id list, case-insensitive for text.
func lessByColumn(a, b *Record, column string) bool {
	switch column {
	case "id":
		return a.ID < b.ID
	case "gameIds":
		return firstGameID(a) < firstGameID(b)
	case "levelGroupId":
		return a.LevelGroupID < b.LevelGroupID
	case "level":
		return levelKey(a) < levelKey(b)
	case "deep":
		return !a.Deep && b.Deep
	case "debuff":
		return !a.Debuff && b.Debuff
	case "stacks":
		return a.Stacks == StacksUnset && b.Stacks != StacksUnset
	case "name":
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	case "category":
		return strings.ToLower(a.Category) < strings.ToLower(b.Category)
	case "displayGroup":
		return strings.ToLower(a.DisplayGroup) < strings.ToLower(b.DisplayGroup)
	case "levelGroup":
		return strings.ToLower(a.LevelGroup) < strings.ToLower(b.LevelGroup)
	case "nightfarer":
		return strings.ToLower(a.Nightfarer) < strings.ToLower(b.Nightfarer)
	}
	return false
}

func firstGameID(r *Record) int {
	if len(r.GameIDs) == 0 {
		return 0
	}
	return r.GameIDs[0]
}

func levelKey(r *Record) int {
	n, err := strconv.Atoi(strings.TrimSpace(string(r.Level)))
	if err != nil {
		return 0
	}
	return n
}
