package relic

import "strings"

// MergeDuplicates reduces records to one entry per logical relic and returns
// the surviving records in their original relative order.
//
// Phase 1 merges exact trimmed-name duplicates. Phase 2 groups the survivors
// by the first two words of the tag-stripped name and merges truncated
// variants, but only pairs whose game id sets intersect; similar names with
// disjoint ids are distinct items. Each merge keeps the lowest-id record and
// the union of the pair's game ids.
//
// Removal is tracked as a set of record ids and applied by building a
// filtered copy at the end; the input slice is never mutated mid-iteration.
func MergeDuplicates(records []*Record, tags []string) []*Record {
	removed := make(map[int]struct{})

	mergeExactDuplicates(records, removed)
	mergeTruncatedVariants(records, removed, tags)

	out := make([]*Record, 0, len(records))
	for _, r := range records {
		if _, gone := removed[r.ID]; gone {
			continue
		}
		out = append(out, r)
	}
	return out
}

// mergeExactDuplicates merges groups sharing an exact trimmed name. Records
// with no name are never merged.
func mergeExactDuplicates(records []*Record, removed map[int]struct{}) {
	groups := make(map[string][]*Record)
	var order []string
	for _, r := range records {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}
		if _, ok := groups[name]; !ok {
			order = append(order, name)
		}
		groups[name] = append(groups[name], r)
	}

	for _, name := range order {
		group := groups[name]
		if len(group) < 2 {
			continue
		}
		keep := group[0]
		for _, r := range group[1:] {
			if r.ID < keep.ID {
				keep = r
			}
		}
		union := keep.GameIDs
		for _, r := range group {
			if r == keep {
				continue
			}
			union = UnionIDs(union, r.GameIDs)
			removed[r.ID] = struct{}{}
		}
		if len(union) > 0 {
			keep.GameIDs = union
		}
	}
}

// mergeTruncatedVariants pairs up phase-1 survivors whose names look like
// shortened or partially-edited forms of each other.
func mergeTruncatedVariants(records []*Record, removed map[int]struct{}, tags []string) {
	groups := make(map[string][]*Record)
	var order []string
	for _, r := range records {
		if _, gone := removed[r.ID]; gone {
			continue
		}
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}
		words := strings.Fields(stripBracketTag(name, tags))
		if len(words) < 2 {
			continue
		}
		key := words[0] + " " + words[1]
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], r)
	}

	for _, key := range order {
		group := groups[key]
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				a, b := group[i], group[j]
				if _, gone := removed[a.ID]; gone {
					continue
				}
				if _, gone := removed[b.ID]; gone {
					continue
				}
				nameA := strings.TrimSpace(a.Name)
				nameB := strings.TrimSpace(b.Name)
				if !isTruncatedVariant(nameA, nameB, tags) {
					continue
				}
				if !IntersectIDs(a.GameIDs, b.GameIDs) {
					continue
				}
				mergePair(a, b, removed, tags)
			}
		}
	}
}

// mergePair merges two variant records: the lower id survives, the name
// whose tag-stripped form is longer wins, and game ids are unioned.
func mergePair(a, b *Record, removed map[int]struct{}, tags []string) {
	keep, drop := a, b
	if b.ID < a.ID {
		keep, drop = b, a
	}

	nameA := strings.TrimSpace(a.Name)
	nameB := strings.TrimSpace(b.Name)
	longer := nameA
	if len(stripBracketTag(nameB, tags)) > len(stripBracketTag(nameA, tags)) {
		longer = nameB
	}
	keep.Name = longer

	if union := UnionIDs(a.GameIDs, b.GameIDs); len(union) > 0 {
		keep.GameIDs = union
	}
	removed[drop.ID] = struct{}{}
}

// isTruncatedVariant reports whether two names denote the same logical item
// after stripping faction brackets. The heuristics, in order: identical;
// one extends the other by a space-delimited suffix; one is at least 1.5x
// the other's length and prefixed by it; the word sequences differ by
// inserted or deleted whole words with the shorter appearing in order
// within the longer.
func isTruncatedVariant(name1, name2 string, tags []string) bool {
	c1 := stripBracketTag(name1, tags)
	c2 := stripBracketTag(name2, tags)

	if c1 == c2 {
		return true
	}
	if strings.HasPrefix(c1, c2+" ") || strings.HasPrefix(c2, c1+" ") {
		return true
	}
	if float64(len(c1)) >= float64(len(c2))*1.5 && strings.HasPrefix(c1, c2) {
		return true
	}
	if float64(len(c2)) >= float64(len(c1))*1.5 && strings.HasPrefix(c2, c1) {
		return true
	}
	return areWordVariants(c1, c2)
}

// areWordVariants checks for whole-word insertions or deletions: the word
// counts must differ by at least one and the shorter sequence must appear
// in order within the longer.
func areWordVariants(name1, name2 string) bool {
	w1 := strings.Fields(name1)
	w2 := strings.Fields(name2)
	if len(w1) == len(w2) {
		return false
	}
	shorter, longer := w1, w2
	if len(w2) < len(w1) {
		shorter, longer = w2, w1
	}
	return wordSubsequence(shorter, longer)
}
