package relic

import (
	"regexp"
	"strconv"
	"strings"
)

// levelSuffixRE matches a trailing " +N" upgrade marker.
var levelSuffixRE = regexp.MustCompile(` \+(\d+)$`)

// AutofillGroups derives a shared level-group label and, where the names
// carry " +N" upgrade suffixes, a level number for every group of records
// sharing a levelGroupId. Groups of fewer than two records are untouched.
// Must run after duplicate merging so merged-away records cannot distort
// the groups.
func AutofillGroups(records []*Record, tags []string) {
	groups := make(map[int][]*Record)
	var order []int
	for _, r := range records {
		if _, ok := groups[r.LevelGroupID]; !ok {
			order = append(order, r.LevelGroupID)
		}
		groups[r.LevelGroupID] = append(groups[r.LevelGroupID], r)
	}

	for _, id := range order {
		group := groups[id]
		if len(group) < 2 {
			continue
		}
		names := make([]string, len(group))
		for i, r := range group {
			names[i] = r.Name
		}
		if label := GroupLabel(names, tags); label != "" {
			for _, r := range group {
				r.LevelGroup = label
			}
		}
		fillLevels(group)
	}
}

// GroupLabel computes the shared label for a set of names: the longest of
// the accepted common-prefix, common-suffix, common-leading-words, and
// longest-common-substring candidates over the tag-stripped names, with the
// first character capitalized. Empty when no candidate is accepted.
func GroupLabel(names []string, tags []string) string {
	if len(names) < 2 {
		return ""
	}
	clean := make([]string, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		clean = append(clean, strings.TrimSpace(stripBracketTag(name, tags)))
	}
	if len(clean) < 2 {
		return ""
	}

	candidates := []string{
		CommonPrefix(clean),
		CommonSuffix(clean),
		CommonLeadingWords(clean),
		LongestCommonSubstring(clean),
	}

	best := ""
	for _, c := range candidates {
		if strings.TrimSpace(c) == "" {
			continue
		}
		if len(c) > len(best) {
			best = c
		}
	}
	if best == "" {
		return ""
	}
	best = strings.TrimSpace(best)
	if startsLower(best) {
		best = capitalizeFirst(best)
	}
	return best
}

// ExtractLevel returns the integer from a trailing " +N" marker; ok is
// false when the name carries no marker.
func ExtractLevel(name string) (level int, ok bool) {
	m := levelSuffixRE.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// fillLevels infers per-record levels from " +N" suffixes. A group mixing
// bare and suffixed names counts the bare name as tier one and shifts the
// suffixed ones up; a group where every name is suffixed uses the suffix
// values directly; a group with no suffixes at all is left untouched.
func fillLevels(group []*Record) {
	type entry struct {
		rec   *Record
		level int
		ok    bool
	}
	entries := make([]entry, len(group))
	hasBare, hasSuffix := false, false
	for i, r := range group {
		lvl, ok := ExtractLevel(strings.TrimSpace(r.Name))
		entries[i] = entry{rec: r, level: lvl, ok: ok}
		if ok {
			hasSuffix = true
		} else {
			hasBare = true
		}
	}

	switch {
	case hasBare && hasSuffix:
		for _, e := range entries {
			if e.ok {
				e.rec.Level = FlexString(strconv.Itoa(e.level + 1))
			} else {
				e.rec.Level = "1"
			}
		}
	case hasSuffix:
		for _, e := range entries {
			e.rec.Level = FlexString(strconv.Itoa(e.level))
		}
	}
}
