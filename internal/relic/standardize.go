package relic

import "strings"

// StandardizeName canonicalizes a relic name into "[Tag] rest" form. When
// nightfarer is non-empty only that tag is considered, and it is prepended
// unconditionally if none of its patterns match. Otherwise every known tag
// is tried in Nightfarers order and the first matching pattern wins.
// Independently of tag handling, every "- " becomes ", ".
func StandardizeName(name, nightfarer string, tags []string) string {
	candidates := tags
	if nightfarer != "" {
		candidates = []string{nightfarer}
	}

	out := name
	for _, tag := range candidates {
		if tag == "" {
			continue
		}
		switch {
		case strings.HasPrefix(out, "["+tag+"] "):
			// Already in bracket form.
		case strings.HasPrefix(out, tag+": "):
			out = "[" + tag + "] " + out[len(tag)+2:]
		case strings.HasPrefix(out, tag+" "):
			out = "[" + tag + "] " + out[len(tag)+1:]
		default:
			continue
		}
		break
	}

	if nightfarer != "" && !hasBracketTag(out, candidates) {
		out = "[" + nightfarer + "] " + out
	}

	return strings.ReplaceAll(out, "- ", ", ")
}

// hasBracketTag reports whether name starts with "[Tag] " for any of tags.
func hasBracketTag(name string, tags []string) bool {
	for _, tag := range tags {
		if strings.HasPrefix(name, "["+tag+"] ") {
			return true
		}
	}
	return false
}

// stripBracketTag removes a leading "[Tag] " for the first matching tag.
func stripBracketTag(name string, tags []string) string {
	for _, tag := range tags {
		if prefix := "[" + tag + "] "; strings.HasPrefix(name, prefix) {
			return name[len(prefix):]
		}
	}
	return name
}

// standardizeNames runs the two standardization passes over the dataset:
// first a targeted pass using each record's own nightfarer, then an
// untargeted scan that catches embedded tag patterns on records whose name
// still lacks bracket form. Must run before duplicate merging, since
// standardized names change the merge grouping keys.
func (d *Dataset) standardizeNames(tags []string) {
	for _, r := range d.Records {
		nf := strings.TrimSpace(r.Nightfarer)
		name := strings.TrimSpace(r.Name)
		if nf != "" && name != "" {
			r.Name = StandardizeName(name, nf, tags)
		}
	}

	for _, r := range d.Records {
		name := strings.TrimSpace(r.Name)
		if name == "" || hasBracketTag(name, tags) {
			continue
		}
		r.Name = StandardizeName(name, "", tags)
	}
}
