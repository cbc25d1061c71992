package relic

import (
	"strings"
	"unicode"
)

// boundary characters that terminate an acceptable prefix or open an
// acceptable suffix.
func isBoundary(ch byte) bool {
	return ch == ' ' || ch == '-' || ch == ','
}

// CommonPrefix returns the longest prefix shared by every name, accepted
// only when it is more than three characters long and ends at a separator
// boundary. Trailing spaces are trimmed from the result.
func CommonPrefix(names []string) string {
	if len(names) == 0 {
		return ""
	}
	shortest := shortestOf(names)
	n := 0
	for i := 0; i < len(shortest); i++ {
		ch := shortest[i]
		same := true
		for _, name := range names {
			if name[i] != ch {
				same = false
				break
			}
		}
		if !same {
			break
		}
		n = i + 1
	}
	prefix := shortest[:n]
	if len(prefix) > 3 && isBoundary(prefix[len(prefix)-1]) {
		return strings.TrimRight(prefix, " ")
	}
	return ""
}

// CommonSuffix returns the longest suffix shared by every name, accepted
// only when it is more than three characters long and starts at a separator
// boundary. Leading spaces are trimmed from the result.
func CommonSuffix(names []string) string {
	if len(names) == 0 {
		return ""
	}
	shortest := shortestOf(names)
	n := 0
	for i := 1; i <= len(shortest); i++ {
		ch := shortest[len(shortest)-i]
		same := true
		for _, name := range names {
			if name[len(name)-i] != ch {
				same = false
				break
			}
		}
		if !same {
			break
		}
		n = i
	}
	suffix := shortest[len(shortest)-n:]
	if len(suffix) > 3 && isBoundary(suffix[0]) {
		return strings.TrimLeft(suffix, " ")
	}
	return ""
}

// CommonLeadingWords returns the run of whole words every name starts with,
// joined by single spaces. Empty when the first words already differ.
func CommonLeadingWords(names []string) string {
	if len(names) == 0 {
		return ""
	}
	wordLists := make([][]string, len(names))
	minWords := -1
	for i, name := range names {
		wordLists[i] = strings.Fields(name)
		if minWords == -1 || len(wordLists[i]) < minWords {
			minWords = len(wordLists[i])
		}
	}
	var common []string
	for i := 0; i < minWords; i++ {
		word := wordLists[0][i]
		same := true
		for _, words := range wordLists[1:] {
			if words[i] != word {
				same = false
				break
			}
		}
		if !same {
			break
		}
		common = append(common, word)
	}
	return strings.Join(common, " ")
}

// LongestCommonSubstring finds the longest substring (at least three
// characters) of the shortest name that appears, case-insensitively, in
// every name. A candidate is accepted only when it ends at a separator
// boundary or is at least ten characters long. The returned casing is the
// most frequent one across the names, first occurrence winning ties. A
// trailing "+" is stripped and a lowercase first letter is capitalized.
func LongestCommonSubstring(names []string) string {
	if len(names) < 2 {
		return ""
	}
	shortest := shortestOf(names)
	if len(shortest) < 3 {
		return ""
	}

	lowered := make([]string, len(names))
	for i, name := range names {
		lowered[i] = strings.ToLower(name)
	}

	var best, bestCased string
	for i := 0; i < len(shortest); i++ {
		for j := i + 3; j <= len(shortest); j++ {
			sub := shortest[i:j]
			subLower := strings.ToLower(sub)

			inAll := true
			for _, low := range lowered {
				if !strings.Contains(low, subLower) {
					inAll = false
					break
				}
			}
			if !inAll {
				continue
			}
			if len(sub) <= len(best) {
				continue
			}
			if !isBoundary(sub[len(sub)-1]) && len(sub) < 10 {
				continue
			}

			best = sub
			bestCased = dominantCasing(names, lowered, subLower)
		}
	}

	if bestCased == "" {
		return ""
	}
	s := bestCased
	if strings.HasSuffix(strings.TrimRight(s, " "), "+") {
		s = strings.TrimRight(s, " ")
		s = strings.TrimRight(s, "+")
		s = strings.TrimRight(s, " ")
	}
	if trimmed := strings.TrimSpace(s); trimmed != "" && startsLower(trimmed) {
		s = capitalizeFirst(trimmed)
	}
	return strings.TrimRight(s, " ")
}

// dominantCasing extracts the substring's original casing from each name and
// returns the most frequent variant, preferring the earliest seen on a tie.
func dominantCasing(names, lowered []string, subLower string) string {
	var variants []string
	counts := make(map[string]int)
	for i, name := range names {
		pos := strings.Index(lowered[i], subLower)
		if pos < 0 || pos+len(subLower) > len(name) {
			continue
		}
		v := name[pos : pos+len(subLower)]
		if counts[v] == 0 {
			variants = append(variants, v)
		}
		counts[v]++
	}
	bestCount := 0
	best := ""
	for _, v := range variants {
		if counts[v] > bestCount {
			bestCount = counts[v]
			best = v
		}
	}
	return best
}

// wordSubsequence reports whether shorter's words appear in order within
// longer's words.
func wordSubsequence(shorter, longer []string) bool {
	i := 0
	for _, w := range longer {
		if i < len(shorter) && w == shorter[i] {
			i++
		}
	}
	return i == len(shorter)
}

func shortestOf(names []string) string {
	shortest := names[0]
	for _, name := range names[1:] {
		if len(name) < len(shortest) {
			shortest = name
		}
	}
	return shortest
}

func startsLower(s string) bool {
	for _, r := range s {
		return unicode.IsLower(r)
	}
	return false
}

func capitalizeFirst(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}
