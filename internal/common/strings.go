package common

import "strings"

// SplitList splits comma/whitespace separated values, trims them and drops
// empties and duplicates, preserving order. Case is kept.
func SplitList(in ...string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, s := range in {
		for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' }) {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			out = append(out, f)
		}
	}
	return out
}

// Missing returns the elements of want that are absent from have.
func Missing(want, have []string) []string {
	set := make(map[string]struct{}, len(have))
	for _, h := range have {
		set[h] = struct{}{}
	}
	var out []string
	for _, w := range want {
		if _, ok := set[w]; !ok {
			out = append(out, w)
		}
	}
	return out
}
