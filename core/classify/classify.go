// Package classify turns amplimer lengths into repeat numbers by
// nearest-bin lookup in a locus reference table.
package classify

import (
	"mirureader-core/psearch"
	"mirureader-core/reftable"
)

// MaxAmpliconLength is the global ceiling; longer products are treated as
// non-specific amplification for every locus.
const MaxAmpliconLength = 1828

// Classify returns the repeat label for an amplimer of lengthBp, or
// ok=false when the length cannot be assigned.
//
// Equidistant lengths resolve to the lower bin.
func Classify(t reftable.Table, lengthBp int) (reftable.Label, bool) {
	if lengthBp > MaxAmpliconLength || t.Len() == 0 {
		return "", false
	}
	if lengthBp > t.Max().Length {
		return "", false
	}
	for i := 0; i < t.Len(); i++ {
		hi := t.At(i)
		if lengthBp >= hi.Length {
			continue
		}
		if i == 0 {
			return hi.Label, true
		}
		lo := t.At(i - 1)
		if abs(lengthBp-lo.Length) <= abs(lengthBp-hi.Length) {
			return lo.Label, true
		}
		return hi.Label, true
	}
	// lengthBp == largest bin
	return t.Max().Label, true
}

// Call is one classified amplimer.
type Call struct {
	Locus         string
	Index         int
	Label         reftable.Label
	Assigned      bool
	MismatchTotal int
	Length        int
}

// Observations classifies observations one-to-one. Observations for a locus
// missing from set are returned unassigned.
func Observations(set reftable.Set, obs []psearch.Observation) []Call {
	out := make([]Call, 0, len(obs))
	for _, o := range obs {
		c := Call{Locus: o.Locus, Index: o.Index, MismatchTotal: o.MismatchTotal, Length: o.Length}
		if t, ok := set.Lookup(o.Locus); ok {
			c.Label, c.Assigned = Classify(t, o.Length)
		}
		out = append(out, c)
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
