// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"mirureader-core/genotype"
	"mirureader/pkg/api"
)

// ToAPIProfile converts a domain Profile to the stable wire schema (v1).
// Amplimers are attached only when details is set.
func ToAPIProfile(p genotype.Profile, details bool) api.ProfileV1 {
	v := api.ProfileV1{Sample: p.Sample, Loci: make([]api.LocusV1, 0, len(p.Loci))}
	for _, r := range p.Loci {
		l := api.LocusV1{
			Locus:       r.Locus,
			Call:        r.Call,
			Ambiguous:   r.Ambiguous,
			Warning:     r.Tier.Number(),
			WarningText: r.Warning(),
			Assigned:    r.Assigned,
			Attempted:   r.Attempted,
			Frequency:   r.Frequency,
		}
		for _, m := range r.Modes {
			l.Modes = append(l.Modes, m.String())
		}
		v.Loci = append(v.Loci, l)
	}
	if details {
		for _, c := range p.Details {
			a := api.AmplimerV1{Locus: c.Locus, Index: c.Index, Length: c.Length, Mismatches: c.MismatchTotal}
			if c.Assigned {
				a.Repeat = c.Label.String()
			}
			v.Amplimers = append(v.Amplimers, a)
		}
	}
	return v
}

// WriteJSON writes a single JSON array of v1 profiles (pretty-indented).
func WriteJSON(w io.Writer, list []genotype.Profile, details bool) error {
	out := make([]api.ProfileV1, 0, len(list))
	for _, p := range list {
		out = append(out, ToAPIProfile(p, details))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
