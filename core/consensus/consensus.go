// Package consensus reduces the repeat calls of one locus to a single call
// annotated with a warning tier.
package consensus

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"mirureader-core/classify"
	"mirureader-core/reftable"
)

// Config holds the calling thresholds.
type Config struct {
	MinAmplicons          int     // below this a clear mode gets Warning 1
	FreqThreshold         float64 // mode frequency at or below this gets Warning 2
	AmpliconModeThreshold int     // below this a tied mode gets Warning 3 instead of 4
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{MinAmplicons: 3, FreqThreshold: 0.6, AmpliconModeThreshold: 10}
}

// Validate checks threshold ranges.
func (c Config) Validate() error {
	if c.MinAmplicons < 0 {
		return errors.New("min amplicons must be >= 0")
	}
	if c.FreqThreshold < 0 || c.FreqThreshold > 1 {
		return fmt.Errorf("frequency threshold %v outside [0,1]", c.FreqThreshold)
	}
	if c.AmpliconModeThreshold < 0 {
		return errors.New("amplicon mode threshold must be >= 0")
	}
	return nil
}

// Tier is the confidence annotation of a call.
type Tier int

const (
	TierNone Tier = iota
	TierLowCoverage
	TierUnfixed
	TierPolyclonalLowCoverage
	TierPolyclonal
	TierND
)

// Number is the printed warning number (1-4), 0 for none or ND.
func (t Tier) Number() int {
	switch t {
	case TierLowCoverage, TierUnfixed, TierPolyclonalLowCoverage, TierPolyclonal:
		return int(t)
	}
	return 0
}

func (t Tier) String() string {
	switch t {
	case TierNone:
		return "none"
	case TierLowCoverage:
		return "low coverage"
	case TierUnfixed:
		return "unfixed allele"
	case TierPolyclonalLowCoverage:
		return "possible polyclonal, low coverage"
	case TierPolyclonal:
		return "possible polyclonal"
	case TierND:
		return "ND"
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// ND is the call value of a locus without usable amplimers.
const ND = "ND"

// Result is the consensus for one locus.
type Result struct {
	Locus string
	// Call is a single label, a "/"-joined ambiguous set, or ND.
	Call      string
	Ambiguous bool
	Tier      Tier
	// Modes is the tied mode set (ascending) for polyclonal tiers.
	Modes []reftable.Label
	// Assigned counts calls with a repeat label; Attempted counts all.
	Assigned  int
	Attempted int
	// Frequency of the winning label among assigned calls (single mode only).
	Frequency float64
}

// Warning renders the parenthetical warning, or "" when there is none.
func (r Result) Warning() string {
	switch r.Tier {
	case TierLowCoverage:
		return "(Warning 1: Low Coverage)"
	case TierUnfixed:
		return "(Warning 2: Unfixed allele)"
	case TierPolyclonalLowCoverage:
		return fmt.Sprintf("(Warning 3: Possible polyclonal %s, Low Coverage)", braceList(r.Modes))
	case TierPolyclonal:
		return fmt.Sprintf("(Warning 4: Possible polyclonal %s)", braceList(r.Modes))
	}
	return ""
}

// String is the report cell: the call, suffixed with its warning.
func (r Result) String() string {
	if w := r.Warning(); w != "" {
		return r.Call + " " + w
	}
	return r.Call
}

// Compute derives the consensus of calls (all for locus). Unassigned calls
// are counted as attempted and otherwise ignored.
func Compute(locus string, calls []classify.Call, cfg Config) Result {
	res := Result{Locus: locus, Attempted: len(calls)}

	counts := map[reftable.Label]int{}
	mmSum := map[reftable.Label]int{}
	for _, c := range calls {
		if !c.Assigned {
			continue
		}
		res.Assigned++
		counts[c.Label]++
		mmSum[c.Label] += c.MismatchTotal
	}
	n := res.Assigned
	if n == 0 {
		res.Call, res.Tier = ND, TierND
		return res
	}

	modes, top := topLabels(counts)
	if len(modes) == 1 {
		m := modes[0]
		res.Call = string(m)
		res.Frequency = float64(top) / float64(n)
		switch {
		case n < cfg.MinAmplicons:
			res.Tier = TierLowCoverage
		case res.Frequency <= cfg.FreqThreshold:
			res.Tier = TierUnfixed
		default:
			res.Tier = TierNone
		}
		return res
	}

	best := resolveByMismatch(modes, mmSum)
	if len(best) == 1 {
		res.Call = string(best[0])
	} else {
		res.Call = joinLabels(best, "/")
		res.Ambiguous = true
	}
	res.Modes = modes
	if n < cfg.AmpliconModeThreshold {
		res.Tier = TierPolyclonalLowCoverage
	} else {
		res.Tier = TierPolyclonal
	}
	return res
}

// topLabels returns the labels with the highest count, ascending.
func topLabels(counts map[reftable.Label]int) ([]reftable.Label, int) {
	top := 0
	for _, v := range counts {
		if v > top {
			top = v
		}
	}
	var out []reftable.Label
	for k, v := range counts {
		if v == top {
			out = append(out, k)
		}
	}
	sortLabels(out)
	return out, top
}

// resolveByMismatch keeps the candidates with the smallest summed primer
// mismatches; order is preserved.
func resolveByMismatch(cands []reftable.Label, mmSum map[reftable.Label]int) []reftable.Label {
	min := -1
	for _, c := range cands {
		if min < 0 || mmSum[c] < min {
			min = mmSum[c]
		}
	}
	var out []reftable.Label
	for _, c := range cands {
		if mmSum[c] == min {
			out = append(out, c)
		}
	}
	return out
}

func sortLabels(ls []reftable.Label) {
	sort.SliceStable(ls, func(i, j int) bool { return ls[i].Less(ls[j]) })
}

func joinLabels(ls []reftable.Label, sep string) string {
	ss := make([]string, len(ls))
	for i, l := range ls {
		ss[i] = string(l)
	}
	return strings.Join(ss, sep)
}

func braceList(ls []reftable.Label) string {
	return "{" + joinLabels(ls, ",") + "}"
}
