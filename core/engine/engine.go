// core/engine/engine.go
package engine

import (
	"bytes"
	"sort"

	"mirureader-core/primer"
)

// Strand of an amplimer relative to the scanned read.
const (
	StrandForward = "forward" // Forward primer on the read, Reverse primer on its complement
	StrandRevcomp = "revcomp" // Reverse primer on the read, Forward primer on its complement
)

// Config holds primer-search parameters.
type Config struct {
	MismatchPercent int // per-primer mismatch allowance, percent of primer length
	MinLen          int // 0 = unbounded
	MaxLen          int // 0 = unbounded
	HitCap          int // max binding sites kept per primer per read (0 = unlimited)
}

// Amplimer is one predicted PCR product on one read.
type Amplimer struct {
	Locus      string
	SequenceID string
	Start      int // 0-based, inclusive
	End        int // 0-based, exclusive
	Length     int
	Strand     string
	FwdPrimer  string // primer binding the read as given
	RevPrimer  string // primer binding the complement
	FwdMM      int
	RevMM      int
	SeqLen     int
}

// Engine runs primer search on sequences.
type Engine struct {
	cfg Config
}

// New creates a new Engine.
func New(c Config) *Engine { return &Engine{cfg: c} }

// Simulate finds the amplimers of one primer pair on seq.
func (e *Engine) Simulate(seqID string, seq []byte, p primer.Pair) []Amplimer {
	seq = bytes.ToUpper(seq)
	a := []byte(p.Forward)
	b := []byte(p.Reverse)
	ra := primer.RevComp(a)
	rb := primer.RevComp(b)

	mmA := primer.MaxMismatches(len(a), e.cfg.MismatchPercent)
	mmB := primer.MaxMismatches(len(b), e.cfg.MismatchPercent)
	hc := e.cfg.HitCap

	fwdA := primer.FindMatches(seq, a, mmA, hc)
	fwdB := primer.FindMatches(seq, b, mmB, hc)
	revA := primer.FindMatches(seq, ra, mmA, hc)
	revB := primer.FindMatches(seq, rb, mmB, hc)

	minL, maxL := p.MinProduct, p.MaxProduct
	if minL == 0 {
		minL = e.cfg.MinLen
	}
	if maxL == 0 {
		maxL = e.cfg.MaxLen
	}

	j := joiner{seqID: seqID, seqLen: len(seq), locus: p.ID, minL: minL, maxL: maxL}
	out := j.join(fwdA, revB, len(b), StrandForward, p.Forward, p.Reverse)
	out = append(out, j.join(fwdB, revA, len(a), StrandRevcomp, p.Reverse, p.Forward)...)
	return out
}

// SimulateAll runs every pair over seq, pairs in order.
func (e *Engine) SimulateAll(seqID string, seq []byte, pairs []primer.Pair) []Amplimer {
	var out []Amplimer
	for _, p := range pairs {
		out = append(out, e.Simulate(seqID, seq, p)...)
	}
	return out
}

type joiner struct {
	seqID      string
	seqLen     int
	locus      string
	minL, maxL int
}

// join pairs each left site with every complement site downstream of it
// whose product length fits the bounds.
func (j joiner) join(left, right []primer.Match, rlen int, strand, fwdPrimer, revPrimer string) []Amplimer {
	if len(left) == 0 || len(right) == 0 {
		return nil
	}
	sort.SliceStable(right, func(x, y int) bool { return right[x].Pos < right[y].Pos })

	var out []Amplimer
	for _, l := range left {
		lo := l.Pos + 1 // strictly to the right
		if j.minL > 0 {
			if v := l.Pos + j.minL - rlen; v > lo {
				lo = v
			}
		}
		hi := j.seqLen - rlen
		if j.maxL > 0 {
			if v := l.Pos + j.maxL - rlen; v < hi {
				hi = v
			}
		}
		if hi < lo {
			continue
		}
		i := sort.Search(len(right), func(k int) bool { return right[k].Pos >= lo })
		for ; i < len(right) && right[i].Pos <= hi; i++ {
			r := right[i]
			end := r.Pos + rlen
			if end-l.Pos < l.Length {
				continue
			}
			out = append(out, Amplimer{
				Locus:      j.locus,
				SequenceID: j.seqID,
				Start:      l.Pos,
				End:        end,
				Length:     end - l.Pos,
				Strand:     strand,
				FwdPrimer:  fwdPrimer,
				RevPrimer:  revPrimer,
				FwdMM:      l.Mismatches,
				RevMM:      r.Mismatches,
				SeqLen:     j.seqLen,
			})
		}
	}
	return out
}
