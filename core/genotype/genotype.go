// Package genotype runs the calling chain for one sample:
// report observations -> repeat calls -> per-locus consensus.
//
// It never imports app, writers, cli, or search; keep it domain-only.
package genotype

import (
	"fmt"
	"sync"

	"mirureader-core/classify"
	"mirureader-core/consensus"
	"mirureader-core/psearch"
	"mirureader-core/reftable"
)

// Caller holds the read-only inputs shared by every sample.
type Caller struct {
	Tables reftable.Set
	Loci   []string // output order
	Config consensus.Config
}

// Profile is the genotype of one sample.
type Profile struct {
	Sample  string
	Loci    []consensus.Result // same order as Caller.Loci
	Details []classify.Call    // every amplimer, for inspection output
}

// Validate checks that every requested locus has a reference table.
func (c Caller) Validate() error {
	if len(c.Loci) == 0 {
		return fmt.Errorf("no loci to call")
	}
	var missing []string
	for _, l := range c.Loci {
		if _, ok := c.Tables.Lookup(l); !ok {
			missing = append(missing, l)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("no reference table for loci %v", missing)
	}
	return c.Config.Validate()
}

// Call genotypes rep locus by locus. Loci absent from the report are ND.
func (c Caller) Call(sample string, rep *psearch.Report) Profile {
	p := Profile{Sample: sample, Loci: make([]consensus.Result, len(c.Loci))}
	for i, locus := range c.Loci {
		calls := classify.Observations(c.Tables, rep.Observations(locus))
		p.Loci[i] = consensus.Compute(locus, calls, c.Config)
		p.Details = append(p.Details, calls...)
	}
	return p
}

// CallConcurrent is Call with one goroutine per locus. The output is
// identical to Call.
func (c Caller) CallConcurrent(sample string, rep *psearch.Report) Profile {
	p := Profile{Sample: sample, Loci: make([]consensus.Result, len(c.Loci))}
	details := make([][]classify.Call, len(c.Loci))

	var wg sync.WaitGroup
	wg.Add(len(c.Loci))
	for i, locus := range c.Loci {
		go func(i int, locus string) {
			defer wg.Done()
			calls := classify.Observations(c.Tables, rep.Observations(locus))
			p.Loci[i] = consensus.Compute(locus, calls, c.Config)
			details[i] = calls
		}(i, locus)
	}
	wg.Wait()

	for _, d := range details {
		p.Details = append(p.Details, d...)
	}
	return p
}
