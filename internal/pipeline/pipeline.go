// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"mirureader-core/engine"
	"mirureader-core/primer"
	"mirureader/internal/reads"
)

// Config controls the scanning pipeline.
type Config struct {
	Threads  int    // number of worker goroutines (>=1)
	Progress func() // called once per scanned read; may be nil
}

// Hit is an amplimer tagged with the read it came from.
type Hit struct {
	engine.Amplimer
	Ordinal     int    // read position in the input file
	Description string // read header after the ID
}

// Less orders hits by pair order, then read, then coordinates.
func Less(order map[string]int, a, b Hit) bool {
	if oa, ob := order[a.Locus], order[b.Locus]; oa != ob {
		return oa < ob
	}
	if a.Ordinal != b.Ordinal {
		return a.Ordinal < b.Ordinal
	}
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	if a.End != b.End {
		return a.End < b.End
	}
	return a.Strand < b.Strand
}

// ForEachAmplimer scans every read of path against pairs and calls visit
// for each amplimer. visit runs on a single goroutine. It returns the
// first error encountered (including context cancellation).
func ForEachAmplimer(
	ctx context.Context,
	cfg Config,
	path string,
	pairs []primer.Pair,
	sim Simulator,
	visit func(Hit) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan reads.Record, cfg.Threads*2)
	results := make(chan []Hit, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case rec, ok := <-jobs:
					if !ok {
						return
					}
					amps := sim.SimulateAll(rec.ID, rec.Seq, pairs)
					if cfg.Progress != nil {
						cfg.Progress()
					}
					if len(amps) == 0 {
						continue
					}
					hits := make([]Hit, len(amps))
					for i, a := range amps {
						hits[i] = Hit{Amplimer: a, Ordinal: rec.Ordinal, Description: rec.Desc}
					}
					select {
					case results <- hits:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for hs := range results {
			if cerr != nil {
				continue
			}
			for _, h := range hs {
				if err := visit(h); err != nil {
					cerr = err
					cancel()
					break
				}
			}
		}
	}()

	// Feed work
	ferr := reads.ForEach(ctx, path, func(rec reads.Record) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case jobs <- rec:
			return nil
		}
	})

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if cerr != nil {
		return cerr
	}
	return ferr
}
