package search

import (
	"context"
	"fmt"
	"sort"

	"github.com/shenwei356/xopen"

	"mirureader-core/engine"
	"mirureader-core/primer"
	"mirureader-core/psearch"
	"mirureader/internal/pipeline"
)

// Builtin scans the reads with the in-process engine and writes the
// report in the primersearch layout.
type Builtin struct{}

func (Builtin) Search(ctx context.Context, req Request) (string, error) {
	eng := engine.New(engine.Config{MismatchPercent: req.MismatchPercent, MaxLen: req.MaxLen, HitCap: req.HitCap})

	var hits []pipeline.Hit
	err := pipeline.ForEachAmplimer(ctx,
		pipeline.Config{Threads: req.Threads, Progress: req.Progress},
		req.Reads, req.Pairs, eng,
		func(h pipeline.Hit) error {
			hits = append(hits, h)
			return nil
		})
	if err != nil {
		return "", err
	}

	w, err := xopen.Wopen(req.ReportPath)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	if err := psearch.Write(w, Sections(req.Pairs, hits)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write report: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return req.ReportPath, nil
}

// Sections groups hits per pair in pair order; every pair gets a section,
// empty or not. hits is sorted in place.
func Sections(pairs []primer.Pair, hits []pipeline.Hit) []psearch.Section {
	order := make(map[string]int, len(pairs))
	for i, p := range pairs {
		order[p.ID] = i
	}
	sort.SliceStable(hits, func(i, j int) bool { return pipeline.Less(order, hits[i], hits[j]) })

	out := make([]psearch.Section, len(pairs))
	for i, p := range pairs {
		out[i].Locus = p.ID
	}
	for _, h := range hits {
		i, ok := order[h.Locus]
		if !ok {
			continue
		}
		out[i].Hits = append(out[i].Hits, toReportHit(h))
	}
	return out
}

func toReportHit(h pipeline.Hit) psearch.Hit {
	return psearch.Hit{
		SequenceID:  h.SequenceID,
		Description: h.Description,
		FwdPrimer:   h.FwdPrimer,
		FwdPos:      h.Start + 1,
		FwdMM:       h.FwdMM,
		RevPrimer:   h.RevPrimer,
		RevPos:      h.SeqLen - h.End + 1,
		RevMM:       h.RevMM,
		Length:      h.Length,
	}
}
