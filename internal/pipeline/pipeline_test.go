package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"testing"

	"mirureader-core/engine"
	"mirureader-core/primer"
)

// Compile-time check: the concrete engine satisfies the minimal contract.
var _ Simulator = (*engine.Engine)(nil)

// fake engine emitting one amplimer per read
type fakeEng struct{}

func (fakeEng) SimulateAll(seqID string, seq []byte, pairs []primer.Pair) []engine.Amplimer {
	return []engine.Amplimer{{Locus: pairs[0].ID, SequenceID: seqID, Start: 1, End: 3, Length: 2, Strand: engine.StrandForward}}
}

func writeReads(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(">r")
		b.WriteString(string(rune('a' + i%26)))
		b.WriteString(" desc\nACGTACGT\n")
	}
	fn := filepath.Join(t.TempDir(), "reads.fa")
	if err := os.WriteFile(fn, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestForEachAmplimerUsesSimulator(t *testing.T) {
	fn := writeReads(t, 20)
	var seen int64
	var hits []Hit
	err := ForEachAmplimer(context.Background(),
		Config{Threads: 4, Progress: func() { atomic.AddInt64(&seen, 1) }},
		fn, []primer.Pair{{ID: "x"}}, fakeEng{},
		func(h Hit) error {
			hits = append(hits, h)
			return nil
		})
	if err != nil {
		t.Fatalf("pipeline err: %v", err)
	}
	if len(hits) != 20 || seen != 20 {
		t.Fatalf("want 20 hits and 20 progress ticks, got %d/%d", len(hits), seen)
	}
	order := map[string]int{"x": 0}
	sort.Slice(hits, func(i, j int) bool { return Less(order, hits[i], hits[j]) })
	for i, h := range hits {
		if h.Ordinal != i || h.Description != "desc" {
			t.Fatalf("hit %d: %+v", i, h)
		}
	}
}

func TestForEachAmplimerStopsOnVisitError(t *testing.T) {
	fn := writeReads(t, 50)
	boom := errors.New("boom")
	err := ForEachAmplimer(context.Background(), Config{Threads: 2}, fn,
		[]primer.Pair{{ID: "x"}}, fakeEng{},
		func(Hit) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
}

func TestForEachAmplimerWithEngine(t *testing.T) {
	fwd, rev := "GCGCGAGAGCCCGAACTGC", "GCGCAGCAGAAACGTCAGC"
	seq := fwd + strings.Repeat("A", 40) + string(primer.RevComp([]byte(rev)))
	fn := filepath.Join(t.TempDir(), "reads.fastq")
	q := strings.Repeat("I", len(seq))
	if err := os.WriteFile(fn, []byte("@r1\n"+seq+"\n+\n"+q+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	eng := engine.New(engine.Config{MismatchPercent: 18, MaxLen: 2000})
	var n int
	err := ForEachAmplimer(context.Background(), Config{Threads: 1}, fn,
		[]primer.Pair{{ID: "0154", Forward: fwd, Reverse: rev}}, eng,
		func(h Hit) error {
			n++
			if h.Length != len(seq) || h.SequenceID != "r1" {
				t.Errorf("unexpected hit %+v", h)
			}
			return nil
		})
	if err != nil || n != 1 {
		t.Fatalf("err=%v n=%d", err, n)
	}
}

func TestForEachAmplimerMissingFile(t *testing.T) {
	err := ForEachAmplimer(context.Background(), Config{}, filepath.Join(t.TempDir(), "nope.fa"),
		[]primer.Pair{{ID: "x"}}, fakeEng{}, func(Hit) error { return nil })
	if err == nil {
		t.Fatal("expected open error")
	}
}
