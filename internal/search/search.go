// Package search produces the primersearch report that a sample is
// genotyped from: by the built-in engine, by running EMBOSS primersearch,
// or by reusing a report already on disk.
package search

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shenwei356/xopen"

	"mirureader-core/primer"
	"mirureader-core/psearch"
)

var (
	// ErrNoReport means the expected report file does not exist.
	ErrNoReport = errors.New("primer-search report not found")
	// ErrNoPrimersearch means the external binary could not be started.
	ErrNoPrimersearch = errors.New("primersearch command not found")
)

// Request describes one sample's search.
type Request struct {
	Sample          string
	Reads           string
	PrimerFile      string
	Pairs           []primer.Pair
	MismatchPercent int
	MaxLen          int
	HitCap          int // binding sites kept per primer per read, built-in search only
	Threads         int
	ReportPath      string
	FastaPath       string // converted reads, when conversion is needed
	KeepFasta       bool
	Progress        func() // per scanned read; may be nil
}

// Runner writes (or locates) the report for req and returns its path.
type Runner interface {
	Search(ctx context.Context, req Request) (string, error)
}

// Existing reuses a report written by an earlier run.
type Existing struct{}

func (Existing) Search(_ context.Context, req Request) (string, error) {
	return req.ReportPath, checkReport(req.ReportPath)
}

func checkReport(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNoReport, path)
		}
		return err
	}
	return nil
}

// ReadReport parses the report at path (gzip is detected).
func ReadReport(path string) (*psearch.Report, error) {
	if err := checkReport(path); err != nil {
		return nil, err
	}
	if fi, err := os.Stat(path); err == nil && fi.Size() == 0 {
		// xopen refuses empty files; an empty report has no loci.
		return psearch.Parse(strings.NewReader(""))
	}
	r, err := xopen.Ropen(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	rep, err := psearch.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rep, nil
}
