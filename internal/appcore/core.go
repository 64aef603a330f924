// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"mirureader-core/genotype"
	"mirureader-core/psearch"
	"mirureader-core/reftable"
	"mirureader/internal/cmdutil"
	"mirureader/internal/runutil"
	"mirureader/internal/search"
	"mirureader/internal/writers"
)

// inputError marks errors caused by the user's files or arguments.
type inputError struct{ err error }

func (e inputError) Error() string { return e.err.Error() }
func (e inputError) Unwrap() error { return e.err }

// InputError tags err so that ExitCode maps it to 2.
func InputError(err error) error {
	if err == nil {
		return nil
	}
	return inputError{err}
}

// Sample is one reads file and its output prefix.
type Sample struct {
	Name  string
	Reads string
}

type Options struct {
	Samples []Sample
	Runner  search.Runner
	// Request carries the search parameters shared by all samples;
	// per-sample fields are filled in by Run.
	Request   search.Request
	ReportDir string
	CheckRead bool // reads must exist (false when reusing reports)

	Caller genotype.Caller

	Format string
	Writer writers.Options

	Quiet    bool
	Progress bool
}

// Run genotypes every sample and writes the profiles to stdout. Nothing
// is written unless every sample succeeds. It returns the process exit
// code.
func Run(parent context.Context, stdout, stderr io.Writer, o Options) int {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	profiles := make([]genotype.Profile, 0, len(o.Samples))
	for _, s := range o.Samples {
		p, err := genotypeSample(ctx, stderr, o, s)
		if err == nil {
			err = ctx.Err()
		}
		if err != nil {
			code := ExitCode(err)
			if code != 130 {
				fmt.Fprintf(stderr, "error: %s: %v\n", s.Name, err)
			}
			return code
		}
		profiles = append(profiles, p)
	}

	outw := bufio.NewWriter(stdout)
	inCh, writeErr := writers.StartProfileWriter(outw, o.Format, o.Writer, len(profiles)+1)
	for _, p := range profiles {
		inCh <- p
	}
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}

func genotypeSample(ctx context.Context, stderr io.Writer, o Options, s Sample) (genotype.Profile, error) {
	if o.CheckRead && s.Reads != "-" {
		if _, err := os.Stat(s.Reads); err != nil {
			return genotype.Profile{}, err
		}
	}
	dir := runutil.SampleDir(o.ReportDir, s.Reads)
	req := o.Request
	req.Sample = s.Name
	req.Reads = s.Reads
	req.ReportPath = runutil.ReportPath(dir, s.Name, req.MismatchPercent)
	req.FastaPath = runutil.FastaPath(dir, s.Name)

	bar := cmdutil.StartProgress(stderr, o.Progress && !o.Quiet, s.Name, 0)
	req.Progress = bar.Increment
	path, err := o.Runner.Search(ctx, req)
	bar.Finish()
	if err != nil {
		return genotype.Profile{}, err
	}

	rep, err := search.ReadReport(path)
	if err != nil {
		return genotype.Profile{}, err
	}
	for _, l := range o.Caller.Loci {
		if !rep.Has(l) {
			cmdutil.Warnf(stderr, o.Quiet, "%s: locus %s absent from %s; reported as ND", s.Name, l, path)
		}
	}
	return o.Caller.CallConcurrent(s.Name, rep), nil
}

// ExitCode maps an error to the process exit code: 130 cancelled,
// 2 bad input, 3 anything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	case errors.As(err, new(inputError)),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, search.ErrNoReport),
		errors.Is(err, psearch.ErrMalformed),
		errors.Is(err, reftable.ErrShape):
		return 2
	}
	return 3
}
