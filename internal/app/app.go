// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	"mirureader-core/consensus"
	"mirureader-core/genotype"
	"mirureader-core/primer"
	"mirureader/internal/appcore"
	"mirureader/internal/cli"
	"mirureader/internal/cmdutil"
	"mirureader/internal/runutil"
	"mirureader/internal/search"
	"mirureader/internal/version"
	"mirureader/internal/writers"
)

const name = "mirureader"

// flush writes buffered output; a closed pipe downstream is not an error.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	cli.InstallUsage(fs, name)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flush(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return flush(outw, stderr, appcore.ExitCode(appcore.InputError(err)))
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(outw, stderr, 0)
	}

	o, err := prepare(opts, stderr)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return appcore.ExitCode(err)
	}
	return appcore.Run(parent, stdout, stderr, o)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// prepare loads tables and primers and assembles the run options.
func prepare(opts cli.Options, stderr io.Writer) (appcore.Options, error) {
	tables, err := appcore.LoadTables(opts.Table, opts.TableExtended, stderr, opts.Quiet)
	if err != nil {
		return appcore.Options{}, err
	}
	pairs, err := appcore.LoadPrimers(opts.PrimerFile)
	if err != nil {
		return appcore.Options{}, err
	}

	loci := opts.Loci
	if len(loci) == 0 {
		loci = primer.Loci(pairs)
	}
	var selected []primer.Pair
	if !opts.Amplicons {
		if selected, err = appcore.SelectPairs(pairs, loci); err != nil {
			return appcore.Options{}, err
		}
	}

	caller := genotype.Caller{
		Tables: tables,
		Loci:   loci,
		Config: consensus.Config{
			MinAmplicons:          opts.MinAmplicons,
			FreqThreshold:         opts.Freq,
			AmpliconModeThreshold: opts.AmpliconMode,
		},
	}
	if err := caller.Validate(); err != nil {
		return appcore.Options{}, appcore.InputError(err)
	}

	samples, err := samplesOf(opts)
	if err != nil {
		return appcore.Options{}, err
	}

	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	var runner search.Runner
	switch {
	case opts.Amplicons:
		runner = search.Existing{}
	case opts.Search == cli.SearchEmboss:
		runner = search.Emboss{Binary: opts.Primersearch, Log: quietWriter(stderr, opts.Quiet)}
	default:
		runner = search.Builtin{}
	}
	if opts.NoFasta && (opts.Amplicons || opts.Search != cli.SearchEmboss) {
		cmdutil.Warnf(stderr, opts.Quiet, "--nofasta only applies to --search %s", cli.SearchEmboss)
	}

	return appcore.Options{
		Samples: samples,
		Runner:  runner,
		Request: search.Request{
			PrimerFile:      opts.PrimerFile,
			Pairs:           selected,
			MismatchPercent: opts.Mismatch,
			MaxLen:          opts.MaxLen,
			HitCap:          opts.HitCap,
			Threads:         threads,
			KeepFasta:       !opts.NoFasta,
		},
		ReportDir: opts.ReportDir,
		CheckRead: !opts.Amplicons,
		Caller:    caller,
		Format:    opts.Output,
		Writer: writers.Options{
			Loci:    loci,
			Header:  opts.Header,
			Details: true, // json/jsonl carry the amplimers
		},
		Quiet:    opts.Quiet,
		Progress: opts.Progress,
	}, nil
}

// samplesOf names each reads file; names must be unique since they key
// the report files.
func samplesOf(opts cli.Options) ([]appcore.Sample, error) {
	seen := map[string]string{}
	out := make([]appcore.Sample, 0, len(opts.Reads))
	for _, r := range opts.Reads {
		n := runutil.SamplePrefix(opts.Prefix, r)
		if prev, dup := seen[n]; dup {
			return nil, appcore.InputError(fmt.Errorf("reads %s and %s share the sample name %q", prev, r, n))
		}
		seen[n] = r
		out = append(out, appcore.Sample{Name: n, Reads: r})
	}
	return out, nil
}

func quietWriter(w io.Writer, quiet bool) io.Writer {
	if quiet {
		return io.Discard
	}
	return w
}
