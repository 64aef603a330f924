// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"mirureader/internal/cliutil"
	"mirureader/internal/common"
	"mirureader/internal/config"
	"mirureader/internal/runutil"
)

// Search backends.
const (
	SearchBuiltin = "builtin"
	SearchEmboss  = "emboss"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Reads         []string
	Prefix        string
	Table         string
	TableExtended string
	PrimerFile    string
	Loci          []string

	// Search
	Amplicons    bool
	Mismatch     int
	Search       string
	Primersearch string
	ReportDir    string
	NoFasta      bool
	Threads      int
	MaxLen       int
	HitCap       int

	// Calling
	MinAmplicons int
	Freq         float64
	AmpliconMode int

	// Output
	Output   string
	Header   bool // true unless --no-header
	Progress bool

	// Misc
	Config  string
	Quiet   bool
	Version bool
}

// ParseArgs registers and parses all flags, applies the config file and
// environment, and validates the result.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var loci string
	noHeader := false

	// Input
	readsVal := &sliceValue{dst: &opt.Reads}
	fs.Var(readsVal, "reads", "reads file(s), FASTA/FASTQ (.gz ok) or SAM/BAM (repeatable)")
	fs.Var(readsVal, "r", "alias of --reads")
	fs.StringVar(&opt.Prefix, "prefix", "", "sample ID (default: reads file name)")
	fs.StringVar(&opt.Prefix, "p", "", "alias of --prefix")
	fs.StringVar(&opt.Table, "table", "", "allele calling table (default: "+runutil.DefaultTable+" next to the executable)")
	fs.StringVar(&opt.TableExtended, "table-extended", "", "extended allele calling table with a No. column (default: "+runutil.DefaultTableExtended+" next to the executable)")
	fs.StringVar(&opt.PrimerFile, "primers", "", "primer sequences (default: "+runutil.DefaultPrimers+" next to the executable)")
	fs.StringVar(&loci, "loci", "", "comma-separated loci to report (default: all loci of the primer file)")

	// Search
	fs.BoolVar(&opt.Amplicons, "amplicons", false, "reuse an existing primersearch report instead of searching")
	fs.IntVar(&opt.Mismatch, "mismatch", 18, "allowed percent mismatch per primer")
	fs.StringVar(&opt.Search, "search", SearchBuiltin, "primer search backend: builtin | emboss")
	fs.StringVar(&opt.Primersearch, "primersearch", "primersearch", "EMBOSS primersearch binary")
	fs.StringVar(&opt.ReportDir, "report-dir", "", "directory for reports and converted reads (default: next to the reads)")
	fs.BoolVar(&opt.NoFasta, "nofasta", false, "delete the FASTA converted from FASTQ/gzip/SAM/BAM reads")
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads (0=all CPUs)")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")
	fs.IntVar(&opt.MaxLen, "max-length", 2000, "maximum amplimer length for the built-in search (0=unbounded)")
	fs.IntVar(&opt.HitCap, "hit-cap", 0, "max binding sites kept per primer per read, built-in search (0=unlimited)")

	// Calling
	fs.IntVar(&opt.MinAmplicons, "min-amplicons", 3, "amplicons below which a clear call gets Warning 1")
	fs.Float64Var(&opt.Freq, "freq", 0.6, "mode frequency at or below which a call gets Warning 2")
	fs.IntVar(&opt.AmpliconMode, "amplicon-mode", 10, "amplicons below which a tied call gets Warning 3 instead of 4")

	// Output
	fs.StringVar(&opt.Output, "output", "tsv", "output: tsv | json | jsonl | details")
	fs.StringVar(&opt.Output, "o", "tsv", "alias of --output")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line")
	fs.BoolVar(&opt.Progress, "progress", false, "show a read-scan progress bar on stderr")

	// Misc
	fs.StringVar(&opt.Config, "config", "", "config file (yaml|toml|json); MIRUREADER_* env vars also apply")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&help, "h", false, "show this help message")
	fs.BoolVar(&help, "help", false, "show this help message")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	v, err := config.Load(opt.Config)
	if err != nil {
		return opt, err
	}
	if err := config.Apply(fs, v, "config", "version", "help"); err != nil {
		return opt, err
	}

	opt.Header = !noHeader
	opt.Loci = common.SplitList(loci)
	opt.Reads = append(opt.Reads, posArgs...)
	if opt.Reads, err = cliutil.ExpandReads(opt.Reads); err != nil {
		return opt, err
	}
	if opt.Table == "" {
		opt.Table = runutil.DataPath(runutil.DefaultTable)
	}
	if opt.TableExtended == "" {
		opt.TableExtended = runutil.DataPath(runutil.DefaultTableExtended)
	}
	if opt.PrimerFile == "" {
		opt.PrimerFile = runutil.DataPath(runutil.DefaultPrimers)
	}
	return opt, Validate(opt)
}

// Validate rejects option combinations that cannot run.
func Validate(o Options) error {
	if len(o.Reads) == 0 {
		return errors.New("at least one --reads file is required")
	}
	if o.Prefix != "" && len(o.Reads) > 1 {
		return errors.New("--prefix applies to a single reads file")
	}
	for _, r := range o.Reads {
		if r == "-" && o.Prefix == "" {
			return errors.New("--prefix is required when reading stdin")
		}
		if r == "-" && o.Search == SearchEmboss && !o.Amplicons {
			return errors.New("--search emboss cannot read stdin")
		}
	}
	if o.Mismatch < 0 || o.Mismatch > 100 {
		return errors.New("--mismatch must be between 0 and 100")
	}
	switch o.Search {
	case SearchBuiltin, SearchEmboss:
	default:
		return fmt.Errorf("invalid --search %q", o.Search)
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if o.MaxLen < 0 {
		return errors.New("--max-length must be ≥ 0")
	}
	if o.HitCap < 0 {
		return errors.New("--hit-cap must be ≥ 0")
	}
	if o.MinAmplicons < 0 {
		return errors.New("--min-amplicons must be ≥ 0")
	}
	if o.Freq < 0 || o.Freq > 1 {
		return errors.New("--freq must be between 0 and 1")
	}
	if o.AmpliconMode < 0 {
		return errors.New("--amplicon-mode must be ≥ 0")
	}
	switch o.Output {
	case "tsv", "json", "jsonl", "details":
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	return nil
}
