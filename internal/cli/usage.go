// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"mirureader/internal/version"
)

// InstallUsage sets the grouped help text on fs. Call after ParseArgs has
// registered the flags.
func InstallUsage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – MIRU-VNTR genotyping from sequencing reads\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s [flags] -r reads.fastq.gz [-p SAMPLE]\n  %s [flags] reads/*.fastq.gz\n", name, name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -r, --reads file            Reads file(s), FASTA/FASTQ (.gz ok) or SAM/BAM; repeatable, positionals and globs too")
		fmt.Fprintln(out, "  -p, --prefix string         Sample ID (single reads file; default: file name)")
		fmt.Fprintln(out, "      --table file            Allele calling table [MIRU_table next to the executable]")
		fmt.Fprintln(out, "      --table-extended file   Extended table with a No. column [MIRU_table_0580]")
		fmt.Fprintln(out, "      --primers file          Primer file: id forward reverse [MIRU_primers]")
		fmt.Fprintln(out, "      --loci list             Comma-separated loci to report [all primer loci]")

		fmt.Fprintln(out, "\nSearch:")
		fmt.Fprintf(out, "      --amplicons             Reuse <dir>/<prefix>.<mismatch>.primersearch.out [%s]\n", def("amplicons"))
		fmt.Fprintf(out, "      --mismatch int          Allowed percent mismatch per primer [%s]\n", def("mismatch"))
		fmt.Fprintf(out, "      --search string         Backend: builtin | emboss [%s]\n", def("search"))
		fmt.Fprintf(out, "      --primersearch path     EMBOSS primersearch binary [%s]\n", def("primersearch"))
		fmt.Fprintln(out, "      --report-dir dir        Where reports and converted reads go [next to the reads]")
		fmt.Fprintf(out, "      --nofasta               Delete FASTA converted from non-FASTA or gzip reads [%s]\n", def("nofasta"))
		fmt.Fprintf(out, "      --max-length int        Maximum amplimer length, built-in search [%s]\n", def("max-length"))
		fmt.Fprintf(out, "      --hit-cap int           Max binding sites kept per primer per read (0=unlimited) [%s]\n", def("hit-cap"))
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nCalling:")
		fmt.Fprintf(out, "      --min-amplicons int     Warning 1 below this many amplicons [%s]\n", def("min-amplicons"))
		fmt.Fprintf(out, "      --freq float            Warning 2 at or below this mode frequency [%s]\n", def("freq"))
		fmt.Fprintf(out, "      --amplicon-mode int     Tied calls below this get Warning 3, else 4 [%s]\n", def("amplicon-mode"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: tsv | json | jsonl | details [%s]\n", def("output"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --progress              Read-scan progress bar on stderr [%s]\n", def("progress"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "      --config file           Config file (yaml|toml|json); MIRUREADER_* env vars also apply")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
