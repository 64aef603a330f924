package output

import "strings"

// Output formats.
const (
	FormatTSV     = "tsv"
	FormatJSON    = "json"
	FormatJSONL   = "jsonl"
	FormatDetails = "details"
)

// SampleColumn heads the first TSV column.
const SampleColumn = "sample_prefix"

// DetailsHeader is the header row of the per-amplimer inspection table.
const DetailsHeader = "sample\tlocus\tamplimer\tmismatches\tlength\trepeat"

// NotAssigned marks an amplimer outside every bin in details output.
const NotAssigned = "NA"

// TSVHeader is sample_prefix followed by the loci, tab-separated.
func TSVHeader(loci []string) string {
	return SampleColumn + "\t" + strings.Join(loci, "\t")
}
