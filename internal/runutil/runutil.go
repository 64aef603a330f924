// internal/runutil/runutil.go
package runutil

import (
	"os"
	"path/filepath"
	"strconv"

	"mirureader/internal/reads"
)

// Stock data file names, looked up next to the executable.
const (
	DefaultTable         = "MIRU_table"
	DefaultTableExtended = "MIRU_table_0580"
	DefaultPrimers       = "MIRU_primers"
)

// SamplePrefix is the explicit prefix, or the reads file name without
// sequence/compression extensions.
func SamplePrefix(prefix, readsPath string) string {
	if prefix != "" {
		return prefix
	}
	return reads.Stem(readsPath)
}

// SampleDir is dir when set, else the directory holding the reads file.
func SampleDir(dir, readsPath string) string {
	if dir != "" {
		return dir
	}
	if abs, err := filepath.Abs(readsPath); err == nil {
		return filepath.Dir(abs)
	}
	return filepath.Dir(readsPath)
}

// ReportPath is <dir>/<prefix>.<mismatch>.primersearch.out.
func ReportPath(dir, prefix string, mismatch int) string {
	return filepath.Join(dir, prefix+"."+strconv.Itoa(mismatch)+".primersearch.out")
}

// FastaPath is the converted-reads file <dir>/<prefix>.fasta.
func FastaPath(dir, prefix string) string {
	return filepath.Join(dir, prefix+".fasta")
}

// DataPath resolves a stock data file next to the running executable,
// falling back to the bare name (current directory).
func DataPath(name string) string {
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	if real, err := filepath.EvalSymlinks(exe); err == nil {
		exe = real
	}
	return filepath.Join(filepath.Dir(exe), name)
}
