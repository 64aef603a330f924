// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"mirureader-core/genotype"
)

// Options shared by every profile writer.
type Options struct {
	Loci    []string // column order for TSV
	Header  bool
	Details bool // attach per-amplimer data to JSON/JSONL
}

// ProfileFunc drains in and writes every profile to w.
type ProfileFunc func(w io.Writer, in <-chan genotype.Profile, o Options) error

// Writer registry (format → handler). Formats register in init().
var profileWriters = map[string]ProfileFunc{}

// RegisterProfile adds or replaces the handler for format (last wins).
func RegisterProfile(format string, fn ProfileFunc) { profileWriters[format] = fn }

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(profileWriters))
	for f := range profileWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// StartProfileWriter spins up a writer goroutine for format. Close the
// returned channel, then read the error channel once.
func StartProfileWriter(out io.Writer, format string, o Options, bufSize int) (chan<- genotype.Profile, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan genotype.Profile, bufSize)
	errCh := make(chan error, 1)

	fn, ok := profileWriters[format]
	go func() {
		if !ok {
			for range in {
			}
			errCh <- fmt.Errorf("unknown profile format %q (no writer registered)", format)
			return
		}
		err := fn(out, in, o)
		// keep senders unblocked after a write error
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}
