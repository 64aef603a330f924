package appcore

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shenwei356/xopen"

	"mirureader-core/primer"
	"mirureader-core/reftable"
	"mirureader/internal/cmdutil"
)

func readWith[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	r, err := xopen.Ropen(path)
	if err != nil {
		if _, serr := os.Stat(path); serr != nil {
			return zero, serr
		}
		return zero, fmt.Errorf("open %s: %w", path, err)
	}
	defer r.Close()
	v, err := parse(r)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// LoadTables reads the standard table and, when present, the extended one;
// extended tables override standard ones for the same locus. A missing
// extended table is a warning.
func LoadTables(std, ext string, stderr io.Writer, quiet bool) (reftable.Set, error) {
	st, err := readWith(std, func(r io.Reader) ([]reftable.Table, error) { return reftable.Read(r, reftable.Standard) })
	if err != nil {
		return reftable.Set{}, InputError(fmt.Errorf("allele table: %w", err))
	}
	if ext == "" {
		return reftable.NewSet(st...), nil
	}
	et, err := readWith(ext, func(r io.Reader) ([]reftable.Table, error) { return reftable.Read(r, reftable.Extended) })
	if errors.Is(err, os.ErrNotExist) {
		cmdutil.Warnf(stderr, quiet, "extended allele table %s not found; using %s only", ext, std)
		return reftable.NewSet(st...), nil
	}
	if err != nil {
		return reftable.Set{}, InputError(fmt.Errorf("extended allele table: %w", err))
	}
	return reftable.NewSet(append(st, et...)...), nil
}

// LoadPrimers reads the primer file (gzip is detected).
func LoadPrimers(path string) ([]primer.Pair, error) {
	pairs, err := readWith(path, primer.Read)
	if err != nil {
		return nil, InputError(fmt.Errorf("primers: %w", err))
	}
	if len(pairs) == 0 {
		return nil, InputError(fmt.Errorf("primers: %s has no primer pairs", path))
	}
	return pairs, nil
}

// SelectPairs keeps the pairs of loci, in loci order. Every locus must
// have a pair.
func SelectPairs(pairs []primer.Pair, loci []string) ([]primer.Pair, error) {
	byID := make(map[string]primer.Pair, len(pairs))
	for _, p := range pairs {
		byID[p.ID] = p
	}
	out := make([]primer.Pair, 0, len(loci))
	var missing []string
	for _, l := range loci {
		p, ok := byID[l]
		if !ok {
			missing = append(missing, l)
			continue
		}
		out = append(out, p)
	}
	if len(missing) > 0 {
		return nil, InputError(fmt.Errorf("no primers for loci %v", missing))
	}
	return out, nil
}
