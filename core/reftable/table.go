// core/reftable/table.go
package reftable

import (
	"errors"
	"fmt"
	"sort"
)

// Shape selects how a table labels its bins.
type Shape int

const (
	// Standard tables have 16 bins labelled by position.
	Standard Shape = iota
	// Extended tables have 26 bins with explicit labels (the "No." column).
	Extended
)

const (
	StandardBins = 16
	ExtendedBins = 26
)

// ErrShape is returned when a table does not have the bin layout its shape requires.
var ErrShape = errors.New("reftable: bad table shape")

// Bins returns the number of bins a table of this shape carries.
func (s Shape) Bins() int {
	if s == Extended {
		return ExtendedBins
	}
	return StandardBins
}

func (s Shape) String() string {
	if s == Extended {
		return "extended"
	}
	return "standard"
}

// Entry is one amplicon-length bin.
type Entry struct {
	Label  Label
	Length int
}

// Table is the ascending bin list for one locus. Treat it as immutable;
// Entries returns a copy.
type Table struct {
	Locus string
	Shape Shape
	bins  []Entry
}

// New validates and builds a table. Lengths must be strictly ascending.
func New(locus string, shape Shape, bins []Entry) (Table, error) {
	if len(bins) != shape.Bins() {
		return Table{}, fmt.Errorf("%w: locus %s: %s table needs %d bins, got %d",
			ErrShape, locus, shape, shape.Bins(), len(bins))
	}
	for i := 1; i < len(bins); i++ {
		if bins[i].Length <= bins[i-1].Length {
			return Table{}, fmt.Errorf("%w: locus %s: bin %d (%d bp) not above bin %d (%d bp)",
				ErrShape, locus, i, bins[i].Length, i-1, bins[i-1].Length)
		}
	}
	return Table{Locus: locus, Shape: shape, bins: append([]Entry(nil), bins...)}, nil
}

// Len is the number of bins.
func (t Table) Len() int { return len(t.bins) }

// At returns bin i.
func (t Table) At(i int) Entry { return t.bins[i] }

// Max returns the largest bin.
func (t Table) Max() Entry { return t.bins[len(t.bins)-1] }

// Entries returns a copy of the bins.
func (t Table) Entries() []Entry { return append([]Entry(nil), t.bins...) }

// Set maps locus identifiers to their tables. Built once, read-only after.
type Set struct {
	tables map[string]Table
}

// NewSet indexes tables by locus. Later tables replace earlier ones for the
// same locus, so extended tables should be passed after standard ones.
func NewSet(tables ...Table) Set {
	m := make(map[string]Table, len(tables))
	for _, t := range tables {
		m[t.Locus] = t
	}
	return Set{tables: m}
}

// Lookup returns the table for locus.
func (s Set) Lookup(locus string) (Table, bool) {
	t, ok := s.tables[locus]
	return t, ok
}

// Loci returns the indexed loci, sorted.
func (s Set) Loci() []string {
	out := make([]string, 0, len(s.tables))
	for k := range s.tables {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Len is the number of loci in the set.
func (s Set) Len() int { return len(s.tables) }
