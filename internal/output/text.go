// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"

	"mirureader-core/genotype"
)

// WriteTSVRow prints one profile row; cells follow the profile's locus order.
func WriteTSVRow(w io.Writer, p genotype.Profile) error {
	cells := make([]string, 0, len(p.Loci)+1)
	cells = append(cells, p.Sample)
	for _, r := range p.Loci {
		cells = append(cells, r.String())
	}
	_, err := fmt.Fprintln(w, strings.Join(cells, "\t"))
	return err
}

// WriteTSV prints an optional header and one row per profile.
func WriteTSV(w io.Writer, loci []string, list []genotype.Profile, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader(loci)); err != nil {
			return err
		}
	}
	for _, p := range list {
		if err := WriteTSVRow(w, p); err != nil {
			return err
		}
	}
	return nil
}

// WriteDetails prints one row per amplimer of p.
func WriteDetails(w io.Writer, p genotype.Profile) error {
	for _, c := range p.Details {
		rep := NotAssigned
		if c.Assigned {
			rep = c.Label.String()
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			p.Sample, c.Locus, c.Index, c.MismatchTotal, c.Length, rep); err != nil {
			return err
		}
	}
	return nil
}
