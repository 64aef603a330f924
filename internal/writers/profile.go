// internal/writers/profile.go
package writers

import (
	"fmt"
	"io"

	"mirureader-core/genotype"
	"mirureader/internal/output"
)

func init() {
	RegisterProfile(output.FormatTSV, writeTSV)
	RegisterProfile(output.FormatDetails, writeDetails)
	RegisterProfile(output.FormatJSON, writeJSON)
	RegisterProfile(output.FormatJSONL, writeJSONL)
}

// writeTSV streams one row per profile as it arrives.
func writeTSV(w io.Writer, in <-chan genotype.Profile, o Options) error {
	if o.Header {
		if _, err := fmt.Fprintln(w, output.TSVHeader(o.Loci)); err != nil {
			return err
		}
	}
	for p := range in {
		if err := output.WriteTSVRow(w, p); err != nil {
			return err
		}
	}
	return nil
}

func writeDetails(w io.Writer, in <-chan genotype.Profile, o Options) error {
	if o.Header {
		if _, err := fmt.Fprintln(w, output.DetailsHeader); err != nil {
			return err
		}
	}
	for p := range in {
		if err := output.WriteDetails(w, p); err != nil {
			return err
		}
	}
	return nil
}

// writeJSON buffers everything into a single array.
func writeJSON(w io.Writer, in <-chan genotype.Profile, o Options) error {
	var buf []genotype.Profile
	for p := range in {
		buf = append(buf, p)
	}
	return output.WriteJSON(w, buf, o.Details)
}
