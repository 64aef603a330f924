package psearch

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// freeText keeps read names and descriptions from matching a line rule
// of Parse.
var freeText = strings.NewReplacer(
	"mismatches", "mismatch(es)",
	"Amplimer length", "Amplimer-length",
	"\n", " ",
	"\r", " ",
)

// Hit is one amplimer as written to a report. Positions are 1-based; the
// reverse position counts from the end of the sequence.
type Hit struct {
	SequenceID  string
	Description string
	FwdPrimer   string
	FwdPos      int
	FwdMM       int
	RevPrimer   string
	RevPos      int
	RevMM       int
	Length      int
}

// Section is the block for one primer pair.
type Section struct {
	Locus string
	Hits  []Hit
}

// Write renders sections in the primersearch layout. Amplimers are
// numbered from 1 within each section.
func Write(w io.Writer, sections []Section) error {
	bw := bufio.NewWriter(w)
	for _, s := range sections {
		fmt.Fprintf(bw, "\nPrimer name %s\n", s.Locus)
		for i, h := range s.Hits {
			fmt.Fprintf(bw, "Amplimer %d\n", i+1)
			fmt.Fprintf(bw, "\tSequence: %s \n", freeText.Replace(h.SequenceID))
			fmt.Fprintf(bw, "\t%s\n", freeText.Replace(h.Description))
			fmt.Fprintf(bw, "\t%s hits forward strand at %d with %d mismatches\n", h.FwdPrimer, h.FwdPos, h.FwdMM)
			fmt.Fprintf(bw, "\t%s hits reverse strand at [%d] with %d mismatches\n", h.RevPrimer, h.RevPos, h.RevMM)
			fmt.Fprintf(bw, "\tAmplimer length: %d bp\n", h.Length)
		}
	}
	return bw.Flush()
}
