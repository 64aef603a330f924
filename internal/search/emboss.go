package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"

	"mirureader/internal/reads"
)

// Emboss runs the EMBOSS primersearch binary:
//
//	primersearch -seqall <fasta> -infile <primers> -mismatchpercent <n> -outfile <report>
//
// FASTQ and gzip'd reads are converted to FASTA first.
type Emboss struct {
	Binary string    // default "primersearch"
	Log    io.Writer // child stdout/stderr; nil discards
}

func (e Emboss) Search(ctx context.Context, req Request) (string, error) {
	bin := e.Binary
	if bin == "" {
		bin = "primersearch"
	}
	if req.PrimerFile == "" {
		return "", errors.New("primersearch needs a primer file")
	}

	input := req.Reads
	if reads.NeedsConversion(req.Reads) {
		if _, err := reads.ToFASTA(ctx, req.Reads, req.FastaPath); err != nil {
			return "", err
		}
		input = req.FastaPath
		if !req.KeepFasta {
			defer os.Remove(input)
		}
	}

	cmd := exec.CommandContext(ctx, bin,
		"-seqall", input,
		"-infile", req.PrimerFile,
		"-mismatchpercent", strconv.Itoa(req.MismatchPercent),
		"-outfile", req.ReportPath,
	)
	if e.Log != nil {
		cmd.Stdout = e.Log
		cmd.Stderr = e.Log
	}
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNoPrimersearch, bin)
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("primersearch: %w", err)
	}
	return req.ReportPath, checkReport(req.ReportPath)
}
