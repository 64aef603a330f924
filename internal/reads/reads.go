// Package reads streams sequencing reads (FASTA/FASTQ, optionally gzip'd,
// or SAM/BAM) and converts them to the plain FASTA that primersearch
// expects.
package reads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"
)

// Format of a reads file, judged from its name.
type Format int

const (
	Unknown Format = iota
	FASTA
	FASTQ
	SAM
	BAM
)

func (f Format) String() string {
	switch f {
	case FASTA:
		return "fasta"
	case FASTQ:
		return "fastq"
	case SAM:
		return "sam"
	case BAM:
		return "bam"
	}
	return "unknown"
}

// Kind reports the format of path and whether it is gzip-compressed.
func Kind(path string) (Format, bool) {
	name := strings.ToLower(filepath.Base(path))
	gz := strings.HasSuffix(name, ".gz")
	name = strings.TrimSuffix(name, ".gz")
	switch filepath.Ext(name) {
	case ".fastq", ".fq":
		return FASTQ, gz
	case ".fasta", ".fa", ".fna", ".fas":
		return FASTA, gz
	case ".sam":
		return SAM, gz
	case ".bam":
		return BAM, false
	}
	return Unknown, gz
}

// Stem is the file name with compression and sequence extensions removed.
func Stem(path string) string {
	name := filepath.Base(path)
	if strings.HasSuffix(strings.ToLower(name), ".gz") {
		name = name[:len(name)-3]
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".fastq", ".fq", ".fasta", ".fa", ".fna", ".fas", ".sam", ".bam":
		name = name[:len(name)-len(filepath.Ext(name))]
	}
	return name
}

// NeedsConversion is true when primersearch cannot read path as is.
func NeedsConversion(path string) bool {
	f, gz := Kind(path)
	return f != FASTA || gz
}

// Record is one read. Seq is owned by the caller.
type Record struct {
	Ordinal int // 0-based position in the file
	ID      string
	Desc    string
	Seq     []byte
}

// ForEach calls fn for every read in path, in file order. It stops at the
// first error from fn or when ctx is done.
func ForEach(ctx context.Context, path string, fn func(Record) error) error {
	src, err := open(path)
	if err != nil {
		return fmt.Errorf("open reads %s: %w", path, err)
	}
	defer src.Close()

	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := src.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read %s: %w", path, err)
		}
		rec.Ordinal = i
		if err := fn(rec); err != nil {
			return err
		}
	}
}

// ToFASTA writes every read of in to out as unwrapped FASTA. Qualities
// are dropped; out is gzip'd when its name ends in .gz.
func ToFASTA(ctx context.Context, in, out string) (int, error) {
	w, err := xopen.Wopen(out)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", out, err)
	}

	n := 0
	err = ForEach(ctx, in, func(r Record) error {
		name := r.ID
		if r.Desc != "" {
			name += " " + r.Desc
		}
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", name, r.Seq); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		n++
		return nil
	})
	if err != nil {
		_ = w.Close()
		return n, err
	}
	if err := w.Close(); err != nil {
		return n, fmt.Errorf("write %s: %w", out, err)
	}
	return n, nil
}

// source yields records without ordinals.
type source interface {
	next() (Record, error)
	Close() error
}

func open(path string) (source, error) {
	switch f, _ := Kind(path); f {
	case SAM, BAM:
		return openAlignments(path, f)
	}
	r, err := fastx.NewDefaultReader(path)
	if err != nil {
		return nil, err
	}
	return &fastxSource{r: r}, nil
}

type fastxSource struct {
	r *fastx.Reader
}

func (s *fastxSource) next() (Record, error) {
	rec, err := s.r.Read()
	if err != nil {
		return Record{}, err
	}
	return Record{
		ID:   string(rec.ID),
		Desc: strings.TrimSpace(strings.TrimPrefix(string(rec.Name), string(rec.ID))),
		Seq:  append([]byte(nil), rec.Seq.Seq...),
	}, nil
}

func (s *fastxSource) Close() error {
	s.r.Close()
	return nil
}
