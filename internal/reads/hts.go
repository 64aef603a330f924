package reads

import (
	"fmt"
	"io"
	"os"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/shenwei356/xopen"

	"mirureader-core/primer"
)

type samReader interface {
	Read() (*sam.Record, error)
}

// alignSource streams primary records of a SAM/BAM file. Unaligned BAM
// is the usual case; secondary and supplementary lines would repeat a
// read and are skipped.
type alignSource struct {
	r      samReader
	closer []io.Closer
}

func openAlignments(path string, f Format) (source, error) {
	s := &alignSource{}
	if f == BAM {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		br, err := bam.NewReader(fh, 0)
		if err != nil {
			fh.Close()
			return nil, fmt.Errorf("bam header: %w", err)
		}
		s.r, s.closer = br, []io.Closer{br, fh}
		return s, nil
	}
	fh, err := xopen.Ropen(path)
	if err != nil {
		return nil, err
	}
	sr, err := sam.NewReader(fh)
	if err != nil {
		fh.Close()
		return nil, fmt.Errorf("sam header: %w", err)
	}
	s.r, s.closer = sr, []io.Closer{fh}
	return s, nil
}

func (s *alignSource) next() (Record, error) {
	for {
		rec, err := s.r.Read()
		if err != nil {
			return Record{}, err
		}
		if rec.Flags&(sam.Secondary|sam.Supplementary) != 0 {
			continue
		}
		seq := rec.Seq.Expand()
		if rec.Flags&sam.Reverse != 0 {
			seq = primer.RevComp(seq)
		}
		return Record{ID: rec.Name, Seq: seq}, nil
	}
}

func (s *alignSource) Close() error {
	var first error
	for _, c := range s.closer {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
