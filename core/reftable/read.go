package reftable

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LabelColumn is the header of the explicit label column in extended tables.
const LabelColumn = "No."

// Read parses a tab-separated lookup table: a header row naming the loci
// and one row per bin. Extended tables must carry a LabelColumn; in
// standard tables that column, if present, is ignored.
func Read(r io.Reader, shape Shape) ([]Table, error) {
	sc := bufio.NewScanner(r)
	var (
		header []string
		rows   [][]string
		ln     int
	)
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		f := strings.Split(line, "\t")
		for i := range f {
			f[i] = strings.TrimSpace(f[i])
		}
		if header == nil {
			header = f
			continue
		}
		if len(f) != len(header) {
			return nil, fmt.Errorf("%w: line %d has %d columns, header has %d", ErrShape, ln, len(f), len(header))
		}
		rows = append(rows, f)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if header == nil {
		return nil, fmt.Errorf("%w: empty table", ErrShape)
	}

	labelCol := -1
	for i, h := range header {
		if h == LabelColumn {
			labelCol = i
			break
		}
	}
	if shape == Extended && labelCol < 0 {
		return nil, fmt.Errorf("%w: extended table has no %q column", ErrShape, LabelColumn)
	}

	var out []Table
	for c, locus := range header {
		if c == labelCol || locus == "" {
			continue
		}
		bins := make([]Entry, 0, len(rows))
		for i, row := range rows {
			n, err := strconv.Atoi(row[c])
			if err != nil {
				return nil, fmt.Errorf("%w: locus %s row %d: bad length %q", ErrShape, locus, i+1, row[c])
			}
			lbl := PositionLabel(i)
			if shape == Extended {
				if row[labelCol] == "" {
					return nil, fmt.Errorf("%w: row %d has an empty %s", ErrShape, i+1, LabelColumn)
				}
				lbl = Label(row[labelCol])
			}
			bins = append(bins, Entry{Label: lbl, Length: n})
		}
		t, err := New(locus, shape, bins)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: table has no locus columns", ErrShape)
	}
	return out, nil
}
