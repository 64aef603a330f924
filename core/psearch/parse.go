// Package psearch reads and writes primer-search reports (the EMBOSS
// primersearch text layout).
package psearch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformed marks reports that break the line grammar.
var ErrMalformed = errors.New("malformed primer-search report")

// ParseError locates a grammar violation.
type ParseError struct {
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: line %d: %s (%q)", ErrMalformed, e.Line, e.Msg, e.Text)
}

func (e *ParseError) Unwrap() error { return ErrMalformed }

// Observation is one amplimer reported for one locus.
type Observation struct {
	Locus         string
	Index         int
	MismatchTotal int // forward + reverse primer mismatches
	Length        int // amplimer length, bp
}

// Report holds observations grouped by locus, in order of appearance.
type Report struct {
	loci []string
	obs  map[string][]Observation
}

// Loci returns the loci that had a "Primer name" section, in report order.
func (r *Report) Loci() []string { return append([]string(nil), r.loci...) }

// Observations returns the amplimers of locus in report order.
func (r *Report) Observations(locus string) []Observation {
	return append([]Observation(nil), r.obs[locus]...)
}

// Has reports whether locus had a section in the report.
func (r *Report) Has(locus string) bool {
	_, ok := r.obs[locus]
	return ok
}

// Total is the number of finalized amplimers across loci.
func (r *Report) Total() int {
	n := 0
	for _, o := range r.obs {
		n += len(o)
	}
	return n
}

// parser carries the running state across report lines.
type parser struct {
	rep    *Report
	locus  string
	inSec  bool
	open   bool
	cur    Observation
	mm     int
	lineNo int
	line   string
}

func (p *parser) fail(msg string) error {
	return &ParseError{Line: p.lineNo, Text: p.line, Msg: msg}
}

// Parse reads a whole report. Any grammar violation aborts with a
// *ParseError; there is no partial result.
func Parse(r io.Reader) (*Report, error) {
	p := &parser{rep: &Report{obs: map[string][]Observation{}}}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		p.lineNo++
		p.line = strings.TrimRight(sc.Text(), "\r")
		if err := p.step(); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	if p.open {
		return nil, &ParseError{Line: p.lineNo, Text: p.line,
			Msg: fmt.Sprintf("report ends inside amplimer %d of %s", p.cur.Index, p.locus)}
	}
	return p.rep, nil
}

func (p *parser) step() error {
	line := p.line
	switch {
	case strings.HasPrefix(line, "Primer"):
		if p.open {
			return p.fail(fmt.Sprintf("amplimer %d of %s has no length line", p.cur.Index, p.locus))
		}
		f := strings.Fields(line)
		if len(f) < 3 {
			return p.fail("primer line without a locus name")
		}
		p.locus, p.inSec, p.mm = f[2], true, 0
		if _, seen := p.rep.obs[p.locus]; !seen {
			p.rep.loci = append(p.rep.loci, p.locus)
			p.rep.obs[p.locus] = []Observation{}
		}

	case isAmplimerHeader(line):
		if !p.inSec {
			return p.fail("amplimer before any primer section")
		}
		if p.open {
			return p.fail(fmt.Sprintf("amplimer %d of %s has no length line", p.cur.Index, p.locus))
		}
		f := strings.Fields(line)
		idx, err := strconv.Atoi(f[len(f)-1])
		if err != nil {
			return p.fail("bad amplimer number")
		}
		p.cur = Observation{Locus: p.locus, Index: idx}
		p.open, p.mm = true, 0

	case strings.Contains(line, "mismatches"):
		if !p.open {
			return p.fail("mismatch line outside an amplimer")
		}
		_, after, ok := strings.Cut(line, "with ")
		f := strings.Fields(after)
		if !ok || len(f) == 0 {
			return p.fail("mismatch line without a count")
		}
		n, err := strconv.Atoi(f[0])
		if err != nil || n < 0 {
			return p.fail("bad mismatch count")
		}
		p.mm += n

	case strings.Contains(line, "Amplimer length"):
		if !p.open {
			return p.fail("length line outside an amplimer")
		}
		_, after, _ := strings.Cut(line, ":")
		f := strings.Fields(after)
		if len(f) == 0 {
			return p.fail("length line without a value")
		}
		n, err := strconv.Atoi(strings.TrimSuffix(f[0], "bp"))
		if err != nil {
			return p.fail("bad amplimer length")
		}
		p.cur.MismatchTotal, p.cur.Length = p.mm, n
		p.rep.obs[p.locus] = append(p.rep.obs[p.locus], p.cur)
		p.open = false
	}
	return nil
}

// isAmplimerHeader matches "Amplimer <n>". Short lines (under 12 chars)
// qualify by length alone; longer ones only when they are exactly the
// keyword and one integer, which keeps "Amplimer length: ..." out.
func isAmplimerHeader(line string) bool {
	if !strings.HasPrefix(line, "Amplimer") {
		return false
	}
	if len(line) < 12 {
		return len(strings.Fields(line)) >= 2
	}
	f := strings.Fields(line)
	if len(f) != 2 || f[0] != "Amplimer" {
		return false
	}
	_, err := strconv.Atoi(f[1])
	return err == nil
}
