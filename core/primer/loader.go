// core/primer/loader.go
package primer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Pair is one primer pair; ID is the locus it targets.
type Pair struct {
	ID         string
	Forward    string // 5'→3', binds the forward strand
	Reverse    string // 5'→3', binds the reverse strand
	MinProduct int
	MaxProduct int
}

// Read parses whitespace-separated "id forward reverse [min] [max]" lines.
// Blank lines and '#' comments are skipped.
func Read(r io.Reader) ([]Pair, error) {
	var list []Pair
	seen := map[string]bool{}
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		// Accept 3 (id fwd rev), 4 (… min), or 5 (… min max) fields.
		if len(f) < 3 || len(f) > 5 {
			return nil, fmt.Errorf("line %d: bad field count", ln)
		}
		if seen[f[0]] {
			return nil, fmt.Errorf("line %d: duplicate primer %q", ln, f[0])
		}
		seen[f[0]] = true
		p := Pair{
			ID:      f[0],
			Forward: strings.ToUpper(f[1]),
			Reverse: strings.ToUpper(f[2]),
		}
		if len(f) >= 4 {
			if _, err := fmt.Sscan(f[3], &p.MinProduct); err != nil {
				return nil, fmt.Errorf("line %d: bad min: %v", ln, err)
			}
		}
		if len(f) == 5 {
			if _, err := fmt.Sscan(f[4], &p.MaxProduct); err != nil {
				return nil, fmt.Errorf("line %d: bad max: %v", ln, err)
			}
		}
		list = append(list, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// Loci returns the pair IDs in file order.
func Loci(pairs []Pair) []string {
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = p.ID
	}
	return out
}
