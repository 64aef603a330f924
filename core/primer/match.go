// core/primer/match.go
package primer

import "bytes"

// Match is one primer binding site on a sequence.
type Match struct {
	Pos        int // 0-based start on the scanned strand
	Mismatches int
	Length     int
}

func isUnambiguous(p []byte) bool {
	for _, c := range p {
		if c != 'A' && c != 'C' && c != 'G' && c != 'T' {
			return false
		}
	}
	return true
}

// FindMatches returns every window of seq where primer binds with at most
// maxMM mismatches. capHits == 0 means unlimited.
func FindMatches(seq, primer []byte, maxMM, capHits int) []Match {
	pl := len(primer)
	if pl == 0 || len(seq) < pl {
		return nil
	}

	// Exact-match fast path.
	if maxMM == 0 && isUnambiguous(primer) {
		out := make([]Match, 0, 8)
		for i := 0; ; {
			j := bytes.Index(seq[i:], primer)
			if j < 0 {
				break
			}
			pos := i + j
			out = append(out, Match{Pos: pos, Length: pl})
			if capHits > 0 && len(out) >= capHits {
				break
			}
			i = pos + 1
		}
		return out
	}

	end := len(seq) - pl
	out := make([]Match, 0, 8)
window:
	for pos := 0; pos <= end; pos++ {
		mm := 0
		for j := 0; j < pl; j++ {
			if !BaseMatch(seq[pos+j], primer[j]) {
				mm++
				if mm > maxMM {
					continue window
				}
			}
		}
		out = append(out, Match{Pos: pos, Mismatches: mm, Length: pl})
		if capHits > 0 && len(out) >= capHits {
			break
		}
	}
	return out
}
