// core/primer/iupac.go
package primer

/* -------------------------- IUPAC lookup table -------------------------- */

var iupacMask [256]byte // bit0=A bit1=C bit2=G bit3=T

func init() {
	set := func(c byte, bits byte) {
		iupacMask[c] = bits
		iupacMask[c|0x20] = bits // lowercase
	}
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('U', 8)       // as T
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any   (primer side only)
}

/* --------------------------- BaseMatch (FAST) --------------------------- */

// BaseMatch returns true if primer base `p` can pair with read base `g`
// according to the IUPAC ambiguity codes *and* g is a concrete base.
//
// A read base of 'N' (or any ambiguity / non-base ASCII) is a HARD mismatch.
func BaseMatch(g, p byte) bool {
	switch g {
	case 'A', 'C', 'G', 'T', 'a', 'c', 'g', 't':
	default:
		return false
	}
	return iupacMask[p]&iupacMask[g] != 0
}

// MismatchCount counts primer positions that do not pair with window.
// The two slices must have equal length.
func MismatchCount(window, primer []byte) int {
	if len(window) != len(primer) {
		panic("primer: MismatchCount length mismatch")
	}
	mm := 0
	for i := range primer {
		if !BaseMatch(window[i], primer[i]) {
			mm++
		}
	}
	return mm
}

// MaxMismatches is the per-primer mismatch budget for a percent allowance,
// rounded down (primersearch -mismatchpercent).
func MaxMismatches(primerLen, percent int) int {
	if primerLen <= 0 || percent <= 0 {
		return 0
	}
	return primerLen * percent / 100
}
