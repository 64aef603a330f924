package reftable

import (
	"strconv"
	"strings"
)

// Label is a repeat-number label. Standard tables label bins by position
// ("0".."15"); extended tables carry explicit labels.
type Label string

// PositionLabel returns the implicit label for a standard-table bin.
func PositionLabel(i int) Label { return Label(strconv.Itoa(i)) }

// Less orders labels numerically when both are integers and falls back to
// natural order (leading digits, then the remaining text) otherwise.
func (l Label) Less(o Label) bool {
	a, aok := l.Int()
	b, bok := o.Int()
	if aok && bok {
		return a < b
	}
	ap, arest := splitNumeric(string(l))
	bp, brest := splitNumeric(string(o))
	if ap >= 0 && bp >= 0 && ap != bp {
		return ap < bp
	}
	if ap >= 0 && bp < 0 {
		return true
	}
	if ap < 0 && bp >= 0 {
		return false
	}
	return arest < brest
}

// Int reports the label as an integer when it is one.
func (l Label) Int() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(string(l)))
	return n, err == nil
}

func (l Label) String() string { return string(l) }

// splitNumeric returns the leading integer (or -1) and the full text for
// tie-breaking, e.g. "3'" -> (3, "3'").
func splitNumeric(s string) (int, string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return -1, s
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return -1, s
	}
	return n, s
}
