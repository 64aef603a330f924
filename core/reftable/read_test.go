package reftable

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// standardTSV renders a standard table for two loci; bins step by 50/60 bp.
func standardTSV(rows int) string {
	var b strings.Builder
	b.WriteString("0154\t0424\n")
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&b, "%d\t%d\n", 100+50*i, 200+60*i)
	}
	return b.String()
}

func TestReadStandard(t *testing.T) {
	tabs, err := Read(strings.NewReader(standardTSV(StandardBins)), Standard)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(tabs) != 2 || tabs[0].Locus != "0154" || tabs[1].Locus != "0424" {
		t.Fatalf("unexpected tables: %+v", tabs)
	}
	if tabs[0].Len() != 16 || tabs[0].At(0).Label != "0" || tabs[0].Max().Label != "15" {
		t.Fatalf("implicit labels wrong: %+v", tabs[0].Entries())
	}
	if tabs[1].At(3).Length != 380 {
		t.Fatalf("bin 3 of 0424 = %d, want 380", tabs[1].At(3).Length)
	}
}

func TestReadStandardIgnoresLabelColumn(t *testing.T) {
	var b strings.Builder
	b.WriteString("No.\t0154\n")
	for i := 0; i < StandardBins; i++ {
		fmt.Fprintf(&b, "%d\t%d\n", i+40, 100+10*i)
	}
	tabs, err := Read(strings.NewReader(b.String()), Standard)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(tabs) != 1 || tabs[0].At(2).Label != "2" {
		t.Fatalf("standard labels must stay positional: %+v", tabs)
	}
}

func TestReadExtended(t *testing.T) {
	var b strings.Builder
	b.WriteString("No.\t0580\n")
	for i := 0; i < ExtendedBins; i++ {
		fmt.Fprintf(&b, "%d\t%d\n", i+1, 150+20*i)
	}
	tabs, err := Read(strings.NewReader(b.String()), Extended)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(tabs) != 1 || tabs[0].Shape != Extended {
		t.Fatalf("unexpected: %+v", tabs)
	}
	if tabs[0].At(0).Label != "1" || tabs[0].Max().Label != "26" {
		t.Fatalf("explicit labels not used: first=%s last=%s", tabs[0].At(0).Label, tabs[0].Max().Label)
	}
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		shape Shape
	}{
		{"too few rows", standardTSV(15), Standard},
		{"extended without label column", standardTSV(ExtendedBins), Extended},
		{"bad number", "0154\n" + strings.Repeat("x\n", 16), Standard},
		{"not ascending", "0154\n" + strings.Repeat("100\n", 16), Standard},
		{"ragged row", "0154\t0424\n1\n", Standard},
		{"empty", "", Standard},
	}
	for _, tc := range cases {
		_, err := Read(strings.NewReader(tc.in), tc.shape)
		if !errors.Is(err, ErrShape) {
			t.Errorf("%s: want ErrShape, got %v", tc.name, err)
		}
	}
}

func TestSetExtendedOverridesStandard(t *testing.T) {
	std, err := Read(strings.NewReader(standardTSV(StandardBins)), Standard)
	if err != nil {
		t.Fatal(err)
	}
	bins := make([]Entry, ExtendedBins)
	for i := range bins {
		bins[i] = Entry{Label: PositionLabel(i + 2), Length: 10 * (i + 1)}
	}
	ext, err := New("0154", Extended, bins)
	if err != nil {
		t.Fatal(err)
	}
	set := NewSet(append(std, ext)...)
	got, ok := set.Lookup("0154")
	if !ok || got.Shape != Extended {
		t.Fatalf("extended table should win for 0154: %+v", got)
	}
	if set.Len() != 2 || set.Loci()[1] != "0424" {
		t.Fatalf("loci = %v", set.Loci())
	}
}

func TestEntriesIsACopy(t *testing.T) {
	tabs, _ := Read(strings.NewReader(standardTSV(StandardBins)), Standard)
	e := tabs[0].Entries()
	e[0].Length = -1
	if tabs[0].At(0).Length == -1 {
		t.Fatal("table mutated through Entries()")
	}
}

func TestLabelLess(t *testing.T) {
	tests := []struct {
		a, b Label
		want bool
	}{
		{"2", "10", true},
		{"10", "2", false},
		{"3", "3'", true},
		{"3'", "4", true},
		{"a", "1", false},
	}
	for _, tc := range tests {
		if got := tc.a.Less(tc.b); got != tc.want {
			t.Errorf("%q < %q = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
