package primer

import "testing"

func TestIUPACMask(t *testing.T) {
	if iupacMask['A'] != 1 || iupacMask['C'] != 2 || iupacMask['G'] != 4 || iupacMask['T'] != 8 {
		t.Fatalf("canonical masks corrupted: A=%d C=%d G=%d T=%d", iupacMask['A'], iupacMask['C'], iupacMask['G'], iupacMask['T'])
	}
	if iupacMask['U'] != iupacMask['T'] || iupacMask['u'] != iupacMask['t'] {
		t.Fatalf("U/u must equal T/t")
	}
	if iupacMask['r'] != iupacMask['R'] || iupacMask['n'] != iupacMask['N'] {
		t.Fatalf("lowercase masks must mirror uppercase")
	}
}

func TestBaseMatchReadN(t *testing.T) {
	if BaseMatch('N', 'N') {
		t.Fatal("read-side N must never match")
	}
	if !BaseMatch('g', 'R') {
		t.Fatal("lowercase read base should pair")
	}
}

func TestMismatchCount(t *testing.T) {
	tests := []struct {
		window, primer string
		want           int
	}{
		{"ACGT", "ACGT", 0},
		{"ACGT", "NNNN", 0},
		{"ACGT", "RRRR", 2},
		{"ACGT", "TTTT", 3},
	}
	for _, tc := range tests {
		if got := MismatchCount([]byte(tc.window), []byte(tc.primer)); got != tc.want {
			t.Errorf("MismatchCount(%q,%q) = %d, want %d", tc.window, tc.primer, got, tc.want)
		}
	}
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on unequal lengths")
		}
	}()
	MismatchCount([]byte("AAA"), []byte("AA"))
}
