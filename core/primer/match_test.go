// core/primer/match_test.go
package primer

import "testing"

func TestFindMatches(t *testing.T) {
	seq := []byte("ACGTACGTACGT")

	tests := []struct {
		name         string
		primer       string
		maxMM        int
		wantCount    int
		wantFirstPos int
		wantFirstMM  int
	}{
		{"perfect match", "ACG", 0, 3, 0, 0},
		{"one mismatch allowed", "AGG", 1, 3, 0, 1},
		{"exceed mismatch threshold", "AGG", 0, 0, -1, 0},
		{"IUPAC degeneracy", "ACN", 0, 3, 0, 0},
		{"3' mismatch counted", "ACA", 1, 3, 0, 1},
	}

	for _, tc := range tests {
		hits := FindMatches(seq, []byte(tc.primer), tc.maxMM, 0)
		if len(hits) != tc.wantCount {
			t.Errorf("%s: got %d hits, want %d", tc.name, len(hits), tc.wantCount)
			continue
		}
		if tc.wantCount > 0 && (hits[0].Pos != tc.wantFirstPos || hits[0].Mismatches != tc.wantFirstMM) {
			t.Errorf("%s: first match %+v, want pos %d mm %d", tc.name, hits[0], tc.wantFirstPos, tc.wantFirstMM)
		}
	}
}

func TestFindMatchesCap(t *testing.T) {
	hits := FindMatches([]byte("AAAAAAAA"), []byte("AA"), 0, 2)
	if len(hits) != 2 {
		t.Fatalf("cap ignored: %d hits", len(hits))
	}
}

func TestMaxMismatches(t *testing.T) {
	tests := []struct{ n, pct, want int }{
		{20, 18, 3},
		{25, 18, 4},
		{5, 18, 0},
		{20, 0, 0},
	}
	for _, tc := range tests {
		if got := MaxMismatches(tc.n, tc.pct); got != tc.want {
			t.Errorf("MaxMismatches(%d,%d) = %d, want %d", tc.n, tc.pct, got, tc.want)
		}
	}
}
