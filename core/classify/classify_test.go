package classify

import (
	"testing"

	"mirureader-core/psearch"
	"mirureader-core/reftable"
)

// bins at 100, 150, 200, ... 850
func standard(t *testing.T, locus string) reftable.Table {
	t.Helper()
	bins := make([]reftable.Entry, reftable.StandardBins)
	for i := range bins {
		bins[i] = reftable.Entry{Label: reftable.PositionLabel(i), Length: 100 + 50*i}
	}
	tab, err := reftable.New(locus, reftable.Standard, bins)
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	return tab
}

func TestClassifyExactBinReturnsBinLabel(t *testing.T) {
	tab := standard(t, "0154")
	for i := 0; i < tab.Len(); i++ {
		e := tab.At(i)
		got, ok := Classify(tab, e.Length)
		if !ok || got != e.Label {
			t.Errorf("length %d: got (%q,%v), want %q", e.Length, got, ok, e.Label)
		}
	}
}

func TestClassifyMidpointTiesGoLow(t *testing.T) {
	tab := standard(t, "0154")
	// 125 is equidistant from 100 (0) and 150 (1)
	if got, _ := Classify(tab, 125); got != "0" {
		t.Fatalf("midpoint 125 -> %q, want 0", got)
	}
	if got, _ := Classify(tab, 475); got != "7" {
		t.Fatalf("midpoint 475 -> %q, want 7", got)
	}
	if got, _ := Classify(tab, 126); got != "1" {
		t.Fatalf("126 -> %q, want 1", got)
	}
}

func TestClassifyBelowFirstBin(t *testing.T) {
	tab := standard(t, "0154")
	if got, ok := Classify(tab, 12); !ok || got != "0" {
		t.Fatalf("short amplimer -> (%q,%v), want (0,true)", got, ok)
	}
}

func TestClassifyNotAssignable(t *testing.T) {
	tab := standard(t, "0154")
	if _, ok := Classify(tab, 851); ok {
		t.Fatal("length above largest bin must not be assignable")
	}
	bins := make([]reftable.Entry, reftable.StandardBins)
	for i := range bins {
		bins[i] = reftable.Entry{Label: reftable.PositionLabel(i), Length: 1000 + 100*i}
	}
	wide, err := reftable.New("2163b", reftable.Standard, bins)
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []int{1829, 2000, 2500} {
		if _, ok := Classify(wide, n); ok {
			t.Errorf("length %d above the global ceiling was assigned", n)
		}
	}
	if got, ok := Classify(wide, 1828); !ok || got != "8" {
		t.Errorf("1828 -> (%q,%v), want (8,true)", got, ok)
	}
}

func TestClassifyMonotonic(t *testing.T) {
	tab := standard(t, "0154")
	prev := -1
	for n := 0; n <= tab.Max().Length; n++ {
		lbl, ok := Classify(tab, n)
		if !ok {
			t.Fatalf("length %d unassigned inside table range", n)
		}
		v, _ := lbl.Int()
		if v < prev {
			t.Fatalf("length %d -> %d after %d", n, v, prev)
		}
		prev = v
	}
}

func TestClassifyExtendedLabels(t *testing.T) {
	bins := make([]reftable.Entry, reftable.ExtendedBins)
	for i := range bins {
		bins[i] = reftable.Entry{Label: reftable.Label(string(rune('a' + i))), Length: 200 + 40*i}
	}
	tab, err := reftable.New("0580", reftable.Extended, bins)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := Classify(tab, 150); got != "a" {
		t.Errorf("below first bin -> %q, want first label", got)
	}
	if got, _ := Classify(tab, 275); got != "c" {
		t.Errorf("275 -> %q, want c", got)
	}
}

func TestObservations(t *testing.T) {
	set := reftable.NewSet(standard(t, "0154"))
	calls := Observations(set, []psearch.Observation{
		{Locus: "0154", Index: 1, MismatchTotal: 2, Length: 205},
		{Locus: "0154", Index: 2, MismatchTotal: 0, Length: 5000},
		{Locus: "9999", Index: 1, MismatchTotal: 0, Length: 205},
	})
	if len(calls) != 3 {
		t.Fatalf("want 3 calls, got %d", len(calls))
	}
	if !calls[0].Assigned || calls[0].Label != "2" || calls[0].MismatchTotal != 2 {
		t.Errorf("call 0 = %+v", calls[0])
	}
	if calls[1].Assigned || calls[2].Assigned {
		t.Errorf("unassignable calls came back assigned: %+v %+v", calls[1], calls[2])
	}
}
