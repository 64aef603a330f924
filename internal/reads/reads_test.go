package reads

import (
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fq = "@r1 lane=1\nACGTACGT\n+\nIIIIIIII\n@r2\nGGGGCCCC\n+\nIIIIIIII\n"

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func gz(t *testing.T, s string) []byte {
	t.Helper()
	var b bytes.Buffer
	zw := gzip.NewWriter(&b)
	if _, err := zw.Write([]byte(s)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return b.Bytes()
}

func TestKind(t *testing.T) {
	cases := []struct {
		path string
		f    Format
		gz   bool
	}{
		{"a.fastq", FASTQ, false},
		{"dir/a.FQ.gz", FASTQ, true},
		{"a.fasta", FASTA, false},
		{"a.fa.gz", FASTA, true},
		{"a.sam", SAM, false},
		{"a.bam", BAM, false},
		{"a.txt", Unknown, false},
	}
	for _, c := range cases {
		f, g := Kind(c.path)
		if f != c.f || g != c.gz {
			t.Errorf("Kind(%q) = %v,%v want %v,%v", c.path, f, g, c.f, c.gz)
		}
	}
	if !NeedsConversion("x.fastq") || !NeedsConversion("x.fasta.gz") || NeedsConversion("x.fasta") || !NeedsConversion("x.bam") {
		t.Fatal("NeedsConversion wrong")
	}
}

func TestStem(t *testing.T) {
	for in, want := range map[string]string{
		"/data/S1.fastq.gz": "S1",
		"S2.fa":             "S2",
		"S3.sample.fq":      "S3.sample",
		"S4":                "S4",
		"S5.bam":            "S5",
	} {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestForEachFASTQ(t *testing.T) {
	fn := writeFile(t, "r.fastq", []byte(fq))
	var got []Record
	err := ForEach(context.Background(), fn, func(r Record) error {
		got = append(got, r)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "r1" || got[0].Desc != "lane=1" || string(got[1].Seq) != "GGGGCCCC" || got[1].Ordinal != 1 {
		t.Fatalf("unexpected records %+v", got)
	}
}

func TestForEachCancelled(t *testing.T) {
	fn := writeFile(t, "r.fastq", []byte(fq))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := ForEach(ctx, fn, func(Record) error { return nil }); err == nil {
		t.Fatal("expected context error")
	}
}

func TestToFASTAFromGzipFASTQ(t *testing.T) {
	in := writeFile(t, "r.fastq.gz", gz(t, fq))
	out := filepath.Join(t.TempDir(), "r.fasta")
	n, err := ToFASTA(context.Background(), in, out)
	if err != nil || n != 2 {
		t.Fatalf("ToFASTA n=%d err=%v", n, err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	if !strings.Contains(s, ">r1") || !strings.Contains(s, "ACGTACGT") || strings.Contains(s, "IIII") {
		t.Fatalf("bad FASTA:\n%s", s)
	}
}

const samText = "@HD\tVN:1.6\tSO:unsorted\n" +
	"u1\t4\t*\t0\t0\t*\t*\t0\t0\tACGTTTGA\tIIIIIIII\n" +
	"u1\t260\t*\t0\t0\t*\t*\t0\t0\tACGTTTGA\tIIIIIIII\n" +
	"u2\t20\t*\t0\t0\t*\t*\t0\t0\tAACCGGTA\tIIIIIIII\n"

func TestForEachSAM(t *testing.T) {
	fn := writeFile(t, "r.sam", []byte(samText))
	var got []Record
	err := ForEach(context.Background(), fn, func(r Record) error {
		got = append(got, r)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 primary records, got %+v", got)
	}
	if got[0].ID != "u1" || string(got[0].Seq) != "ACGTTTGA" {
		t.Fatalf("record 0 = %+v", got[0])
	}
	if got[1].ID != "u2" || string(got[1].Seq) != "TACCGGTT" || got[1].Ordinal != 1 {
		t.Fatalf("reverse record not restored: %+v", got[1])
	}
}
