package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteRanking(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out") // created on demand

	scores := map[string]float64{"d1": 0.5, "d2": 1.5, "d3": 0}
	path, err := WriteRanking(dir, "BM25", "101", scores)
	if err != nil {
		t.Fatalf("WriteRanking error: %v", err)
	}

	if filepath.Base(path) != "BM25_R101Ranking.dat" {
		t.Errorf("file name = %q; want BM25_R101Ranking.dat", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	want := []string{"d2\t1.5", "d1\t0.5", "d3\t0"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines; want %d", len(lines), len(want))
	}
	for i, line := range lines {
		if line != want[i] {
			t.Errorf("line %d = %q; want %q", i, line, want[i])
		}
	}
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	models := []string{"BM25", "JM_LM"}
	metrics := map[string]map[string]map[string]float64{
		"precision": {
			"BM25":  {"101": 0.5, "102": 1.0},
			"JM_LM": {"101": 0.25, "102": 0.5},
		},
	}
	comparisons := map[string][]Comparison{
		"precision": {{Pair: "BM25 vs JM_LM", T: 2.5, P: 0.04}},
	}

	got, err := WriteReport(path, models, metrics, comparisons)
	if err != nil {
		t.Fatalf("WriteReport error: %v", err)
	}
	if got != path {
		t.Errorf("path = %q; want %q", got, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	report := string(data)

	for _, want := range []string{
		"== precision ==",
		"topic\tBM25\tJM_LM",
		"101\t0.5000\t0.2500",
		"Average\t0.7500\t0.3750",
		"== t-tests: precision ==",
		"BM25 vs JM_LM\t2.5000\t0.0400",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}
