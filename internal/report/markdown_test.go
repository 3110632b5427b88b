package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/verheyen/throttlecal/internal/curve"
)

func TestWriteMarkdownSummary(t *testing.T) {
	series := curve.ComputeSeries(curve.Inputs{ABLoc: 0, DetentLoc: 50, SatX: 100, DZ: 0, Invert: false})

	path := filepath.Join(t.TempDir(), "curve.md")
	if err := WriteMarkdownSummary(path, series, Options{Name: "warthog-left"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	golden, err := os.ReadFile("./testdata/curve.md")
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if string(data) != string(golden) {
		t.Fatalf("markdown mismatch:\n%s", data)
	}
}
