package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/verheyen/throttlecal/internal/curve"
)

func TestWriteSeriesJSON(t *testing.T) {
	series := curve.ComputeSeries(curve.Inputs{ABLoc: 0, DetentLoc: 50, SatX: 100, DZ: 0, Invert: "X"})

	path := filepath.Join(t.TempDir(), "curve.json")
	if err := WriteSeriesJSON(path, series); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	var decoded struct {
		Inverted bool `json:"inverted"`
		Factors  struct {
			CombinedFactor float64 `json:"combinedFactor"`
		} `json:"factors"`
		Points []struct {
			Input   float64 `json:"input"`
			Raw     float64 `json:"raw"`
			Display float64 `json:"display"`
		} `json:"points"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if !decoded.Inverted {
		t.Fatalf("expected inverted series")
	}
	if decoded.Factors.CombinedFactor != 50 {
		t.Fatalf("combined factor %v, want 50", decoded.Factors.CombinedFactor)
	}
	if len(decoded.Points) != 11 {
		t.Fatalf("expected 11 points, got %d", len(decoded.Points))
	}
	if decoded.Points[0].Raw != 100 || decoded.Points[0].Display != 0 {
		t.Fatalf("point at 0 = %+v, want raw 100 display 0", decoded.Points[0])
	}
}
