package curve

import (
	"math"
	"testing"
)

func TestRoundHalfAwayFromZero(t *testing.T) {
	cases := []struct {
		name     string
		value    float64
		decimals int
		want     float64
	}{
		{"tie-positive", 2.5, 0, 3},
		{"tie-negative", -2.5, 0, -3},
		{"below-tie", 2.4, 0, 2},
		{"above-tie", 2.6, 0, 3},
		{"negative-below-tie", -2.4, 0, -2},
		{"two-decimals-tie", 0.125, 2, 0.13},
		{"two-decimals-tie-negative", -0.125, 2, -0.13},
		{"two-decimals", 1.234, 2, 1.23},
		{"zero", 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Round(tc.value, tc.decimals)
			if got != tc.want {
				t.Fatalf("Round(%v, %d)=%v, want %v", tc.value, tc.decimals, got, tc.want)
			}
		})
	}
}

func TestRoundNonFinite(t *testing.T) {
	if got := Round(math.NaN(), 0); got != 0 {
		t.Fatalf("Round(NaN)=%v, want 0", got)
	}
	if got := Round(math.Inf(1), 0); got != 0 {
		t.Fatalf("Round(+Inf)=%v, want 0", got)
	}
	if got := Round(math.Inf(-1), 2); got != 0 {
		t.Fatalf("Round(-Inf)=%v, want 0", got)
	}
}

func TestRoundToInt(t *testing.T) {
	if got := RoundToInt(49.5); got != 50 {
		t.Fatalf("RoundToInt(49.5)=%v, want 50", got)
	}
	if got := RoundToInt(-49.5); got != -50 {
		t.Fatalf("RoundToInt(-49.5)=%v, want -50", got)
	}
}
