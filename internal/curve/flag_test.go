package curve

import "testing"

func TestIsInverted(t *testing.T) {
	cases := []struct {
		name string
		flag any
		want bool
	}{
		{"sentinel-upper", "X", true},
		{"sentinel-lower", "x", true},
		{"string-true", "true", true},
		{"string-one", "1", true},
		{"string-padded", " TRUE ", true},
		{"string-false", "false", false},
		{"string-zero", "0", false},
		{"string-garbage", "yes", false},
		{"bool-true", true, true},
		{"bool-false", false, false},
		{"number", 1, false},
		{"float", 1.0, false},
		{"nil", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IsInverted(tc.flag)
			if got != tc.want {
				t.Fatalf("IsInverted(%v)=%v, want %v", tc.flag, got, tc.want)
			}
		})
	}
}
