package curve

import "strings"

// IsInverted normalizes the invert-flag encodings found in the source
// workbook into a single boolean. The column convention there marks an
// inverted axis with a literal "X"; exported sheets also carry native
// booleans and "true"/"1" strings. Anything unrecognized, including
// numbers and absent values, means not inverted.
func IsInverted(flag any) bool {
	switch v := flag.(type) {
	case string:
		if v == "X" || v == "x" {
			return true
		}
		trimmed := strings.ToLower(strings.TrimSpace(v))
		return trimmed == "true" || trimmed == "1"
	case bool:
		return v
	default:
		return false
	}
}
