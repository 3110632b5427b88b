package curve

import "math"

// Round rounds value to the given number of decimal places, half away from
// zero, matching the ROUND function of the workbook this tool replaces.
// Non-finite values collapse to 0 rather than erroring, the same way the
// workbook wraps its cells in IFERROR.
func Round(value float64, decimals int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	factor := math.Pow(10, float64(decimals))
	if value >= 0 {
		return math.Floor(value*factor+0.5) / factor
	}
	return math.Ceil(value*factor-0.5) / factor
}

// RoundToInt is the rounding applied to every curve output.
func RoundToInt(value float64) float64 {
	return Round(value, 0)
}
