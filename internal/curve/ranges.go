package curve

import "math"

// Ranges holds the two linear segments of the calibration curve. Which
// segment applies to a given input is decided at evaluation time by
// comparing the input against CombinedFactor, so the pivot travels with
// the pair.
type Ranges struct {
	Mil                float64 `json:"mil"`
	CombinedFactor     float64 `json:"combinedFactor"`
	NormalSlope        float64 `json:"normalSlope"`
	NormalIntercept    float64 `json:"normalIntercept"`
	AlternateSlope     float64 `json:"alternateSlope"`
	AlternateIntercept float64 `json:"alternateIntercept"`
}

// Mil is the derived index for the military-power position.
func Mil(abLoc float64) float64 {
	return abLoc + 1
}

const denominatorFloor = 1e-12

// safeDivide mirrors the workbook's IFERROR wrapper around every slope
// division: a vanishing or non-finite denominator yields 0 instead of an
// error.
func safeDivide(numerator, denominator float64) float64 {
	if math.IsNaN(denominator) || math.IsInf(denominator, 0) || math.Abs(denominator) < denominatorFloor {
		return 0
	}
	return numerator / denominator
}

func finiteOrZero(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// ComputeRanges derives the slope/intercept pairs for the normal and
// alternate segments from the afterburner location, the unrounded combined
// factor, and the inversion flag. Slopes that still come out non-finite
// after safeDivide are clamped to 0.
func ComputeRanges(abLoc, combinedFactor float64, inverted bool) Ranges {
	mil := Mil(abLoc)
	r := Ranges{Mil: mil, CombinedFactor: combinedFactor}

	if inverted {
		r.NormalSlope = finiteOrZero(safeDivide(-(100 - mil), combinedFactor))
		r.NormalIntercept = 100
		r.AlternateSlope = finiteOrZero(safeDivide(-mil, 100-combinedFactor))
		r.AlternateIntercept = -r.AlternateSlope * 100
	} else {
		r.NormalSlope = finiteOrZero(safeDivide(100-mil, 100-combinedFactor))
		r.NormalIntercept = -(r.NormalSlope - 1) * 100
		r.AlternateSlope = finiteOrZero(safeDivide(mil, combinedFactor))
		r.AlternateIntercept = 0
	}
	return r
}
