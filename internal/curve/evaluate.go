package curve

// Evaluate runs one axis input through the segment pair and returns the
// rounded output. Selection is a strict `input < CombinedFactor` against
// the unrounded pivot, so an input exactly at the pivot takes the else
// branch in both modes. Which pair applies below the pivot swaps with the
// inversion flag; the workbook is built around that swap and it must not
// be "simplified" away.
func Evaluate(input float64, r Ranges, inverted bool) float64 {
	var slope, intercept float64
	if inverted {
		if input < r.CombinedFactor {
			slope, intercept = r.NormalSlope, r.NormalIntercept
		} else {
			slope, intercept = r.AlternateSlope, r.AlternateIntercept
		}
	} else {
		if input < r.CombinedFactor {
			slope, intercept = r.AlternateSlope, r.AlternateIntercept
		} else {
			slope, intercept = r.NormalSlope, r.NormalIntercept
		}
	}
	return RoundToInt(input*slope + intercept)
}

// ToDisplay flips an already-rounded output for inverted axes.
func ToDisplay(g float64, inverted bool) float64 {
	if inverted {
		return 100 - g
	}
	return g
}
