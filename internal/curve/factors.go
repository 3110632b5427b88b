package curve

import "math"

// Factors are the constants derived once per calibration from the raw axis
// inputs. CombinedFactor is deliberately left unrounded even though
// SaturationFactor is rounded: it is the pivot the evaluator compares raw
// inputs against, and rounding it shifts every point near the detent.
type Factors struct {
	SaturationFactor float64 `json:"saturationFactor"`
	DeadzoneFactor   float64 `json:"deadzoneFactor"`
	CombinedFactor   float64 `json:"combinedFactor"`
}

// ComputeFactors derives the saturation, deadzone and combined factors.
// Non-finite inputs fall back to the workbook's default cells: detent 0,
// saturation 100%, deadzone 0. A zero saturation percentage uses divisor 1
// so the division can never fault.
func ComputeFactors(detentLoc, satX, dz float64) Factors {
	if math.IsNaN(detentLoc) || math.IsInf(detentLoc, 0) {
		detentLoc = 0
	}
	if math.IsNaN(satX) || math.IsInf(satX, 0) {
		satX = 100
	}
	if math.IsNaN(dz) || math.IsInf(dz, 0) {
		dz = 0
	}

	divisor := satX / 100
	if satX == 0 {
		divisor = 1
	}

	deadzone := detentLoc - dz
	return Factors{
		SaturationFactor: RoundToInt(detentLoc / divisor),
		DeadzoneFactor:   deadzone,
		CombinedFactor:   deadzone / divisor,
	}
}
