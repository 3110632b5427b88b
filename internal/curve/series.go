package curve

// Inputs are the raw calibration inputs for one axis. Invert keeps the
// workbook's loosely typed encoding (bool, "X", "true", "1", ...) and is
// normalized exactly once inside ComputeSeries.
type Inputs struct {
	ABLoc     float64   `json:"abLoc"`
	DetentLoc float64   `json:"detentLoc"`
	SatX      float64   `json:"satX"`
	DZ        float64   `json:"dz"`
	Invert    any       `json:"invert"`
	Values    []float64 `json:"values"`
}

// Point is one evaluated input: the raw rounded curve output and its
// display form.
type Point struct {
	Input   float64 `json:"input"`
	Raw     float64 `json:"raw"`
	Display float64 `json:"display"`
}

// Series is the full result of a calibration run: the normalized inputs,
// the derived constants, and one point per evaluated value in input order.
type Series struct {
	Inputs   Inputs  `json:"inputs"`
	Inverted bool    `json:"inverted"`
	Factors  Factors `json:"factors"`
	Ranges   Ranges  `json:"ranges"`
	Points   []Point `json:"points"`
}

// DefaultValues is the sweep evaluated when the caller supplies none:
// 0 through 100 in steps of 10.
func DefaultValues() []float64 {
	values := make([]float64, 0, 11)
	for v := 0.0; v <= 100; v += 10 {
		values = append(values, v)
	}
	return values
}

// ComputeSeries derives the factors and segment pair for the given inputs
// and evaluates every value against them. A caller-supplied sequence is
// used verbatim, duplicates and ordering included; an empty one falls back
// to DefaultValues. The call is pure: identical inputs produce identical
// results.
func ComputeSeries(in Inputs) Series {
	inverted := IsInverted(in.Invert)
	factors := ComputeFactors(in.DetentLoc, in.SatX, in.DZ)
	ranges := ComputeRanges(in.ABLoc, factors.CombinedFactor, inverted)

	values := in.Values
	if len(values) == 0 {
		values = DefaultValues()
	}

	points := make([]Point, 0, len(values))
	for _, input := range values {
		g := Evaluate(input, ranges, inverted)
		points = append(points, Point{Input: input, Raw: g, Display: ToDisplay(g, inverted)})
	}

	in.Values = values
	return Series{
		Inputs:   in,
		Inverted: inverted,
		Factors:  factors,
		Ranges:   ranges,
		Points:   points,
	}
}
