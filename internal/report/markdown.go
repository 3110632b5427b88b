package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/verheyen/throttlecal/internal/curve"
)

type Options struct {
	Name   string
	Device string
}

func WriteMarkdownSummary(path string, series curve.Series, opts Options) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Calibration curve\n\n")
	fmt.Fprintf(&b, "- Axis: %s\n", opts.Name)
	if opts.Device != "" {
		fmt.Fprintf(&b, "- Device: %s\n", opts.Device)
	}
	fmt.Fprintf(&b, "- AB location: %g (MIL %g)\n", series.Inputs.ABLoc, series.Ranges.Mil)
	fmt.Fprintf(&b, "- Detent location: %g\n", series.Inputs.DetentLoc)
	fmt.Fprintf(&b, "- Saturation: %g%%\n", series.Inputs.SatX)
	fmt.Fprintf(&b, "- Deadzone: %g\n", series.Inputs.DZ)
	fmt.Fprintf(&b, "- Inverted: %v\n\n", series.Inverted)

	fmt.Fprintf(&b, "Derived constants:\n\n")
	fmt.Fprintf(&b, "- Saturation factor: %g\n", series.Factors.SaturationFactor)
	fmt.Fprintf(&b, "- Deadzone factor: %g\n", series.Factors.DeadzoneFactor)
	fmt.Fprintf(&b, "- Combined factor: %g\n", series.Factors.CombinedFactor)
	fmt.Fprintf(&b, "- Normal segment: slope %g, intercept %g\n", series.Ranges.NormalSlope, series.Ranges.NormalIntercept)
	fmt.Fprintf(&b, "- Alternate segment: slope %g, intercept %g\n\n", series.Ranges.AlternateSlope, series.Ranges.AlternateIntercept)

	fmt.Fprintf(&b, "| Input | Raw | Display |\n")
	fmt.Fprintf(&b, "| --- | --- | --- |\n")
	for _, point := range series.Points {
		fmt.Fprintf(&b, "| %g | %g | %g |\n", point.Input, point.Raw, point.Display)
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}
