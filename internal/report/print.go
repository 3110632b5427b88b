package report

import (
	"fmt"
	"io"

	"github.com/verheyen/throttlecal/internal/curve"
)

// Render writes the curve as a plain-text table, for the table subcommand.
func Render(w io.Writer, series curve.Series, opts Options) {
	fmt.Fprintf(w, "Axis: %s\n", opts.Name)
	if opts.Device != "" {
		fmt.Fprintf(w, "Device: %s\n", opts.Device)
	}
	fmt.Fprintf(w, "MIL: %g  Combined factor: %g  Inverted: %v\n", series.Ranges.Mil, series.Factors.CombinedFactor, series.Inverted)
	fmt.Fprintf(w, "Normal segment: slope %g, intercept %g\n", series.Ranges.NormalSlope, series.Ranges.NormalIntercept)
	fmt.Fprintf(w, "Alternate segment: slope %g, intercept %g\n", series.Ranges.AlternateSlope, series.Ranges.AlternateIntercept)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "INPUT\tRAW\tDISPLAY")
	for _, point := range series.Points {
		fmt.Fprintf(w, "%g\t%g\t%g\n", point.Input, point.Raw, point.Display)
	}
}
