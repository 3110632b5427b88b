package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/verheyen/throttlecal/internal/curve"
	"github.com/verheyen/throttlecal/internal/report"
	"github.com/verheyen/throttlecal/internal/spec"
)

type computeOptions struct {
	file   string
	values string
	out    string
	format string
}

func computeFlags(cmd string, args []string) (*flag.FlagSet, *computeOptions) {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := &computeOptions{}
	fs.StringVar(&opts.file, "f", "", "path to calibration spec")
	fs.StringVar(&opts.values, "values", "", "comma-separated axis inputs overriding the spec")
	fs.StringVar(&opts.out, "out", "out/curve", "output directory")
	fs.StringVar(&opts.format, "format", "md,json", "comma-separated output formats")
	return fs, opts
}

func runCompute(args []string) error {
	fs, opts := computeFlags("compute", args)
	if err := fs.Parse(args); err != nil {
		return err
	}
	series, specDoc, err := buildSeries(opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.out, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	formats := parseFormat(opts.format)
	reportOpts := report.Options{Name: specDoc.Metadata.Name, Device: specDoc.Metadata.Device}
	if includesFormat(formats, "md") {
		if err := report.WriteMarkdownSummary(filepath.Join(opts.out, "curve.md"), series, reportOpts); err != nil {
			return err
		}
	}
	if includesFormat(formats, "json") {
		if err := report.WriteSeriesJSON(filepath.Join(opts.out, "curve.json"), series); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stdout, "Wrote calibration curve to %s\n", opts.out)
	return nil
}

func runTable(args []string) error {
	fs, opts := computeFlags("table", args)
	if err := fs.Parse(args); err != nil {
		return err
	}
	series, specDoc, err := buildSeries(opts)
	if err != nil {
		return err
	}
	report.Render(os.Stdout, series, report.Options{Name: specDoc.Metadata.Name, Device: specDoc.Metadata.Device})
	return nil
}

func runValidate(args []string) error {
	fs, opts := computeFlags("validate", args)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, _, err := buildSeries(opts); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "Calibration spec is valid.")
	return nil
}

func buildSeries(opts *computeOptions) (curve.Series, spec.Spec, error) {
	if strings.TrimSpace(opts.file) == "" {
		return curve.Series{}, spec.Spec{}, errors.New("-f is required")
	}
	specDoc, err := spec.Load(opts.file)
	if err != nil {
		return curve.Series{}, spec.Spec{}, err
	}
	if err := specDoc.Validate(); err != nil {
		return curve.Series{}, spec.Spec{}, err
	}
	inputs := specDoc.Inputs()
	if opts.values != "" {
		values, err := spec.ParseValues(opts.values)
		if err != nil {
			return curve.Series{}, spec.Spec{}, fmt.Errorf("invalid -values: %w", err)
		}
		inputs.Values = values
	}
	return curve.ComputeSeries(inputs), specDoc, nil
}

func parseFormat(input string) []string {
	if strings.TrimSpace(input) == "" {
		return []string{"md", "json"}
	}
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.ToLower(strings.TrimSpace(part))
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return []string{"md", "json"}
	}
	return out
}

func includesFormat(formats []string, value string) bool {
	for _, format := range formats {
		if format == value {
			return true
		}
	}
	return false
}
