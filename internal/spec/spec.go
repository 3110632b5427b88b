package spec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/verheyen/throttlecal/internal/curve"
)

const (
	APIVersionV1        = "throttlecal.dev/v1"
	KindAxisCalibration = "AxisCalibration"
)

type Spec struct {
	APIVersion string    `yaml:"apiVersion"`
	Kind       string    `yaml:"kind"`
	Metadata   Metadata  `yaml:"metadata"`
	Axis       Axis      `yaml:"axis"`
	Values     []float64 `yaml:"values"`
}

type Metadata struct {
	Name   string `yaml:"name"`
	Device string `yaml:"device"`
	Notes  string `yaml:"notes"`
}

// Axis carries the raw workbook inputs. SatX and DZ are pointers so an
// absent cell can be told apart from a literal zero; Invert stays loosely
// typed because the workbook encodes it as "X", TRUE, "1", and friends.
type Axis struct {
	ABLoc     float64  `yaml:"abLoc"`
	DetentLoc float64  `yaml:"detentLoc"`
	SatX      *float64 `yaml:"satX"`
	DZ        *float64 `yaml:"dz"`
	Invert    any      `yaml:"invert"`
}

// Validate checks the document structure only. Numeric edge cases (zero
// saturation, out-of-range detent, non-finite values) are never rejected
// here; the engine absorbs them the way the workbook did.
func (s Spec) Validate() error {
	var errs []string
	if s.APIVersion != APIVersionV1 {
		errs = append(errs, fmt.Sprintf("apiVersion must be %q", APIVersionV1))
	}
	if s.Kind != KindAxisCalibration {
		errs = append(errs, fmt.Sprintf("kind must be %q", KindAxisCalibration))
	}
	if strings.TrimSpace(s.Metadata.Name) == "" {
		errs = append(errs, "metadata.name is required")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Inputs resolves the spec into engine inputs, applying the workbook
// defaults for absent cells: saturation 100%, deadzone 0.
func (s Spec) Inputs() curve.Inputs {
	satX := 100.0
	if s.Axis.SatX != nil {
		satX = *s.Axis.SatX
	}
	dz := 0.0
	if s.Axis.DZ != nil {
		dz = *s.Axis.DZ
	}
	return curve.Inputs{
		ABLoc:     s.Axis.ABLoc,
		DetentLoc: s.Axis.DetentLoc,
		SatX:      satX,
		DZ:        dz,
		Invert:    s.Axis.Invert,
		Values:    s.Values,
	}
}
