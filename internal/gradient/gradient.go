// Package gradient interpolates between two colors in a chosen color space.
package gradient

import (
	"errors"
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/color-tools-mcp/internal/analysis"
	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// Interpolation names the space a gradient is blended in.
type Interpolation string

const (
	RGB Interpolation = "rgb"
	HSV Interpolation = "hsv"
	Lab Interpolation = "lab"
	Luv Interpolation = "luv"
	HCL Interpolation = "hcl"
)

// Interpolations lists every supported interpolation space.
var Interpolations = []Interpolation{RGB, HSV, Lab, Luv, HCL}

const (
	MinSteps = 2
	MaxSteps = 100
)

var (
	ErrUnknownInterpolation = errors.New("unknown interpolation")
	ErrStepsRange           = fmt.Errorf("steps must be between %d and %d", MinSteps, MaxSteps)
)

// Stop is one color along a gradient.
type Stop struct {
	Position         float64          `json:"position"`
	Color            colorspace.Color `json:"color"`
	ContrastPrevious float64          `json:"contrast_with_previous"`
}

// ParseInterpolation validates an interpolation name. An empty name means Lab.
func ParseInterpolation(s string) (Interpolation, error) {
	if s == "" {
		return Lab, nil
	}
	for _, in := range Interpolations {
		if string(in) == s {
			return in, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownInterpolation, s)
}

// Generate returns steps colors evenly spaced from start to end inclusive.
func Generate(start, end colorspace.Color, steps int, space Interpolation) ([]Stop, error) {
	if steps < MinSteps || steps > MaxSteps {
		return nil, fmt.Errorf("%w: got %d", ErrStepsRange, steps)
	}
	blend, err := blender(space)
	if err != nil {
		return nil, err
	}

	a, b := start.Colorful(), end.Colorful()
	stops := make([]Stop, steps)
	for i := range stops {
		t := float64(i) / float64(steps-1)
		var c colorspace.Color
		switch i {
		case 0:
			c = start
		case steps - 1:
			c = end
		default:
			c = colorspace.FromColorful(blend(a, b, t))
		}
		stops[i] = Stop{Position: math.Round(t*100) / 100, Color: c}
		if i > 0 {
			stops[i].ContrastPrevious = math.Round(analysis.Ratio(stops[i-1].Color, c)*100) / 100
		}
	}
	return stops, nil
}

func blender(space Interpolation) (func(a, b colorful.Color, t float64) colorful.Color, error) {
	switch space {
	case RGB:
		return colorful.Color.BlendRgb, nil
	case HSV:
		return colorful.Color.BlendHsv, nil
	case Lab, "":
		return colorful.Color.BlendLab, nil
	case Luv:
		return colorful.Color.BlendLuv, nil
	case HCL:
		return colorful.Color.BlendHcl, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownInterpolation, space)
}
