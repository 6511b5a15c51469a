package analysis

import (
	"errors"
	"fmt"

	"github.com/ironsheep/color-tools-mcp/internal/colorblind"
	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// Type selects which sub-results Analyze produces.
type Type string

const (
	TypeBrightness    Type = "brightness"
	TypeTemperature   Type = "temperature"
	TypeContrast      Type = "contrast"
	TypeAccessibility Type = "accessibility"
	TypeAll           Type = "all"
)

// ErrUnknownAnalysisType is returned by ParseTypes.
var ErrUnknownAnalysisType = errors.New("unknown analysis type")

// ParseTypes validates analysis type names. An empty list means all.
func ParseTypes(names []string) ([]Type, error) {
	if len(names) == 0 {
		return []Type{TypeAll}, nil
	}
	types := make([]Type, 0, len(names))
	for _, n := range names {
		switch t := Type(n); t {
		case TypeBrightness, TypeTemperature, TypeContrast, TypeAccessibility, TypeAll:
			types = append(types, t)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownAnalysisType, n)
		}
	}
	return types, nil
}

// ContrastAnalysis compares a color against pure white and pure black.
type ContrastAnalysis struct {
	AgainstWhite   float64 `json:"against_white"`
	AgainstBlack   float64 `json:"against_black"`
	BestContrast   float64 `json:"best_contrast"`
	BestBackground string  `json:"best_background"`
}

// AnalyzeContrast computes the contrast sub-result. Ties favour white.
func AnalyzeContrast(c colorspace.Color) ContrastAnalysis {
	white := Ratio(c, colorspace.White)
	black := Ratio(c, colorspace.Black)

	res := ContrastAnalysis{
		AgainstWhite:   round2(white),
		AgainstBlack:   round2(black),
		BestContrast:   round2(white),
		BestBackground: "white",
	}
	if black > white {
		res.BestContrast = round2(black)
		res.BestBackground = "black"
	}
	return res
}

// AccessibilityAnalysis summarizes WCAG compliance on the best background.
type AccessibilityAnalysis struct {
	Compliance
	ColorblindSafe  bool     `json:"colorblind_safe"`
	Recommendations []string `json:"recommendations"`
}

// dichromacies are the full-strength deficiencies checked for colorblind safety.
var dichromacies = []colorblind.Deficiency{
	colorblind.Protanopia,
	colorblind.Deuteranopia,
	colorblind.Tritanopia,
}

// IsColorblindSafe reports whether every full-severity dichromat simulation of c
// has at most minimal impact.
func IsColorblindSafe(c colorspace.Color) bool {
	for _, d := range dichromacies {
		res, err := colorblind.Simulate(c, d, 100)
		if err != nil {
			return false
		}
		if res.Impact != colorblind.ImpactNone && res.Impact != colorblind.ImpactMinimal {
			return false
		}
	}
	return true
}

// AnalyzeAccessibility computes the accessibility sub-result.
func AnalyzeAccessibility(c colorspace.Color) AccessibilityAnalysis {
	contrast := AnalyzeContrast(c)
	best := Ratio(c, colorspace.White)
	if contrast.BestBackground == "black" {
		best = Ratio(c, colorspace.Black)
	}

	res := AccessibilityAnalysis{
		Compliance:     ComplianceFor(best),
		ColorblindSafe: IsColorblindSafe(c),
	}
	res.Recommendations = recommendations(res, contrast, AnalyzeBrightness(c))
	return res
}

func recommendations(a AccessibilityAnalysis, contrast ContrastAnalysis, brightness BrightnessAnalysis) []string {
	recs := []string{}
	bg := contrast.BestBackground

	switch {
	case a.AAANormal:
		recs = append(recs, fmt.Sprintf("Meets WCAG AAA for all text sizes on a %s background", bg))
	case a.AANormal:
		recs = append(recs, fmt.Sprintf("Meets WCAG AA on a %s background; increase contrast to %.1f:1 for AAA", bg, AAANormalThreshold))
	case a.AALarge:
		recs = append(recs, fmt.Sprintf("Use only for large text (18pt+ or 14pt+ bold) on a %s background", bg))
	default:
		recs = append(recs, "Contrast is too low for text on white or black; reserve this color for decorative elements")
	}

	if !a.ColorblindSafe {
		recs = append(recs, "Do not rely on this color alone to convey meaning; pair it with text, icons or patterns")
	}

	switch brightness.Category {
	case VeryLight:
		recs = append(recs, "Very light color: suited to backgrounds, avoid for text on light surfaces")
	case VeryDark:
		recs = append(recs, "Very dark color: suited to text, avoid for backgrounds behind dark content")
	}
	return recs
}

// Result bundles the independent sub-results of Analyze. Sub-results that were
// not requested are nil.
type Result struct {
	Color         colorspace.Color       `json:"color"`
	Brightness    *BrightnessAnalysis    `json:"brightness,omitempty"`
	Temperature   *TemperatureAnalysis   `json:"temperature,omitempty"`
	Contrast      *ContrastAnalysis      `json:"contrast,omitempty"`
	Accessibility *AccessibilityAnalysis `json:"accessibility,omitempty"`
	Distance      *DistanceAnalysis      `json:"distance,omitempty"`
}

// Analyze runs the requested analyses on c. When compare is non-nil a distance
// analysis against it is included regardless of types.
func Analyze(c colorspace.Color, types []Type, compare *colorspace.Color) Result {
	want := make(map[Type]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	all := want[TypeAll] || len(types) == 0

	res := Result{Color: c}
	if all || want[TypeBrightness] {
		b := AnalyzeBrightness(c)
		res.Brightness = &b
	}
	if all || want[TypeTemperature] {
		t := AnalyzeTemperature(c)
		res.Temperature = &t
	}
	if all || want[TypeContrast] {
		ct := AnalyzeContrast(c)
		res.Contrast = &ct
	}
	if all || want[TypeAccessibility] {
		a := AnalyzeAccessibility(c)
		res.Accessibility = &a
	}
	if compare != nil {
		d := AnalyzeDistance(c, *compare)
		res.Distance = &d
	}
	return res
}
