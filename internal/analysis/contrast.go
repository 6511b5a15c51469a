package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// TextSize selects which WCAG threshold applies.
type TextSize string

const (
	TextNormal TextSize = "normal"
	TextLarge  TextSize = "large"
)

// Standard selects how CheckContrast decides Passes.
type Standard string

const (
	WCAGAA  Standard = "WCAG_AA"
	WCAGAAA Standard = "WCAG_AAA"
	APCA    Standard = "APCA"
)

// WCAG 2.x minimum contrast ratios.
const (
	AANormalThreshold  = 4.5
	AALargeThreshold   = 3.0
	AAANormalThreshold = 7.0
	AAALargeThreshold  = 4.5
)

// Minimum absolute APCA Lc for body and large text.
const (
	APCANormalThreshold = 75.0
	APCALargeThreshold  = 60.0
)

var (
	// ErrUnknownTextSize is returned by ParseTextSize.
	ErrUnknownTextSize = errors.New("unknown text size")
	// ErrUnknownStandard is returned by ParseStandard.
	ErrUnknownStandard = errors.New("unknown contrast standard")
)

// ParseTextSize validates a text size, defaulting "" to normal.
func ParseTextSize(s string) (TextSize, error) {
	switch TextSize(s) {
	case "", TextNormal:
		return TextNormal, nil
	case TextLarge:
		return TextLarge, nil
	}
	return "", fmt.Errorf("%w: %q (expected normal or large)", ErrUnknownTextSize, s)
}

// ParseStandard validates a standard name, defaulting "" to WCAG_AA.
func ParseStandard(s string) (Standard, error) {
	switch Standard(s) {
	case "", WCAGAA:
		return WCAGAA, nil
	case WCAGAAA, APCA:
		return Standard(s), nil
	}
	return "", fmt.Errorf("%w: %q (expected WCAG_AA, WCAG_AAA or APCA)", ErrUnknownStandard, s)
}

// ContrastRatio computes the WCAG contrast ratio of two relative luminances.
// The result lies in [1,21] and is symmetric in its arguments.
func ContrastRatio(l1, l2 float64) float64 {
	lighter := math.Max(l1, l2)
	darker := math.Min(l1, l2)
	return (lighter + 0.05) / (darker + 0.05)
}

// Ratio is ContrastRatio applied to two colors. The result is not rounded.
func Ratio(a, b colorspace.Color) float64 {
	return ContrastRatio(RelativeLuminance(a), RelativeLuminance(b))
}

// Compliance holds the four WCAG pass/fail decisions for one ratio.
type Compliance struct {
	AANormal  bool `json:"wcag_aa_normal"`
	AALarge   bool `json:"wcag_aa_large"`
	AAANormal bool `json:"wcag_aaa_normal"`
	AAALarge  bool `json:"wcag_aaa_large"`
}

// ComplianceFor evaluates ratio against every WCAG threshold.
func ComplianceFor(ratio float64) Compliance {
	return Compliance{
		AANormal:  ratio >= AANormalThreshold,
		AALarge:   ratio >= AALargeThreshold,
		AAANormal: ratio >= AAANormalThreshold,
		AAALarge:  ratio >= AAALargeThreshold,
	}
}

// AAThreshold returns the WCAG AA minimum for a text size.
func AAThreshold(size TextSize) float64 {
	if size == TextLarge {
		return AALargeThreshold
	}
	return AANormalThreshold
}

// AAAThreshold returns the WCAG AAA minimum for a text size.
func AAAThreshold(size TextSize) float64 {
	if size == TextLarge {
		return AAALargeThreshold
	}
	return AAANormalThreshold
}

// APCAThreshold returns the minimum absolute APCA score for a text size.
func APCAThreshold(size TextSize) float64 {
	if size == TextLarge {
		return APCALargeThreshold
	}
	return APCANormalThreshold
}

// ContrastResult is the outcome of CheckContrast.
type ContrastResult struct {
	Foreground     colorspace.Color `json:"foreground"`
	Background     colorspace.Color `json:"background"`
	Ratio          float64          `json:"contrast_ratio"`
	TextSize       TextSize         `json:"text_size"`
	Standard       Standard         `json:"standard"`
	Passes         bool             `json:"passes"`
	WCAGAA         bool             `json:"wcag_aa"`
	WCAGAAA        bool             `json:"wcag_aaa"`
	Compliance     Compliance       `json:"compliance"`
	APCAScore      float64          `json:"apca_score"`
	APCAPasses     bool             `json:"apca_passes"`
	Recommendation string           `json:"recommendation"`
}

// CheckContrast evaluates a foreground/background pair.
//
// Pass/fail decisions use the unrounded ratio; the reported ratio is rounded to
// two decimals. Under WCAG_AA and WCAG_AAA, Passes follows the WCAG threshold
// for the text size; under APCA it follows |APCA score| against 75 (normal) or
// 60 (large). Unrecognized sizes and standards fall back to normal and WCAG_AA.
func CheckContrast(fg, bg colorspace.Color, size TextSize, std Standard) ContrastResult {
	if size != TextLarge {
		size = TextNormal
	}
	if std != WCAGAAA && std != APCA {
		std = WCAGAA
	}

	ratio := Ratio(fg, bg)
	apca := CalculateAPCA(fg, bg)
	apcaPasses := math.Abs(apca) >= APCAThreshold(size)

	res := ContrastResult{
		Foreground:     fg,
		Background:     bg,
		Ratio:          round2(ratio),
		TextSize:       size,
		Standard:       std,
		WCAGAA:         ratio >= AAThreshold(size),
		WCAGAAA:        ratio >= AAAThreshold(size),
		Compliance:     ComplianceFor(ratio),
		APCAScore:      apca,
		APCAPasses:     apcaPasses,
		Recommendation: contrastRecommendation(ratio),
	}

	switch std {
	case WCAGAAA:
		res.Passes = res.WCAGAAA
	case APCA:
		res.Passes = apcaPasses
	default:
		res.Passes = res.WCAGAA
	}
	return res
}

func contrastRecommendation(ratio float64) string {
	switch {
	case ratio >= AAANormalThreshold:
		return "Excellent contrast: meets WCAG AAA for all text sizes"
	case ratio >= AANormalThreshold:
		return "Good contrast: meets WCAG AA for normal text and AAA for large text"
	case ratio >= AALargeThreshold:
		return "Acceptable for large text only (18pt+ or 14pt+ bold); increase contrast for body text"
	default:
		return "Insufficient contrast: adjust the lightness of the foreground or background"
	}
}
