package analysis

import (
	"math"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// RelativeLuminance calculates the relative luminance of a color according to
// WCAG 2.x. Returns a value between 0 (black) and 1 (white).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef
func RelativeLuminance(c colorspace.Color) float64 {
	rgb := c.RGB()
	r := srgbToLinear(float64(rgb.R) / 255.0)
	g := srgbToLinear(float64(rgb.G) / 255.0)
	b := srgbToLinear(float64(rgb.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// srgbToLinear applies the WCAG sRGB decoding to a component in [0,1].
func srgbToLinear(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// PerceivedBrightness returns the BT.601 weighted brightness (0-255), rounded
// to the nearest integer.
func PerceivedBrightness(c colorspace.Color) int {
	rgb := c.RGB()
	return int(math.Round(0.299*float64(rgb.R) + 0.587*float64(rgb.G) + 0.114*float64(rgb.B)))
}

// BrightnessCategory is an ordered bucket of perceived brightness.
type BrightnessCategory string

const (
	VeryDark  BrightnessCategory = "very_dark"
	Dark      BrightnessCategory = "dark"
	Medium    BrightnessCategory = "medium"
	Light     BrightnessCategory = "light"
	VeryLight BrightnessCategory = "very_light"
)

// CategorizeBrightness maps a perceived brightness onto its bucket. Breakpoints
// are exclusive upper bounds.
func CategorizeBrightness(brightness int) BrightnessCategory {
	switch {
	case brightness < 51:
		return VeryDark
	case brightness < 102:
		return Dark
	case brightness < 153:
		return Medium
	case brightness < 204:
		return Light
	default:
		return VeryLight
	}
}

// BrightnessAnalysis describes how light a color looks.
type BrightnessAnalysis struct {
	PerceivedBrightness int                `json:"perceived_brightness"`
	RelativeLuminance   float64            `json:"relative_luminance"`
	Category            BrightnessCategory `json:"brightness_category"`
	IsLight             bool               `json:"is_light"`
}

// AnalyzeBrightness computes the brightness sub-result.
func AnalyzeBrightness(c colorspace.Color) BrightnessAnalysis {
	brightness := PerceivedBrightness(c)
	return BrightnessAnalysis{
		PerceivedBrightness: brightness,
		RelativeLuminance:   RelativeLuminance(c),
		Category:            CategorizeBrightness(brightness),
		IsLight:             brightness > 127,
	}
}

// Temperature is the warm/cool/neutral classification of a hue.
type Temperature string

const (
	Warm    Temperature = "warm"
	Cool    Temperature = "cool"
	Neutral Temperature = "neutral"
)

// TemperatureAnalysis classifies a color by hue.
type TemperatureAnalysis struct {
	Temperature         Temperature `json:"temperature"`
	HueCategory         string      `json:"hue_category"`
	KelvinApproximation int         `json:"kelvin_approximation"`
	WarmthScore         float64     `json:"warmth_score"`
}

type hueBand struct {
	upper float64 // exclusive
	TemperatureAnalysis
}

// hueBands is a lookup table, ordered by upper bound.
var hueBands = [...]hueBand{
	{30, TemperatureAnalysis{Warm, "red", 2000, 1.0}},
	{60, TemperatureAnalysis{Warm, "orange", 2500, 0.8}},
	{90, TemperatureAnalysis{Neutral, "yellow", 3500, 0.4}},
	{150, TemperatureAnalysis{Neutral, "yellow-green", 5000, 0.0}},
	{210, TemperatureAnalysis{Cool, "green-cyan", 6500, -0.4}},
	{270, TemperatureAnalysis{Cool, "blue", 9000, -1.0}},
	{300, TemperatureAnalysis{Cool, "purple", 7500, -0.6}},
	{360, TemperatureAnalysis{Warm, "magenta-red", 3000, 0.6}},
}

// ClassifyTemperature maps a hue in degrees onto its temperature band. Hues
// outside [0,360) are wrapped first.
func ClassifyTemperature(hue float64) TemperatureAnalysis {
	if math.IsNaN(hue) || math.IsInf(hue, 0) {
		hue = 0
	}
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	for _, band := range hueBands {
		if hue < band.upper {
			return band.TemperatureAnalysis
		}
	}
	return hueBands[0].TemperatureAnalysis
}

// AnalyzeTemperature classifies the color's hue.
func AnalyzeTemperature(c colorspace.Color) TemperatureAnalysis {
	return ClassifyTemperature(c.HSL().H)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
