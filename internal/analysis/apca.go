package analysis

import (
	"math"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// APCA channel weights.
const (
	apcaRed   = 0.2126729
	apcaGreen = 0.7151522
	apcaBlue  = 0.072175
)

// CalculateAPCA returns a simplified APCA lightness contrast (Lc) score for
// text color fg on background bg, rounded to two decimals.
//
// This is the compact variant used by the contrast tool, not the full
// APCA-W3 algorithm: there is no soft clamp of near-black luminance and the
// low-contrast clip is a flat 0.1. Positive scores mean dark text on a light
// background; negative scores mean light text on a dark background.
func CalculateAPCA(fg, bg colorspace.Color) float64 {
	fgY := apcaLuminance(fg)
	bgY := apcaLuminance(bg)

	var contrast float64
	if bgY > fgY {
		contrast = (math.Pow(bgY, 0.56) - math.Pow(fgY, 0.57)) * 1.14
	} else {
		contrast = (math.Pow(bgY, 0.65) - math.Pow(fgY, 0.62)) * 1.14
	}

	switch {
	case math.Abs(contrast) < 0.1:
		contrast = 0
	case contrast > 0:
		contrast -= 0.027
	default:
		contrast += 0.027
	}

	return round2(contrast * 100)
}

func apcaLuminance(c colorspace.Color) float64 {
	rgb := c.RGB()
	return apcaRed*math.Pow(float64(rgb.R)/255.0, 2.2) +
		apcaGreen*math.Pow(float64(rgb.G)/255.0, 2.2) +
		apcaBlue*math.Pow(float64(rgb.B)/255.0, 2.2)
}
