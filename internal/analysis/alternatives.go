package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// lightnessOffsets are the HSL lightness shifts tried for each side of a pair.
var lightnessOffsets = [...]float64{-40, -30, -20, 20, 30, 40}

// maxAlternatives caps each side of the search result.
const maxAlternatives = 5

// Alternative is one candidate adjustment of a failing pair.
type Alternative struct {
	Foreground colorspace.Color `json:"foreground"`
	Background colorspace.Color `json:"background"`
	Ratio      float64          `json:"contrast_ratio"`
	Adjustment string           `json:"adjustment"`
}

// Alternatives groups candidates by which side was adjusted. Each list is
// sorted by contrast ratio, highest first.
type Alternatives struct {
	Foreground []Alternative `json:"foreground_adjustments"`
	Background []Alternative `json:"background_adjustments"`
}

// FindAlternatives searches lightness shifts of the foreground (background held
// fixed) and of the background (foreground held fixed). Hue and saturation are
// kept. Offsets whose clamped lightness moves by less than 5 are skipped, and
// candidates that cannot be constructed are dropped silently.
func FindAlternatives(fg, bg colorspace.Color) Alternatives {
	return Alternatives{
		Foreground: searchLightness(fg, func(c colorspace.Color) (colorspace.Color, colorspace.Color) { return c, bg }, "foreground"),
		Background: searchLightness(bg, func(c colorspace.Color) (colorspace.Color, colorspace.Color) { return fg, c }, "background"),
	}
}

func searchLightness(
	base colorspace.Color,
	pair func(colorspace.Color) (colorspace.Color, colorspace.Color),
	side string,
) []Alternative {
	hsl := base.HSL()
	candidates := make([]Alternative, 0, len(lightnessOffsets))

	for _, offset := range lightnessOffsets {
		l := math.Max(0, math.Min(100, hsl.L+offset))
		if math.Abs(l-hsl.L) < 5 {
			continue
		}
		adjusted, err := colorspace.FromHSL(hsl.H, hsl.S, l)
		if err != nil {
			continue
		}
		fg, bg := pair(adjusted)
		candidates = append(candidates, Alternative{
			Foreground: fg,
			Background: bg,
			Ratio:      round2(Ratio(fg, bg)),
			Adjustment: fmt.Sprintf("%s lightness %+.0f%%", side, offset),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Ratio > candidates[j].Ratio
	})
	if len(candidates) > maxAlternatives {
		candidates = candidates[:maxAlternatives]
	}
	return candidates
}
