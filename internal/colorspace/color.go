package colorspace

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents an RGB color with 8-bit components.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSL represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSL struct {
	H float64 `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S float64 `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L float64 `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// LAB represents a color in CIE L*a*b* space (D65 white point).
type LAB struct {
	L float64 `json:"l"` // Lightness: 0-100
	A float64 `json:"a"` // Green (-) to red (+)
	B float64 `json:"b"` // Blue (-) to yellow (+)
}

// Color is an immutable color value.
//
// The zero value is black. Colors are compared by their 8-bit RGB channels.
type Color struct {
	rgb RGB
}

// FromRGB builds a Color from 8-bit channels.
func FromRGB(r, g, b uint8) Color {
	return Color{rgb: RGB{R: r, G: g, B: b}}
}

// FromHSL builds a Color from hue in degrees and saturation/lightness in percent.
//
// Hue is wrapped into [0,360). Saturation and lightness must lie in [0,100];
// anything else (including NaN) is rejected with ErrInvalidColor.
func FromHSL(h, s, l float64) (Color, error) {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return Color{}, fmt.Errorf("%w: hue %v is not finite", ErrInvalidColor, h)
	}
	if math.IsNaN(s) || s < 0 || s > 100 {
		return Color{}, fmt.Errorf("%w: saturation %v outside 0-100", ErrInvalidColor, s)
	}
	if math.IsNaN(l) || l < 0 || l > 100 {
		return Color{}, fmt.Errorf("%w: lightness %v outside 0-100", ErrInvalidColor, l)
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return FromColorful(colorful.Hsl(h, s/100, l/100)), nil
}

// FromColorful converts a go-colorful value, clamping it into the sRGB gamut
// and rounding each channel to 8 bits.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return FromRGB(r, g, b)
}

// RGB returns the 8-bit channel view.
func (c Color) RGB() RGB {
	return c.rgb
}

// HSL returns the HSL view with saturation and lightness in percent.
func (c Color) HSL() HSL {
	h, s, l := c.colorful().Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return HSL{H: h, S: s * 100, L: l * 100}
}

// LAB returns the CIE L*a*b* view (D65).
//
// go-colorful reports L*a*b* scaled by 1/100; the values here are rescaled to
// the conventional ranges.
func (c Color) LAB() LAB {
	l, a, b := c.colorful().Lab()
	return LAB{L: l * 100, A: a * 100, B: b * 100}
}

// Hex returns the color as uppercase "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.rgb.R, c.rgb.G, c.rgb.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// Colorful exposes the go-colorful representation for blending and other
// library operations.
func (c Color) Colorful() colorful.Color {
	return c.colorful()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.rgb.R) / 255.0,
		G: float64(c.rgb.G) / 255.0,
		B: float64(c.rgb.B) / 255.0,
	}
}

// Equal reports whether two colors have identical 8-bit channels.
func (c Color) Equal(other Color) bool {
	return c.rgb == other.rgb
}

// WithinTolerance reports whether every channel differs by less than tol.
func (c Color) WithinTolerance(other Color, tol int) bool {
	return absInt(int(c.rgb.R)-int(other.rgb.R)) < tol &&
		absInt(int(c.rgb.G)-int(other.rgb.G)) < tol &&
		absInt(int(c.rgb.B)-int(other.rgb.B)) < tol
}

// Formats contains one color in every supported notation.
type Formats struct {
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
	HSL HSL    `json:"hsl"`
	LAB LAB    `json:"lab"`
	CSS struct {
		RGB string `json:"rgb"`
		HSL string `json:"hsl"`
		LAB string `json:"lab"`
	} `json:"css"`
	Name string `json:"name,omitempty"`
}

// Formats converts the color to every supported notation. HSL and LAB
// components are rounded to two decimals.
func (c Color) Formats() Formats {
	hsl := c.HSL()
	lab := c.LAB()

	f := Formats{
		Hex:  c.Hex(),
		RGB:  c.rgb,
		HSL:  HSL{H: round2(hsl.H), S: round2(hsl.S), L: round2(hsl.L)},
		LAB:  LAB{L: round2(lab.L), A: round2(lab.A), B: round2(lab.B)},
		Name: NameOf(c),
	}
	f.CSS.RGB = fmt.Sprintf("rgb(%d, %d, %d)", c.rgb.R, c.rgb.G, c.rgb.B)
	f.CSS.HSL = fmt.Sprintf("hsl(%s, %s%%, %s%%)", trimFloat(hsl.H), trimFloat(hsl.S), trimFloat(hsl.L))
	f.CSS.LAB = fmt.Sprintf("lab(%s%% %s %s)", trimFloat(lab.L), trimFloat(lab.A), trimFloat(lab.B))
	return f
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", round2(v))
	s = strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// MarshalText encodes the color as "#RRGGBB" so result records serialize
// colors as plain strings.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText accepts any form understood by Parse.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
