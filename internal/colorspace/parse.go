package colorspace

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned (wrapped) for any string that is not a color.
var ErrInvalidColor = errors.New("invalid color")

var (
	rgbPattern = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*[\d.]+%?\s*)?\)$`)
	hslPattern = regexp.MustCompile(`^hsla?\(\s*(-?[\d.]+)(?:deg)?\s*,\s*([\d.]+)%?\s*,\s*([\d.]+)%?\s*(?:,\s*[\d.]+%?\s*)?\)$`)
	hexPattern = regexp.MustCompile(`^#?([0-9a-f]{3}|[0-9a-f]{6})$`)
)

// Parse converts a color string into a Color.
//
// Supported forms are "#RGB", "#RRGGBB" (with or without '#'), "rgb(r, g, b)",
// "rgba(r, g, b, a)", "hsl(h, s%, l%)", "hsla(h, s%, l%, a)" and CSS named
// colors. Matching is case-insensitive and surrounding whitespace is ignored.
func Parse(s string) (Color, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return Color{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}

	if m := hexPattern.FindStringSubmatch(in); m != nil {
		return parseHex(m[1])
	}
	if m := rgbPattern.FindStringSubmatch(in); m != nil {
		return parseRGBFunc(m[1:])
	}
	if m := hslPattern.FindStringSubmatch(in); m != nil {
		return parseHSLFunc(s, m[1:])
	}
	if named, ok := colornames.Map[strings.ReplaceAll(in, " ", "")]; ok {
		return FromRGB(named.R, named.G, named.B), nil
	}

	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseHex(digits string) (Color, error) {
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	return FromColorful(c), nil
}

func parseRGBFunc(parts []string) (Color, error) {
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || v > 255 {
			return Color{}, fmt.Errorf("%w: rgb component %q outside 0-255", ErrInvalidColor, p)
		}
		ch[i] = uint8(v)
	}
	return FromRGB(ch[0], ch[1], ch[2]), nil
}

func parseHSLFunc(raw string, parts []string) (Color, error) {
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, raw)
		}
		v[i] = f
	}
	return FromHSL(v[0], v[1], v[2])
}

// ParseAll parses every entry before returning. If any entry is malformed the
// whole batch fails and no colors are returned.
func ParseAll(inputs []string) ([]Color, error) {
	colors := make([]Color, len(inputs))
	for i, in := range inputs {
		c, err := Parse(in)
		if err != nil {
			return nil, fmt.Errorf("color at index %d: %w", i, err)
		}
		colors[i] = c
	}
	return colors, nil
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

var namesByHex = buildNameIndex()

func buildNameIndex() map[string]string {
	names := make([]string, 0, len(colornames.Map))
	for name := range colornames.Map {
		names = append(names, name)
	}
	// Aliases such as "aqua"/"cyan" share a value; keep the alphabetically first.
	sort.Strings(names)

	idx := make(map[string]string, len(names))
	for _, name := range names {
		c := colornames.Map[name]
		hex := FromRGB(c.R, c.G, c.B).Hex()
		if _, ok := idx[hex]; !ok {
			idx[hex] = name
		}
	}
	return idx
}

// NameOf returns the CSS keyword for an exact match, or "" when the color has
// no name.
func NameOf(c Color) string {
	return namesByHex[c.Hex()]
}

// Common reference colors.
var (
	Black = FromRGB(0, 0, 0)
	White = FromRGB(255, 255, 255)
)
