// Package colorspace provides the immutable color value shared by every tool.
//
// A Color is built once (from 8-bit RGB, HSL, or a parsed string) and never
// mutated afterward. The RGB, HSL and LAB views are derived on demand from the
// stored 8-bit channels using go-colorful, so all three views always describe
// the same physical color.
//
// # Color Representation
//
// Views use the following ranges:
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//   - LAB: CIE L*a*b* under D65, L (0-100), a/b roughly (-128..127)
//
// # Parsing
//
// Parse accepts the string forms MCP clients send:
//   - Hex: "#RGB", "#RRGGBB" (the leading '#' is optional)
//   - Functional: "rgb(255, 0, 0)", "hsl(120, 100%, 50%)" (alpha forms accepted, alpha ignored)
//   - Named: CSS/SVG color keywords such as "rebeccapurple"
//
// ParseAll validates a whole batch before returning any color, so a single
// malformed entry fails the entire request.
package colorspace
