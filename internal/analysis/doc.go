// Package analysis implements the deterministic color metrics behind the
// analyze and contrast tools.
//
// Several "luminance" formulas coexist here and are deliberately kept apart:
//   - RelativeLuminance: WCAG 2.x, piecewise sRGB decoding (threshold 0.03928)
//   - PerceivedBrightness: ITU-R BT.601 weights on raw 8-bit channels
//   - APCA: (c/255)^2.2 decoding with APCA channel weights
//
// Each is exposed separately and produces the documented values for its own
// tool output; merging them changes results.
//
// # Rounding
//
// Contrast ratios, Delta-E values and APCA scores are rounded to two decimal
// places before they are returned. Relative luminance is returned unrounded.
//
// # Thread Safety
//
// Every function in this package is a pure function over immutable inputs and
// is safe for concurrent use.
package analysis
