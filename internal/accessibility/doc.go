// Package accessibility adjusts palette colors for a usage role.
//
// Optimize applies one fixed rule per use case to the color's HSL lightness and
// saturation. There is no iterative search: the rule runs once and the result
// is reported with before/after contrast against white.
//
// Hue is never changed by any rule. The PreserveHue option is accepted and
// echoed in results, but it does not alter the transform.
package accessibility
