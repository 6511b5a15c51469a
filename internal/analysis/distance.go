package analysis

import (
	"math"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// Difference is a qualitative bucket of perceptual distance.
type Difference string

const (
	Identical     Difference = "identical"
	VerySimilar   Difference = "very_similar"
	Similar       Difference = "similar"
	Different     Difference = "different"
	VeryDifferent Difference = "very_different"
)

// DistanceAnalysis holds three Delta-E variants and their classification.
type DistanceAnalysis struct {
	CompareColor colorspace.Color `json:"compare_color"`
	CIE76        float64          `json:"delta_e_cie76"`
	CIE94        float64          `json:"delta_e_cie94"`
	CIE2000      float64          `json:"delta_e_cie2000"`
	Difference   Difference       `json:"perceptual_difference"`
}

// AnalyzeDistance compares two colors. Values are rounded to two decimals and
// the bucket is taken from the unrounded CIE2000 value.
func AnalyzeDistance(a, b colorspace.Color) DistanceAnalysis {
	de2000 := DeltaE2000(a, b)
	return DistanceAnalysis{
		CompareColor: b,
		CIE76:        round2(DeltaE76(a, b)),
		CIE94:        round2(DeltaE94(a, b)),
		CIE2000:      round2(de2000),
		Difference:   ClassifyDifference(de2000),
	}
}

// DeltaE76 is the Euclidean distance in L*a*b*.
func DeltaE76(a, b colorspace.Color) float64 {
	l1, l2 := a.LAB(), b.LAB()
	dL := l1.L - l2.L
	da := l1.A - l2.A
	db := l1.B - l2.B
	return math.Sqrt(dL*dL + da*da + db*db)
}

// DeltaE94 is the CIE94 graphic-arts distance (kL=kC=kH=1, k1=0.045,
// k2=0.015), weighted by the chroma of the first color.
//
// The hue term ΔH² = Δa²+Δb²-ΔC² can come out slightly negative through
// rounding; it is clamped to zero so the result is always a real number.
func DeltaE94(a, b colorspace.Color) float64 {
	const (
		kL, kC, kH = 1.0, 1.0, 1.0
		k1, k2     = 0.045, 0.015
	)

	l1, l2 := a.LAB(), b.LAB()
	dL := l1.L - l2.L
	da := l1.A - l2.A
	db := l1.B - l2.B

	c1 := math.Hypot(l1.A, l1.B)
	c2 := math.Hypot(l2.A, l2.B)
	dC := c1 - c2
	dH := math.Sqrt(math.Max(0, da*da+db*db-dC*dC))

	sL := 1.0
	sC := 1 + k1*c1
	sH := 1 + k2*c1

	tL := dL / (kL * sL)
	tC := dC / (kC * sC)
	tH := dH / (kH * sH)
	return math.Sqrt(tL*tL + tC*tC + tH*tH)
}

// DeltaE2000 is an approximation of CIEDE2000. It applies the a* rotation
// factor G to compute adjusted chroma but then combines that with the
// unadjusted Δa and Δb and halves the result. It is not the full standard
// and must not be swapped for one: the classification buckets are calibrated
// against this formula.
func DeltaE2000(a, b colorspace.Color) float64 {
	l1, l2 := a.LAB(), b.LAB()

	c1 := math.Hypot(l1.A, l1.B)
	c2 := math.Hypot(l2.A, l2.B)
	cBar := (c1 + c2) / 2
	cBar7 := math.Pow(cBar, 7)
	g := 0.5 * (1 - math.Sqrt(cBar7/(cBar7+math.Pow(25, 7))))

	a1 := l1.A * (1 + g)
	a2 := l2.A * (1 + g)
	c1p := math.Hypot(a1, l1.B)
	c2p := math.Hypot(a2, l2.B)

	dL := l2.L - l1.L
	dCp := c2p - c1p
	da := l2.A - l1.A
	db := l2.B - l1.B

	return math.Sqrt(dL*dL+dCp*dCp+da*da+db*db) / 2
}

// ClassifyDifference buckets a CIE2000 value.
func ClassifyDifference(deltaE float64) Difference {
	switch {
	case deltaE < 1:
		return Identical
	case deltaE < 2.3:
		return VerySimilar
	case deltaE < 5:
		return Similar
	case deltaE < 10:
		return Different
	default:
		return VeryDifferent
	}
}
