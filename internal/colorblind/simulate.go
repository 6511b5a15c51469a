package colorblind

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// Deficiency names a color vision deficiency.
type Deficiency string

const (
	Protanopia    Deficiency = "protanopia"
	Deuteranopia  Deficiency = "deuteranopia"
	Tritanopia    Deficiency = "tritanopia"
	Protanomaly   Deficiency = "protanomaly"
	Deuteranomaly Deficiency = "deuteranomaly"
	Tritanomaly   Deficiency = "tritanomaly"
	Monochromacy  Deficiency = "monochromacy"
)

// Deficiencies lists every supported deficiency in a stable order.
var Deficiencies = []Deficiency{
	Protanopia, Deuteranopia, Tritanopia,
	Protanomaly, Deuteranomaly, Tritanomaly,
	Monochromacy,
}

// Impact buckets the perceptual change a simulation caused.
type Impact string

const (
	ImpactNone     Impact = "none"
	ImpactMinimal  Impact = "minimal"
	ImpactModerate Impact = "moderate"
	ImpactSevere   Impact = "severe"
)

var (
	// ErrUnknownDeficiency is returned for a deficiency outside Deficiencies.
	ErrUnknownDeficiency = errors.New("unknown colorblindness type")
	// ErrSeverityRange is returned for a severity outside [0,100].
	ErrSeverityRange = errors.New("severity must be between 0 and 100")
)

type matrix [3][3]float64

var (
	protanMatrix = matrix{
		{0.567, 0.433, 0},
		{0.558, 0.442, 0},
		{0, 0.242, 0.758},
	}
	deutanMatrix = matrix{
		{0.625, 0.375, 0},
		{0.7, 0.3, 0},
		{0, 0.3, 0.7},
	}
	tritanMatrix = matrix{
		{0.95, 0.05, 0},
		{0, 0.433, 0.567},
		{0, 0.475, 0.525},
	}
)

// Result is the simulation of one color.
type Result struct {
	Original        colorspace.Color `json:"original"`
	Simulated       colorspace.Color `json:"simulated"`
	SimulatedRGB    colorspace.RGB   `json:"simulated_rgb"`
	DifferenceScore float64          `json:"difference_score"`
	Impact          Impact           `json:"impact"`
}

// ParseDeficiency validates a deficiency name.
func ParseDeficiency(s string) (Deficiency, error) {
	for _, d := range Deficiencies {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDeficiency, s)
}

// Validate checks a deficiency and severity pair.
func Validate(d Deficiency, severity float64) error {
	if _, err := ParseDeficiency(string(d)); err != nil {
		return err
	}
	if math.IsNaN(severity) || severity < 0 || severity > 100 {
		return fmt.Errorf("%w: got %v", ErrSeverityRange, severity)
	}
	return nil
}

// Simulate renders c as seen with deficiency d at the given severity (0 = no
// effect, 100 = full effect).
func Simulate(c colorspace.Color, d Deficiency, severity float64) (Result, error) {
	if err := Validate(d, severity); err != nil {
		return Result{}, err
	}
	return simulate(c, d, severity), nil
}

func simulate(c colorspace.Color, d Deficiency, severity float64) Result {
	rgb := c.RGB()
	lin := [3]float64{decode(rgb.R), decode(rgb.G), decode(rgb.B)}

	var sim [3]float64
	switch d {
	case Monochromacy:
		y := 0.2126*lin[0] + 0.7152*lin[1] + 0.0722*lin[2]
		sim = [3]float64{y, y, y}
	default:
		sim = matrixFor(d).apply(lin)
	}

	f := severity / 100
	var out [3]uint8
	for i := range lin {
		out[i] = encode(lin[i]*(1-f) + sim[i]*f)
	}

	simulated := colorspace.FromRGB(out[0], out[1], out[2])
	score := labDifference(c, simulated)
	return Result{
		Original:        c,
		Simulated:       simulated,
		SimulatedRGB:    simulated.RGB(),
		DifferenceScore: math.Round(score*100) / 100,
		Impact:          classifyImpact(score),
	}
}

// SimulateAll simulates every color with the same deficiency and severity.
//
// Options are validated before any color is processed. Up to limit colors are
// simulated concurrently (limit <= 0 means no limit); results are returned in
// input order.
func SimulateAll(ctx context.Context, colors []colorspace.Color, d Deficiency, severity float64, limit int) ([]Result, error) {
	if err := Validate(d, severity); err != nil {
		return nil, err
	}

	results := make([]Result, len(colors))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, c := range colors {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = simulate(c, d, severity)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func matrixFor(d Deficiency) matrix {
	switch d {
	case Protanopia, Protanomaly:
		return protanMatrix
	case Deuteranopia, Deuteranomaly:
		return deutanMatrix
	default:
		return tritanMatrix
	}
}

func (m matrix) apply(v [3]float64) [3]float64 {
	var out [3]float64
	for row := range m {
		out[row] = m[row][0]*v[0] + m[row][1]*v[1] + m[row][2]*v[2]
	}
	return out
}

func decode(c uint8) float64 {
	return math.Pow(float64(c)/255.0, 2.2)
}

func encode(v float64) uint8 {
	v = math.Max(0, math.Min(1, v))
	return uint8(math.Round(math.Pow(v, 1/2.2) * 255))
}

// labDifference is the raw Euclidean distance in L*a*b*, without any Delta-E
// weighting.
func labDifference(a, b colorspace.Color) float64 {
	la, lb := a.LAB(), b.LAB()
	dL := la.L - lb.L
	da := la.A - lb.A
	db := la.B - lb.B
	return math.Sqrt(dL*dL + da*da + db*db)
}

func classifyImpact(score float64) Impact {
	switch {
	case score < 5:
		return ImpactNone
	case score < 15:
		return ImpactMinimal
	case score < 30:
		return ImpactModerate
	default:
		return ImpactSevere
	}
}
