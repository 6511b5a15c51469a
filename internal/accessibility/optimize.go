package accessibility

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/color-tools-mcp/internal/analysis"
	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// UseCase is the role a color will play in a UI.
type UseCase string

const (
	UseText        UseCase = "text"
	UseBackground  UseCase = "background"
	UseAccent      UseCase = "accent"
	UseInteractive UseCase = "interactive"
)

// UseCases lists every supported use case.
var UseCases = []UseCase{UseText, UseBackground, UseAccent, UseInteractive}

// ErrUnknownUseCase is returned for a use case outside UseCases.
var ErrUnknownUseCase = errors.New("unknown use case")

// BrandPreservedNote is the single change entry reported for brand colors.
const BrandPreservedNote = "Brand color preserved; no adjustments applied"

// changeTolerance is the per-channel RGB difference below which a color counts
// as unchanged.
const changeTolerance = 2

// ParseUseCase validates a use case name.
func ParseUseCase(s string) (UseCase, error) {
	for _, uc := range UseCases {
		if string(uc) == s {
			return uc, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUseCase, s)
}

// Options control an optimization run.
type Options struct {
	UseCases       []UseCase
	TargetStandard analysis.Standard
	PreserveHue    bool
	BrandColors    []colorspace.Color
}

// HueDelta reports how far the hue moved.
type HueDelta struct {
	Original  float64 `json:"original_hue"`
	Optimized float64 `json:"optimized_hue"`
	Shift     float64 `json:"shift_degrees"`
	Preserved bool    `json:"preserved"`
}

// Result is the outcome for one (color, use case) pair.
type Result struct {
	Original              colorspace.Color  `json:"original"`
	Optimized             colorspace.Color  `json:"optimized"`
	UseCase               UseCase           `json:"use_case"`
	OptimizationApplied   bool              `json:"optimization_applied"`
	BrandPreserved        bool              `json:"brand_preserved"`
	Changes               []string          `json:"changes"`
	ContrastBefore        float64           `json:"contrast_before"`
	ContrastAfter         float64           `json:"contrast_after"`
	ImprovementPercentage float64           `json:"improvement_percentage"`
	WCAGAABefore          bool              `json:"wcag_aa_before"`
	WCAGAAAfter           bool              `json:"wcag_aa_after"`
	WCAGAAABefore         bool              `json:"wcag_aaa_before"`
	WCAGAAAAfter          bool              `json:"wcag_aaa_after"`
	TargetStandard        analysis.Standard `json:"target_standard"`
	MeetsTarget           bool              `json:"meets_target"`
	PreserveHue           bool              `json:"preserve_hue"`
	HueDelta              HueDelta          `json:"hue_delta"`
}

// Optimize applies the rule for uc to c. Colors listed in opts.BrandColors are
// returned unmodified.
func Optimize(c colorspace.Color, uc UseCase, opts Options) (Result, error) {
	if _, err := ParseUseCase(string(uc)); err != nil {
		return Result{}, err
	}
	std := opts.TargetStandard
	if std == "" {
		std = analysis.WCAGAA
	}

	if isBrandColor(c, opts.BrandColors) {
		return report(c, c, uc, std, opts.PreserveHue, []string{BrandPreservedNote}, true), nil
	}

	hsl := c.HSL()
	target, changes := applyRule(hsl, uc)

	optimized, err := colorspace.FromHSL(hsl.H, target.S, target.L)
	if err != nil {
		return Result{}, fmt.Errorf("building optimized color for %s: %w", c, err)
	}
	if c.WithinTolerance(optimized, changeTolerance) {
		optimized = c
		changes = []string{fmt.Sprintf("Already suitable for %s use", uc)}
	}
	return report(c, optimized, uc, std, opts.PreserveHue, changes, false), nil
}

// OptimizeAll optimizes every color for every use case in opts. Results are
// ordered by color, then by use case, matching the input order. Up to limit
// pairs run concurrently (limit <= 0 means no limit).
func OptimizeAll(ctx context.Context, colors []colorspace.Color, opts Options, limit int) ([]Result, error) {
	if len(opts.UseCases) == 0 {
		return nil, fmt.Errorf("%w: at least one use case is required", ErrUnknownUseCase)
	}
	for _, uc := range opts.UseCases {
		if _, err := ParseUseCase(string(uc)); err != nil {
			return nil, err
		}
	}

	n := len(opts.UseCases)
	results := make([]Result, len(colors)*n)
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, c := range colors {
		i, c := i, c
		for j, uc := range opts.UseCases {
			j, uc := j, uc
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				res, err := Optimize(c, uc, opts)
				if err != nil {
					return err
				}
				results[i*n+j] = res
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// applyRule returns the target saturation/lightness for a use case together
// with a description of every adjustment. Hue is carried through unchanged.
func applyRule(hsl colorspace.HSL, uc UseCase) (colorspace.HSL, []string) {
	out := hsl
	var changes []string

	setL := func(l float64, why string) {
		changes = append(changes, fmt.Sprintf("Lightness %.1f%% -> %.1f%% (%s)", out.L, l, why))
		out.L = l
	}
	setS := func(s float64, why string) {
		changes = append(changes, fmt.Sprintf("Saturation %.1f%% -> %.1f%% (%s)", out.S, s, why))
		out.S = s
	}

	switch uc {
	case UseText:
		if hsl.L > 50 {
			setL(math.Max(20, hsl.L-30), "darkened for text readability")
			setS(math.Min(100, hsl.S+10), "strengthened to keep the hue visible")
		}
	case UseBackground:
		if hsl.L < 80 {
			setL(math.Max(85, hsl.L+20), "lightened for a calm background")
		}
		if hsl.S > 30 {
			setS(math.Max(10, hsl.S-20), "desaturated to avoid visual noise")
		}
	case UseAccent:
		if hsl.L > 70 || hsl.L < 30 {
			setL(50, "moved to mid lightness for emphasis")
		}
		if hsl.S < 60 {
			setS(math.Min(80, hsl.S+20), "saturated to stand out")
		}
	case UseInteractive:
		if hsl.L > 60 {
			setL(math.Max(40, hsl.L-20), "darkened so controls read as clickable")
		} else if hsl.L < 40 {
			setL(math.Min(60, hsl.L+20), "lightened so controls read as clickable")
		}
		if hsl.S < 50 {
			setS(math.Min(70, hsl.S+15), "saturated to signal interactivity")
		}
	}
	return out, changes
}

func report(orig, opt colorspace.Color, uc UseCase, std analysis.Standard, preserveHue bool, changes []string, brand bool) Result {
	before := analysis.Ratio(orig, colorspace.White)
	after := analysis.Ratio(opt, colorspace.White)

	return Result{
		Original:              orig,
		Optimized:             opt,
		UseCase:               uc,
		OptimizationApplied:   !brand && !orig.Equal(opt),
		BrandPreserved:        brand,
		Changes:               changes,
		ContrastBefore:        round2(before),
		ContrastAfter:         round2(after),
		ImprovementPercentage: improvement(before, after),
		WCAGAABefore:          before >= analysis.AANormalThreshold,
		WCAGAAAfter:           after >= analysis.AANormalThreshold,
		WCAGAAABefore:         before >= analysis.AAANormalThreshold,
		WCAGAAAAfter:          after >= analysis.AAANormalThreshold,
		TargetStandard:        std,
		MeetsTarget:           meetsTarget(opt, after, std),
		PreserveHue:           preserveHue,
		HueDelta:              hueDelta(orig, opt),
	}
}

func meetsTarget(c colorspace.Color, ratio float64, std analysis.Standard) bool {
	switch std {
	case analysis.WCAGAAA:
		return ratio >= analysis.AAANormalThreshold
	case analysis.APCA:
		return math.Abs(analysis.CalculateAPCA(c, colorspace.White)) >= analysis.APCANormalThreshold
	default:
		return ratio >= analysis.AANormalThreshold
	}
}

// improvement is the relative contrast gain in percent, clamped to [0,100].
func improvement(before, after float64) float64 {
	if before <= 0 {
		return 0
	}
	pct := (after - before) / before * 100
	return round2(math.Max(0, math.Min(100, pct)))
}

func hueDelta(orig, opt colorspace.Color) HueDelta {
	h1 := orig.HSL().H
	h2 := opt.HSL().H
	shift := math.Abs(h1 - h2)
	if shift > 180 {
		shift = 360 - shift
	}
	return HueDelta{
		Original:  round2(h1),
		Optimized: round2(h2),
		Shift:     round2(shift),
		Preserved: shift < 1,
	}
}

func isBrandColor(c colorspace.Color, brand []colorspace.Color) bool {
	for _, b := range brand {
		if c.Equal(b) {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
