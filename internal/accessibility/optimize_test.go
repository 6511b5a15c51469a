package accessibility

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/ironsheep/color-tools-mcp/internal/analysis"
	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

func mustHSL(t *testing.T, h, s, l float64) colorspace.Color {
	t.Helper()
	c, err := colorspace.FromHSL(h, s, l)
	if err != nil {
		t.Fatalf("FromHSL(%v,%v,%v): %v", h, s, l, err)
	}
	return c
}

func TestOptimize_BrandColorPreserved(t *testing.T) {
	brand := colorspace.MustParse("#FF6600")
	opts := Options{BrandColors: []colorspace.Color{brand}}

	for _, uc := range UseCases {
		res, err := Optimize(brand, uc, opts)
		if err != nil {
			t.Fatalf("Optimize(%s): %v", uc, err)
		}
		if res.OptimizationApplied {
			t.Errorf("%s: brand color was optimized", uc)
		}
		if !res.Optimized.Equal(brand) {
			t.Errorf("%s: optimized = %s, want %s", uc, res.Optimized, brand)
		}
		if !res.BrandPreserved || len(res.Changes) != 1 || res.Changes[0] != BrandPreservedNote {
			t.Errorf("%s: unexpected brand report %+v", uc, res)
		}
	}
}

func TestOptimize_BlackTextKeepsCompliance(t *testing.T) {
	res, err := Optimize(colorspace.Black, UseText, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.WCAGAABefore && !res.WCAGAAAfter {
		t.Errorf("AA compliance lost: before=%v after=%v", res.WCAGAABefore, res.WCAGAAAfter)
	}
	if res.OptimizationApplied {
		t.Errorf("black text should not need optimization")
	}
	if res.ContrastBefore != 21 || res.ContrastAfter != 21 {
		t.Errorf("contrast = %v -> %v, want 21 -> 21", res.ContrastBefore, res.ContrastAfter)
	}
}

func TestOptimize_TextRuleRepeated(t *testing.T) {
	// The text rule darkens by a fixed 30 points whenever lightness is above
	// 50. Starting at or below 80 one pass lands at or below 50 and further
	// passes do nothing. Starting above 80 the first pass lands above 50, so a
	// second pass darkens again; only the third pass is a no-op.
	tests := []struct {
		name          string
		l             float64
		wantFirst     float64
		secondChanges bool
		wantSecond    float64
	}{
		{"L75 settles in one pass", 75, 45, false, 45},
		{"L85 needs two passes", 85, 55, true, 25},
		{"L90 needs two passes", 90, 60, true, 30},
		{"L95 needs two passes", 95, 65, true, 35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := mustHSL(t, 200, 60, tt.l)

			first, err := Optimize(start, UseText, Options{})
			if err != nil {
				t.Fatalf("first pass: %v", err)
			}
			if !first.OptimizationApplied {
				t.Fatalf("first pass should change a light color")
			}
			if l := first.Optimized.HSL().L; math.Abs(l-tt.wantFirst) > 1 {
				t.Errorf("first pass lightness = %.2f, want about %.0f", l, tt.wantFirst)
			}

			second, err := Optimize(first.Optimized, UseText, Options{})
			if err != nil {
				t.Fatalf("second pass: %v", err)
			}
			if second.OptimizationApplied != tt.secondChanges {
				t.Errorf("second pass applied = %v, want %v", second.OptimizationApplied, tt.secondChanges)
			}
			if !tt.secondChanges && !second.Optimized.Equal(first.Optimized) {
				t.Errorf("second pass moved %s to %s", first.Optimized, second.Optimized)
			}
			if l := second.Optimized.HSL().L; math.Abs(l-tt.wantSecond) > 1 {
				t.Errorf("second pass lightness = %.2f, want about %.0f", l, tt.wantSecond)
			}

			third, err := Optimize(second.Optimized, UseText, Options{})
			if err != nil {
				t.Fatalf("third pass: %v", err)
			}
			if third.OptimizationApplied || !third.Optimized.Equal(second.Optimized) {
				t.Errorf("third pass moved %s to %s", second.Optimized, third.Optimized)
			}
		})
	}
}

func TestOptimize_Rules(t *testing.T) {
	tests := []struct {
		name   string
		color  colorspace.HSL
		uc     UseCase
		wantL  float64
		wantS  float64
		change bool
	}{
		{"text darkens light color", colorspace.HSL{H: 120, S: 50, L: 70}, UseText, 40, 60, true},
		{"text darkens just above mid", colorspace.HSL{H: 120, S: 50, L: 51}, UseText, 21, 60, true},
		{"background lightens and mutes", colorspace.HSL{H: 210, S: 80, L: 40}, UseBackground, 85, 60, true},
		{"background only desaturates", colorspace.HSL{H: 30, S: 50, L: 90}, UseBackground, 90, 30, true},
		{"accent snaps to mid", colorspace.HSL{H: 280, S: 40, L: 20}, UseAccent, 50, 60, true},
		{"accent already vivid", colorspace.HSL{H: 0, S: 100, L: 50}, UseAccent, 50, 100, false},
		{"interactive darkens", colorspace.HSL{H: 150, S: 30, L: 90}, UseInteractive, 70, 45, true},
		{"interactive lightens", colorspace.HSL{H: 150, S: 60, L: 20}, UseInteractive, 40, 60, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustHSL(t, tt.color.H, tt.color.S, tt.color.L)
			res, err := Optimize(c, tt.uc, Options{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.OptimizationApplied != tt.change {
				t.Fatalf("OptimizationApplied = %v, want %v", res.OptimizationApplied, tt.change)
			}
			got := res.Optimized.HSL()
			if math.Abs(got.L-tt.wantL) > 1 {
				t.Errorf("lightness = %.2f, want %.0f", got.L, tt.wantL)
			}
			if math.Abs(got.S-tt.wantS) > 2 {
				t.Errorf("saturation = %.2f, want %.0f", got.S, tt.wantS)
			}
			if res.HueDelta.Shift > 2 {
				t.Errorf("hue shifted by %v", res.HueDelta.Shift)
			}
		})
	}
}

func TestOptimize_Reporting(t *testing.T) {
	c := mustHSL(t, 220, 90, 80)
	res, err := Optimize(c, UseText, Options{TargetStandard: analysis.WCAGAA, PreserveHue: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.PreserveHue {
		t.Errorf("PreserveHue not echoed")
	}
	if res.ContrastAfter <= res.ContrastBefore {
		t.Errorf("contrast did not improve: %v -> %v", res.ContrastBefore, res.ContrastAfter)
	}
	if res.ImprovementPercentage < 0 || res.ImprovementPercentage > 100 {
		t.Errorf("improvement %v outside [0,100]", res.ImprovementPercentage)
	}
	if len(res.Changes) != 2 {
		t.Errorf("changes = %v, want lightness and saturation entries", res.Changes)
	}
	if res.TargetStandard != analysis.WCAGAA {
		t.Errorf("target standard = %s", res.TargetStandard)
	}
}

func TestOptimize_UnknownUseCase(t *testing.T) {
	if _, err := Optimize(colorspace.White, UseCase("border"), Options{}); !errors.Is(err, ErrUnknownUseCase) {
		t.Errorf("error = %v, want ErrUnknownUseCase", err)
	}
}

func TestOptimizeAll_Order(t *testing.T) {
	colors := []colorspace.Color{
		colorspace.MustParse("#FFEEAA"),
		colorspace.MustParse("#112233"),
		colorspace.MustParse("#808080"),
	}
	opts := Options{UseCases: []UseCase{UseBackground, UseInteractive}}

	got, err := OptimizeAll(context.Background(), colors, opts, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(colors)*2 {
		t.Fatalf("got %d results, want %d", len(got), len(colors)*2)
	}
	for i, res := range got {
		wantColor := colors[i/2]
		wantUC := opts.UseCases[i%2]
		if !res.Original.Equal(wantColor) || res.UseCase != wantUC {
			t.Errorf("result %d = (%s, %s), want (%s, %s)", i, res.Original, res.UseCase, wantColor, wantUC)
		}
	}
}

func TestOptimizeAll_RejectsBadUseCase(t *testing.T) {
	opts := Options{UseCases: []UseCase{UseText, "border"}}
	got, err := OptimizeAll(context.Background(), []colorspace.Color{colorspace.White}, opts, 0)
	if !errors.Is(err, ErrUnknownUseCase) || got != nil {
		t.Errorf("got %v, %v; want nil, ErrUnknownUseCase", got, err)
	}
	if _, err := OptimizeAll(context.Background(), nil, Options{}, 0); !errors.Is(err, ErrUnknownUseCase) {
		t.Errorf("empty use cases: error = %v", err)
	}
}

func TestParseUseCase(t *testing.T) {
	for _, uc := range UseCases {
		if got, err := ParseUseCase(string(uc)); err != nil || got != uc {
			t.Errorf("ParseUseCase(%q) = %q, %v", uc, got, err)
		}
	}
}
