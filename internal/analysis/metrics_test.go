package analysis

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

func TestRelativeLuminance(t *testing.T) {
	tests := []struct {
		name string
		c    colorspace.Color
		want float64
	}{
		{"white", colorspace.White, 1.0},
		{"black", colorspace.Black, 0.0},
		{"gray", colorspace.FromRGB(128, 128, 128), 0.2159},
		{"red", colorspace.FromRGB(255, 0, 0), 0.2126},
		{"green", colorspace.FromRGB(0, 255, 0), 0.7152},
		{"blue", colorspace.FromRGB(0, 0, 255), 0.0722},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeLuminance(tt.c)
			if math.Abs(got-tt.want) > 0.0005 {
				t.Errorf("RelativeLuminance: got %.4f, want %.4f", got, tt.want)
			}
		})
	}
}

func TestPerceivedBrightness(t *testing.T) {
	tests := []struct {
		name string
		c    colorspace.Color
		want int
	}{
		{"white", colorspace.White, 255},
		{"black", colorspace.Black, 0},
		{"red", colorspace.FromRGB(255, 0, 0), 76},
		{"green", colorspace.FromRGB(0, 255, 0), 150},
		{"blue", colorspace.FromRGB(0, 0, 255), 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PerceivedBrightness(tt.c); got != tt.want {
				t.Errorf("PerceivedBrightness: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBrightnessCategory_Monotonic(t *testing.T) {
	order := map[BrightnessCategory]int{
		VeryDark: 0, Dark: 1, Medium: 2, Light: 3, VeryLight: 4,
	}

	grays := []uint8{0, 51, 102, 153, 204, 255}
	want := []BrightnessCategory{VeryDark, Dark, Medium, Light, VeryLight, VeryLight}

	prev := -1
	for i, v := range grays {
		cat := CategorizeBrightness(PerceivedBrightness(colorspace.FromRGB(v, v, v)))
		if cat != want[i] {
			t.Errorf("gray %d: got %s, want %s", v, cat, want[i])
		}
		if order[cat] < prev {
			t.Errorf("gray %d: category %s decreased", v, cat)
		}
		prev = order[cat]
	}
}

func TestCategorizeBrightness_Boundaries(t *testing.T) {
	tests := []struct {
		brightness int
		want       BrightnessCategory
	}{
		{50, VeryDark},
		{51, Dark},
		{101, Dark},
		{102, Medium},
		{152, Medium},
		{153, Light},
		{203, Light},
		{204, VeryLight},
	}

	for _, tt := range tests {
		if got := CategorizeBrightness(tt.brightness); got != tt.want {
			t.Errorf("CategorizeBrightness(%d): got %s, want %s", tt.brightness, got, tt.want)
		}
	}
}

func TestAnalyzeBrightness_IsLight(t *testing.T) {
	if AnalyzeBrightness(colorspace.FromRGB(127, 127, 127)).IsLight {
		t.Error("brightness 127 should not be light")
	}
	if !AnalyzeBrightness(colorspace.FromRGB(128, 128, 128)).IsLight {
		t.Error("brightness 128 should be light")
	}
}

func TestClassifyTemperature(t *testing.T) {
	tests := []struct {
		hue  float64
		want TemperatureAnalysis
	}{
		{0, TemperatureAnalysis{Warm, "red", 2000, 1.0}},
		{29.9, TemperatureAnalysis{Warm, "red", 2000, 1.0}},
		{30, TemperatureAnalysis{Warm, "orange", 2500, 0.8}},
		{60, TemperatureAnalysis{Neutral, "yellow", 3500, 0.4}},
		{120, TemperatureAnalysis{Neutral, "yellow-green", 5000, 0.0}},
		{180, TemperatureAnalysis{Cool, "green-cyan", 6500, -0.4}},
		{240, TemperatureAnalysis{Cool, "blue", 9000, -1.0}},
		{285, TemperatureAnalysis{Cool, "purple", 7500, -0.6}},
		{330, TemperatureAnalysis{Warm, "magenta-red", 3000, 0.6}},
		{360, TemperatureAnalysis{Warm, "red", 2000, 1.0}},
		{-30, TemperatureAnalysis{Warm, "magenta-red", 3000, 0.6}},
	}

	for _, tt := range tests {
		got := ClassifyTemperature(tt.hue)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ClassifyTemperature(%v) mismatch (-want +got):\n%s", tt.hue, diff)
		}
	}
}

func TestClassifyTemperature_WarmthBounded(t *testing.T) {
	for hue := 0.0; hue < 360; hue += 7.5 {
		got := ClassifyTemperature(hue)
		if got.WarmthScore < -1 || got.WarmthScore > 1 {
			t.Errorf("hue %v: warmth %v outside [-1,1]", hue, got.WarmthScore)
		}
	}
}
