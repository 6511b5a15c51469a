package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/color-tools-mcp/internal/accessibility"
	"github.com/ironsheep/color-tools-mcp/internal/analysis"
	"github.com/ironsheep/color-tools-mcp/internal/colorblind"
	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
	"github.com/ironsheep/color-tools-mcp/internal/config"
	"github.com/ironsheep/color-tools-mcp/internal/gradient"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		types   []string
		compare string
	)
	cmd := &cobra.Command{
		Use:   "analyze COLOR",
		Short: "Analyze brightness, temperature, contrast and accessibility",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colorspace.Parse(args[0])
			if err != nil {
				return err
			}
			ts, err := analysis.ParseTypes(types)
			if err != nil {
				return err
			}
			var cc *colorspace.Color
			if compare != "" {
				parsed, err := colorspace.Parse(compare)
				if err != nil {
					return fmt.Errorf("--compare: %w", err)
				}
				cc = &parsed
			}
			return printJSON(cmd.OutOrStdout(), analysis.Analyze(c, ts, cc))
		},
	}
	cmd.Flags().StringSliceVar(&types, "types", nil, "analyses to run: brightness, temperature, contrast, accessibility, all")
	cmd.Flags().StringVar(&compare, "compare", "", "second color for Delta-E distance")
	return cmd
}

func newContrastCmd() *cobra.Command {
	var (
		size, standard string
		alternatives   bool
		preview        bool
	)
	cmd := &cobra.Command{
		Use:   "contrast FOREGROUND BACKGROUND",
		Short: "Check WCAG or APCA contrast between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := colorspace.ParseAll(args)
			if err != nil {
				return err
			}
			ts, err := analysis.ParseTextSize(size)
			if err != nil {
				return err
			}
			std, err := analysis.ParseStandard(standard)
			if err != nil {
				return err
			}
			fg, bg := colors[0], colors[1]
			res := analysis.CheckContrast(fg, bg, ts, std)

			out := map[string]interface{}{"result": res}
			if alternatives && !res.Passes {
				out["alternatives"] = analysis.FindAlternatives(fg, bg)
			}
			if preview {
				fmt.Fprintln(cmd.OutOrStdout(), sample(fg, bg))
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&size, "text-size", string(analysis.TextNormal), "normal or large")
	cmd.Flags().StringVar(&standard, "standard", string(analysis.WCAGAA), "WCAG_AA, WCAG_AAA or APCA")
	cmd.Flags().BoolVar(&alternatives, "alternatives", true, "suggest adjustments for failing pairs")
	cmd.Flags().BoolVar(&preview, "preview", false, "render a sample in the terminal")
	return cmd
}

func newSimulateCmd() *cobra.Command {
	var (
		kind     string
		severity float64
		preview  bool
	)
	cmd := &cobra.Command{
		Use:   "simulate COLOR...",
		Short: "Simulate a color vision deficiency",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := colorblind.ParseDeficiency(kind)
			if err != nil {
				return err
			}
			colors, err := colorspace.ParseAll(args)
			if err != nil {
				return err
			}
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			results, err := colorblind.SimulateAll(cmd.Context(), colors, d, severity, cfg.Workers)
			if err != nil {
				return err
			}
			if preview {
				simulated := make([]colorspace.Color, len(results))
				for i, r := range results {
					simulated[i] = r.Simulated
				}
				writePreview(cmd.OutOrStdout(),
					previewRow{label: "original", colors: colors},
					previewRow{label: string(d), colors: simulated},
				)
			}
			return printJSON(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().StringVar(&kind, "type", string(colorblind.Deuteranopia), "deficiency type")
	cmd.Flags().Float64Var(&severity, "severity", 100, "0 to 100")
	cmd.Flags().BoolVar(&preview, "preview", false, "render swatches in the terminal")
	return cmd
}

func newOptimizeCmd() *cobra.Command {
	var (
		useCases []string
		standard string
		brand    []string
		preview  bool
	)
	cmd := &cobra.Command{
		Use:   "optimize COLOR...",
		Short: "Adjust palette colors for a usage role",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			palette, err := colorspace.ParseAll(args)
			if err != nil {
				return err
			}
			brandColors, err := colorspace.ParseAll(brand)
			if err != nil {
				return fmt.Errorf("--brand: %w", err)
			}
			std, err := analysis.ParseStandard(standard)
			if err != nil {
				return err
			}
			opts := accessibility.Options{TargetStandard: std, PreserveHue: true, BrandColors: brandColors}
			for _, name := range useCases {
				uc, err := accessibility.ParseUseCase(name)
				if err != nil {
					return err
				}
				opts.UseCases = append(opts.UseCases, uc)
			}
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			results, err := accessibility.OptimizeAll(cmd.Context(), palette, opts, cfg.Workers)
			if err != nil {
				return err
			}
			if preview {
				for _, r := range results {
					writePreview(cmd.OutOrStdout(), previewRow{
						label:  string(r.UseCase),
						colors: []colorspace.Color{r.Original, r.Optimized},
					})
				}
			}
			return printJSON(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().StringSliceVar(&useCases, "use-cases", []string{string(accessibility.UseText)}, "text, background, accent, interactive")
	cmd.Flags().StringVar(&standard, "standard", string(analysis.WCAGAA), "target standard")
	cmd.Flags().StringSliceVar(&brand, "brand", nil, "colors to leave unchanged")
	cmd.Flags().BoolVar(&preview, "preview", false, "render before/after swatches")
	return cmd
}

func newConvertCmd() *cobra.Command {
	var preview bool
	cmd := &cobra.Command{
		Use:   "convert COLOR",
		Short: "Convert a color to every supported notation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colorspace.Parse(args[0])
			if err != nil {
				return err
			}
			if preview {
				writePreview(cmd.OutOrStdout(), previewRow{label: "color", colors: []colorspace.Color{c}})
			}
			return printJSON(cmd.OutOrStdout(), c.Formats())
		},
	}
	cmd.Flags().BoolVar(&preview, "preview", false, "render a swatch in the terminal")
	return cmd
}

func newGradientCmd() *cobra.Command {
	var (
		steps   int
		space   string
		preview bool
	)
	cmd := &cobra.Command{
		Use:   "gradient START END",
		Short: "Interpolate between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := colorspace.ParseAll(args)
			if err != nil {
				return err
			}
			in, err := gradient.ParseInterpolation(space)
			if err != nil {
				return err
			}
			stops, err := gradient.Generate(colors[0], colors[1], steps, in)
			if err != nil {
				return err
			}
			if preview {
				row := previewRow{label: string(in)}
				for _, s := range stops {
					row.colors = append(row.colors, s.Color)
				}
				writePreview(cmd.OutOrStdout(), row)
			}
			return printJSON(cmd.OutOrStdout(), stops)
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 5, "number of colors including both ends")
	cmd.Flags().StringVar(&space, "space", string(gradient.Lab), "rgb, hsv, lab, luv or hcl")
	cmd.Flags().BoolVar(&preview, "preview", false, "render the gradient in the terminal")
	return cmd
}
