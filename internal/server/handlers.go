package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"

	"github.com/ironsheep/color-tools-mcp/internal/accessibility"
	"github.com/ironsheep/color-tools-mcp/internal/analysis"
	"github.com/ironsheep/color-tools-mcp/internal/colorblind"
	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
	"github.com/ironsheep/color-tools-mcp/internal/gradient"
)

// ErrUnknownTool is returned for a tools/call naming no registered tool.
var ErrUnknownTool = errors.New("unknown tool")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "check_contrast").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	callID := uuid.NewString()
	log := s.log.With("tool", params.Name, "call_id", callID)
	log.Debug("tool call started")

	start := time.Now()
	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	elapsed := time.Since(start)
	s.metrics.RecordCall(ctx, params.Name, elapsed, err)

	if err != nil {
		log.Warn("tool call failed", "error", err, "elapsed", elapsed)
		if errors.Is(err, ErrUnknownTool) {
			return s.errorResponse(req.ID, codeInvalidParams, "Unknown tool", err.Error())
		}
		return s.errorResponse(req.ID, codeToolFailure, "Tool execution failed", err.Error())
	}
	log.Debug("tool call finished", "elapsed", elapsed)

	text, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return s.errorResponse(req.ID, codeToolFailure, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": string(text),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Decodes arguments over a struct pre-filled with defaults
//  2. Parses color strings and validates enumerated options
//  3. Calls the analysis, colorblind, accessibility or gradient package
//  4. Returns the result or error
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "analyze_color":
		return s.handleAnalyzeColor(args)
	case "check_contrast":
		return s.handleCheckContrast(args)
	case "simulate_colorblindness":
		return s.handleSimulateColorblindness(ctx, args)
	case "optimize_for_accessibility":
		return s.handleOptimizeForAccessibility(ctx, args)
	case "convert_color":
		return s.handleConvertColor(args)
	case "generate_gradient":
		return s.handleGenerateGradient(args)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
}

// decodeArgs decodes raw tool arguments into out using json field names.
// Fields absent from the arguments keep the values already in out, so callers
// set defaults before decoding. Numbers given as strings are accepted.
func decodeArgs(raw json.RawMessage, out interface{}) error {
	input := map[string]interface{}{}
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, &input); err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       rejectFractionalInts,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// rejectFractionalInts stops a JSON number such as 2.9 from being truncated
// into an integer field. Whole floats like 3.0 pass through.
func rejectFractionalInts(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.Float64 {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if f := data.(float64); f != math.Trunc(f) {
			return nil, fmt.Errorf("must be an integer, got %v", f)
		}
	}
	return data, nil
}

func requireField(name, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", name)
	}
	return nil
}

func parseField(name, value string) (colorspace.Color, error) {
	if err := requireField(name, value); err != nil {
		return colorspace.Color{}, err
	}
	c, err := colorspace.Parse(value)
	if err != nil {
		return colorspace.Color{}, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

// === Analysis ===

func (s *Server) handleAnalyzeColor(args json.RawMessage) (interface{}, error) {
	var a analyzeColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := parseField("color", a.Color)
	if err != nil {
		return nil, err
	}
	types, err := analysis.ParseTypes(a.AnalysisTypes)
	if err != nil {
		return nil, err
	}

	var compare *colorspace.Color
	if a.CompareColor != "" {
		cc, err := parseField("compare_color", a.CompareColor)
		if err != nil {
			return nil, err
		}
		compare = &cc
	}
	return analysis.Analyze(c, types, compare), nil
}

type checkContrastResult struct {
	analysis.ContrastResult
	Alternatives *analysis.Alternatives `json:"alternatives,omitempty"`
}

func (s *Server) handleCheckContrast(args json.RawMessage) (interface{}, error) {
	a := checkContrastArgs{
		TextSize:            string(analysis.TextNormal),
		Standard:            string(analysis.WCAGAA),
		IncludeAlternatives: true,
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	fg, err := parseField("foreground", a.Foreground)
	if err != nil {
		return nil, err
	}
	bg, err := parseField("background", a.Background)
	if err != nil {
		return nil, err
	}
	size, err := analysis.ParseTextSize(a.TextSize)
	if err != nil {
		return nil, err
	}
	std, err := analysis.ParseStandard(a.Standard)
	if err != nil {
		return nil, err
	}

	res := checkContrastResult{ContrastResult: analysis.CheckContrast(fg, bg, size, std)}
	if a.IncludeAlternatives && !res.Passes {
		alts := analysis.FindAlternatives(fg, bg)
		res.Alternatives = &alts
	}
	return res, nil
}

// === Colorblindness ===

type simulateSummary struct {
	Total    int                       `json:"total"`
	ByImpact map[colorblind.Impact]int `json:"by_impact"`
}

type simulateResult struct {
	Type     colorblind.Deficiency `json:"type"`
	Severity float64               `json:"severity"`
	Results  []colorblind.Result   `json:"results"`
	Summary  simulateSummary       `json:"summary"`
}

func (s *Server) handleSimulateColorblindness(ctx context.Context, args json.RawMessage) (interface{}, error) {
	a := simulateColorblindnessArgs{Severity: 100}
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if len(a.Colors) == 0 {
		return nil, errors.New("colors must contain at least one color")
	}
	d, err := colorblind.ParseDeficiency(a.Type)
	if err != nil {
		return nil, err
	}
	if err := colorblind.Validate(d, a.Severity); err != nil {
		return nil, err
	}
	colors, err := colorspace.ParseAll(a.Colors)
	if err != nil {
		return nil, err
	}

	results, err := colorblind.SimulateAll(ctx, colors, d, a.Severity, s.workers)
	if err != nil {
		return nil, err
	}

	summary := simulateSummary{Total: len(results), ByImpact: map[colorblind.Impact]int{}}
	for _, r := range results {
		summary.ByImpact[r.Impact]++
	}
	return simulateResult{Type: d, Severity: a.Severity, Results: results, Summary: summary}, nil
}

// === Optimization ===

type optimizeSummary struct {
	Total       int `json:"total"`
	Optimized   int `json:"optimized"`
	MeetTarget  int `json:"meeting_target"`
	BrandColors int `json:"brand_preserved"`
}

type optimizeResult struct {
	TargetStandard analysis.Standard      `json:"target_standard"`
	PreserveHue    bool                   `json:"preserve_hue"`
	Results        []accessibility.Result `json:"results"`
	Summary        optimizeSummary        `json:"summary"`
}

func (s *Server) handleOptimizeForAccessibility(ctx context.Context, args json.RawMessage) (interface{}, error) {
	a := optimizeForAccessibilityArgs{
		TargetStandard: string(analysis.WCAGAA),
		PreserveHue:    true,
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if len(a.Palette) == 0 {
		return nil, errors.New("palette must contain at least one color")
	}
	if len(a.UseCases) == 0 {
		return nil, errors.New("use_cases must contain at least one use case")
	}

	palette, err := colorspace.ParseAll(a.Palette)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	brand, err := colorspace.ParseAll(a.PreserveBrandColors)
	if err != nil {
		return nil, fmt.Errorf("preserve_brand_colors: %w", err)
	}
	std, err := analysis.ParseStandard(a.TargetStandard)
	if err != nil {
		return nil, err
	}
	useCases := make([]accessibility.UseCase, len(a.UseCases))
	for i, name := range a.UseCases {
		if useCases[i], err = accessibility.ParseUseCase(name); err != nil {
			return nil, err
		}
	}

	opts := accessibility.Options{
		UseCases:       useCases,
		TargetStandard: std,
		PreserveHue:    a.PreserveHue,
		BrandColors:    brand,
	}
	results, err := accessibility.OptimizeAll(ctx, palette, opts, s.workers)
	if err != nil {
		return nil, err
	}

	summary := optimizeSummary{Total: len(results)}
	for _, r := range results {
		if r.OptimizationApplied {
			summary.Optimized++
		}
		if r.MeetsTarget {
			summary.MeetTarget++
		}
		if r.BrandPreserved {
			summary.BrandColors++
		}
	}
	return optimizeResult{TargetStandard: std, PreserveHue: a.PreserveHue, Results: results, Summary: summary}, nil
}

// === Conversion ===

func (s *Server) handleConvertColor(args json.RawMessage) (interface{}, error) {
	var a convertColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := parseField("color", a.Color)
	if err != nil {
		return nil, err
	}
	return c.Formats(), nil
}

type gradientResult struct {
	Start         colorspace.Color       `json:"start_color"`
	End           colorspace.Color       `json:"end_color"`
	Interpolation gradient.Interpolation `json:"interpolation"`
	Stops         []gradient.Stop        `json:"stops"`
}

func (s *Server) handleGenerateGradient(args json.RawMessage) (interface{}, error) {
	a := generateGradientArgs{Steps: 5, Interpolation: string(gradient.Lab)}
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	start, err := parseField("start_color", a.StartColor)
	if err != nil {
		return nil, err
	}
	end, err := parseField("end_color", a.EndColor)
	if err != nil {
		return nil, err
	}
	space, err := gradient.ParseInterpolation(a.Interpolation)
	if err != nil {
		return nil, err
	}
	stops, err := gradient.Generate(start, end, a.Steps, space)
	if err != nil {
		return nil, err
	}
	return gradientResult{Start: start, End: end, Interpolation: space, Stops: stops}, nil
}
