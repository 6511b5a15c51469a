package server

import (
	"github.com/invopop/jsonschema"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

type analyzeColorArgs struct {
	Color         string   `json:"color" jsonschema_description:"Color to analyze: hex, rgb(), hsl() or a CSS color name"`
	AnalysisTypes []string `json:"analysis_types,omitempty" jsonschema:"enum=brightness,enum=temperature,enum=contrast,enum=accessibility,enum=all" jsonschema_description:"Analyses to run. Defaults to all"`
	CompareColor  string   `json:"compare_color,omitempty" jsonschema_description:"Optional second color for Delta-E distance"`
}

type checkContrastArgs struct {
	Foreground          string `json:"foreground" jsonschema_description:"Text color"`
	Background          string `json:"background" jsonschema_description:"Background color"`
	TextSize            string `json:"text_size,omitempty" jsonschema:"enum=normal,enum=large,default=normal" jsonschema_description:"Large text is at least 18pt, or 14pt bold"`
	Standard            string `json:"standard,omitempty" jsonschema:"enum=WCAG_AA,enum=WCAG_AAA,enum=APCA,default=WCAG_AA" jsonschema_description:"Standard that decides passes"`
	IncludeAlternatives bool   `json:"include_alternatives,omitempty" jsonschema:"default=true" jsonschema_description:"Suggest lightness adjustments when the pair fails"`
}

type simulateColorblindnessArgs struct {
	Colors   []string `json:"colors" jsonschema:"minItems=1" jsonschema_description:"Colors to simulate"`
	Type     string   `json:"type" jsonschema:"enum=protanopia,enum=deuteranopia,enum=tritanopia,enum=protanomaly,enum=deuteranomaly,enum=tritanomaly,enum=monochromacy"`
	Severity float64  `json:"severity,omitempty" jsonschema:"minimum=0,maximum=100,default=100" jsonschema_description:"0 leaves colors untouched, 100 is full strength"`
}

type optimizeForAccessibilityArgs struct {
	Palette             []string `json:"palette" jsonschema:"minItems=1" jsonschema_description:"Colors to optimize"`
	UseCases            []string `json:"use_cases" jsonschema:"minItems=1,enum=text,enum=background,enum=accent,enum=interactive" jsonschema_description:"Roles each color should be optimized for"`
	TargetStandard      string   `json:"target_standard,omitempty" jsonschema:"enum=WCAG_AA,enum=WCAG_AAA,enum=APCA,default=WCAG_AA"`
	PreserveHue         bool     `json:"preserve_hue,omitempty" jsonschema:"default=true" jsonschema_description:"Reported back unchanged. Hue is never altered"`
	PreserveBrandColors []string `json:"preserve_brand_colors,omitempty" jsonschema_description:"Palette colors to leave exactly as given"`
}

type convertColorArgs struct {
	Color string `json:"color" jsonschema_description:"Color in any supported format"`
}

type generateGradientArgs struct {
	StartColor    string `json:"start_color"`
	EndColor      string `json:"end_color"`
	Steps         int    `json:"steps,omitempty" jsonschema:"minimum=2,maximum=100,default=5"`
	Interpolation string `json:"interpolation,omitempty" jsonschema:"enum=rgb,enum=hsv,enum=lab,enum=luv,enum=hcl,default=lab" jsonschema_description:"Color space to blend in"`
}

// inputSchema reflects an argument struct into an inline object schema.
// Fields without omitempty are required.
func inputSchema(args interface{}) *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
		Anonymous:      true,
	}
	schema := r.Reflect(args)
	schema.Version = ""
	return schema
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "analyze_color",
			Description: "Analyze a color's brightness, temperature, contrast against white and black, and accessibility. Optionally measure its Delta-E distance to a second color.",
			InputSchema: inputSchema(&analyzeColorArgs{}),
		},
		{
			Name:        "check_contrast",
			Description: "Check the contrast ratio between a foreground and background color against WCAG 2.1 AA/AAA or APCA, with suggested alternatives for failing pairs.",
			InputSchema: inputSchema(&checkContrastArgs{}),
		},
		{
			Name:        "simulate_colorblindness",
			Description: "Simulate how colors appear under a color vision deficiency and rate how much each one changes.",
			InputSchema: inputSchema(&simulateColorblindnessArgs{}),
		},
		{
			Name:        "optimize_for_accessibility",
			Description: "Adjust palette colors for text, background, accent or interactive use and report contrast before and after against white.",
			InputSchema: inputSchema(&optimizeForAccessibilityArgs{}),
		},
		{
			Name:        "convert_color",
			Description: "Convert a color to hex, RGB, HSL, LAB and CSS notations.",
			InputSchema: inputSchema(&convertColorArgs{}),
		},
		{
			Name:        "generate_gradient",
			Description: "Generate evenly spaced colors between two endpoints in a chosen color space.",
			InputSchema: inputSchema(&generateGradientArgs{}),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": s.tools,
		},
	}
}
