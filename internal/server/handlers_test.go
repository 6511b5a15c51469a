package server

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// callTool runs a tools/call request and decodes the JSON text content.
func callTool(t *testing.T, s *Server, name string, args interface{}) (map[string]interface{}, *MCPError) {
	t.Helper()

	params := map[string]interface{}{
		"name":      name,
		"arguments": args,
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("marshal params: %v", err)
	}

	resp := s.handleRequest(context.Background(), &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		return nil, resp.Error
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) != 1 {
		t.Fatalf("unexpected content: %v", result["content"])
	}
	if content[0]["type"] != "text" {
		t.Errorf("content type: got %v, want text", content[0]["type"])
	}

	var out map[string]interface{}
	if err := json.Unmarshal([]byte(content[0]["text"].(string)), &out); err != nil {
		t.Fatalf("content is not JSON: %v", err)
	}
	return out, nil
}

func TestHandleToolsCall_AnalyzeColor(t *testing.T) {
	s := New()
	out, mcpErr := callTool(t, s, "analyze_color", map[string]interface{}{
		"color":         "#FF0000",
		"compare_color": "#00FF00",
	})
	if mcpErr != nil {
		t.Fatalf("unexpected error: %+v", mcpErr)
	}

	if out["color"] != "#FF0000" {
		t.Errorf("color: got %v", out["color"])
	}
	temp := out["temperature"].(map[string]interface{})
	if temp["temperature"] != "warm" {
		t.Errorf("temperature: got %v, want warm", temp["temperature"])
	}
	dist := out["distance"].(map[string]interface{})
	if dist["perceptual_difference"] != "very_different" {
		t.Errorf("perceptual_difference: got %v", dist["perceptual_difference"])
	}
	for _, key := range []string{"brightness", "contrast", "accessibility"} {
		if _, ok := out[key]; !ok {
			t.Errorf("missing %s", key)
		}
	}
}

func TestHandleToolsCall_AnalyzeColorSubset(t *testing.T) {
	out, mcpErr := callTool(t, New(), "analyze_color", map[string]interface{}{
		"color":          "navy",
		"analysis_types": []string{"brightness"},
	})
	if mcpErr != nil {
		t.Fatalf("unexpected error: %+v", mcpErr)
	}
	if _, ok := out["brightness"]; !ok {
		t.Error("missing brightness")
	}
	for _, key := range []string{"temperature", "contrast", "accessibility", "distance"} {
		if _, ok := out[key]; ok {
			t.Errorf("unexpected %s", key)
		}
	}
}

func TestHandleToolsCall_CheckContrast(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]interface{}
		passes   bool
		wantAlts bool
	}{
		{
			"black on white passes",
			map[string]interface{}{"foreground": "#000000", "background": "#FFFFFF"},
			true, false,
		},
		{
			"gray fails with alternatives",
			map[string]interface{}{"foreground": "#777777", "background": "#888888"},
			false, true,
		},
		{
			"alternatives disabled",
			map[string]interface{}{"foreground": "#777777", "background": "#888888", "include_alternatives": false},
			false, false,
		},
		{
			"large text threshold",
			map[string]interface{}{"foreground": "#777777", "background": "white", "text_size": "large"},
			true, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, mcpErr := callTool(t, New(), "check_contrast", tt.args)
			if mcpErr != nil {
				t.Fatalf("unexpected error: %+v", mcpErr)
			}
			if out["passes"] != tt.passes {
				t.Errorf("passes: got %v, want %v", out["passes"], tt.passes)
			}
			_, hasAlts := out["alternatives"]
			if hasAlts != tt.wantAlts {
				t.Errorf("alternatives present: got %v, want %v", hasAlts, tt.wantAlts)
			}
		})
	}
}

func TestHandleToolsCall_SimulateColorblindness(t *testing.T) {
	out, mcpErr := callTool(t, New(WithWorkers(2)), "simulate_colorblindness", map[string]interface{}{
		"colors": []string{"#FF0000", "#808080", "blue"},
		"type":   "monochromacy",
	})
	if mcpErr != nil {
		t.Fatalf("unexpected error: %+v", mcpErr)
	}
	if out["severity"] != float64(100) {
		t.Errorf("severity default: got %v, want 100", out["severity"])
	}
	results := out["results"].([]interface{})
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	var originals []string
	for _, r := range results {
		res := r.(map[string]interface{})
		originals = append(originals, res["original"].(string))
		rgb := res["simulated_rgb"].(map[string]interface{})
		if rgb["r"] != rgb["g"] || rgb["g"] != rgb["b"] {
			t.Errorf("monochromacy result not gray: %v", rgb)
		}
	}
	if diff := cmp.Diff([]string{"#FF0000", "#808080", "#0000FF"}, originals); diff != "" {
		t.Errorf("result order mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleToolsCall_SimulateSeverityAsString(t *testing.T) {
	out, mcpErr := callTool(t, New(), "simulate_colorblindness", map[string]interface{}{
		"colors":   []string{"#123456"},
		"type":     "protanomaly",
		"severity": "0",
	})
	if mcpErr != nil {
		t.Fatalf("unexpected error: %+v", mcpErr)
	}
	res := out["results"].([]interface{})[0].(map[string]interface{})
	if res["simulated"] != "#123456" {
		t.Errorf("severity 0 changed color to %v", res["simulated"])
	}
}

func TestHandleToolsCall_OptimizeForAccessibility(t *testing.T) {
	out, mcpErr := callTool(t, New(), "optimize_for_accessibility", map[string]interface{}{
		"palette":               []string{"#FF6600", "#AACCEE"},
		"use_cases":             []string{"text", "background"},
		"preserve_brand_colors": []string{"#ff6600"},
	})
	if mcpErr != nil {
		t.Fatalf("unexpected error: %+v", mcpErr)
	}
	if out["preserve_hue"] != true {
		t.Errorf("preserve_hue default: got %v", out["preserve_hue"])
	}
	if out["target_standard"] != "WCAG_AA" {
		t.Errorf("target_standard default: got %v", out["target_standard"])
	}

	results := out["results"].([]interface{})
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	for i, r := range results[:2] {
		res := r.(map[string]interface{})
		if res["optimization_applied"] != false || res["optimized"] != "#FF6600" {
			t.Errorf("brand result %d modified: %v", i, res)
		}
	}
	text := results[2].(map[string]interface{})
	if text["use_case"] != "text" || text["optimization_applied"] != true {
		t.Errorf("light blue text should be optimized: %v", text)
	}

	summary := out["summary"].(map[string]interface{})
	if summary["total"] != float64(4) || summary["brand_preserved"] != float64(2) {
		t.Errorf("summary: %v", summary)
	}
}

func TestHandleToolsCall_ConvertColor(t *testing.T) {
	out, mcpErr := callTool(t, New(), "convert_color", map[string]interface{}{"color": "rgb(255, 0, 0)"})
	if mcpErr != nil {
		t.Fatalf("unexpected error: %+v", mcpErr)
	}
	if out["hex"] != "#FF0000" || out["name"] != "red" {
		t.Errorf("unexpected conversion: %v", out)
	}
	css := out["css"].(map[string]interface{})
	if css["hsl"] != "hsl(0, 100%, 50%)" {
		t.Errorf("css hsl: got %v", css["hsl"])
	}
}

func TestHandleToolsCall_GenerateGradient(t *testing.T) {
	out, mcpErr := callTool(t, New(), "generate_gradient", map[string]interface{}{
		"start_color": "black",
		"end_color":   "white",
	})
	if mcpErr != nil {
		t.Fatalf("unexpected error: %+v", mcpErr)
	}
	if out["interpolation"] != "lab" {
		t.Errorf("interpolation default: got %v", out["interpolation"])
	}
	stops := out["stops"].([]interface{})
	if len(stops) != 5 {
		t.Fatalf("got %d stops, want 5", len(stops))
	}
	last := stops[4].(map[string]interface{})
	if last["color"] != "#FFFFFF" || last["position"] != float64(1) {
		t.Errorf("last stop: %v", last)
	}
}

func TestHandleToolsCall_GenerateGradientWholeFloatSteps(t *testing.T) {
	out, mcpErr := callTool(t, New(), "generate_gradient", map[string]interface{}{
		"start_color": "red",
		"end_color":   "blue",
		"steps":       3.0,
	})
	if mcpErr != nil {
		t.Fatalf("unexpected error: %+v", mcpErr)
	}
	if stops := out["stops"].([]interface{}); len(stops) != 3 {
		t.Errorf("got %d stops, want 3", len(stops))
	}
}

func TestHandleToolsCall_Errors(t *testing.T) {
	tests := []struct {
		name     string
		tool     string
		args     map[string]interface{}
		wantCode int
		wantMsg  string
	}{
		{"unknown tool", "image_load", map[string]interface{}{}, codeInvalidParams, "unknown tool"},
		{"missing color", "analyze_color", map[string]interface{}{}, codeToolFailure, "color is required"},
		{"bad color", "convert_color", map[string]interface{}{"color": "#12345"}, codeToolFailure, "invalid color"},
		{"bad analysis type", "analyze_color", map[string]interface{}{"color": "red", "analysis_types": []string{"mood"}}, codeToolFailure, "unknown analysis type"},
		{"bad text size", "check_contrast", map[string]interface{}{"foreground": "red", "background": "white", "text_size": "huge"}, codeToolFailure, "text size"},
		{"bad standard", "check_contrast", map[string]interface{}{"foreground": "red", "background": "white", "standard": "WCAG_A"}, codeToolFailure, "standard"},
		{"bad deficiency", "simulate_colorblindness", map[string]interface{}{"colors": []string{"red"}, "type": "achromatopsia"}, codeToolFailure, "unknown colorblindness type"},
		{"severity range", "simulate_colorblindness", map[string]interface{}{"colors": []string{"red"}, "type": "protanopia", "severity": 150}, codeToolFailure, "severity"},
		{"bad batch color", "simulate_colorblindness", map[string]interface{}{"colors": []string{"red", "nope"}, "type": "protanopia"}, codeToolFailure, "index 1"},
		{"empty palette", "optimize_for_accessibility", map[string]interface{}{"palette": []string{}, "use_cases": []string{"text"}}, codeToolFailure, "palette"},
		{"bad use case", "optimize_for_accessibility", map[string]interface{}{"palette": []string{"red"}, "use_cases": []string{"border"}}, codeToolFailure, "unknown use case"},
		{"gradient steps", "generate_gradient", map[string]interface{}{"start_color": "red", "end_color": "blue", "steps": 1}, codeToolFailure, "steps"},
		{"fractional steps", "generate_gradient", map[string]interface{}{"start_color": "red", "end_color": "blue", "steps": 2.9}, codeToolFailure, "must be an integer"},
		{"wrong type", "check_contrast", map[string]interface{}{"foreground": []int{1, 2}, "background": "white"}, codeToolFailure, "invalid arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mcpErr := callTool(t, New(), tt.tool, tt.args)
			if mcpErr == nil {
				t.Fatal("expected error")
			}
			if mcpErr.Code != tt.wantCode {
				t.Errorf("code: got %d, want %d", mcpErr.Code, tt.wantCode)
			}
			data, _ := mcpErr.Data.(string)
			if !strings.Contains(data, tt.wantMsg) {
				t.Errorf("error data %q does not mention %q", data, tt.wantMsg)
			}
		})
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()
	resp := s.handleRequest(context.Background(), &MCPRequest{
		JSONRPC: "2.0",
		ID:      7,
		Method:  "tools/call",
		Params:  json.RawMessage(`["not", "an", "object"]`),
	})
	if resp == nil || resp.Error == nil {
		t.Fatal("expected error response")
	}
	if resp.Error.Code != codeInvalidParams {
		t.Errorf("code: got %d, want %d", resp.Error.Code, codeInvalidParams)
	}
}
