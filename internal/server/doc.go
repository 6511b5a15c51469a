// Package server implements the MCP (Model Context Protocol) server for color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes color analysis,
// contrast checking, colorblindness simulation and palette optimization through
// the MCP protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - analyze_color: Brightness, temperature, contrast, accessibility and Delta-E
//   - check_contrast: WCAG 2.1 / APCA contrast with alternative suggestions
//   - simulate_colorblindness: Render colors under a color vision deficiency
//   - optimize_for_accessibility: Adjust palette colors for a usage role
//   - convert_color: Hex, RGB, HSL, LAB and CSS notations
//   - generate_gradient: Interpolate between two colors
//
// Input schemas are reflected from the argument structs in tools.go, so the
// struct tags are the single source for field names, enums and defaults.
//
// # Error Handling
//
// Errors are returned as JSON-RPC error responses:
//   - -32700: the request line was not valid JSON
//   - -32601: unknown method
//   - -32602: malformed tools/call params or unknown tool name
//   - -32000: the tool rejected its arguments; data holds the Go error string
//
// # Usage
//
//	srv := server.New(server.WithLogger(logger), server.WithWorkers(4))
//	if err := srv.Run(ctx); err != nil {
//	    logger.Error("server stopped", "error", err)
//	}
package server
