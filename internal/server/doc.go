// Package server implements an MCP (Model Context Protocol) server that applies
// raster effects to images on disk.
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
// # Working Copies
//
// Every tool names an image by path. The first call decodes the file into a
// working copy; effect tools rewrite that copy in place, so calls compose:
//
//	effect_kuwahara(path, radius=3) then effect_contrast(path, contrast=40)
//
// image_save writes the copy out and image_reset discards it.
//
// # Available Tools
//
// Working copy management:
//   - image_load, image_dimensions, image_reset, image_save, image_preview
//
// Color inspection:
//   - image_sample_color, image_sample_colors_multi, image_dominant_colors
//
// Point effects:
//   - effect_offset, effect_multiple_offsets, effect_primary, effect_solarize,
//     effect_brightness, effect_contrast, effect_colorize, effect_tint
//
// Region effects:
//   - effect_halftone, effect_horizontal_strips, effect_vertical_strips,
//     effect_kuwahara
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// An effect whose parameters are rejected leaves the working copy untouched.
// An effect that succeeds but whose preview cannot be rendered still returns
// a result, with the preview failure in preview_error.
//
// # Configuration
//
//   - IMAGE_EFFECTS_LOG_LEVEL=debug logs every tool call to stderr
//   - IMAGE_EFFECTS_PREVIEW_MAX caps the longest side of previews (default 512)
package server
