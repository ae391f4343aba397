package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func prop(typ, description string) map[string]interface{} {
	return map[string]interface{}{"type": typ, "description": description}
}

func enumProp(description string, values ...string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "enum": values, "description": description}
}

func schema(required []string, props map[string]interface{}) map[string]interface{} {
	props["path"] = prop("string", "Absolute path to the image file")
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   append([]string{"path"}, required...),
	}
}

// effectSchema adds the preview flag every effect tool accepts.
func effectSchema(required []string, props map[string]interface{}) map[string]interface{} {
	props["preview"] = prop("boolean", "Return a base64 PNG preview of the result. Default false")
	return schema(required, props)
}

var channelProp = enumProp("Color channel", "red", "green", "blue", "r", "g", "b", "0", "1", "2")

var modeProp = enumProp("legacy keeps the historical output; corrected applies the effect as described. Default legacy", "legacy", "corrected")

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Working Copy Management
		{
			Name:        "image_load",
			Description: "Load an image file into the workspace and return its dimensions and format. Effects rewrite this working copy in place until image_reset.",
			InputSchema: schema(nil, map[string]interface{}{}),
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of the working copy of an image.",
			InputSchema: schema(nil, map[string]interface{}{}),
		},
		{
			Name:        "image_reset",
			Description: "Discard the working copy so the next call reloads the file, undoing every effect applied.",
			InputSchema: schema(nil, map[string]interface{}{}),
		},
		{
			Name:        "image_save",
			Description: "Write the working copy to a file. The format follows the output extension (png, jpg, gif, tif, bmp).",
			InputSchema: schema([]string{"output"}, map[string]interface{}{
				"output": prop("string", "Absolute path of the file to write"),
			}),
		},
		{
			Name:        "image_preview",
			Description: "Return the working copy as a base64-encoded PNG, downscaled to fit max_size.",
			InputSchema: schema(nil, map[string]interface{}{
				"max_size": prop("integer", "Longest side of the preview in pixels. Default from server configuration"),
			}),
		},

		// Color Inspection
		{
			Name:        "image_sample_color",
			Description: "Get the exact color of the working copy at a pixel coordinate.",
			InputSchema: schema([]string{"x", "y"}, map[string]interface{}{
				"x": prop("integer", "X coordinate (0-based, from left)"),
				"y": prop("integer", "Y coordinate (0-based, from top)"),
			}),
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Get the colors of the working copy at several pixel coordinates in a single call.",
			InputSchema: schema([]string{"points"}, map[string]interface{}{
				"points": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x":     map[string]interface{}{"type": "integer"},
							"y":     map[string]interface{}{"type": "integer"},
							"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
						},
						"required": []string{"x", "y"},
					},
					"description": "Array of points to sample",
				},
			}),
		},
		{
			Name:        "image_dominant_colors",
			Description: "Return the N most frequent colors of the working copy.",
			InputSchema: schema(nil, map[string]interface{}{
				"count": prop("integer", "Number of colors to return. Default 5"),
			}),
		},

		// Point Effects
		{
			Name:        "effect_offset",
			Description: "Copy one channel from the pixel offset pixels down and to the right. A 10-pixel band along the right and bottom edges is left unchanged.",
			InputSchema: effectSchema([]string{"channel", "offset"}, map[string]interface{}{
				"channel": channelProp,
				"offset":  prop("integer", "Offset in pixels (>= 0)"),
			}),
		},
		{
			Name:        "effect_multiple_offsets",
			Description: "Shift channel1 left and channel2 right by offset pixels.",
			InputSchema: effectSchema([]string{"offset", "channel1", "channel2"}, map[string]interface{}{
				"offset":   prop("integer", "Offset in pixels (>= 0)"),
				"channel1": channelProp,
				"channel2": channelProp,
			}),
		},
		{
			Name:        "effect_primary",
			Description: "Reduce the image to primary and secondary colors by snapping each channel to 0 or 255.",
			InputSchema: effectSchema(nil, map[string]interface{}{
				"mode": modeProp,
			}),
		},
		{
			Name:        "effect_solarize",
			Description: "Solarize the red channel. With output set, the solarized image is written there and the working copy is left unchanged.",
			InputSchema: effectSchema(nil, map[string]interface{}{
				"output": prop("string", "Optional path to write a solarized copy to"),
			}),
		},
		{
			Name:        "effect_brightness",
			Description: "Increase brightness by adding amount to every color channel, saturating at 255.",
			InputSchema: effectSchema([]string{"amount"}, map[string]interface{}{
				"amount": prop("integer", "Amount to add, 0-255"),
			}),
		},
		{
			Name:        "effect_contrast",
			Description: "Adjust contrast. Positive values increase it, negative values flatten the image toward mid-gray.",
			InputSchema: effectSchema([]string{"contrast"}, map[string]interface{}{
				"contrast": prop("number", "Contrast in [-255, 255]; values outside are clamped"),
			}),
		},
		{
			Name:        "effect_colorize",
			Description: "Shift colors close to cyan toward green.",
			InputSchema: effectSchema(nil, map[string]interface{}{}),
		},
		{
			Name:        "effect_tint",
			Description: "Tint the image by adding per-channel offsets, saturating at 255.",
			InputSchema: effectSchema([]string{"r", "g", "b"}, map[string]interface{}{
				"r": prop("integer", "Red offset (>= 0)"),
				"g": prop("integer", "Green offset (>= 0)"),
				"b": prop("integer", "Blue offset (>= 0)"),
			}),
		},

		// Region Effects
		{
			Name:        "effect_halftone",
			Description: "Dither the image to black and white in 2x2 blocks.",
			InputSchema: effectSchema(nil, map[string]interface{}{
				"mode": modeProp,
			}),
		},
		{
			Name:        "effect_horizontal_strips",
			Description: "Overlay white horizontal bands, leaving the given number of image strips.",
			InputSchema: effectSchema([]string{"strips"}, map[string]interface{}{
				"strips": prop("integer", "Number of image strips (>= 1)"),
			}),
		},
		{
			Name:        "effect_vertical_strips",
			Description: "Overlay white vertical bands, leaving the given number of image strips.",
			InputSchema: effectSchema([]string{"strips"}, map[string]interface{}{
				"strips": prop("integer", "Number of image strips (>= 1)"),
			}),
		},
		{
			Name:        "effect_kuwahara",
			Description: "Apply the Kuwahara edge-preserving smoothing filter with (radius+1)x(radius+1) windows.",
			InputSchema: effectSchema([]string{"radius"}, map[string]interface{}{
				"radius": prop("integer", "Window radius; 2*radius must not exceed the image width or height"),
			}),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
