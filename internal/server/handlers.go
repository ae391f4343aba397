package server

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/ironsheep/image-effects-mcp/internal/effects"
	"github.com/ironsheep/image-effects-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "effect_kuwahara").
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
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if s.cfg.Debug {
		log.Printf("tool %s finished in %v (err=%v)", params.Name, time.Since(start), err)
	}
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Working Copy Management
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_reset":
		return s.handleImageReset(args)
	case "image_save":
		return s.handleImageSave(args)
	case "image_preview":
		return s.handleImagePreview(args)

	// Color Inspection
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)

	// Point Effects
	case "effect_offset":
		return s.handleEffectOffset(args)
	case "effect_multiple_offsets":
		return s.handleEffectMultipleOffsets(args)
	case "effect_primary":
		return s.handleEffectPrimary(args)
	case "effect_solarize":
		return s.handleEffectSolarize(args)
	case "effect_brightness":
		return s.handleEffectBrightness(args)
	case "effect_contrast":
		return s.handleEffectContrast(args)
	case "effect_colorize":
		return s.handleEffectColorize(args)
	case "effect_tint":
		return s.handleEffectTint(args)

	// Region Effects
	case "effect_halftone":
		return s.handleEffectHalftone(args)
	case "effect_horizontal_strips":
		return s.handleEffectStrips(args, "horizontal_strips", effects.HorizontalStrips)
	case "effect_vertical_strips":
		return s.handleEffectStrips(args, "vertical_strips", effects.VerticalStrips)
	case "effect_kuwahara":
		return s.handleEffectKuwahara(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{Code: code, Message: message}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Working Copy Handlers ===

type pathArgs struct {
	Path string `json:"path"`
}

func decodeArgs(args json.RawMessage, v interface{}) error {
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.workspace.Info(a.Path)
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	w, h, err := s.workspace.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return &DimensionsResult{Width: w, Height: h}, nil
}

func (s *Server) handleImageReset(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	s.workspace.Reset(a.Path)
	return map[string]interface{}{"path": a.Path, "reset": true}, nil
}

type imageSaveArgs struct {
	Path   string `json:"path"`
	Output string `json:"output"`
}

func (s *Server) handleImageSave(args json.RawMessage) (interface{}, error) {
	var a imageSaveArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Output == "" {
		return nil, fmt.Errorf("output path is required")
	}
	err := s.workspace.View(a.Path, func(img *effects.Image) error {
		return imaging.Save(img, a.Output)
	})
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"path": a.Path, "output": a.Output}, nil
}

type imagePreviewArgs struct {
	Path    string `json:"path"`
	MaxSize *int   `json:"max_size"`
}

func (s *Server) handleImagePreview(args json.RawMessage) (interface{}, error) {
	var a imagePreviewArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	maxSize := s.cfg.PreviewMaxSize
	if a.MaxSize != nil {
		maxSize = *a.MaxSize
	}

	var result *imaging.PreviewResult
	err := s.workspace.View(a.Path, func(img *effects.Image) error {
		var err error
		result, err = s.preview(img, maxSize)
		return err
	})
	return result, err
}

// === Color Inspection Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	var result *imaging.ColorResult
	err := s.workspace.View(a.Path, func(img *effects.Image) error {
		var err error
		result, err = imaging.SampleColor(img, a.X, a.Y)
		return err
	})
	return result, err
}

type imageSampleColorsMultiArgs struct {
	Path   string                 `json:"path"`
	Points []imaging.LabeledPoint `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	var samples []imaging.LabeledColorResult
	err := s.workspace.View(a.Path, func(img *effects.Image) error {
		var err error
		samples, err = imaging.SampleColorsMulti(img, a.Points)
		return err
	})
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"samples": samples}, nil
}

type imageDominantColorsArgs struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count <= 0 {
		a.Count = 5
	}
	var colors []imaging.ColorFrequency
	err := s.workspace.View(a.Path, func(img *effects.Image) error {
		colors = imaging.DominantColors(img, a.Count)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"colors": colors}, nil
}

// === Effect Handlers ===

// EffectResult describes the working copy after an effect was applied.
type EffectResult struct {
	Effect  string                 `json:"effect"`
	Path    string                 `json:"path"`
	Width   int                    `json:"width"`
	Height  int                    `json:"height"`
	Preview *imaging.PreviewResult `json:"preview,omitempty"`

	// PreviewError is set when the effect was applied but its preview could
	// not be rendered.
	PreviewError string `json:"preview_error,omitempty"`
}

// applyEffect runs fn on the working copy of path and, if asked, renders a
// preview while still holding the image. Once fn has succeeded the call
// succeeds; a failed preview is reported in PreviewError.
func (s *Server) applyEffect(effect, path string, preview bool, fn func(img *effects.Image) error) (*EffectResult, error) {
	result := &EffectResult{Effect: effect, Path: path}
	err := s.workspace.Apply(path, func(img *effects.Image) error {
		if err := fn(img); err != nil {
			return fmt.Errorf("%s: %w", effect, err)
		}
		result.Width, result.Height = img.Width, img.Height
		if preview {
			s.attachPreview(result, img)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Server) attachPreview(result *EffectResult, img *effects.Image) {
	p, err := s.preview(img, s.cfg.PreviewMaxSize)
	if err != nil {
		log.Printf("preview for %s of %s failed: %v", result.Effect, result.Path, err)
		result.PreviewError = err.Error()
		return
	}
	result.Preview = p
}

type effectArgs struct {
	Path    string `json:"path"`
	Preview bool   `json:"preview"`
}

type effectOffsetArgs struct {
	effectArgs
	Channel string `json:"channel"`
	Offset  int    `json:"offset"`
}

func (s *Server) handleEffectOffset(args json.RawMessage) (interface{}, error) {
	var a effectOffsetArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	ch, err := effects.ParseChannel(a.Channel)
	if err != nil {
		return nil, err
	}
	return s.applyEffect("offset", a.Path, a.Preview, func(img *effects.Image) error {
		return effects.Offset(img, ch, a.Offset)
	})
}

type effectMultipleOffsetsArgs struct {
	effectArgs
	Offset   int    `json:"offset"`
	Channel1 string `json:"channel1"`
	Channel2 string `json:"channel2"`
}

func (s *Server) handleEffectMultipleOffsets(args json.RawMessage) (interface{}, error) {
	var a effectMultipleOffsetsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	ch1, err := effects.ParseChannel(a.Channel1)
	if err != nil {
		return nil, fmt.Errorf("channel1: %w", err)
	}
	ch2, err := effects.ParseChannel(a.Channel2)
	if err != nil {
		return nil, fmt.Errorf("channel2: %w", err)
	}
	return s.applyEffect("multiple_offsets", a.Path, a.Preview, func(img *effects.Image) error {
		return effects.MultipleOffsets(img, a.Offset, ch1, ch2)
	})
}

type effectModeArgs struct {
	effectArgs
	Mode string `json:"mode"`
}

func (s *Server) handleEffectPrimary(args json.RawMessage) (interface{}, error) {
	var a effectModeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	mode, err := effects.ParseMode(a.Mode)
	if err != nil {
		return nil, err
	}
	return s.applyEffect("primary", a.Path, a.Preview, func(img *effects.Image) error {
		effects.Primary(img, mode)
		return nil
	})
}

func (s *Server) handleEffectHalftone(args json.RawMessage) (interface{}, error) {
	var a effectModeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	mode, err := effects.ParseMode(a.Mode)
	if err != nil {
		return nil, err
	}
	return s.applyEffect("halftone", a.Path, a.Preview, func(img *effects.Image) error {
		effects.Halftone(img, mode)
		return nil
	})
}

type effectSolarizeArgs struct {
	effectArgs
	Output string `json:"output"`
}

func (s *Server) handleEffectSolarize(args json.RawMessage) (interface{}, error) {
	var a effectSolarizeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Output == "" {
		return s.applyEffect("solarize", a.Path, a.Preview, func(img *effects.Image) error {
			effects.Solarize(img)
			return nil
		})
	}

	result := &EffectResult{Effect: "solarize", Path: a.Output}
	err := s.workspace.View(a.Path, func(img *effects.Image) error {
		out := effects.SolarizeCopy(img)
		result.Width, result.Height = out.Width, out.Height
		if err := imaging.Save(out, a.Output); err != nil {
			return err
		}
		if a.Preview {
			s.attachPreview(result, out)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

type effectBrightnessArgs struct {
	effectArgs
	Amount int `json:"amount"`
}

func (s *Server) handleEffectBrightness(args json.RawMessage) (interface{}, error) {
	var a effectBrightnessArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Amount < 0 || a.Amount > 255 {
		return nil, fmt.Errorf("amount %d must be in [0, 255]: %w", a.Amount, effects.ErrInvalidParameter)
	}
	return s.applyEffect("brightness", a.Path, a.Preview, func(img *effects.Image) error {
		effects.IncBrightness(img, uint8(a.Amount))
		return nil
	})
}

type effectContrastArgs struct {
	effectArgs
	Contrast float64 `json:"contrast"`
}

func (s *Server) handleEffectContrast(args json.RawMessage) (interface{}, error) {
	var a effectContrastArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.applyEffect("contrast", a.Path, a.Preview, func(img *effects.Image) error {
		effects.AdjustContrast(img, a.Contrast)
		return nil
	})
}

func (s *Server) handleEffectColorize(args json.RawMessage) (interface{}, error) {
	var a effectArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.applyEffect("colorize", a.Path, a.Preview, func(img *effects.Image) error {
		effects.Colorize(img)
		return nil
	})
}

type effectTintArgs struct {
	effectArgs
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

func (s *Server) handleEffectTint(args json.RawMessage) (interface{}, error) {
	var a effectTintArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.applyEffect("tint", a.Path, a.Preview, func(img *effects.Image) error {
		return effects.Tint(img, a.R, a.G, a.B)
	})
}

type effectStripsArgs struct {
	effectArgs
	Strips int `json:"strips"`
}

func (s *Server) handleEffectStrips(args json.RawMessage, effect string, strips func(*effects.Image, int) error) (interface{}, error) {
	var a effectStripsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.applyEffect(effect, a.Path, a.Preview, func(img *effects.Image) error {
		return strips(img, a.Strips)
	})
}

type effectKuwaharaArgs struct {
	effectArgs
	Radius int `json:"radius"`
}

func (s *Server) handleEffectKuwahara(args json.RawMessage) (interface{}, error) {
	var a effectKuwaharaArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.applyEffect("kuwahara", a.Path, a.Preview, func(img *effects.Image) error {
		return effects.Kuwahara(img, a.Radius)
	})
}
