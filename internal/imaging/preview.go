package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-effects-mcp/internal/effects"
)

// PreviewResult contains an image encoded as base64 PNG.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	Scaled      bool   `json:"scaled"`
}

// Preview encodes img as a PNG. When maxSize is positive and either side of
// img exceeds it, the image is first scaled down with Lanczos resampling to
// fit a maxSize x maxSize box, keeping its aspect ratio.
func Preview(img *effects.Image, maxSize int) (*PreviewResult, error) {
	var out image.Image = ToNRGBA(img)
	scaled := false
	if maxSize > 0 && (img.Width > maxSize || img.Height > maxSize) {
		out = imaging.Fit(out, maxSize, maxSize, imaging.Lanczos)
		scaled = true
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &PreviewResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Scaled:      scaled,
	}, nil
}
