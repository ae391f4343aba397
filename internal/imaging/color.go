package imaging

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/image-effects-mcp/internal/effects"
)

// RGBAColor is an 8-bit color with alpha.
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"` // 0 = fully transparent, 255 = fully opaque
}

// HSLColor represents a color in HSL space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult contains one color in several representations.
type ColorResult struct {
	Hex  string      `json:"hex"` // "#rrggbb", alpha excluded
	RGB  effects.RGB `json:"rgb"`
	RGBA RGBAColor   `json:"rgba"`
	HSL  HSLColor    `json:"hsl"`
}

// SampleColor reads the pixel at (x, y).
//
// Unlike effects.Image.At, which treats an out-of-range coordinate as a bug,
// SampleColor validates caller input and returns an error.
func SampleColor(img *effects.Image, x, y int) (*ColorResult, error) {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	px := img.At(x, y)
	rgb := effects.RGB{R: px.R, G: px.G, B: px.B}
	return &ColorResult{
		Hex:  rgb.Hex(),
		RGB:  rgb,
		RGBA: RGBAColor{R: px.R, G: px.G, B: px.B, A: px.A},
		HSL:  toHSL(rgb),
	}, nil
}

// LabeledPoint is a pixel coordinate with an optional label.
type LabeledPoint struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label,omitempty"`
}

// LabeledColorResult is a color sample with its location and label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// SampleColorsMulti samples every point in order. No partial result is
// returned if any point is out of bounds.
func SampleColorsMulti(img *effects.Image, points []LabeledPoint) ([]LabeledColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))
	for _, p := range points {
		c, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{Label: p.Label, X: p.X, Y: p.Y, Color: *c})
	}
	return results, nil
}

// ColorFrequency is a quantized color and the share of pixels that have it.
type ColorFrequency struct {
	Hex        string      `json:"hex"`
	Percentage float64     `json:"percentage"` // 0-100
	RGB        effects.RGB `json:"rgb"`
}

// DominantColors returns up to count colors sorted by frequency, most common
// first. Channels are quantized to multiples of 16 before counting, so colors
// within 16 units per channel are grouped.
func DominantColors(img *effects.Image, count int) []ColorFrequency {
	counts := make(map[effects.RGB]int)
	for x, y := range img.Coords() {
		px := img.At(x, y)
		counts[effects.RGB{R: px.R / 16 * 16, G: px.G / 16 * 16, B: px.B / 16 * 16}]++
	}

	total := img.Width * img.Height
	colors := make([]ColorFrequency, 0, len(counts))
	for c, n := range counts {
		colors = append(colors, ColorFrequency{
			Hex:        c.Hex(),
			Percentage: float64(n) / float64(total) * 100,
			RGB:        c,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if count >= 0 && len(colors) > count {
		colors = colors[:count]
	}
	return colors
}

func toHSL(c effects.RGB) HSLColor {
	h, s, l := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hsl()
	return HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)}
}
