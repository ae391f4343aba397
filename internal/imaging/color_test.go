package imaging

import (
	"image/color"
	"math"
	"testing"

	"github.com/ironsheep/image-effects-mcp/internal/effects"
)

// createInMemoryImage creates an image filled with c.
func createInMemoryImage(width, height int, c color.RGBA) *effects.Image {
	img := effects.New(width, height)
	for x, y := range img.Coords() {
		img.Set(x, y, c)
	}
	return img
}

// createPatternImage creates an image with a different color in each quadrant.
func createPatternImage(width, height int) *effects.Image {
	img := effects.New(width, height)
	for x, y := range img.Coords() {
		var c color.RGBA
		switch {
		case x < width/2 && y < height/2:
			c = color.RGBA{255, 0, 0, 255} // Red top-left
		case x >= width/2 && y < height/2:
			c = color.RGBA{0, 255, 0, 255} // Green top-right
		case x < width/2:
			c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
		default:
			c = color.RGBA{255, 255, 255, 255} // White bottom-right
		}
		img.Set(x, y, c)
	}
	return img
}

func TestSampleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 128, 64, 200})

	result, err := SampleColor(img, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#ff8040" {
		t.Errorf("Hex: got %s, want #ff8040", result.Hex)
	}
	if result.RGB != (effects.RGB{R: 255, G: 128, B: 64}) {
		t.Errorf("RGB: got %v", result.RGB)
	}
	if result.RGBA != (RGBAColor{255, 128, 64, 200}) {
		t.Errorf("RGBA: got %v", result.RGBA)
	}
}

func TestSampleColor_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		color   color.RGBA
		wantHex string
		wantHSL HSLColor
	}{
		{"pure red", color.RGBA{255, 0, 0, 255}, "#ff0000", HSLColor{0, 100, 50}},
		{"pure green", color.RGBA{0, 255, 0, 255}, "#00ff00", HSLColor{120, 100, 50}},
		{"pure blue", color.RGBA{0, 0, 255, 255}, "#0000ff", HSLColor{240, 100, 50}},
		{"white", color.RGBA{255, 255, 255, 255}, "#ffffff", HSLColor{0, 0, 100}},
		{"black", color.RGBA{0, 0, 0, 255}, "#000000", HSLColor{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(10, 10, tt.color)
			result, err := SampleColor(img, 5, 5)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.HSL != tt.wantHSL {
				t.Errorf("HSL: got %v, want %v", result.HSL, tt.wantHSL)
			}
		})
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleColor(img, tt.x, tt.y); err == nil {
				t.Error("SampleColor should fail for out-of-bounds coordinates")
			}
		})
	}
}

func TestSampleColorsMulti(t *testing.T) {
	img := createPatternImage(100, 100)

	points := []LabeledPoint{
		{X: 25, Y: 25, Label: "top-left"},
		{X: 75, Y: 25, Label: "top-right"},
		{X: 75, Y: 75},
	}
	results, err := SampleColorsMulti(img, points)
	if err != nil {
		t.Fatalf("SampleColorsMulti failed: %v", err)
	}

	want := []string{"#ff0000", "#00ff00", "#ffffff"}
	for i, r := range results {
		if r.Color.Hex != want[i] {
			t.Errorf("sample %d: got %s, want %s", i, r.Color.Hex, want[i])
		}
		if r.Label != points[i].Label {
			t.Errorf("sample %d label: got %q, want %q", i, r.Label, points[i].Label)
		}
	}

	if _, err := SampleColorsMulti(img, []LabeledPoint{{X: 1, Y: 1}, {X: 500, Y: 1}}); err == nil {
		t.Error("SampleColorsMulti should fail when any point is out of bounds")
	}
}

func TestDominantColors(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{0, 0, 0, 255})
	for x := 0; x < 3; x++ {
		for y := 0; y < 10; y++ {
			img.Set(x, y, color.RGBA{255, 255, 255, 255})
		}
	}

	colors := DominantColors(img, 5)
	if len(colors) != 2 {
		t.Fatalf("got %d colors, want 2", len(colors))
	}
	if colors[0].Hex != "#000000" || math.Abs(colors[0].Percentage-70) > 1e-9 {
		t.Errorf("first: got %s %.1f%%, want #000000 70%%", colors[0].Hex, colors[0].Percentage)
	}
	// 255 quantizes down to 240.
	if colors[1].Hex != "#f0f0f0" || math.Abs(colors[1].Percentage-30) > 1e-9 {
		t.Errorf("second: got %s %.1f%%, want #f0f0f0 30%%", colors[1].Hex, colors[1].Percentage)
	}

	if got := DominantColors(img, 1); len(got) != 1 {
		t.Errorf("count 1: got %d colors", len(got))
	}
}
