package effects

import (
	"errors"
	"image/color"
	"testing"
)

// newFilled creates a width x height image where every pixel is c.
func newFilled(width, height int, c color.RGBA) *Image {
	img := New(width, height)
	for x, y := range img.Coords() {
		img.Set(x, y, c)
	}
	return img
}

// newGradient creates an image whose pixel (x, y) is (x*10+y, y*10+x, x+y, 200).
func newGradient(width, height int) *Image {
	img := New(width, height)
	for x, y := range img.Coords() {
		img.Set(x, y, color.RGBA{R: uint8(x*10 + y), G: uint8(y*10 + x), B: uint8(x + y), A: 200})
	}
	return img
}

func assertSamePixels(t *testing.T, got, want *Image) {
	t.Helper()
	if got.Width != want.Width || got.Height != want.Height {
		t.Fatalf("size: got %dx%d, want %dx%d", got.Width, got.Height, want.Width, want.Height)
	}
	for x, y := range want.Coords() {
		if g, w := got.At(x, y), want.At(x, y); g != w {
			t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, g, w)
		}
	}
}

func TestNew(t *testing.T) {
	img := New(3, 2)
	if len(img.Pixels) != 3*2*4 {
		t.Errorf("len(Pixels): got %d, want 24", len(img.Pixels))
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("Bounds: got %v", img.Bounds())
	}
}

func TestFromPixels(t *testing.T) {
	pix := make([]byte, 16)
	img, err := FromPixels(2, 2, pix)
	if err != nil {
		t.Fatalf("FromPixels failed: %v", err)
	}
	img.Set(1, 1, color.RGBA{1, 2, 3, 4})
	if pix[12] != 1 || pix[15] != 4 {
		t.Error("FromPixels should adopt the slice without copying")
	}

	tests := []struct {
		name          string
		width, height int
		size          int
	}{
		{"short buffer", 2, 2, 15},
		{"long buffer", 2, 2, 17},
		{"negative width", -1, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromPixels(tt.width, tt.height, make([]byte, tt.size))
			if !errors.Is(err, ErrInvalidImage) {
				t.Errorf("got %v, want ErrInvalidImage", err)
			}
		})
	}
}

func TestImage_AtSet(t *testing.T) {
	img := New(4, 3)
	img.Set(2, 1, color.RGBA{10, 20, 30, 40})

	if got := img.At(2, 1); got != (color.RGBA{10, 20, 30, 40}) {
		t.Errorf("At(2,1): got %v", got)
	}
	// Pixel (2,1) starts at 4*(1*4+2) = 24.
	if img.Pixels[24] != 10 || img.Pixels[27] != 40 {
		t.Errorf("byte layout: got %v", img.Pixels[24:28])
	}
}

func TestImage_OutOfBoundsPanics(t *testing.T) {
	img := New(4, 3)
	points := [][2]int{{4, 0}, {0, 3}, {-1, 0}, {0, -1}}
	for _, p := range points {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%d,%d) should panic", p[0], p[1])
				}
			}()
			img.At(p[0], p[1])
		}()
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Set(%d,%d) should panic", p[0], p[1])
				}
			}()
			img.Set(p[0], p[1], color.RGBA{})
		}()
	}
}

func TestImage_Clone(t *testing.T) {
	img := newGradient(3, 3)
	cp := img.Clone()
	cp.Set(0, 0, color.RGBA{255, 255, 255, 255})
	if img.At(0, 0) == cp.At(0, 0) {
		t.Error("Clone should not share pixels with the source")
	}
}

func TestImage_RGBAView(t *testing.T) {
	img := New(3, 2)
	view := img.RGBA()
	view.Set(2, 1, color.RGBA{9, 8, 7, 6})
	if got := img.At(2, 1); got != (color.RGBA{9, 8, 7, 6}) {
		t.Errorf("write through view: got %v", got)
	}
	if view.Stride != 12 {
		t.Errorf("Stride: got %d, want 12", view.Stride)
	}
}

func TestRGB_Hex(t *testing.T) {
	tests := []struct {
		c    RGB
		want string
	}{
		{RGB{255, 0, 0}, "#ff0000"},
		{RGB{0, 255, 255}, "#00ffff"},
		{RGB{18, 52, 86}, "#123456"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("%v.Hex(): got %s, want %s", tt.c, got, tt.want)
		}
	}
}

func TestParseChannel(t *testing.T) {
	tests := []struct {
		in      string
		want    Channel
		wantErr bool
	}{
		{"red", Red, false},
		{"g", Green, false},
		{"2", Blue, false},
		{"alpha", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseChannel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseChannel(%q) error: %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseChannel(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": Legacy, "legacy": Legacy, "corrected": Corrected} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q): got %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseMode("fixed"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("ParseMode(fixed): got %v, want ErrInvalidParameter", err)
	}
}
