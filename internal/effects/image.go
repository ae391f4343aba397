package effects

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Image is a flat RGBA pixel buffer.
//
// len(Pixels) == Width*Height*4 holds for every Image built by
// New or FromPixels.
type Image struct {
	Width  int
	Height int
	Pixels []byte
}

// RGB is an 8-bit color without alpha.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex formats the color as "#RRGGBB".
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// New allocates a zeroed (transparent black) image.
func New(width, height int) *Image {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("effects: negative image size %dx%d", width, height))
	}
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]byte, width*height*4),
	}
}

// FromPixels wraps an existing pixel slice without copying it.
func FromPixels(width, height int, pix []byte) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("negative size %dx%d: %w", width, height, ErrInvalidImage)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("buffer holds %d bytes, %dx%d RGBA needs %d: %w",
			len(pix), width, height, width*height*4, ErrInvalidImage)
	}
	return &Image{Width: width, Height: height, Pixels: pix}, nil
}

// Bounds returns the image rectangle anchored at the origin.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// offset returns the index of the red byte of pixel (x, y).
func (img *Image) offset(x, y int) int {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		panic(fmt.Sprintf("effects: pixel (%d,%d) outside %dx%d image", x, y, img.Width, img.Height))
	}
	return 4 * (y*img.Width + x)
}

// At returns the pixel at (x, y). It panics if (x, y) is outside the image.
func (img *Image) At(x, y int) color.RGBA {
	i := img.offset(x, y)
	p := img.Pixels[i : i+4 : i+4]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Set stores c at (x, y). It panics if (x, y) is outside the image.
func (img *Image) Set(x, y int, c color.RGBA) {
	i := img.offset(x, y)
	p := img.Pixels[i : i+4 : i+4]
	p[0] = c.R
	p[1] = c.G
	p[2] = c.B
	p[3] = c.A
}

// Clone returns a deep copy.
func (img *Image) Clone() *Image {
	pix := make([]byte, len(img.Pixels))
	copy(pix, img.Pixels)
	return &Image{Width: img.Width, Height: img.Height, Pixels: pix}
}

// RGBA returns an *image.RGBA sharing the pixel slice. Writes through the view
// are writes to the Image; the view must not outlive the call that made it.
func (img *Image) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    img.Pixels,
		Stride: 4 * img.Width,
		Rect:   img.Bounds(),
	}
}
