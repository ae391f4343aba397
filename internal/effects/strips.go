package effects

import (
	"fmt"
	"image"
	"image/color"
)

var stripColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// HorizontalStrips splits the image height into 2n-1 equal bands and paints
// every second band white, leaving n image strips separated by n-1 white
// ones. Rows left over by the integer division stay untouched.
func HorizontalStrips(img *Image, n int) error {
	band, err := stripBand(img.Height, n)
	if err != nil || band == 0 {
		return err
	}
	for i := 1; i < n; i++ {
		y := (2*i - 1) * band
		FillRect(img, image.Rect(0, y, img.Width, y+band), stripColor)
	}
	return nil
}

// VerticalStrips is HorizontalStrips along the width.
func VerticalStrips(img *Image, n int) error {
	band, err := stripBand(img.Width, n)
	if err != nil || band == 0 {
		return err
	}
	for i := 1; i < n; i++ {
		x := (2*i - 1) * band
		FillRect(img, image.Rect(x, 0, x+band, img.Height), stripColor)
	}
	return nil
}

// stripBand returns the size of one of the 2n-1 bands of extent. It is 0
// when the bands are thinner than a pixel, and the strip effects then leave
// the image alone.
func stripBand(extent, n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("strip count %d must be at least 1: %w", n, ErrInvalidParameter)
	}
	if n > extent {
		return 0, nil
	}
	return extent / (2*n - 1), nil
}
