package effects

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// FillRect overwrites every pixel of r that lies inside the image with c.
// The part of r outside the image is ignored.
func FillRect(img *Image, r image.Rectangle, c color.RGBA) {
	dst := img.RGBA()
	draw.Draw(dst, r.Intersect(dst.Rect), image.NewUniform(c), image.Point{}, draw.Src)
}
