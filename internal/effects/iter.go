package effects

import "iter"

// Coords yields every (x, y) in [0,width) x [0,height) in row-major order:
// y is the outer loop, x the inner. The sequence is lazy and can be ranged over
// any number of times. Non-positive extents yield nothing.
func Coords(width, height int) iter.Seq2[int, int] {
	return func(yield func(x, y int) bool) {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if !yield(x, y) {
					return
				}
			}
		}
	}
}

// Coords yields every pixel coordinate of the image in row-major order.
func (img *Image) Coords() iter.Seq2[int, int] {
	return Coords(img.Width, img.Height)
}
