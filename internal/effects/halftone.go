package effects

import "image/color"

var (
	halftoneWhite = color.RGBA{R: 255, G: 255, B: 255}
	halftoneBlack = color.RGBA{}
)

// halftoneBand maps a lower luma bound to the dither pattern of a 2x2 block.
// Patterns are indexed top-left, bottom-left, top-right, bottom-right.
type halftoneBand struct {
	above   float64
	pattern [4]bool
}

// halftoneBands is ordered from brightest to darkest; the first band whose
// bound the block luma exceeds wins.
var halftoneBands = []halftoneBand{
	{above: 200, pattern: [4]bool{true, true, true, true}},
	{above: 159, pattern: [4]bool{true, false, true, true}},
	{above: 95, pattern: [4]bool{true, false, false, true}},
	{above: 32, pattern: [4]bool{false, true, false, false}},
	{above: -1, pattern: [4]bool{false, false, false, false}},
}

// luma is the BT.601 weighted intensity of a pixel.
func luma(c color.RGBA) float64 {
	return float64(c.R)*0.299 + float64(c.G)*0.587 + float64(c.B)*0.114
}

// Halftone dithers the image to black and white in 2x2 blocks. The mean luma
// of each block picks one of five patterns. A trailing odd row or column is
// not visited.
//
// Legacy mode commits only the top-left pixel of each block and leaves the
// other three as they were. Corrected mode writes the full pattern. Alpha is
// preserved.
func Halftone(img *Image, mode Mode) {
	for y := 0; y+1 < img.Height; y += 2 {
		for x := 0; x+1 < img.Width; x += 2 {
			block := [4][2]int{{x, y}, {x, y + 1}, {x + 1, y}, {x + 1, y + 1}}

			var sum float64
			for _, p := range block {
				sum += luma(img.At(p[0], p[1]))
			}
			pattern := halftonePattern(sum / 4)

			n := len(block)
			if mode == Legacy {
				n = 1
			}
			for k := 0; k < n; k++ {
				px := img.At(block[k][0], block[k][1])
				tone := halftoneBlack
				if pattern[k] {
					tone = halftoneWhite
				}
				px.R, px.G, px.B = tone.R, tone.G, tone.B
				img.Set(block[k][0], block[k][1], px)
			}
		}
	}
}

func halftonePattern(sat float64) [4]bool {
	for _, band := range halftoneBands {
		if sat > band.above {
			return band.pattern
		}
	}
	return halftoneBands[len(halftoneBands)-1].pattern
}
