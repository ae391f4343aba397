package effects

// primaryThreshold splits each channel into off (0) and on (255).
const primaryThreshold = 128

// solarizePivot is the red value Solarize reflects around.
const solarizePivot = 200

func quantize(v uint8) uint8 {
	if v > primaryThreshold {
		return 255
	}
	return 0
}

// Primary reduces every pixel to the primary and secondary colors by
// collapsing R, G and B to 0 or 255.
//
// In Legacy mode the decision for every pixel is taken from the first pixel of
// the buffer, so the whole image becomes one flat color. Corrected mode
// thresholds each pixel against its own channels. Alpha is never changed.
func Primary(img *Image, mode Mode) {
	pix := img.Pixels
	for i := 0; i+3 < len(pix); i += 4 {
		src := i
		if mode == Legacy {
			src = 0
		}
		r, g, b := quantize(pix[src]), quantize(pix[src+1]), quantize(pix[src+2])
		pix[i] = r
		pix[i+1] = g
		pix[i+2] = b
	}
}

// Solarize replaces each red value r with 200-r when that is positive. Green,
// blue and alpha are left alone. The buffer is walked with a stride of four
// bytes; a trailing partial pixel is skipped.
func Solarize(img *Image) {
	pix := img.Pixels
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = solarizeRed(pix[i])
	}
}

// SolarizeCopy returns a solarized copy of img and leaves img untouched.
func SolarizeCopy(img *Image) *Image {
	out := New(img.Width, img.Height)
	for x, y := range img.Coords() {
		px := img.At(x, y)
		px.R = solarizeRed(px.R)
		out.Set(x, y, px)
	}
	return out
}

func solarizeRed(r uint8) uint8 {
	if solarizePivot-int(r) > 0 {
		return uint8(solarizePivot - int(r))
	}
	return r
}
