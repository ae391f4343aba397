package effects

import (
	"fmt"
	"math"
)

// colorizeTarget is the color Colorize pulls toward green.
var colorizeTarget = RGB{R: 0, G: 255, B: 255}

// colorizeThreshold is the RGB distance within which Colorize applies.
const colorizeThreshold = 220

// IncBrightness adds delta to R, G and B of every pixel, saturating each
// channel at 255. Alpha is unchanged.
func IncBrightness(img *Image, delta uint8) {
	pix := img.Pixels
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = addSaturating(pix[i], int(delta))
		pix[i+1] = addSaturating(pix[i+1], int(delta))
		pix[i+2] = addSaturating(pix[i+2], int(delta))
	}
}

// addSaturating returns v+delta clamped to 255. delta must not be negative.
func addSaturating(v uint8, delta int) uint8 {
	if delta >= 255-int(v) {
		return 255
	}
	return uint8(int(v) + delta)
}

// ContrastTable builds the lookup table AdjustContrast applies to every
// channel. contrast is clamped to [-255, 255]; 0 and NaN yield the identity.
func ContrastTable(contrast float64) [256]uint8 {
	if math.IsNaN(contrast) {
		contrast = 0
	}
	contrast = clampFloat(contrast, -255, 255)
	factor := (259 * (contrast + 255)) / (255 * (259 - contrast))
	bias := 128 - 128*factor

	var table [256]uint8
	for i := range table {
		table[i] = uint8(clampFloat(float64(i)*factor+bias, 0, 255))
	}
	return table
}

// AdjustContrast maps R, G and B of every pixel through ContrastTable(contrast).
func AdjustContrast(img *Image, contrast float64) {
	table := ContrastTable(contrast)
	for x, y := range img.Coords() {
		i := img.offset(x, y)
		img.Pixels[i] = table[img.Pixels[i]]
		img.Pixels[i+1] = table[img.Pixels[i+1]]
		img.Pixels[i+2] = table[img.Pixels[i+2]]
	}
}

// Tint adds per-channel offsets, saturating at 255.
func Tint(img *Image, dr, dg, db int) error {
	if dr < 0 || dg < 0 || db < 0 {
		return fmt.Errorf("tint offsets (%d,%d,%d) must not be negative: %w", dr, dg, db, ErrInvalidParameter)
	}
	for x, y := range img.Coords() {
		i := img.offset(x, y)
		img.Pixels[i] = addSaturating(img.Pixels[i], dr)
		img.Pixels[i+1] = addSaturating(img.Pixels[i+1], dg)
		img.Pixels[i+2] = addSaturating(img.Pixels[i+2], db)
	}
	return nil
}

// Colorize shifts pixels close to cyan toward green: every pixel within
// colorizeThreshold of (0,255,255) gets R and B halved and G scaled by 1.25.
func Colorize(img *Image) {
	limit := colorizeThreshold * colorizeThreshold
	for x, y := range img.Coords() {
		px := img.At(x, y)
		if squareDistance(colorizeTarget, RGB{R: px.R, G: px.G, B: px.B}) >= limit {
			continue
		}
		px.R = saturate(float64(px.R) * 0.5)
		px.G = saturate(float64(px.G) * 1.25)
		px.B = saturate(float64(px.B) * 0.5)
		img.Set(x, y, px)
	}
}

// squareDistance is the squared Euclidean distance between two colors.
func squareDistance(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// saturate truncates v toward zero and clamps it to [0, 255].
func saturate(v float64) uint8 {
	return uint8(clampFloat(v, 0, 255))
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
