package effects

import (
	"fmt"

	"github.com/anthonynsimon/bild/parallel"
)

// windowStat summarizes one k x k window: its truncated mean color and the
// sum over R, G and B of the per-channel variance around that mean.
type windowStat struct {
	avg      RGB
	variance float64
}

// statGrid holds one windowStat per valid window anchor, row-major.
type statGrid struct {
	width, height int
	stats         []windowStat
}

func (g *statGrid) at(x, y int) windowStat {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		panic(fmt.Sprintf("effects: window anchor (%d,%d) outside %dx%d grid", x, y, g.width, g.height))
	}
	return g.stats[y*g.width+x]
}

// Kuwahara applies an edge-preserving smoothing filter. Each pixel takes the
// mean color of whichever of the four (num+1)x(num+1) windows touching it
// has the lowest variance.
//
// num must satisfy 2*num <= min(W, H) so that every pixel has at least one
// window that fits inside the image; otherwise ErrInvalidWindow is returned and
// the image is not modified. num == 0 leaves the image unchanged.
func Kuwahara(img *Image, num int) error {
	w, h := img.Width, img.Height
	switch {
	case num < 0:
		return fmt.Errorf("window radius %d must not be negative: %w", num, ErrInvalidWindow)
	case num >= w || num >= h:
		return fmt.Errorf("window radius %d must be below image size %dx%d: %w", num, w, h, ErrInvalidWindow)
	case 2*num > w || 2*num > h:
		return fmt.Errorf("window radius %d leaves pixels of a %dx%d image without a window: %w", num, w, h, ErrInvalidWindow)
	}

	grid := windowStats(img, num)

	// The stats grid is complete here: parallel.Line joins every worker
	// before returning.
	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				best, ok := selectWindow(grid, num, x, y)
				if !ok {
					panic(fmt.Sprintf("effects: no window covers pixel (%d,%d)", x, y))
				}
				i := img.offset(x, y)
				img.Pixels[i] = best.avg.R
				img.Pixels[i+1] = best.avg.G
				img.Pixels[i+2] = best.avg.B
			}
		}
	})
	return nil
}

// windowStats computes the statistics of every window anchored in
// [0, W-num) x [0, H-num).
func windowStats(img *Image, num int) *statGrid {
	grid := &statGrid{width: img.Width - num, height: img.Height - num}
	grid.stats = make([]windowStat, grid.width*grid.height)

	parallel.Line(grid.height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < grid.width; x++ {
				avg := windowMean(img, x, y, num+1)
				grid.stats[y*grid.width+x] = windowStat{
					avg:      avg,
					variance: windowVariance(img, x, y, num+1, avg),
				}
			}
		}
	})
	return grid
}

// windowMean returns the mean color of the k x k window at (x0, y0), each
// channel truncated to an integer.
func windowMean(img *Image, x0, y0, k int) RGB {
	var sumR, sumG, sumB uint64
	for i, j := range Coords(k, k) {
		px := img.At(x0+i, y0+j)
		sumR += uint64(px.R)
		sumG += uint64(px.G)
		sumB += uint64(px.B)
	}
	n := float64(k)
	return RGB{
		R: uint8(float64(sumR) / n / n),
		G: uint8(float64(sumG) / n / n),
		B: uint8(float64(sumB) / n / n),
	}
}

// windowVariance returns the summed per-channel variance of the k x k window
// at (x0, y0) around avg.
func windowVariance(img *Image, x0, y0, k int, avg RGB) float64 {
	var sumR, sumG, sumB float64
	for i, j := range Coords(k, k) {
		px := img.At(x0+i, y0+j)
		dr := float64(px.R) - float64(avg.R)
		dg := float64(px.G) - float64(avg.G)
		db := float64(px.B) - float64(avg.B)
		sumR += dr * dr
		sumG += dg * dg
		sumB += db * db
	}
	n := float64(k)
	return sumR/n/n + sumG/n/n + sumB/n/n
}

// selectWindow picks the lowest-variance window among those adjacent to
// (x, y). Ties keep the left operand: top-left over top-right, bottom-left
// over bottom-right, then the top pair over the bottom pair.
func selectWindow(grid *statGrid, num, x, y int) (windowStat, bool) {
	w, h := grid.width, grid.height // W-num, H-num

	var topLeft, topRight, bottomLeft, bottomRight *windowStat
	if x >= num && y >= num {
		s := grid.at(x-num, y-num)
		topLeft = &s
	}
	if x < w && y >= num {
		s := grid.at(x, y-num)
		topRight = &s
	}
	if x >= num && y < h {
		s := grid.at(x-num, y)
		bottomLeft = &s
	}
	if x < w && y < h {
		s := grid.at(x, y)
		bottomRight = &s
	}

	best := minVariance(minVariance(topLeft, topRight), minVariance(bottomLeft, bottomRight))
	if best == nil {
		return windowStat{}, false
	}
	return *best, true
}

func minVariance(lhs, rhs *windowStat) *windowStat {
	switch {
	case lhs == nil:
		return rhs
	case rhs == nil:
		return lhs
	case lhs.variance <= rhs.variance:
		return lhs
	default:
		return rhs
	}
}
