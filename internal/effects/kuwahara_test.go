package effects

import (
	"errors"
	"image/color"
	"math/rand"
	"testing"
)

// newColumns builds a 2-row image whose red channel is reds[x] in column x.
func newColumns(reds ...uint8) *Image {
	img := New(len(reds), 2)
	for x, y := range img.Coords() {
		img.Set(x, y, color.RGBA{R: reds[x], A: 255})
	}
	return img
}

func newNoise(width, height int, seed int64) *Image {
	rng := rand.New(rand.NewSource(seed))
	img := New(width, height)
	rng.Read(img.Pixels)
	return img
}

func TestKuwahara_ZeroIsIdentity(t *testing.T) {
	img := newNoise(17, 11, 1)
	orig := img.Clone()
	if err := Kuwahara(img, 0); err != nil {
		t.Fatalf("Kuwahara failed: %v", err)
	}
	assertSamePixels(t, img, orig)
}

func TestKuwahara_SingleWindow(t *testing.T) {
	img := New(2, 2)
	img.Set(0, 0, color.RGBA{10, 0, 0, 1})
	img.Set(1, 0, color.RGBA{20, 4, 0, 2})
	img.Set(0, 1, color.RGBA{30, 0, 0, 3})
	img.Set(1, 1, color.RGBA{40, 7, 9, 4})

	if err := Kuwahara(img, 1); err != nil {
		t.Fatalf("Kuwahara failed: %v", err)
	}

	// One window covers the image; every pixel takes its truncated mean.
	for x, y := range img.Coords() {
		got := img.At(x, y)
		want := color.RGBA{25, 2, 2, uint8(y*2 + x + 1)}
		if got != want {
			t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, want)
		}
	}
}

func TestKuwahara_TiesPreferLeftWindow(t *testing.T) {
	// Windows over columns {0,1}, {1,2}, {2,3} have equal variance and means
	// 5, 15 and 25.
	img := newColumns(0, 10, 20, 30)

	if err := Kuwahara(img, 1); err != nil {
		t.Fatalf("Kuwahara failed: %v", err)
	}

	want := []uint8{5, 5, 15, 25}
	for x, y := range img.Coords() {
		if got := img.At(x, y).R; got != want[x] {
			t.Errorf("R at (%d,%d): got %d, want %d", x, y, got, want[x])
		}
	}
}

func TestKuwahara_TiesPreferTopWindows(t *testing.T) {
	// Rows 0, 10, 20: the windows over rows {0,1} and {1,2} have equal
	// variance, so row 1 picks between a top mean of 5 and a bottom mean of 15.
	img := New(3, 3)
	for x, y := range img.Coords() {
		img.Set(x, y, color.RGBA{R: uint8(10 * y), A: 255})
	}

	if err := Kuwahara(img, 1); err != nil {
		t.Fatalf("Kuwahara failed: %v", err)
	}

	want := []uint8{5, 5, 15}
	for x, y := range img.Coords() {
		if got := img.At(x, y).R; got != want[y] {
			t.Errorf("R at (%d,%d): got %d, want %d", x, y, got, want[y])
		}
	}
}

func TestKuwahara_PrefersLowVariance(t *testing.T) {
	img := newColumns(0, 0, 0, 200)

	if err := Kuwahara(img, 1); err != nil {
		t.Fatalf("Kuwahara failed: %v", err)
	}

	// Column 2 sits between a flat window and one straddling the edge; the
	// flat one wins. Column 3 only has the edge window.
	want := []uint8{0, 0, 0, 100}
	for x, y := range img.Coords() {
		if got := img.At(x, y).R; got != want[x] {
			t.Errorf("R at (%d,%d): got %d, want %d", x, y, got, want[x])
		}
	}
}

func TestKuwahara_MatchesSequentialReference(t *testing.T) {
	for _, num := range []int{1, 2, 4} {
		img := newNoise(41, 29, int64(num))
		want := referenceKuwahara(img, num)

		if err := Kuwahara(img, num); err != nil {
			t.Fatalf("Kuwahara(%d) failed: %v", num, err)
		}
		assertSamePixels(t, img, want)
	}
}

func TestKuwahara_InvalidWindow(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		num           int
	}{
		{"negative", 8, 8, -1},
		{"equal to width", 4, 10, 4},
		{"above height", 10, 3, 5},
		{"window leaves gap", 3, 8, 2},
		{"empty image", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := newNoise(tt.width, tt.height, 7)
			orig := img.Clone()
			if err := Kuwahara(img, tt.num); !errors.Is(err, ErrInvalidWindow) {
				t.Fatalf("got %v, want ErrInvalidWindow", err)
			}
			assertSamePixels(t, img, orig)
		})
	}
}

// referenceKuwahara is a direct single-threaded rendition of the filter that
// returns a new image.
func referenceKuwahara(src *Image, num int) *Image {
	k := num + 1
	w, h := src.Width-num, src.Height-num
	type stat struct {
		r, g, b uint8
		v       float64
	}
	stats := make([]stat, w*h)
	for ay := 0; ay < h; ay++ {
		for ax := 0; ax < w; ax++ {
			var sr, sg, sb int
			for j := 0; j < k; j++ {
				for i := 0; i < k; i++ {
					p := src.At(ax+i, ay+j)
					sr += int(p.R)
					sg += int(p.G)
					sb += int(p.B)
				}
			}
			n := float64(k * k)
			s := stat{r: uint8(float64(sr) / n), g: uint8(float64(sg) / n), b: uint8(float64(sb) / n)}
			var vr, vg, vb float64
			for j := 0; j < k; j++ {
				for i := 0; i < k; i++ {
					p := src.At(ax+i, ay+j)
					vr += (float64(p.R) - float64(s.r)) * (float64(p.R) - float64(s.r))
					vg += (float64(p.G) - float64(s.g)) * (float64(p.G) - float64(s.g))
					vb += (float64(p.B) - float64(s.b)) * (float64(p.B) - float64(s.b))
				}
			}
			s.v = vr/float64(k)/float64(k) + vg/float64(k)/float64(k) + vb/float64(k)/float64(k)
			stats[ay*w+ax] = s
		}
	}

	out := src.Clone()
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			var cands []stat
			if x >= num && y >= num {
				cands = append(cands, stats[(y-num)*w+x-num])
			}
			if x < w && y >= num {
				cands = append(cands, stats[(y-num)*w+x])
			}
			if x >= num && y < h {
				cands = append(cands, stats[y*w+x-num])
			}
			if x < w && y < h {
				cands = append(cands, stats[y*w+x])
			}
			best := cands[0]
			for _, c := range cands[1:] {
				if c.v < best.v {
					best = c
				}
			}
			p := out.At(x, y)
			p.R, p.G, p.B = best.r, best.g, best.b
			out.Set(x, y, p)
		}
	}
	return out
}
