package effects

import "fmt"

// offsetMargin is the band along the right and bottom edges that Offset never
// visits. It does not grow with the offset, so for offsets above it the
// lookahead bound check is what keeps reads in range.
const offsetMargin = 10

// Offset copies channel ch of the pixel offset pixels down and to the right
// into each pixel. Pixels within offsetMargin of the right or bottom edge are
// not visited, and pixels whose source falls outside [0,W-1) x [0,H-1) keep
// their value.
func Offset(img *Image, ch Channel, offset int) error {
	if err := ch.validate(); err != nil {
		return err
	}
	if offset < 0 {
		return fmt.Errorf("offset %d must not be negative: %w", offset, ErrInvalidParameter)
	}

	w, h := img.Width, img.Height
	if offset >= w-1 || offset >= h-1 {
		// every source would fall outside the image
		return nil
	}
	for x, y := range Coords(w-offsetMargin, h-offsetMargin) {
		sx, sy := x+offset, y+offset
		if sx >= w-1 || sy >= h-1 {
			continue
		}
		img.Pixels[img.offset(x, y)+int(ch)] = img.Pixels[img.offset(sx, sy)+int(ch)]
	}
	return nil
}

// OffsetRed shifts the red channel by offset pixels.
func OffsetRed(img *Image, offset int) error {
	return Offset(img, Red, offset)
}

// OffsetGreen shifts the green channel by offset pixels.
func OffsetGreen(img *Image, offset int) error {
	return Offset(img, Green, offset)
}

// OffsetBlue shifts the blue channel by offset pixels.
func OffsetBlue(img *Image, offset int) error {
	return Offset(img, Blue, offset)
}

// MultipleOffsets shifts two channels in opposite horizontal directions.
//
// Channel ch1 takes its value from (x+offset, y) when x+offset < W-1 and
// y+offset < H-1. Channel ch2 takes its value from (x-offset, y) when both
// x-offset and y-offset are strictly positive. The scan is row-major and in
// place, so ch2 reads pixels this call has already rewritten.
func MultipleOffsets(img *Image, offset int, ch1, ch2 Channel) error {
	if err := ch1.validate(); err != nil {
		return fmt.Errorf("first channel: %w", err)
	}
	if err := ch2.validate(); err != nil {
		return fmt.Errorf("second channel: %w", err)
	}
	if offset < 0 {
		return fmt.Errorf("offset %d must not be negative: %w", offset, ErrInvalidParameter)
	}

	w, h := img.Width, img.Height
	for x, y := range img.Coords() {
		i := img.offset(x, y)
		if x < w-1-offset && y < h-1-offset {
			img.Pixels[i+int(ch1)] = img.Pixels[img.offset(x+offset, y)+int(ch1)]
		}
		if x > offset && y > offset {
			img.Pixels[i+int(ch2)] = img.Pixels[img.offset(x-offset, y)+int(ch2)]
		}
	}
	return nil
}
