package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-effects-mcp/internal/effects"
)

// FromImage copies any image.Image into a new effects.Image with straight
// (non-premultiplied) alpha. The result is anchored at the origin whatever
// src.Bounds().Min is.
func FromImage(src image.Image) *effects.Image {
	nrgba := imaging.Clone(src)
	b := nrgba.Bounds()
	img, err := effects.FromPixels(b.Dx(), b.Dy(), nrgba.Pix)
	if err != nil {
		// imaging.Clone always returns a tightly packed buffer.
		panic(fmt.Sprintf("imaging: unexpected clone layout: %v", err))
	}
	return img
}

// ToNRGBA copies img into a new *image.NRGBA.
func ToNRGBA(img *effects.Image) *image.NRGBA {
	out := image.NewNRGBA(img.Bounds())
	copy(out.Pix, img.Pixels)
	return out
}

// Save encodes img to path. The format is chosen from the file extension.
func Save(img *effects.Image, path string) error {
	if err := imaging.Save(ToNRGBA(img), path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
