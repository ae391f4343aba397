// Package effects implements in-place raster effects over a flat RGBA pixel buffer.
//
// Every effect takes an *Image by exclusive reference, rewrites it synchronously
// and returns. No effect keeps a reference to the buffer after it returns.
//
// # Pixel Layout
//
// Pixel (x, y) occupies Pixels[4*(y*Width+x) : 4*(y*Width+x)+4] in R, G, B, A
// order. Coordinates are 0-based with the origin at the top-left corner.
//
// # Error Handling
//
// Invalid static parameters (a channel index outside {0,1,2}, a Kuwahara window
// that does not fit the image, a strip count below one) are checked before any
// pixel is touched and reported as errors wrapping one of the Err* values:
//
//	if err := effects.Kuwahara(img, 3); errors.Is(err, effects.ErrInvalidWindow) {
//	    ...
//	}
//
// Reading or writing a pixel outside the buffer is an internal iteration bug and
// panics.
//
// # Legacy and Corrected Modes
//
// Halftone and Primary reproduce two long-standing quirks of the engine they
// are compatible with. Mode selects between the literal behavior (Legacy) and
// the evident intent (Corrected).
//
// # Concurrency
//
// Effects are synchronous. Kuwahara splits each of its two passes across
// goroutines and joins the first pass completely before the second begins.
// Callers must not touch the Image from other goroutines during a call.
package effects
