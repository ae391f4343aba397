// Package imaging connects the effects engine to files and to the server.
//
// It plays the decoder/encoder and host roles around package effects: images
// are decoded once into an effects.Image, kept as a per-path working copy that
// effects rewrite in place, and encoded back to a file or a base64 PNG preview.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward.
//
// # Thread Safety
//
// Workspace is safe for concurrent use. Each working copy is guarded by its own
// mutex and is only reachable inside the callback passed to Apply or View, so
// no effect call ever observes another in flight on the same image.
//
// # Color Representation
//
// Sampled colors are reported as:
//   - Hex: "#rrggbb" (alpha excluded)
//   - RGB and RGBA: 8-bit components
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Error Handling
//
// Functions return errors for unreadable or undecodable files, coordinates
// outside the image, and encoding failures. Errors from package effects are
// passed through wrapped, so errors.Is still matches its sentinels.
package imaging
