package effects

import "errors"

var (
	// ErrInvalidImage reports a buffer whose length does not match its dimensions.
	ErrInvalidImage = errors.New("invalid image buffer")

	// ErrInvalidChannel reports a channel index outside {0, 1, 2}.
	ErrInvalidChannel = errors.New("invalid channel index")

	// ErrInvalidParameter reports a numeric parameter outside its accepted range.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidWindow reports a Kuwahara window that does not fit the image.
	ErrInvalidWindow = errors.New("invalid window size")
)
