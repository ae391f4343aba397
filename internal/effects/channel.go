package effects

import "fmt"

// Channel selects one of the color channels of a pixel.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// String implements fmt.Stringer.
func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// ParseChannel accepts "red", "green", "blue", their initials "r", "g", "b"
// or the indexes "0", "1", "2".
func ParseChannel(s string) (Channel, error) {
	switch s {
	case "red", "r", "0":
		return Red, nil
	case "green", "g", "1":
		return Green, nil
	case "blue", "b", "2":
		return Blue, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrInvalidChannel)
}

func (c Channel) validate() error {
	if c < Red || c > Blue {
		return fmt.Errorf("channel %d must be 0, 1 or 2: %w", int(c), ErrInvalidChannel)
	}
	return nil
}

// Mode selects between the literal and the corrected behavior of effects with
// known quirks.
type Mode int

const (
	// Legacy keeps the historical output byte for byte.
	Legacy Mode = iota
	// Corrected applies the effect as its description intends.
	Corrected
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m == Corrected {
		return "corrected"
	}
	return "legacy"
}

// ParseMode accepts "legacy" or "corrected". The empty string means Legacy.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "legacy":
		return Legacy, nil
	case "corrected":
		return Corrected, nil
	}
	return Legacy, fmt.Errorf("mode %q must be legacy or corrected: %w", s, ErrInvalidParameter)
}
