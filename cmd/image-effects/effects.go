package main

import (
	"fmt"

	"github.com/ironsheep/image-effects-mcp/internal/effects"
)

// effectOptions carries every apply flag; each effect reads the ones it needs.
type effectOptions struct {
	channel   string
	channel2  string
	offset    int
	amount    int
	contrast  float64
	r, g, b   int
	strips    int
	radius    int
	corrected bool
}

func (o effectOptions) mode() effects.Mode {
	if o.corrected {
		return effects.Corrected
	}
	return effects.Legacy
}

type effectEntry struct {
	name  string
	usage string
	apply func(img *effects.Image, o effectOptions) error
}

var effectTable = []effectEntry{
	{"offset", "--channel --offset", func(img *effects.Image, o effectOptions) error {
		ch, err := effects.ParseChannel(o.channel)
		if err != nil {
			return err
		}
		return effects.Offset(img, ch, o.offset)
	}},
	{"multiple_offsets", "--channel --channel2 --offset", func(img *effects.Image, o effectOptions) error {
		ch1, err := effects.ParseChannel(o.channel)
		if err != nil {
			return err
		}
		ch2, err := effects.ParseChannel(o.channel2)
		if err != nil {
			return err
		}
		return effects.MultipleOffsets(img, o.offset, ch1, ch2)
	}},
	{"primary", "[--corrected]", func(img *effects.Image, o effectOptions) error {
		effects.Primary(img, o.mode())
		return nil
	}},
	{"solarize", "", func(img *effects.Image, o effectOptions) error {
		effects.Solarize(img)
		return nil
	}},
	{"brightness", "--amount", func(img *effects.Image, o effectOptions) error {
		if o.amount < 0 || o.amount > 255 {
			return fmt.Errorf("amount %d outside 0-255: %w", o.amount, effects.ErrInvalidParameter)
		}
		effects.IncBrightness(img, uint8(o.amount))
		return nil
	}},
	{"contrast", "--contrast", func(img *effects.Image, o effectOptions) error {
		effects.AdjustContrast(img, o.contrast)
		return nil
	}},
	{"colorize", "", func(img *effects.Image, o effectOptions) error {
		effects.Colorize(img)
		return nil
	}},
	{"tint", "--r --g --b", func(img *effects.Image, o effectOptions) error {
		return effects.Tint(img, o.r, o.g, o.b)
	}},
	{"halftone", "[--corrected]", func(img *effects.Image, o effectOptions) error {
		effects.Halftone(img, o.mode())
		return nil
	}},
	{"horizontal_strips", "--strips", func(img *effects.Image, o effectOptions) error {
		return effects.HorizontalStrips(img, o.strips)
	}},
	{"vertical_strips", "--strips", func(img *effects.Image, o effectOptions) error {
		return effects.VerticalStrips(img, o.strips)
	}},
	{"kuwahara", "--radius", func(img *effects.Image, o effectOptions) error {
		return effects.Kuwahara(img, o.radius)
	}},
}

func lookupEffect(name string) (effectEntry, error) {
	for _, e := range effectTable {
		if e.name == name {
			return e, nil
		}
	}
	return effectEntry{}, fmt.Errorf("unknown effect %q (see image-effects list)", name)
}
