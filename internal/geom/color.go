package geom

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrMalformedColor is returned when a color string is not of the form #RRGGBB.
var ErrMalformedColor = errors.New("malformed color")

// RGB is an opaque 8-bit per channel color.
type RGB struct {
	R, G, B uint8
}

var (
	Black = RGB{}
	Blue  = RGB{B: 255}
)

// ParseRGB parses a "#RRGGBB" string. Hex digits may be upper or lower case.
func ParseRGB(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("%w %q: want #RRGGBB", ErrMalformedColor, s)
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w %q: %v", ErrMalformedColor, s, err)
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MustParseRGB is like ParseRGB but panics on error. Intended for literals.
func MustParseRGB(s string) RGB {
	c, err := ParseRGB(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColor converts any color.Color, dropping alpha.
func FromColor(c color.Color) RGB {
	n := color.RGBAModel.Convert(c).(color.RGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// Hex renders the color as #RRGGBB.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) String() string { return strings.ToLower(c.Hex()) }

// RGBA8 returns the color as an opaque color.RGBA.
func (c RGB) RGBA8() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return c.RGBA8().RGBA()
}
