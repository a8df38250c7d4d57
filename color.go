package main

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/chewxy/math32"
)

// RGB is a color with each channel normalized to [0,1].
type RGB struct {
	R, G, B float32
}

// HSV is a color with hue stored as a turn fraction in [0,1) and
// saturation/value in [0,1].
type HSV struct {
	H, S, V float32
}

// HSV converts using the standard max/min/delta formula. Achromatic colors
// report hue 0; the last meaningful hue is not preserved.
func (c RGB) HSV() HSV {
	max := math32.Max(math32.Max(c.R, c.G), c.B)
	min := math32.Min(math32.Min(c.R, c.G), c.B)
	delta := max - min

	hsv := HSV{V: max}
	if delta < 1e-5 {
		return hsv
	}
	if max > 0 {
		hsv.S = delta / max
	}

	switch {
	case c.R >= max:
		hsv.H = (c.G - c.B) / delta
	case c.G >= max:
		hsv.H = 2 + (c.B-c.R)/delta
	default:
		hsv.H = 4 + (c.R-c.G)/delta
	}
	hsv.H /= 6
	if hsv.H < 0 {
		hsv.H++
	}
	return hsv
}

// RGB converts using the sector formula; it inverts RGB.HSV up to rounding on
// non-degenerate inputs.
func (c HSV) RGB() RGB {
	ch := c.V * c.S
	x := ch * (1 - math32.Abs(math32.Mod(c.H*6, 2)-1))
	m := c.V - ch

	var r, g, b float32
	switch {
	case c.H < 1.0/6:
		r, g, b = ch, x, 0
	case c.H < 2.0/6:
		r, g, b = x, ch, 0
	case c.H < 3.0/6:
		r, g, b = 0, ch, x
	case c.H < 4.0/6:
		r, g, b = 0, x, ch
	case c.H < 5.0/6:
		r, g, b = x, 0, ch
	default:
		r, g, b = ch, 0, x
	}
	return RGB{r + m, g + m, b + m}
}

// Bytes returns the 8-bit channels, rounded to nearest rather than truncated
// so round-trips through HSV stay bias-free.
func (c RGB) Bytes() (r, g, b uint8) {
	return uint8(math32.Round(c.R * 255)), uint8(math32.Round(c.G * 255)), uint8(math32.Round(c.B * 255))
}

func rgbFromBytes(r, g, b uint8) RGB {
	return RGB{float32(r) / 255, float32(g) / 255, float32(b) / 255}
}

// Hex formats the color as six lowercase hex digits, "rrggbb".
func (c RGB) Hex() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("%02x%02x%02x", r, g, b)
}

// parseHexColor parses a six-digit "rrggbb" string, either case.
func parseHexColor(s string) (RGB, bool) {
	if len(s) != 6 {
		return RGB{}, false
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return rgbFromBytes(uint8(n>>16), uint8(n>>8), uint8(n)), true
}

// luminance is the WCAG relative luminance of a linear-ish sRGB triple, used
// to pick black or white readout text over the current color.
func luminance(c RGB) float32 {
	lin := func(v float32) float32 {
		if v <= 0.3928 {
			return v / 12.92
		}
		return math32.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

// brighten moves each channel toward white by factor, clamped to [0,1].
func brighten(c RGB, factor float32) RGB {
	f := func(v float32) float32 {
		return clamp32(v+(1-v)*factor, 0, 1)
	}
	return RGB{f(c.R), f(c.G), f(c.B)}
}

func clamp32(v, lo, hi float32) float32 {
	return math32.Min(math32.Max(v, lo), hi)
}

// NRGBA converts for use with ebiten's drawing calls.
func (c RGB) NRGBA() color.NRGBA {
	r, g, b := c.Bytes()
	return color.NRGBA{r, g, b, 0xff}
}

// hexColor builds a color.NRGBA from a 0xRRGGBBAA literal.
func hexColor(hex uint32) color.NRGBA {
	return color.NRGBA{
		uint8(hex >> 24),
		uint8(hex >> 16),
		uint8(hex >> 8),
		uint8(hex),
	}
}

func colorToRGB(c color.NRGBA) RGB {
	return rgbFromBytes(c.R, c.G, c.B)
}
