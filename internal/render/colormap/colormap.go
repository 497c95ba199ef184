// Package colormap maps normalized tensor values onto a diverging
// orange-white-blue scale.
package colormap

import (
	"fmt"
	"image/color"
	"math"
)

// RGB holds unclamped channel values. Inputs outside [-1, 1] extrapolate
// linearly, so channels may leave [0, 255].
type RGB struct {
	R, G, B float64
}

var (
	// Warm is the color of -1
	Warm = RGB{R: 255, G: 128, B: 51}
	// White is the color of 0
	White = RGB{R: 255, G: 255, B: 255}
	// Cool is the color of +1
	Cool = RGB{R: 51, G: 128, B: 255}
)

// Map returns the color for a value normalized into [-1, 1].
// Map(-v) is Map(v) with the red and blue channels swapped.
func Map(v float64) RGB {
	if v >= 0 {
		return lerp(White, Cool, v)
	}
	return lerp(White, Warm, -v)
}

func lerp(from, to RGB, t float64) RGB {
	return RGB{
		R: from.R + (to.R-from.R)*t,
		G: from.G + (to.G-from.G)*t,
		B: from.B + (to.B-from.B)*t,
	}
}

// RGBA converts to an opaque 8-bit color, clamping each channel
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 255}
}

// String formats the color as a CSS rgb() value
func (c RGB) String() string {
	cc := c.RGBA()
	return fmt.Sprintf("rgb(%d, %d, %d)", cc.R, cc.G, cc.B)
}

// Hex formats the color as #rrggbb
func (c RGB) Hex() string {
	cc := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", cc.R, cc.G, cc.B)
}

func channel(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.Round(v))
}
