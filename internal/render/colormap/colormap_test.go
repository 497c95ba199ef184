package colormap

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap_Anchors(t *testing.T) {
	assert.Equal(t, White, Map(0))
	assert.Equal(t, Cool, Map(1))
	assert.Equal(t, Warm, Map(-1))
	assert.Equal(t, "rgb(255, 255, 255)", Map(0).String())
}

func TestMap_Symmetry(t *testing.T) {
	for _, x := range []float64{0, 0.1, 0.25, 0.5, 0.73, 0.99, 1} {
		pos := Map(x)
		neg := Map(-x)
		assert.Equal(t, pos.R, neg.B, "x=%v", x)
		assert.Equal(t, pos.B, neg.R, "x=%v", x)
		assert.Equal(t, pos.G, neg.G, "x=%v", x)
	}
}

func TestMap_Midpoints(t *testing.T) {
	assert.Equal(t, RGB{R: 153, G: 191.5, B: 255}, Map(0.5))
	assert.Equal(t, RGB{R: 255, G: 191.5, B: 153}, Map(-0.5))
}

func TestMap_ExtrapolatesOutsideRange(t *testing.T) {
	c := Map(2)
	assert.Equal(t, -153.0, c.R)
	assert.Equal(t, color.RGBA{R: 0, G: 1, B: 255, A: 255}, c.RGBA())
}

func TestRGB_Formatting(t *testing.T) {
	assert.Equal(t, "rgb(51, 128, 255)", Cool.String())
	assert.Equal(t, "#ff8033", Warm.Hex())
	assert.Equal(t, color.RGBA{R: 153, G: 192, B: 255, A: 255}, Map(0.5).RGBA())
}
