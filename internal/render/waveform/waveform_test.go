package waveform

import (
	"math"
	"strings"
	"testing"

	"github.com/killallgit/featureviz-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Extremes(t *testing.T) {
	vp := DefaultViewport
	p := Render([]float64{0, 1, -1, 0.5})

	require.Len(t, p.Points, 4)
	assert.Equal(t, 0.0, p.Points[0].X)
	assert.Equal(t, vp.Width, p.Points[3].X)
	assert.Equal(t, vp.CenterY()-vp.ScaleY(), p.Points[1].Y)
	assert.Equal(t, vp.CenterY()+vp.ScaleY(), p.Points[2].Y)
	assert.Equal(t, vp.CenterY(), p.Points[0].Y)
	assert.Equal(t, -1.0, p.Min)
	assert.Equal(t, 1.0, p.Max)
}

func TestRender_EvenSpacing(t *testing.T) {
	p := Render([]float64{3, 1, 2, 5, 4})

	require.Len(t, p.Points, 5)
	for i, pt := range p.Points {
		assert.InDelta(t, float64(i)*150, pt.X, 1e-9)
	}
}

func TestRender_FiltersNonFinite(t *testing.T) {
	samples := []float64{math.NaN(), 1, math.Inf(1), -1, math.Inf(-1), 0}

	p := Render(samples)

	require.Len(t, p.Points, 3)
	assert.Equal(t, 15.0, p.Points[0].Y)
	assert.Equal(t, 285.0, p.Points[1].Y)
	assert.Equal(t, 150.0, p.Points[2].Y)
	assert.Equal(t, 300.0, p.Points[1].X)
}

func TestRender_Degenerate(t *testing.T) {
	tests := []struct {
		name       string
		samples    []float64
		wantPoints int
	}{
		{name: "nil", samples: nil, wantPoints: 0},
		{name: "only non-finite", samples: []float64{math.NaN(), math.Inf(1)}, wantPoints: 0},
		{name: "single sample", samples: []float64{0.7}, wantPoints: 1},
		{name: "constant", samples: []float64{0.2, 0.2, 0.2, 0.2}, wantPoints: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Render(tt.samples)
			require.Len(t, p.Points, tt.wantPoints)
			assert.Equal(t, tt.wantPoints == 0, p.Empty())
			for _, pt := range p.Points {
				assert.Equal(t, DefaultViewport.CenterY(), pt.Y)
				assert.False(t, math.IsNaN(pt.X))
			}
		})
	}

	single := Render([]float64{0.7})
	assert.Equal(t, Point{X: 0, Y: 150}, single.Points[0])
}

func TestRenderIn_CustomViewport(t *testing.T) {
	vp := Viewport{Width: 100, Height: 40}
	p := RenderIn(vp, []float64{-2, 2})

	assert.Equal(t, []Point{{X: 0, Y: 38}, {X: 100, Y: 2}}, p.Points)
}

func TestPath_D(t *testing.T) {
	p := Render([]float64{1, -1})

	assert.Equal(t, "M 0.00 15.00 L 600.00 285.00", p.D())
	assert.Equal(t, "M 0 150 H 600", p.BaselineD())
	assert.Equal(t, "", Render(nil).D())
}

func TestSVG(t *testing.T) {
	p := Render([]float64{1, -1, 0})

	svg := SVG(p, "clip")

	assert.Contains(t, svg, `viewBox="0 0 600 300"`)
	assert.Contains(t, svg, "<title>clip</title>")
	assert.Equal(t, 2, strings.Count(svg, "<path"))
	assert.Less(t, strings.Index(svg, "M 0 150 H 600"), strings.Index(svg, "M 0.00 15.00"))
	assert.Equal(t, "", SVG(Render(nil), "clip"))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "5.00s * 22050Hz", Title(models.WaveformData{Duration: 5, SampleRate: 22050}))
	assert.Equal(t, "1.23s * 44100Hz", Title(models.WaveformData{Duration: 1.2345, SampleRate: 44100}))
}
