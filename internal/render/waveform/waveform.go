// Package waveform draws audio samples as a single SVG path inside a fixed
// viewport, centered on a flat reference line.
package waveform

import (
	"fmt"
	"math"
	"strings"

	"github.com/killallgit/featureviz-api/internal/models"
)

const (
	// DefaultWidth is the viewport width
	DefaultWidth = 600.0
	// DefaultHeight is the viewport height
	DefaultHeight = 300.0
	// amplitude keeps the trace inside 90% of the viewport height
	amplitude = 0.45
)

// Viewport is the fixed drawing area
type Viewport struct {
	Width  float64
	Height float64
}

// CenterY is the y of the reference line
func (v Viewport) CenterY() float64 {
	return v.Height / 2
}

// ScaleY is the maximum distance of the trace from CenterY
func (v Viewport) ScaleY() float64 {
	return v.Height * amplitude
}

// DefaultViewport is 600x300
var DefaultViewport = Viewport{Width: DefaultWidth, Height: DefaultHeight}

// Point is one path vertex
type Point struct {
	X float64
	Y float64
}

// Path is the rendered trace. It has one vertex per finite sample, in the
// samples' original order.
type Path struct {
	Viewport Viewport
	Points   []Point
	Min      float64
	Max      float64
}

// Empty reports whether there is nothing to draw
func (p Path) Empty() bool {
	return len(p.Points) == 0
}

// Render draws samples in the default viewport
func Render(samples []float64) Path {
	return RenderIn(DefaultViewport, samples)
}

// RenderIn filters out NaN and ±Inf, then maps sample i of n to
// x = i/(n-1)*width and scales the value range onto [centerY-scaleY,
// centerY+scaleY], max at the top. A single sample or a constant signal
// stays on the center line.
func RenderIn(vp Viewport, samples []float64) Path {
	valid := make([]float64, 0, len(samples))
	for _, s := range samples {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			continue
		}
		valid = append(valid, s)
	}
	if len(valid) == 0 {
		return Path{Viewport: vp}
	}

	lo, hi := valid[0], valid[0]
	for _, s := range valid[1:] {
		lo = math.Min(lo, s)
		hi = math.Max(hi, s)
	}
	span := hi - lo

	centerY := vp.CenterY()
	scaleY := vp.ScaleY()
	n := len(valid)

	points := make([]Point, n)
	for i, s := range valid {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1) * vp.Width
		}
		y := centerY
		if span > 0 {
			norm := (s - lo) / span
			y = centerY - (norm-0.5)*2*scaleY
		}
		points[i] = Point{X: x, Y: y}
	}

	return Path{Viewport: vp, Points: points, Min: lo, Max: hi}
}

// D returns the SVG path data, "M x y L x y ..." with two decimals
func (p Path) D() string {
	var b strings.Builder
	for i, pt := range p.Points {
		if i > 0 {
			b.WriteByte(' ')
		}
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&b, "%s %.2f %.2f", cmd, pt.X, pt.Y)
	}
	return b.String()
}

// BaselineD returns the path data of the reference line across the viewport
func (p Path) BaselineD() string {
	return fmt.Sprintf("M 0 %s H %s", trim(p.Viewport.CenterY()), trim(p.Viewport.Width))
}

// Title describes the clip, e.g. "5.00s * 22050Hz"
func Title(w models.WaveformData) string {
	return fmt.Sprintf("%.2fs * %sHz", w.Duration, trim(w.SampleRate))
}

func trim(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
