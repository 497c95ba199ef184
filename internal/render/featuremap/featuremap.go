// Package featuremap turns a 2-D tensor into a grid of unit cells colored
// by the tensor's own max-abs normalization.
package featuremap

import (
	"math"

	"github.com/killallgit/featureviz-api/internal/models"
	"github.com/killallgit/featureviz-api/internal/render/colormap"
)

// Limits bound the display box a grid is fitted into
type Limits struct {
	CompactMaxWidth  float64 `mapstructure:"compact_max_width"`
	SpectrogramWidth float64 `mapstructure:"spectrogram_width"`
	DefaultMaxWidth  float64 `mapstructure:"default_max_width"`
	DefaultMaxHeight float64 `mapstructure:"default_max_height"`
}

// DefaultLimits match the layout of the web view
var DefaultLimits = Limits{
	CompactMaxWidth:  128,
	SpectrogramWidth: 960,
	DefaultMaxWidth:  500,
	DefaultMaxHeight: 220,
}

// Options selects the display box
type Options struct {
	Compact     bool
	Spectrogram bool
	Limits      Limits
}

// Cell is one tensor element placed at (X, Y) = (column, row)
type Cell struct {
	X          int
	Y          int
	Value      float64
	Normalized float64
	Color      colormap.RGB
}

// Box is the display size in pixels
type Box struct {
	Width  float64
	Height float64
}

// Grid is a rendered feature map. The coordinate space is exactly
// Width x Height unit cells; Box scales it without distortion.
type Grid struct {
	Width   int
	Height  int
	AbsMax  float64
	Cells   []Cell
	Caption string
	Box     Box
}

// Empty reports whether there is nothing to draw
func (g Grid) Empty() bool {
	return len(g.Cells) == 0
}

// At returns the cell at column x, row y
func (g Grid) At(x, y int) Cell {
	return g.Cells[y*g.Width+x]
}

// Render normalizes layer by its own max-abs value and lays out one cell per
// element. Empty tensors render as an empty Grid. Missing cells of ragged
// rows and non-finite values count as 0.
func Render(layer models.LayerData, opts Options) Grid {
	if layer.Empty() {
		return Grid{}
	}

	height := layer.Rows()
	width := layer.Cols()

	absMax := 0.0
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			absMax = math.Max(absMax, math.Abs(valueAt(layer.Values, i, j)))
		}
	}

	cells := make([]Cell, 0, width*height)
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			v := valueAt(layer.Values, i, j)
			n := 0.0
			if absMax != 0 {
				n = v / absMax
			}
			cells = append(cells, Cell{X: j, Y: i, Value: v, Normalized: n, Color: colormap.Map(n)})
		}
	}

	return Grid{
		Width:   width,
		Height:  height,
		AbsMax:  absMax,
		Cells:   cells,
		Caption: layer.ShapeLabel(),
		Box:     fit(width, height, opts),
	}
}

func valueAt(values models.Matrix, i, j int) float64 {
	row := values[i]
	if j >= len(row) {
		return 0
	}
	v := row[j]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// fit scales the width x height coordinate space into the box for opts,
// keeping the row:column ratio.
func fit(width, height int, opts Options) Box {
	limits := opts.Limits
	if limits == (Limits{}) {
		limits = DefaultLimits
	}
	w, h := float64(width), float64(height)

	switch {
	case opts.Compact:
		return Box{Width: limits.CompactMaxWidth, Height: limits.CompactMaxWidth * h / w}
	case opts.Spectrogram:
		return Box{Width: limits.SpectrogramWidth, Height: limits.SpectrogramWidth * h / w}
	default:
		scale := math.Min(limits.DefaultMaxWidth/w, limits.DefaultMaxHeight/h)
		return Box{Width: w * scale, Height: h * scale}
	}
}
