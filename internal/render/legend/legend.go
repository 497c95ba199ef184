// Package legend renders the static color scale bar shown next to feature
// maps. Its bounds are declared by the caller and never read from data.
package legend

import (
	"fmt"
	"html"
	"image"
	"image/png"
	"io"
	"strconv"
	"strings"

	"github.com/killallgit/featureviz-api/internal/render/colormap"
)

// Defaults used by the web view
const (
	DefaultWidth  = 200
	DefaultHeight = 16
	DefaultMin    = -1.0
	DefaultMax    = 1.0
)

// Largest bar Render will build
const (
	MaxWidth  = 2048
	MaxHeight = 256
)

// Stop is a gradient stop
type Stop struct {
	Offset float64 // 0..1
	Color  colormap.RGB
}

// Legend is a horizontal warm-white-cool gradient bar
type Legend struct {
	Width     int
	Height    int
	Min       float64
	Max       float64
	Stops     []Stop
	LowLabel  string
	HighLabel string
}

// Render builds the legend. Non-positive sizes fall back to the defaults
// and oversized ones are clamped to MaxWidth and MaxHeight.
func Render(width, height int, min, max float64) Legend {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	width = minInt(width, MaxWidth)
	height = minInt(height, MaxHeight)
	return Legend{
		Width:  width,
		Height: height,
		Min:    min,
		Max:    max,
		Stops: []Stop{
			{Offset: 0, Color: colormap.Warm},
			{Offset: 0.5, Color: colormap.White},
			{Offset: 1, Color: colormap.Cool},
		},
		LowLabel:  fmt.Sprintf("Low (%s)", formatBound(min)),
		HighLabel: fmt.Sprintf("High (%s)", formatBound(max)),
	}
}

// Default is Render(200, 16, -1, 1)
func Default() Legend {
	return Render(DefaultWidth, DefaultHeight, DefaultMin, DefaultMax)
}

// SVG returns the legend as an SVG bar with its labels on either side
func SVG(l Legend) string {
	const labelWidth = 64
	total := l.Width + 2*labelWidth
	mid := float64(l.Height)/2 + 4

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		total, l.Height, total, l.Height)
	b.WriteString(`<defs><linearGradient id="colorscale" x1="0" x2="1" y1="0" y2="0">`)
	for _, s := range l.Stops {
		fmt.Fprintf(&b, `<stop offset="%s%%" stop-color="%s"/>`, formatBound(s.Offset*100), s.Color)
	}
	b.WriteString(`</linearGradient></defs>`)
	fmt.Fprintf(&b, `<text x="%d" y="%.1f" font-size="11" text-anchor="end" fill="#78716c">%s</text>`,
		labelWidth-6, mid, html.EscapeString(l.LowLabel))
	fmt.Fprintf(&b, `<rect x="%d" y="0" width="%d" height="%d" rx="%d" fill="url(#colorscale)" stroke="#a8a29e"/>`,
		labelWidth, l.Width, l.Height, l.Height/2)
	fmt.Fprintf(&b, `<text x="%d" y="%.1f" font-size="11" fill="#78716c">%s</text>`,
		labelWidth+l.Width+6, mid, html.EscapeString(l.HighLabel))
	b.WriteString("</svg>")
	return b.String()
}

// WriteSVG writes SVG(l) to w
func WriteSVG(w io.Writer, l Legend) error {
	_, err := io.WriteString(w, SVG(l))
	return err
}

// Image samples the color map across [-1, 1], one column per pixel
func Image(l Legend) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
	for x := 0; x < l.Width; x++ {
		v := -1.0
		if l.Width > 1 {
			v = -1 + 2*float64(x)/float64(l.Width-1)
		}
		c := colormap.Map(v).RGBA()
		for y := 0; y < l.Height; y++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// WritePNG encodes Image(l) as PNG
func WritePNG(w io.Writer, l Legend) error {
	return png.Encode(w, Image(l))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
