package featuremap

import (
	"fmt"
	"html"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const captionBand = 18

// SVG returns the grid as a standalone SVG document. An empty grid yields "".
func SVG(g Grid, title string) string {
	if g.Empty() {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%.0f" height="%.0f" preserveAspectRatio="none" shape-rendering="crispEdges">`,
		g.Width, g.Height, g.Box.Width, g.Box.Height)
	if title != "" {
		fmt.Fprintf(&b, "<title>%s</title>", html.EscapeString(title))
	}
	for _, c := range g.Cells {
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="1" height="1" fill="%s"/>`, c.X, c.Y, c.Color.Hex())
	}
	b.WriteString("</svg>")
	return b.String()
}

// WriteSVG writes SVG(g, title) to w
func WriteSVG(w io.Writer, g Grid, title string) error {
	_, err := io.WriteString(w, SVG(g, title))
	return err
}

// Image rasterizes the grid at one pixel per cell and scales it to the
// display box with nearest-neighbour sampling so cells stay square.
func Image(g Grid) image.Image {
	if g.Empty() {
		return nil
	}

	src := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			src.SetRGBA(x, y, g.At(x, y).Color.RGBA())
		}
	}

	w := uint(math.Max(1, math.Round(g.Box.Width)))
	h := uint(math.Max(1, math.Round(g.Box.Height)))
	return resize.Resize(w, h, src, resize.NearestNeighbor)
}

// WritePNG encodes the grid as PNG with the title drawn underneath.
// An empty grid writes nothing.
func WritePNG(w io.Writer, g Grid, title string) error {
	img := Image(g)
	if img == nil {
		return nil
	}
	if title != "" {
		img = withCaption(img, title)
	}
	return png.Encode(w, img)
}

func withCaption(img image.Image, text string) image.Image {
	face := basicfont.Face7x13
	dr := &font.Drawer{Face: face}
	tw := dr.MeasureString(text).Ceil()

	b := img.Bounds()
	width := b.Dx()
	if tw+8 > width {
		width = tw + 8
	}
	out := image.NewRGBA(image.Rect(0, 0, width, b.Dy()+captionBand))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(out, image.Rect((width-b.Dx())/2, 0, (width-b.Dx())/2+b.Dx(), b.Dy()), img, b.Min, draw.Src)

	dr.Dst = out
	dr.Src = image.NewUniform(color.RGBA{R: 68, G: 64, B: 60, A: 255})
	dr.Dot = fixed.Point26_6{
		X: fixed.I((width - tw) / 2),
		Y: fixed.I(b.Dy() + captionBand - 4),
	}
	dr.DrawString(text)
	return out
}
