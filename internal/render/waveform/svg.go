package waveform

import (
	"fmt"
	"html"
	"io"
	"strings"
)

const (
	baselineStroke = "#d6d3d1"
	traceStroke    = "#2563eb"
)

// SVG returns the path as a standalone SVG document with the reference line
// drawn behind the trace. An empty path yields "".
func SVG(p Path, title string) string {
	if p.Empty() {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" preserveAspectRatio="xMidYMid meet">`,
		trim(p.Viewport.Width), trim(p.Viewport.Height))
	if title != "" {
		fmt.Fprintf(&b, "<title>%s</title>", html.EscapeString(title))
	}
	fmt.Fprintf(&b, `<path d="%s" stroke="%s" stroke-width="1"/>`, p.BaselineD(), baselineStroke)
	fmt.Fprintf(&b, `<path d="%s" fill="none" stroke="%s" stroke-width="2" stroke-linejoin="round" stroke-linecap="round"/>`,
		p.D(), traceStroke)
	b.WriteString("</svg>")
	return b.String()
}

// WriteSVG writes SVG(p, title) to w
func WriteSVG(w io.Writer, p Path, title string) error {
	_, err := io.WriteString(w, SVG(p, title))
	return err
}
