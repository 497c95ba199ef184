// Package bundle writes every rendering of one classifier response to a
// directory: the images plus a standalone index.html.
package bundle

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/killallgit/featureviz-api/internal/models"
	"github.com/killallgit/featureviz-api/internal/render/featuremap"
	"github.com/killallgit/featureviz-api/internal/render/legend"
	"github.com/killallgit/featureviz-api/internal/render/view"
	"github.com/killallgit/featureviz-api/internal/render/waveform"
	log "github.com/sirupsen/logrus"
)

// Image formats
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ErrUnsupportedFormat is returned for formats other than svg and png
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Options control what is written
type Options struct {
	Format string
	View   view.Options
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileName turns a layer name into a safe file name stem
func FileName(name string) string {
	s := unsafeChars.ReplaceAllString(name, "_")
	if s == "" || s == "." || s == ".." {
		return "_"
	}
	return s
}

// Write renders resp into dir and returns the written paths in write order.
// Renderings with nothing to draw are skipped. The waveform is always SVG.
func Write(dir string, resp models.APIResponse, opts Options) ([]string, error) {
	format := opts.Format
	if format == "" {
		format = FormatSVG
	}
	if format != FormatSVG && format != FormatPNG {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := os.MkdirAll(filepath.Join(dir, "layers"), 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	w := &writer{dir: dir, stems: make(map[string]bool)}
	page := view.Build(resp, opts.View)

	w.grid("spectrogram", format, page.Spectrogram.Grid, page.Spectrogram.Title)

	w.file("waveform.svg", func(buf *bytes.Buffer) error {
		return waveform.WriteSVG(buf, page.Waveform.Path, page.Waveform.Title)
	})

	w.file("legend."+format, func(buf *bytes.Buffer) error {
		if format == FormatPNG {
			return legend.WritePNG(buf, page.Legend)
		}
		return legend.WriteSVG(buf, page.Legend)
	})

	w.file("predictions."+format, func(buf *bytes.Buffer) error {
		return view.WritePredictionsChart(buf, resp.Predictions, format)
	})

	for _, col := range page.Layers {
		w.grid(w.layerStem(col.Main.Name), format, col.Main.Grid, col.Main.Title)
		for _, internal := range col.Internals {
			w.grid(w.layerStem(internal.Name), format, internal.Grid, internal.Title)
		}
	}
	log.WithField("columns", len(page.Layers)).Debug("Rendered layers")

	w.file("index.html", func(buf *bytes.Buffer) error {
		return view.Render(buf, page)
	})

	return w.written, w.err
}

type writer struct {
	dir     string
	written []string
	err     error
	stems   map[string]bool
}

// layerStem maps a layer name to a unique path under layers/. Names that
// sanitize to an existing file get _2, _3, ... in encounter order.
func (w *writer) layerStem(name string) string {
	base := FileName(name)
	stem := base
	for i := 2; w.stems[stem]; i++ {
		stem = fmt.Sprintf("%s_%d", base, i)
	}
	w.stems[stem] = true
	return filepath.Join("layers", stem)
}

func (w *writer) grid(stem, format string, g featuremap.Grid, title string) {
	w.file(stem+"."+format, func(buf *bytes.Buffer) error {
		if format == FormatPNG {
			return featuremap.WritePNG(buf, g, title)
		}
		return featuremap.WriteSVG(buf, g, title)
	})
}

// file renders into memory and writes only non-empty output. The first
// error stops all later writes.
func (w *writer) file(name string, render func(*bytes.Buffer) error) {
	if w.err != nil {
		return
	}
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		w.err = fmt.Errorf("rendering %s: %w", name, err)
		return
	}
	if buf.Len() == 0 {
		log.WithField("file", name).Debug("Nothing to draw, skipping")
		return
	}
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		w.err = fmt.Errorf("writing %s: %w", path, err)
		return
	}
	w.written = append(w.written, path)
}
