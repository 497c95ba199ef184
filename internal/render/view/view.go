// Package view assembles a classifier response into the page model shown by
// the web UI and the render command.
package view

import (
	"fmt"
	"html/template"

	"github.com/killallgit/featureviz-api/internal/labels"
	"github.com/killallgit/featureviz-api/internal/models"
	"github.com/killallgit/featureviz-api/internal/render/featuremap"
	"github.com/killallgit/featureviz-api/internal/render/layers"
	"github.com/killallgit/featureviz-api/internal/render/legend"
	"github.com/killallgit/featureviz-api/internal/render/waveform"
)

// DefaultTopN is the number of predictions listed on the page
const DefaultTopN = 3

// Options tune the page layout. Zero values fall back to defaults.
type Options struct {
	TopN     int
	Limits   featuremap.Limits
	Viewport waveform.Viewport
}

// PredictionRow is one line of the prediction list
type PredictionRow struct {
	Rank         int
	Class        string
	Label        string
	Glyph        string
	Confidence   float64
	PercentLabel string
	BarWidth     float64
	Leading      bool
}

// Panel is a rendered feature map with its heading
type Panel struct {
	Name    string
	Title   string
	Caption string
	Grid    featuremap.Grid
	SVG     template.HTML
}

// Empty reports whether the panel has nothing to draw
func (p Panel) Empty() bool {
	return p.Grid.Empty()
}

// LayerColumn is a main layer followed by its sorted internal layers
type LayerColumn struct {
	Main      Panel
	Internals []Panel
}

// WaveformPanel is the rendered audio trace
type WaveformPanel struct {
	Title string
	Path  waveform.Path
	SVG   template.HTML
}

// Page is everything the result view draws. It is a pure function of the
// response it was built from.
type Page struct {
	Predictions []PredictionRow
	Spectrogram Panel
	Waveform    WaveformPanel
	Layers      []LayerColumn
	Legend      legend.Legend
	LegendSVG   template.HTML
}

// Build lays out resp for display
func Build(resp models.APIResponse, opts Options) Page {
	opts = withDefaults(opts)

	page := Page{
		Predictions: predictionRows(resp.Top(opts.TopN)),
		Spectrogram: panel("input_spectogram", resp.InputSpectogram.ShapeLabel(), resp.InputSpectogram,
			featuremap.Options{Spectrogram: true, Limits: opts.Limits}),
		Legend: legend.Default(),
	}
	page.LegendSVG = template.HTML(legend.SVG(page.Legend))

	path := waveform.RenderIn(opts.Viewport, resp.Waveform.Values)
	page.Waveform = WaveformPanel{
		Title: waveform.Title(resp.Waveform),
		Path:  path,
	}
	page.Waveform.SVG = template.HTML(waveform.SVG(path, page.Waveform.Title))

	part := layers.Split(resp.Visualizations)
	for _, main := range part.Main {
		col := LayerColumn{
			Main: panel(main.Name, main.Name, main.Data, featuremap.Options{Limits: opts.Limits}),
		}
		for _, child := range part.InternalsOf(main.Name) {
			col.Internals = append(col.Internals, panel(child.Name, layers.ChildName(main.Name, child.Name),
				child.Data, featuremap.Options{Compact: true, Limits: opts.Limits}))
		}
		page.Layers = append(page.Layers, col)
	}

	return page
}

func withDefaults(opts Options) Options {
	if opts.TopN <= 0 {
		opts.TopN = DefaultTopN
	}
	if opts.Limits == (featuremap.Limits{}) {
		opts.Limits = featuremap.DefaultLimits
	}
	if opts.Viewport.Width <= 0 || opts.Viewport.Height <= 0 {
		opts.Viewport = waveform.DefaultViewport
	}
	return opts
}

func predictionRows(preds []models.Prediction) []PredictionRow {
	rows := make([]PredictionRow, len(preds))
	for i, p := range preds {
		rows[i] = PredictionRow{
			Rank:         i + 1,
			Class:        p.Class,
			Label:        p.DisplayClass(),
			Glyph:        labels.Glyph(p.Class),
			Confidence:   p.Confidence,
			PercentLabel: fmt.Sprintf("%.1f%%", p.Percent()),
			BarWidth:     p.Percent(),
			Leading:      i == 0,
		}
	}
	return rows
}

func panel(name, title string, data models.LayerData, opts featuremap.Options) Panel {
	grid := featuremap.Render(data, opts)
	return Panel{
		Name:    name,
		Title:   title,
		Caption: grid.Caption,
		Grid:    grid,
		SVG:     template.HTML(featuremap.SVG(grid, title)),
	}
}
