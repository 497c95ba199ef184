package view

import (
	"errors"
	"fmt"
	"io"

	"github.com/killallgit/featureviz-api/internal/models"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrUnsupportedFormat is returned for output formats other than svg and png
var ErrUnsupportedFormat = errors.New("unsupported format")

var (
	leadingBar = drawing.Color{R: 79, G: 70, B: 229, A: 255}
	otherBar   = drawing.Color{R: 107, G: 114, B: 128, A: 255}
)

// ChartSize is the predictions chart canvas
var ChartSize = struct{ Width, Height int }{Width: 640, Height: 320}

// WritePredictionsChart draws preds as a ranked bar chart of confidence
// percentages. Nothing is written when preds is empty.
func WritePredictionsChart(w io.Writer, preds []models.Prediction, format string) error {
	provider, err := rendererFor(format)
	if err != nil {
		return err
	}
	if len(preds) == 0 {
		return nil
	}

	bars := make([]chart.Value, len(preds))
	for i, p := range preds {
		fill := otherBar
		if i == 0 {
			fill = leadingBar
		}
		bars[i] = chart.Value{
			Label: p.DisplayClass(),
			Value: p.Percent(),
			Style: chart.Style{FillColor: fill, StrokeColor: fill},
		}
	}

	barWidth := (ChartSize.Width - 80) / (2 * len(preds))
	if barWidth < 8 {
		barWidth = 8
	}

	bc := chart.BarChart{
		Title:      "Top Predictions",
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		Width:      ChartSize.Width,
		Height:     ChartSize.Height,
		BarWidth:   barWidth,
		Bars:       bars,
		YAxis: chart.YAxis{
			Name:  "confidence %",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
	}
	if err := bc.Render(provider, w); err != nil {
		return fmt.Errorf("rendering predictions chart: %w", err)
	}
	return nil
}

func rendererFor(format string) (chart.RendererProvider, error) {
	switch format {
	case "", "svg":
		return chart.SVG, nil
	case "png":
		return chart.PNG, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
