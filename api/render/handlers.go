package render

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/featureviz-api/api/types"
	"github.com/killallgit/featureviz-api/internal/models"
	"github.com/killallgit/featureviz-api/internal/render/featuremap"
	"github.com/killallgit/featureviz-api/internal/render/layers"
	"github.com/killallgit/featureviz-api/internal/render/legend"
	"github.com/killallgit/featureviz-api/internal/render/view"
	"github.com/killallgit/featureviz-api/internal/render/waveform"
)

// maxTop bounds the predictions chart query
const maxTop = 1000

// Partition splits visualization names into main layers and internals
// @Summary      Partition layers
// @Description  Groups dotted layer names under their parent. Names with an empty parent are dropped.
// @Tags         render
// @Accept       json
// @Produce      json
// @Param        body body object true "Layer name to tensor mapping"
// @Success      200 {object} types.PartitionResponse
// @Failure      400 {object} types.ErrorResponse
// @Router       /api/v1/render/partition [post]
func Partition(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var viz models.VisualizationData
		if !decodeBody(c, &viz) {
			return
		}

		part := layers.Split(viz)
		resp := types.PartitionResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Main:         make([]string, 0, len(part.Main)),
			Internals:    make(map[string][]string, len(part.Internals)),
		}
		for _, m := range part.Main {
			resp.Main = append(resp.Main, m.Name)
		}
		for parent := range part.Internals {
			for _, child := range part.InternalsOf(parent) {
				resp.Internals[parent] = append(resp.Internals[parent], child.Name)
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}

// FeatureMap renders one tensor as a heat map
// @Summary      Render a feature map
// @Description  Normalizes the tensor by its own max-abs value. An empty tensor yields 204.
// @Tags         render
// @Accept       json
// @Produce      image/svg+xml,image/png
// @Param        body body models.LayerData true "Tensor"
// @Param        format query string false "svg or png" Enums(svg, png) default(svg)
// @Param        compact query bool false "Internal layer sizing"
// @Param        spectrogram query bool false "Input spectrogram sizing"
// @Param        title query string false "Title, defaults to the shape label"
// @Success      200 {file} binary
// @Success      204 "Nothing to draw"
// @Failure      400 {object} types.ErrorResponse
// @Router       /api/v1/render/featuremap [post]
func FeatureMap(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		format, ok := queryFormat(c, formatSVG, formatPNG)
		if !ok {
			return
		}
		compact, ok := queryBool(c, "compact")
		if !ok {
			return
		}
		spectrogram, ok := queryBool(c, "spectrogram")
		if !ok {
			return
		}

		var layer models.LayerData
		if !decodeBody(c, &layer) {
			return
		}

		grid := featuremap.Render(layer, featuremap.Options{
			Compact:     compact,
			Spectrogram: spectrogram,
			Limits:      deps.ViewOptions.Limits,
		})
		title := c.DefaultQuery("title", grid.Caption)

		var buf bytes.Buffer
		var err error
		if format == formatPNG {
			err = featuremap.WritePNG(&buf, grid, title)
		} else {
			err = featuremap.WriteSVG(&buf, grid, title)
		}
		if err != nil {
			renderFailed(c, err)
			return
		}
		sendRendered(c, format, &buf)
	}
}

// Waveform renders audio samples as an SVG path
// @Summary      Render a waveform
// @Description  Non-finite samples are skipped. No finite samples yields 204.
// @Tags         render
// @Accept       json
// @Produce      image/svg+xml
// @Param        body body models.WaveformData true "Samples"
// @Param        format query string false "svg" Enums(svg) default(svg)
// @Success      200 {file} binary
// @Success      204 "Nothing to draw"
// @Failure      400 {object} types.ErrorResponse
// @Router       /api/v1/render/waveform [post]
func Waveform(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		format, ok := queryFormat(c, formatSVG)
		if !ok {
			return
		}

		var data models.WaveformData
		if !decodeBody(c, &data) {
			return
		}

		vp := deps.ViewOptions.Viewport
		if vp.Width <= 0 || vp.Height <= 0 {
			vp = waveform.DefaultViewport
		}

		var buf bytes.Buffer
		if err := waveform.WriteSVG(&buf, waveform.RenderIn(vp, data.Values), waveform.Title(data)); err != nil {
			renderFailed(c, err)
			return
		}
		sendRendered(c, format, &buf)
	}
}

// Legend renders the color scale bar
// @Summary      Render the color legend
// @Tags         render
// @Produce      image/svg+xml,image/png
// @Param        width query int false "Bar width (at most 2048)" default(200)
// @Param        height query int false "Bar height (at most 256)" default(16)
// @Param        min query number false "Low label value" default(-1)
// @Param        max query number false "High label value" default(1)
// @Param        format query string false "svg or png" Enums(svg, png) default(svg)
// @Success      200 {file} binary
// @Failure      400 {object} types.ErrorResponse
// @Router       /api/v1/render/legend [get]
func Legend(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		format, ok := queryFormat(c, formatSVG, formatPNG)
		if !ok {
			return
		}
		width, ok := queryInt(c, "width", legend.DefaultWidth, legend.MaxWidth)
		if !ok {
			return
		}
		height, ok := queryInt(c, "height", legend.DefaultHeight, legend.MaxHeight)
		if !ok {
			return
		}
		lo, ok := queryFloat(c, "min", legend.DefaultMin)
		if !ok {
			return
		}
		hi, ok := queryFloat(c, "max", legend.DefaultMax)
		if !ok {
			return
		}

		l := legend.Render(width, height, lo, hi)

		var buf bytes.Buffer
		var err error
		if format == formatPNG {
			err = legend.WritePNG(&buf, l)
		} else {
			err = legend.WriteSVG(&buf, l)
		}
		if err != nil {
			renderFailed(c, err)
			return
		}
		sendRendered(c, format, &buf)
	}
}

// Predictions renders ranked predictions as a bar chart
// @Summary      Render the predictions chart
// @Description  Bars keep the input order. An empty list yields 204.
// @Tags         render
// @Accept       json
// @Produce      image/svg+xml,image/png
// @Param        body body []models.Prediction true "Predictions"
// @Param        format query string false "svg or png" Enums(svg, png) default(svg)
// @Param        top query int false "Keep only the first N predictions"
// @Success      200 {file} binary
// @Success      204 "Nothing to draw"
// @Failure      400 {object} types.ErrorResponse
// @Router       /api/v1/render/predictions [post]
func Predictions(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		format, ok := queryFormat(c, formatSVG, formatPNG)
		if !ok {
			return
		}
		top, ok := queryInt(c, "top", 0, maxTop)
		if !ok {
			return
		}

		var preds []models.Prediction
		if !decodeBody(c, &preds) {
			return
		}
		if top > 0 {
			preds = (&models.APIResponse{Predictions: preds}).Top(top)
		}

		var buf bytes.Buffer
		if err := view.WritePredictionsChart(&buf, preds, format); err != nil {
			renderFailed(c, err)
			return
		}
		sendRendered(c, format, &buf)
	}
}

// View renders a full classifier response as an HTML page
// @Summary      Render the result page
// @Tags         render
// @Accept       json
// @Produce      html
// @Param        body body models.APIResponse true "Classifier response"
// @Success      200 {string} string "HTML page"
// @Failure      400 {object} types.ErrorResponse
// @Router       /api/v1/render/view [post]
func View(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var resp models.APIResponse
		if !decodeBody(c, &resp) {
			return
		}
		if err := resp.Validate(); err != nil {
			types.SendError(c, err)
			return
		}

		var buf bytes.Buffer
		if err := view.Render(&buf, view.Build(resp, deps.ViewOptions)); err != nil {
			renderFailed(c, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	}
}
