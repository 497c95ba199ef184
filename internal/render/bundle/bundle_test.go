package bundle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/killallgit/featureviz-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResponse() models.APIResponse {
	return models.APIResponse{
		Predictions: []models.Prediction{{Class: "dog", Confidence: 0.8}, {Class: "rain", Confidence: 0.2}},
		Visualizations: models.NewVisualizationData(
			models.NamedLayer{Name: "layer1", Data: models.LayerData{Shape: []int{2, 2}, Values: models.Matrix{{1, -1}, {0.5, 0}}}},
			models.NamedLayer{Name: "layer1.conv", Data: models.LayerData{Shape: []int{1, 1}, Values: models.Matrix{{2}}}},
			models.NamedLayer{Name: "layer2", Data: models.LayerData{Shape: []int{0}, Values: models.Matrix{}}},
		),
		InputSpectogram: models.LayerData{Shape: []int{1, 2, 2}, Values: models.Matrix{{1, 2}, {3, 4}}},
		Waveform:        models.WaveformData{Values: models.Samples{0, 1, -1}, SampleRate: 22050, Duration: 5},
	}
}

func names(t *testing.T, dir string, paths []string) []string {
	t.Helper()
	out := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel(dir, p)
		require.NoError(t, err)
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func TestWrite_SVG(t *testing.T) {
	dir := t.TempDir()

	paths, err := Write(dir, testResponse(), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"spectrogram.svg",
		"waveform.svg",
		"legend.svg",
		"predictions.svg",
		"layers/layer1.svg",
		"layers/layer1.conv.svg",
		"index.html",
	}, names(t, dir, paths))

	_, err = os.Stat(filepath.Join(dir, "layers", "layer2.svg"))
	assert.True(t, os.IsNotExist(err), "empty layer must not be written")

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "Top Predictions")
}

func TestWrite_CollidingLayerNames(t *testing.T) {
	one := models.LayerData{Shape: []int{1, 1}, Values: models.Matrix{{1}}}
	resp := testResponse()
	resp.Visualizations = models.NewVisualizationData(
		models.NamedLayer{Name: "conv1/relu", Data: one},
		models.NamedLayer{Name: "conv1_relu", Data: one},
		models.NamedLayer{Name: "conv1 relu", Data: one},
	)

	dir := t.TempDir()
	paths, err := Write(dir, resp, Options{})
	require.NoError(t, err)

	var layerFiles []string
	for _, name := range names(t, dir, paths) {
		if strings.HasPrefix(name, "layers/") {
			layerFiles = append(layerFiles, name)
		}
	}
	assert.Equal(t, []string{
		"layers/conv1_relu.svg",
		"layers/conv1_relu_2.svg",
		"layers/conv1_relu_3.svg",
	}, layerFiles)

	for _, name := range layerFiles {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestWrite_PNG(t *testing.T) {
	dir := t.TempDir()

	paths, err := Write(dir, testResponse(), Options{Format: FormatPNG})
	require.NoError(t, err)

	got := names(t, dir, paths)
	assert.Contains(t, got, "spectrogram.png")
	assert.Contains(t, got, "legend.png")
	assert.Contains(t, got, "predictions.png")
	assert.Contains(t, got, "waveform.svg")

	data, err := os.ReadFile(filepath.Join(dir, "spectrogram.png"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "\x89PNG"))
}

func TestWrite_EmptyResponse(t *testing.T) {
	dir := t.TempDir()

	paths, err := Write(dir, models.APIResponse{}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"legend.svg", "index.html"}, names(t, dir, paths))
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	_, err := Write(t.TempDir(), testResponse(), Options{Format: "gif"})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"layer1.conv", "layer1.conv"},
		{"a/b", "a_b"},
		{"../etc", ".._etc"},
		{"..", "_"},
		{"", "_"},
		{"résumé layer", "r_sum_layer"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.in))
		})
	}
}
