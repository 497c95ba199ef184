package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const savedResponse = `{
	"predictions": [{"class": "dog_bark", "confidence": 0.82}, {"class": "rain", "confidence": 0.1}],
	"visualizations": {
		"layer1": {"shape": [2, 2], "values": [[0.1, -0.2], [0.3, NaN]]},
		"layer1.conv1": {"shape": [2, 2], "values": [[1, 0], [0, -1]]}
	},
	"input_spectogram": {"shape": [2, 3], "values": [[-1, 0, 1], [0.5, 0.25, Infinity]]},
	"waveform": {"values": [0.1, -0.3, 0.2], "sample_rate": 22050, "duration": 1.5}
}`

func executeRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetContext(context.Background())
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRenderCommand(t *testing.T) {
	input := filepath.Join(t.TempDir(), "response.json")
	require.NoError(t, os.WriteFile(input, []byte(savedResponse), 0644))

	tests := []struct {
		name      string
		args      func(dir string) []string
		stdin     string
		wantFiles []string
	}{
		{
			name: "svg from file",
			args: func(dir string) []string {
				return []string{"render", input, "-o", dir, "--format", "svg"}
			},
			wantFiles: []string{"spectrogram.svg", "waveform.svg", "legend.svg", "predictions.svg",
				"layers/layer1.svg", "layers/layer1.conv1.svg", "index.html"},
		},
		{
			name: "png from stdin",
			args: func(dir string) []string {
				return []string{"render", "-", "-o", dir, "--format", "png"}
			},
			stdin:     savedResponse,
			wantFiles: []string{"spectrogram.png", "waveform.svg", "legend.png", "layers/layer1.png", "index.html"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			out, err := executeRoot(t, tt.stdin, tt.args(dir)...)
			require.NoError(t, err)

			for _, name := range tt.wantFiles {
				path := filepath.Join(dir, name)
				assert.FileExists(t, path)
				assert.Contains(t, out, path)
			}
		})
	}
}

func TestRenderCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"predictions": [`), 0644))

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing file", args: []string{"render", filepath.Join(dir, "missing.json"), "-o", dir}},
		{name: "malformed json", args: []string{"render", bad, "-o", dir}},
		{name: "unsupported format", args: []string{"render", "-", "-o", dir, "--format", "gif"}},
		{name: "no arguments", args: []string{"render"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeRoot(t, savedResponse, tt.args...)
			assert.Error(t, err)
		})
	}
}
