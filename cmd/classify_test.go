package cmd

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(savedResponse))
	}))
	defer server.Close()

	wav := filepath.Join(t.TempDir(), "bark.WAV")
	require.NoError(t, os.WriteFile(wav, []byte("RIFF....WAVEfmt "), 0644))

	dir := t.TempDir()
	out, err := executeRoot(t, "", "classify", wav, "--url", server.URL, "-o", dir, "--format", "svg")
	require.NoError(t, err)

	saved := filepath.Join(dir, "response.json")
	assert.Contains(t, out, saved)
	assert.FileExists(t, filepath.Join(dir, "index.html"))
	assert.FileExists(t, filepath.Join(dir, "layers", "layer1.conv1.svg"))

	// the saved response renders again offline
	again := t.TempDir()
	_, err = executeRoot(t, "", "render", saved, "-o", again)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(again, "spectrogram.svg"))
}

func TestClassifyCommand_Errors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	dir := t.TempDir()
	wav := filepath.Join(dir, "clip.wav")
	require.NoError(t, os.WriteFile(wav, []byte("RIFF"), 0644))
	mp3 := filepath.Join(dir, "clip.mp3")
	require.NoError(t, os.WriteFile(mp3, []byte("ID3"), 0644))

	tests := []struct {
		name string
		args []string
	}{
		{name: "not a wav file", args: []string{"classify", mp3, "--url", server.URL, "-o", dir}},
		{name: "missing file", args: []string{"classify", filepath.Join(dir, "nope.wav"), "--url", server.URL, "-o", dir}},
		{name: "classifier failure", args: []string{"classify", wav, "--url", server.URL, "-o", dir}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeRoot(t, "", tt.args...)
			assert.Error(t, err)
		})
	}
	assert.NoFileExists(t, filepath.Join(dir, "response.json"))
}
