package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/killallgit/featureviz-api/api/classify"
	"github.com/killallgit/featureviz-api/internal/services/inference"
	"github.com/killallgit/featureviz-api/pkg/config"
	"github.com/spf13/cobra"
)

var classifyURL string

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <file.wav>",
	Short: "Classify a WAV file and render the result",
	Long: `Send a WAV file to the classifier, save its response as response.json
and render it like the render command does.

Example:
  featureviz classify dog.wav
  featureviz classify dog.wav -o out --format png`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	addOutputFlags(classifyCmd)
	classifyCmd.Flags().StringVar(&classifyURL, "url", "", "classifier URL (overrides config)")
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	path := args[0]
	if !classify.IsWAV(path) {
		return fmt.Errorf("%s: only .wav files are accepted", path)
	}
	audio, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading audio: %w", err)
	}

	clientCfg := classifierConfig(cfg.Inference)
	if classifyURL != "" {
		clientCfg.URL = classifyURL
	}

	resp, err := inference.NewClient(clientCfg).Classify(cmd.Context(), audio)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	raw, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	responsePath := filepath.Join(outputDir, "response.json")
	if err := os.WriteFile(responsePath, raw, 0644); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), responsePath)

	return writeBundle(cmd, *resp)
}
