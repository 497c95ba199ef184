package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/killallgit/featureviz-api/internal/models"
	"github.com/killallgit/featureviz-api/internal/render/bundle"
	"github.com/killallgit/featureviz-api/pkg/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	outputDir    string
	outputFormat string
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render <response.json>",
	Short: "Render a saved classifier response",
	Long: `Render a classifier response saved as JSON into a directory of images
and a standalone index.html.

The file may contain NaN and Infinity literals. Use "-" to read from stdin.

Example:
  featureviz render response.json
  featureviz render response.json -o out --format png
  curl -s ... | featureviz render -`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	addOutputFlags(renderCmd)
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputDir, "output", "o", "featureviz-out", "output directory")
	cmd.Flags().StringVar(&outputFormat, "format", bundle.FormatSVG, "image format (svg, png)")
}

func runRender(cmd *cobra.Command, args []string) error {
	resp, err := readResponse(cmd, args[0])
	if err != nil {
		return err
	}
	return writeBundle(cmd, *resp)
}

func readResponse(cmd *cobra.Command, path string) (*models.APIResponse, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening response: %w", err)
		}
		defer f.Close()
		r = f
	}

	resp, err := models.DecodeResponse(r)
	if err != nil {
		return nil, err
	}
	if err := resp.Validate(); err != nil {
		return nil, err
	}
	return resp, nil
}

func writeBundle(cmd *cobra.Command, resp models.APIResponse) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	paths, err := bundle.Write(outputDir, resp, bundle.Options{
		Format: outputFormat,
		View:   viewOptions(cfg.Render),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range paths {
		fmt.Fprintln(out, p)
	}
	log.WithFields(log.Fields{"dir": outputDir, "files": len(paths)}).Info("Render complete")
	return nil
}
