package cmd

import (
	"fmt"
	"os"

	"github.com/killallgit/featureviz-api/pkg/config"
	"github.com/killallgit/featureviz-api/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// skipConfig marks commands that run without loading configuration
const skipConfig = "skip-config"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "featureviz",
	Short: "Audio CNN feature visualizer",
	Long: `Featureviz - classify audio clips and look inside the network

Sends WAV audio to a remote convolutional classifier and renders what comes
back: the top predictions, the input spectrogram, the waveform and the
activations of every convolutional layer.

Features:
  • Web view with upload form and result page
  • JSON and image render endpoints (SVG, PNG)
  • Offline rendering of saved classifier responses
  • Stored results in a local sqlite database`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// loadConfig initializes configuration and logging before a command runs
func loadConfig(cmd *cobra.Command, args []string) error {
	if _, ok := cmd.Annotations[skipConfig]; ok {
		return nil
	}

	if err := config.Init(); err != nil {
		return fmt.Errorf("error initializing config: %w", err)
	}

	if jsonLogs, _ := cmd.Flags().GetBool("json-logs"); jsonLogs {
		viper.Set("logging.format", "json")
	}

	return logging.Setup(config.GetString("logging.level"), config.GetString("logging.format"))
}
