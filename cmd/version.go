package cmd

import (
	"fmt"
	"strings"

	"github.com/killallgit/featureviz-api/pkg/version"
	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Display detailed version information about featureviz.

This includes the version number, git commit hash, build time,
and runtime information.`,
	Annotations: map[string]string{skipConfig: ""},
	Run:         runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "print just the version number")
}

func runVersion(cmd *cobra.Command, args []string) {
	short, _ := cmd.Flags().GetBool("short")
	info := version.Get()

	if short {
		fmt.Fprintf(cmd.OutOrStdout(), "v%s\n", info.Version)
		return
	}

	// Print detailed version information
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, info.Name)
	fmt.Fprintln(out, strings.Repeat("-", 40))
	fmt.Fprintf(out, "Version:      v%s\n", info.Version)
	fmt.Fprintf(out, "Git Commit:   %s\n", info.GitCommit)
	fmt.Fprintf(out, "Build Time:   %s\n", info.BuildTime)
	fmt.Fprintf(out, "Go Version:   %s\n", info.GoVersion)
	fmt.Fprintf(out, "OS/Arch:      %s/%s\n", info.OS, info.Arch)
	fmt.Fprintln(out, strings.Repeat("-", 40))
}
