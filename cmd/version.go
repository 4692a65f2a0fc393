package cmd

import (
	"fmt"

	"comic99/internal/buildinfo"
	"comic99/internal/site"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version info",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Version:", buildinfo.Version)
		fmt.Fprintln(out, "Commit:", buildinfo.Commit)
		fmt.Fprintln(out, "Build date:", buildinfo.Date)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Supported sites:")
		for _, d := range site.Domains() {
			fmt.Fprintln(out, " -", d)
		}
	},
}
