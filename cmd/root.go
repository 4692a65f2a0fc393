package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "comic99",
	Short: "Batch download comic books from 99manga.com, 99comic.com and 99mh.com.",
	Long: `Batch download comic books from 99manga.com, 99comic.com and 99mh.com.

The download command works without a configuration file. The monitor command
reads a configuration file provided using one of the following methods:
1. Use the --config <path> or -c <path> flag.
2. Place a config.yaml file in the default user configuration directory (e.g., ~/.config/comic99/).
3. Place a config.yaml file a folder inside your home directory (e.g., ~/.comic99/).
4. Place a config.yaml file in the directory of the binary.`,
	SilenceUsage: true,
}

func init() {
	initRootFlags()
	initDownloadFlags()

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(monitorCmd)
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
