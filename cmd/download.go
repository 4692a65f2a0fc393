package cmd

import (
	"fmt"
	"os"
	"strings"

	"comic99/internal/domain"
	"comic99/internal/files"
	"comic99/internal/logger"
	"comic99/internal/site"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var downloadCmd = &cobra.Command{
	Use:   "download <url>",
	Short: "Download volumes of a comic book",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		log := logger.New(&domain.Config{LogLevel: logLevel})

		if !files.ValidFormat(format) {
			fmt.Fprintln(out, "Invalid format:", format)
			return
		}

		destDir := outputDirectory
		if destDir == "" {
			wd, err := os.Getwd()
			if err != nil {
				fmt.Fprintln(out, "Invalid location:", err)
				return
			}
			destDir = wd
		}

		if !useAria2 {
			if err := files.IsValidLocation(destDir); err != nil {
				fmt.Fprintln(out, "Invalid location:", err)
				return
			}
		}

		client, book, err := fetchBook(ctx, args[0])
		if err != nil {
			var unsupported *domain.UnsupportedSiteError
			if errors.As(err, &unsupported) {
				fmt.Fprintf(out, "Unsupported link! Supported sites: %s\n", strings.Join(site.Domains(), ", "))
				return
			}

			fmt.Fprintf(out, "Failed to get book from %q: %v\n", args[0], err)
			return
		}

		log.Debug().Str("book", book.Name).Str("site", client.String()).Int("volumes", len(book.Volumes)).Msg("read catalog")

		printVolumes(out, book)

		selection, err := selectVolumes(cmd.InOrStdin(), out, len(book.Volumes), volumeSelection, latest)
		if err != nil {
			fmt.Fprintf(out, "Invalid input: %v\n", err)
			return
		}

		o := volumeOutput{
			destDir: destDir,
			format:  format,
			naming:  naming,
			workers: workers,
		}

		for _, i := range selection {
			volume := book.Volumes[i-1]

			entries, err := resolveVolume(ctx, client, book, volume)
			if err != nil {
				fmt.Fprintf(out, "Failed to get pictures of 《%s》: %v\n", volume.Title, err)
				continue
			}

			fmt.Fprintln(out)

			if useAria2 {
				fmt.Fprintf(out, "Start to download %d pictures in 《%s》by aria2 ...\n", len(entries), volume.Title)
				if err := sendToAria2(ctx, aria2RPC, outputDirectory, entries); err != nil {
					log.Error().Err(err).Str("rpc", aria2RPC).Msg("error calling aria2")
					fmt.Fprintln(out, "Failed to call Aria2")
					continue
				}
				fmt.Fprintln(out, "Finished")
				continue
			}

			fmt.Fprintf(out, "Start to download %d pictures in 《%s》...\n", len(entries), volume.Title)
			if err := fetchVolume(o, book, volume, entries, log); err != nil {
				fmt.Fprintf(out, "Failed to download 《%s》: %v\n", volume.Title, err)
				continue
			}
			fmt.Fprintln(out, "Finished")
		}
	},
}
