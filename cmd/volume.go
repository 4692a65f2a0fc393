package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"comic99/internal/aria2"
	"comic99/internal/catalog"
	"comic99/internal/domain"
	"comic99/internal/download"
	"comic99/internal/files"
	"comic99/internal/logger"
	"comic99/internal/parse"
	"comic99/internal/sanitize"
	"comic99/internal/sharedhttp"
	"comic99/internal/site"
	"comic99/internal/templater"
	"comic99/internal/utils"

	"github.com/pkg/errors"
)

// fetchBook classifies rawURL and builds the book from its landing page.
func fetchBook(ctx context.Context, rawURL string) (*site.Client, *domain.Book, error) {
	client, err := site.New(rawURL)
	if err != nil {
		return nil, nil, err
	}

	page, err := sharedhttp.Fetch(ctx, rawURL, client.Charset())
	if err != nil {
		return nil, nil, err
	}

	book, err := catalog.FromLandingPage(client, page.Body)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "could not read catalog of %s", rawURL)
	}

	return client, book, nil
}

// resolveVolume fetches a volume page and decodes its picture mapping.
func resolveVolume(ctx context.Context, client *site.Client, book *domain.Book, volume domain.Volume) ([]domain.PictureEntry, error) {
	page, err := sharedhttp.Fetch(ctx, volume.URL, book.Charset)
	if err != nil {
		return nil, err
	}

	entries, err := catalog.Resolve(book, volume, client, page.URL, page.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "could not resolve pictures of %q", volume.Title)
	}

	return entries, nil
}

type volumeOutput struct {
	destDir string
	format  string
	naming  string
	workers int
}

// target is the path whose existence means the volume was already downloaded.
func (o volumeOutput) target(book *domain.Book, volume domain.Volume) string {
	if o.format == files.FormatImages {
		return filepath.Join(o.destDir, filepath.FromSlash(book.Folder(volume)))
	}

	name := sanitize.Filename(templater.New(book, volume).ExecTemplate(o.naming))
	bookFolder := path.Dir(book.Folder(volume))
	return filepath.Join(o.destDir, filepath.FromSlash(bookFolder), name+"."+o.format)
}

// fetchVolume downloads the resolved pictures and packs them when an archive format is requested.
func fetchVolume(o volumeOutput, book *domain.Book, volume domain.Volume, entries []domain.PictureEntry, log logger.Logger) error {
	failed, err := download.Volume(o.destDir, entries, o.workers, log)
	if err != nil {
		return err
	}

	if failed > 0 {
		return errors.Errorf("%d of %d pictures failed to download", failed, len(entries))
	}

	if o.format == files.FormatImages {
		return nil
	}

	return files.Pack(o.format, filepath.Join(o.destDir, filepath.FromSlash(book.Folder(volume))), o.target(book, volume))
}

func sendToAria2(ctx context.Context, rpc string, destDir string, entries []domain.PictureEntry) error {
	return aria2.New(rpc).AddURIs(ctx, entries, destDir)
}

func printVolumes(out io.Writer, book *domain.Book) {
	count := len(book.Volumes)
	width := utils.DigitWidth(count)

	fmt.Fprintf(out, "Found %d volumes in 《%s》:\n\n", count, book.Name)
	for i, v := range book.Volumes {
		index := fmt.Sprintf(" %d. ", i+1)
		fmt.Fprintf(out, "%-*s%s\n", width+3, index, v.Title)
	}
	fmt.Fprintln(out)
}

// selectVolumes returns the chosen 1-based indices; nil without error means nothing was selected.
func selectVolumes(in io.Reader, out io.Writer, count int, selection string, latest bool) ([]int, error) {
	if latest {
		return []int{count}, nil
	}

	if selection == "" {
		fmt.Fprintln(out, "Enter n° of volumes to be downloaded (ex: 1 2 3 or 1-3 or 1 2-5 8)")
		fmt.Fprintln(out, "------------------------------------------------------------------")

		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}

		selection = strings.TrimRight(line, "\r\n")
	}

	if strings.TrimSpace(selection) == "" {
		return nil, nil
	}

	return parse.Selection(count, selection)
}
