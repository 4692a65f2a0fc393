// Package catalog turns fetched pages into books and picture mappings. It does
// no network I/O of its own.
package catalog

import (
	"path"

	"comic99/internal/domain"
	"comic99/internal/site"
	"comic99/internal/utils"
)

// FromLandingPage builds the book described by the landing page body.
func FromLandingPage(c *site.Client, body string) (*domain.Book, error) {
	volumes, err := c.ExtractVolumes(body)
	if err != nil {
		return nil, err
	}

	name, err := c.ExtractBookTitle(body)
	if err != nil {
		return nil, err
	}

	return &domain.Book{
		URL:     c.URL,
		Name:    name,
		Variant: c.Variant.ID,
		Charset: c.Charset(),
		Volumes: volumes,
	}, nil
}

// Resolve decodes a fetched volume page into local file names and image URLs,
// in display order.
func Resolve(book *domain.Book, volume domain.Volume, c *site.Client, responseURL, body string) ([]domain.PictureEntry, error) {
	urls, err := c.DecodePictureList(responseURL, body)
	if err != nil {
		return nil, err
	}

	folder := book.Folder(volume)
	width := utils.DigitWidth(len(urls))

	entries := make([]domain.PictureEntry, 0, len(urls))
	for i, u := range urls {
		entries = append(entries, domain.PictureEntry{
			LocalName: path.Join(folder, utils.PadInt(i, width)+path.Ext(u)),
			RemoteURL: u,
		})
	}

	return entries, nil
}
