package site

import (
	"strings"

	"comic99/internal/domain"

	"github.com/PuerkitoBio/goquery"
)

// Scheme is the per-variant part of a site: how picture lists are decoded,
// where images are hosted and how the landing page is laid out.
type Scheme interface {
	DecodeList(encoded string) ([]string, error)
	ServerPrefix(responseURL, body string) (string, error)
	Volumes(body string) ([]domain.Volume, error)
	BookTitle(body string) (string, error)
}

func parseDocument(body string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(body))
}
