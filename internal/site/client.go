package site

import (
	"fmt"
	"net/url"

	"comic99/internal/domain"
)

// Client binds a book URL to its variant and exposes the variant operations
// behind one API. It holds no mutable state and is safe for concurrent use.
type Client struct {
	URL     string
	Variant Variant
	scheme  Scheme
}

// New classifies rawURL by its host.
func New(rawURL string) (*Client, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("could not parse url %q: %w", rawURL, err)
	}

	v, err := Lookup(u.Host)
	if err != nil {
		return nil, err
	}

	return &Client{
		URL:     rawURL,
		Variant: v,
		scheme:  v.scheme(),
	}, nil
}

func (c *Client) String() string {
	return c.Variant.Domain
}

func (c *Client) Charset() string {
	return c.Variant.Charset
}

// ServerPrefix resolves the image server for a fetched volume page.
func (c *Client) ServerPrefix(responseURL, body string) (string, error) {
	return c.scheme.ServerPrefix(responseURL, body)
}

// ExtractEncodedList returns the obfuscated picture list embedded in body.
func (c *Client) ExtractEncodedList(body string) (string, error) {
	matches := c.Variant.Pattern.FindStringSubmatch(body)
	if len(matches) < 2 || matches[1] == "" {
		return "", &domain.PatternNotFoundError{What: c.Variant.Pattern.String()}
	}

	return matches[1], nil
}

// DecodePictureList returns the absolute image URLs of a volume page in display order.
func (c *Client) DecodePictureList(responseURL, body string) ([]string, error) {
	server, err := c.ServerPrefix(responseURL, body)
	if err != nil {
		return nil, err
	}

	encoded, err := c.ExtractEncodedList(body)
	if err != nil {
		return nil, err
	}

	fragments, err := c.scheme.DecodeList(encoded)
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		urls = append(urls, server+fragment)
	}

	return urls, nil
}

func (c *Client) ExtractVolumes(body string) ([]domain.Volume, error) {
	return c.scheme.Volumes(body)
}

func (c *Client) ExtractBookTitle(body string) (string, error) {
	return c.scheme.BookTitle(body)
}
