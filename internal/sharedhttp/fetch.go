package sharedhttp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/htmlindex"
)

// Page is a fetched HTML document decoded to UTF-8.
type Page struct {
	// URL is the final URL after redirects.
	URL  string
	Body string
}

var client = &http.Client{
	Timeout:   60 * time.Second,
	Transport: Transport,
}

// Fetch downloads url and decodes the body from charset. Transient server
// errors are retried, client errors are not.
func Fetch(ctx context.Context, url, charset string) (Page, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return Page{}, errors.Wrapf(err, "unknown charset %q", charset)
	}

	var page Page

	retryErr := retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return retry.Unrecoverable(fmt.Errorf("failed to create request: %w", err))
		}

		req.Header.Set("User-Agent", UserAgent)

		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("failed to get page: %w", err)
		}
		defer resp.Body.Close()

		if err := CheckStatusCode(resp.StatusCode); err != nil {
			return err
		}

		body, err := io.ReadAll(enc.NewDecoder().Reader(bufio.NewReader(resp.Body)))
		if err != nil {
			return fmt.Errorf("failed to read page: %w", err)
		}

		page = Page{
			URL:  resp.Request.URL.String(),
			Body: string(body),
		}

		return nil
	},
		retry.Context(ctx),
		retry.Delay(time.Second*3),
		retry.Attempts(3),
		retry.MaxJitter(time.Second*1),
		retry.LastErrorOnly(true),
	)
	if retryErr != nil {
		return Page{}, errors.Wrapf(retryErr, "could not fetch %s", url)
	}

	return page, nil
}
