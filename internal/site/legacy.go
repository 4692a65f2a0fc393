package site

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"

	"comic99/internal/cipher"
	"comic99/internal/domain"

	"github.com/PuerkitoBio/goquery"
)

var legacyServers = [...]string{
	"http://2.%s:9393/dm01/",
	"http://2.%s:9393/dm02/",
	"http://2.%s:9393/dm03/",
	"http://2.%s:9393/dm04/",
	"http://2.%s:9393/dm05/",
	"http://2.%s:9393/dm06/",
	"http://2.%s:9393/dm07/",
	"http://2.%s:9393/dm08/",
	"http://2.%s:9393/dm09/",
	"http://2.%s:9393/dm10/",
	"http://2.%s:9393/dm11/",
	"http://2.%s:9393/dm12/",
	"http://2.%s:9393/dm13/",
	"http://2.%s:9393/dm14/",
	"http://2.%s:9393/dm15/",
	"http://2.%s:9393/dm16/",
}

var legacyTitlePattern = regexp.MustCompile(`>> (.*) 集`)

// legacy covers 99manga.com and 99comic.com, which share a page layout and
// only differ in key and script variable name.
type legacy struct {
	variant Variant
}

func (l *legacy) DecodeList(encoded string) ([]string, error) {
	return cipher.Decode(encoded, l.variant.Key)
}

// ServerPrefix picks the image server from the 1-based s query parameter of
// the final (post redirect) volume page URL.
func (l *legacy) ServerPrefix(responseURL, _ string) (string, error) {
	u, err := url.Parse(responseURL)
	if err != nil {
		return "", fmt.Errorf("could not parse response url %q: %w", responseURL, err)
	}

	s := u.Query().Get("s")
	if s == "" {
		return "", &domain.PatternNotFoundError{What: "server parameter s in " + responseURL}
	}

	index, err := strconv.Atoi(s)
	if err != nil {
		return "", &domain.DecodeError{Reason: "server parameter s is not numeric", Err: err}
	}

	if index < 1 || index > len(legacyServers) {
		return "", &domain.ServerIndexError{Index: index, Max: len(legacyServers)}
	}

	return fmt.Sprintf(legacyServers[index-1], l.variant.Domain), nil
}

func (l *legacy) Volumes(body string) ([]domain.Volume, error) {
	doc, err := parseDocument(body)
	if err != nil {
		return nil, err
	}

	container := doc.Find(".vol > .bl").First()
	if container.Length() == 0 {
		return nil, &domain.PatternNotFoundError{What: "volume list .vol > .bl"}
	}

	var (
		volumes []domain.Volume
		missing bool
	)

	container.Find("li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
		a := li.Find("a").First()
		href, ok := a.Attr("href")
		if !ok {
			missing = true
			return false
		}

		volumes = append(volumes, domain.Volume{
			Title: a.Text(),
			URL:   "http://" + l.variant.Domain + href,
		})
		return true
	})

	if missing {
		return nil, &domain.PatternNotFoundError{What: "volume link in .vol > .bl li"}
	}

	if len(volumes) == 0 {
		return nil, &domain.PatternNotFoundError{What: "volumes in .vol > .bl"}
	}

	return SortVolumes(volumes), nil
}

func (l *legacy) BookTitle(body string) (string, error) {
	matches := legacyTitlePattern.FindStringSubmatch(body)
	if len(matches) < 2 || matches[1] == "" {
		return "", &domain.PatternNotFoundError{What: "book title between '>> ' and ' 集'"}
	}

	return matches[1], nil
}
