package site

import (
	"regexp"
	"strings"

	"comic99/internal/cipher"
	"comic99/internal/domain"

	"github.com/PuerkitoBio/goquery"
)

const modernImageHost = "http://images.99mh.com/"

var sPathPattern = regexp.MustCompile(`var\s+sPath\s*=\s*"(.*?)";`)

// modern covers 99mh.com, whose lists carry their own key.
type modern struct {
	variant Variant
}

func (m *modern) DecodeList(encoded string) ([]string, error) {
	return cipher.DecodeFramed(encoded)
}

func (m *modern) ServerPrefix(_, body string) (string, error) {
	matches := sPathPattern.FindStringSubmatch(body)
	if len(matches) < 2 || matches[1] == "" {
		return "", &domain.PatternNotFoundError{What: "sPath assignment"}
	}

	return modernImageHost + matches[1], nil
}

func (m *modern) Volumes(body string) ([]domain.Volume, error) {
	doc, err := parseDocument(body)
	if err != nil {
		return nil, err
	}

	container := doc.Find("#subBookListAct").First()
	if container.Length() == 0 {
		return nil, &domain.PatternNotFoundError{What: "volume list #subBookListAct"}
	}

	var (
		volumes []domain.Volume
		missing bool
	)

	container.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, ok := a.Attr("href")
		if !ok {
			missing = true
			return false
		}

		volumes = append(volumes, domain.Volume{Title: a.Text(), URL: href})
		return true
	})

	if missing {
		return nil, &domain.PatternNotFoundError{What: "href of #subBookListAct a"}
	}

	if len(volumes) == 0 {
		return nil, &domain.PatternNotFoundError{What: "volumes in #subBookListAct"}
	}

	return SortVolumes(volumes), nil
}

func (m *modern) BookTitle(body string) (string, error) {
	doc, err := parseDocument(body)
	if err != nil {
		return "", err
	}

	title := doc.Find(".cTitle").First()
	if title.Length() == 0 {
		return "", &domain.PatternNotFoundError{What: "title element .cTitle"}
	}

	name := strings.Join(strings.Fields(title.Text()), " ")
	if name == "" {
		return "", &domain.PatternNotFoundError{What: "text of .cTitle"}
	}

	return name, nil
}
