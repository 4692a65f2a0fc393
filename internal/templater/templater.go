package templater

import (
	"regexp"
	"strconv"
	"strings"

	"comic99/internal/domain"
	"comic99/internal/site"
	"comic99/internal/utils"
)

var templatePattern = regexp.MustCompile(`{((\w+?)(:.*?)?)}`)

// Templater names archives of a downloaded volume.
type Templater struct {
	Book   *domain.Book
	Volume domain.Volume
}

func New(book *domain.Book, volume domain.Volume) *Templater {
	return &Templater{
		Book:   book,
		Volume: volume,
	}
}

func (t *Templater) handleNum(options string) string {
	num, ok := site.VolumeNumber(t.Volume.Title)
	if !ok {
		return ""
	}

	if options == "" {
		return strconv.Itoa(num)
	}

	length, _ := strconv.ParseInt(strings.ReplaceAll(options, ":", ""), 10, 32)
	return utils.PadInt(num, int(length))
}

func (t *Templater) handleBookName(options string) string {
	if t.Book.Name == "" {
		return ""
	}

	if options == "" {
		return t.Book.Name
	}

	cleanString := strings.ReplaceAll(options, ":", "")
	return strings.ReplaceAll(cleanString, "<.>", t.Book.Name)
}

func (t *Templater) handleVolumeTitle(options string) string {
	title := strings.TrimSpace(t.Volume.Title)
	if title == "" {
		return ""
	}

	if options == "" {
		return title
	}

	cleanString := strings.ReplaceAll(options, ":", "")
	return strings.ReplaceAll(cleanString, "<.>", title)
}

func (t *Templater) ExecTemplate(template string) string {
	newString := template
	for _, match := range templatePattern.FindAllStringSubmatch(template, -1) {
		replace := match[0]

		varName := match[2]
		switch varName {
		case "num":
			replace = t.handleNum(match[3])
		case "book":
			replace = t.handleBookName(match[3])
		case "volume":
			replace = t.handleVolumeTitle(match[3])
		}

		newString = strings.Replace(newString, match[0], replace, 1)
	}

	return newString
}
