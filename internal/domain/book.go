package domain

import (
	"net/url"
	"path"
	"strings"

	"comic99/internal/sanitize"
)

// VariantID tags the site family a book URL belongs to.
type VariantID int

const (
	Legacy1 VariantID = iota
	Legacy2
	Modern
)

func (v VariantID) String() string {
	switch v {
	case Legacy1:
		return "legacy1"
	case Legacy2:
		return "legacy2"
	case Modern:
		return "modern"
	default:
		return "unknown"
	}
}

type Volume struct {
	Title string
	URL   string
}

type Book struct {
	URL     string
	Name    string
	Variant VariantID
	Charset string
	Volumes []Volume
}

// Folder returns the relative directory the pictures of a volume are stored in.
// Names that sanitize to nothing fall back to the last segment of their URL.
func (b *Book) Folder(v Volume) string {
	folder := path.Join(folderName(b.Name, b.URL), folderName(v.Title, v.URL))
	return strings.ReplaceAll(folder, " ", "_")
}

func folderName(name, rawURL string) string {
	if n := sanitize.Filename(name); n != "" {
		return n
	}

	if u, err := url.Parse(rawURL); err == nil {
		if n := sanitize.Filename(path.Base(strings.TrimRight(u.Path, "/"))); n != "" {
			return n
		}
	}

	return "untitled"
}
