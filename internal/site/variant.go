package site

import (
	"regexp"

	"comic99/internal/domain"
)

// Variant bundles the constants of one registered domain.
type Variant struct {
	ID      domain.VariantID
	Domain  string
	Key     string
	Charset string
	Pattern *regexp.Regexp
}

var (
	picListURLPattern  = regexp.MustCompile(`var\s+PicListUrl\s*=\s*"(.*?)";`)
	picListURLsPattern = regexp.MustCompile(`var\s+PicListUrls\s*=\s*"(.*?)";`)
	sFilesPattern      = regexp.MustCompile(`var\s+sFiles\s*=\s*"(.*?)";`)
)

var variants = map[string]Variant{
	"99manga.com": {
		ID:      domain.Legacy1,
		Domain:  "99manga.com",
		Key:     "gsanuxoewrm",
		Charset: "gb2312",
		Pattern: picListURLPattern,
	},
	"99comic.com": {
		ID:      domain.Legacy2,
		Domain:  "99comic.com",
		Key:     "zhangxoewrm",
		Charset: "gb2312",
		Pattern: picListURLsPattern,
	},
	"99mh.com": {
		ID:      domain.Modern,
		Domain:  "99mh.com",
		Charset: "utf-8",
		Pattern: sFilesPattern,
	},
}

// Lookup returns the variant registered for host.
func Lookup(host string) (Variant, error) {
	v, ok := variants[host]
	if !ok {
		return Variant{}, &domain.UnsupportedSiteError{Domain: host}
	}

	return v, nil
}

// Domains lists the registered domains.
func Domains() []string {
	return []string{"99manga.com", "99comic.com", "99mh.com"}
}

func (v Variant) scheme() Scheme {
	if v.ID == domain.Modern {
		return &modern{variant: v}
	}

	return &legacy{variant: v}
}
