package sanitize

import (
	"regexp"
	"strings"
)

var illegalChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// Filename removes characters that cannot appear in a book or volume directory name
func Filename(title string) string {
	// Remove illegal chars, control characters included
	title = illegalChars.ReplaceAllString(title, "")

	// Trim spaces & dots
	return strings.Trim(title, " .")
}
