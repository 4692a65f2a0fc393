package site

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"

	"comic99/internal/domain"

	"golang.org/x/text/width"
)

// full-width digits count as well, they are narrowed before parsing
var volumeNumberPattern = regexp.MustCompile(`.* ([0-9０-９]+)集.*`)

// VolumeNumber parses "<anything> <digits>集<anything>"; ok is false when
// the title carries no number.
func VolumeNumber(title string) (num int, ok bool) {
	matches := volumeNumberPattern.FindStringSubmatch(title)
	if len(matches) < 2 {
		return 0, false
	}

	num, err := strconv.Atoi(width.Narrow.String(matches[1]))
	if err != nil {
		return 0, false
	}

	return num, true
}

// SortVolumes orders volumes by the number in their title. Titles without a
// number go last and keep their relative order.
func SortVolumes(volumes []domain.Volume) []domain.Volume {
	sorted := slices.Clone(volumes)

	slices.SortStableFunc(sorted, func(a, b domain.Volume) int {
		na, okA := VolumeNumber(a.Title)
		nb, okB := VolumeNumber(b.Title)

		switch {
		case okA && okB:
			return cmp.Compare(na, nb)
		case okA:
			return -1
		case okB:
			return 1
		default:
			return 0
		}
	})

	return sorted
}
