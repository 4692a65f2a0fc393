package parse

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"comic99/internal/domain"
)

// Selection parses space separated 1-based volume indices and inclusive
// low-high ranges into a sorted, deduplicated list.
func Selection(count int, input string) ([]int, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, selectionError(input, "empty selection")
	}

	unique := make(map[int]bool)

	for _, field := range fields {
		parts := strings.Split(field, "-")

		switch len(parts) {
		case 1:
			n, err := strconv.Atoi(parts[0])
			if err != nil {
				return nil, selectionError(input, fmt.Sprintf("invalid number: %s", field))
			}
			if n < 1 || n > count {
				return nil, selectionError(input, "index out of range")
			}
			unique[n] = true
		case 2:
			low, high, err := getRange(parts)
			if err != nil {
				return nil, selectionError(input, err.Error())
			}
			if low < 1 || high > count {
				return nil, selectionError(input, "index out of range")
			}

			for n := low; n <= high; n++ {
				unique[n] = true
			}
		default:
			return nil, selectionError(input, fmt.Sprintf("invalid field: %s", field))
		}
	}

	selected := make([]int, 0, len(unique))
	for n := range unique {
		selected = append(selected, n)
	}
	slices.Sort(selected)

	return selected, nil
}

// getRange parses the user input for volume ranges
func getRange(rangeParts []string) (int, int, error) {
	low, err := strconv.Atoi(rangeParts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start of range: %q", rangeParts[0])
	}
	high, err := strconv.Atoi(rangeParts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid end of range: %q", rangeParts[1])
	}

	if low >= high {
		return 0, 0, fmt.Errorf("%d should be smaller than %d", low, high)
	}

	return low, high, nil
}

func selectionError(input, reason string) error {
	return &domain.SelectionParseError{Input: input, Reason: reason}
}
