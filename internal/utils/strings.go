package utils

import (
	"strconv"
	"strings"
)

// DigitWidth returns the number of decimal digits of n, at least 1
func DigitWidth(n int) int {
	return len(strconv.Itoa(n))
}

// PadInt formats num with leading zeros up to width
func PadInt(num int, width int) string {
	str := strconv.Itoa(num)

	// Calculate required padding
	padding := width - len(str)

	// Add padding if needed
	if padding > 0 {
		str = strings.Repeat("0", padding) + str
	}

	return str
}
