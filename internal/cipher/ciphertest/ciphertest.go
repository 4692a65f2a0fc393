// Package ciphertest builds encoded picture lists for tests.
package ciphertest

import (
	"strconv"
	"strings"
)

// Encode is the inverse of cipher.Decode.
func Encode(fragments []string, key string) string {
	runes := []rune(key)
	alphabet, sep := runes[:len(runes)-1], string(runes[len(runes)-1])

	var tokens []string
	for _, r := range strings.Join(fragments, "|") {
		var sb strings.Builder
		for _, digit := range strconv.Itoa(int(r)) {
			sb.WriteRune(alphabet[digit-'0'])
		}
		tokens = append(tokens, sb.String())
	}

	return strings.Join(tokens, sep)
}

// Frame appends key, d filler characters and the marker, the way the modern site does.
func Frame(payload, key string, marker rune) string {
	d := int(marker-'a') + 1
	return payload + key + strings.Repeat("Q", d) + string(marker)
}
