// Package cipher reverses the substitution-and-split obfuscation the 99 comic
// sites use to embed picture lists in their volume pages.
package cipher

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"comic99/internal/domain"
)

const (
	// derivedKeyLen is the length of the key embedded in a framed list, separator included.
	derivedKeyLen = 11
	// framingOverhead is the tail length trimmed besides the marker distance.
	framingOverhead = 12
)

// Decode reverses encoded with key. Every key character but the last is
// replaced by its index, the last one separates the code point tokens.
func Decode(encoded, key string) ([]string, error) {
	runes := []rune(key)
	if len(runes) == 0 {
		return nil, &domain.DecodeError{Reason: "empty key"}
	}

	alphabet, sep := runes[:len(runes)-1], string(runes[len(runes)-1])

	// replacements run in key order, keys never map a character to a digit of another entry
	for i, c := range alphabet {
		encoded = strings.ReplaceAll(encoded, string(c), strconv.Itoa(i))
	}

	var sb strings.Builder
	for _, token := range strings.Split(encoded, sep) {
		cp, err := strconv.Atoi(token)
		if err != nil {
			return nil, &domain.DecodeError{Reason: "malformed token " + strconv.Quote(token), Err: err}
		}

		if cp < 0 || cp > utf8.MaxRune || !utf8.ValidRune(rune(cp)) {
			return nil, &domain.DecodeError{Reason: "code point out of range " + token}
		}

		sb.WriteRune(rune(cp))
	}

	return strings.Split(sb.String(), "|"), nil
}

// DecodeFramed decodes a list that carries its own key. The trailing
// lowercase marker gives a distance d; the last d+12 characters are cut off
// the payload and the first 11 of them form the key.
func DecodeFramed(raw string) ([]string, error) {
	runes := []rune(raw)
	if len(runes) == 0 {
		return nil, &domain.DecodeError{Reason: "empty framed list"}
	}

	marker := runes[len(runes)-1]
	if marker < 'a' || marker > 'z' {
		return nil, &domain.DecodeError{Reason: "invalid framing marker " + strconv.QuoteRune(marker)}
	}

	d := int(marker-'a') + 1
	cut := len(runes) - d - framingOverhead
	if cut < 0 {
		return nil, &domain.DecodeError{
			Reason: "framed list of length " + strconv.Itoa(len(runes)) + " shorter than its tail of " + strconv.Itoa(d+framingOverhead),
		}
	}

	key := string(runes[cut : cut+derivedKeyLen])

	return Decode(string(runes[:cut]), key)
}
