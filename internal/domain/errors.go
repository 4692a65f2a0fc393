package domain

import "fmt"

// UnsupportedSiteError is returned when a URL does not belong to a registered domain.
type UnsupportedSiteError struct {
	Domain string
}

func (e *UnsupportedSiteError) Error() string {
	return fmt.Sprintf("unsupported site: %q", e.Domain)
}

// PatternNotFoundError means an expected script assignment or element is missing from a page.
type PatternNotFoundError struct {
	What string
}

func (e *PatternNotFoundError) Error() string {
	return fmt.Sprintf("pattern not found: %s", e.What)
}

// DecodeError is returned when an obfuscated picture list cannot be reversed.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decode error: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ServerIndexError is returned when a legacy page points at a server outside the fixed table.
type ServerIndexError struct {
	Index int
	Max   int
}

func (e *ServerIndexError) Error() string {
	return fmt.Sprintf("server index %d out of range 1-%d", e.Index, e.Max)
}

type SelectionParseError struct {
	Input  string
	Reason string
}

func (e *SelectionParseError) Error() string {
	return e.Reason
}
