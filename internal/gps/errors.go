package gps

import (
	"errors"
	"fmt"
)

// ErrFieldMissing is reported when a sentence is too short for a referenced
// field or substring.
var ErrFieldMissing = errors.New("field missing")

// ParseError describes a numeric field that could not be decoded.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("nmea: parse %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func fieldAt(fields []string, idx int, name string) (string, error) {
	if idx >= len(fields) {
		return "", &ParseError{Field: name, Err: ErrFieldMissing}
	}
	return fields[idx], nil
}
