// Package track renders a corrected position sequence as a single-segment
// track file.
package track

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"nmeatrack/internal/gps"
)

type Format string

const (
	FormatGPX     Format = "gpx"
	FormatCSV     Format = "csv"
	FormatGeoJSON Format = "geojson"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatGPX, FormatCSV, FormatGeoJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown track format %q", s)
	}
}

// Meta carries the descriptive parts of the output.
type Meta struct {
	Name string
}

// WriteError wraps any failure to create, write or close the output.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Encode writes points to w in the given format.
func Encode(w io.Writer, f Format, meta Meta, points []gps.Position) error {
	switch f {
	case FormatGPX:
		return encodeGPX(w, meta, points)
	case FormatCSV:
		return encodeCSV(w, points)
	case FormatGeoJSON:
		return encodeGeoJSON(w, meta, points)
	default:
		return fmt.Errorf("unknown track format %q", f)
	}
}

// WriteFile creates path and writes the track to it. The file is closed on
// every path; any failure is returned as a *WriteError.
func WriteFile(path string, f Format, meta Meta, points []gps.Position) error {
	out, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	bw := bufio.NewWriterSize(out, 64*1024)
	if err := Encode(bw, f, meta, points); err != nil {
		_ = out.Close()
		return &WriteError{Path: path, Err: err}
	}
	if err := bw.Flush(); err != nil {
		_ = out.Close()
		return &WriteError{Path: path, Err: err}
	}
	if err := out.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
