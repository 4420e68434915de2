package track

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"nmeatrack/internal/gps"
)

const gpxHeader = `<?xml version="1.0" encoding="UTF-8" standalone="no" ?>
<gpx xmlns="http://www.topografix.com/GPX/1/1" creator="nmeatrack" version="1.1" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://www.topografix.com/GPX/1/1 http://www.topografix.com/GPX/1/1/gpx.xsd">
	<metadata>
		<link href="http://www.topografix.com/GPX/1/1">
			<text>GPX 1.1</text>
		</link>
	</metadata>
	<trk>
`

// encodeGPX emits one trk with one trkseg and one trkpt per position. Points
// carry lat/lon attributes only.
func encodeGPX(w io.Writer, meta Meta, points []gps.Position) error {
	ew := &errWriter{w: w}
	ew.str(gpxHeader)

	var name strings.Builder
	if err := xml.EscapeText(&name, []byte(meta.Name)); err != nil {
		return err
	}
	ew.str("\t\t<name>" + name.String() + "</name>\n")
	ew.str("\t\t<trkseg>\n")
	for _, p := range points {
		ew.str("\t\t\t<trkpt lat=\"" + formatDeg(p.LatDeg) + "\" lon=\"" + formatDeg(p.LonDeg) + "\">\n")
		ew.str("\t\t\t</trkpt>\n")
	}
	ew.str("\t\t</trkseg>\n")
	ew.str("\t</trk>\n")
	ew.str("</gpx>\n")
	return ew.err
}

func formatDeg(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// errWriter keeps the first write error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) str(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}
