package track

import (
	"io"

	"github.com/gocarina/gocsv"

	"nmeatrack/internal/gps"
)

type csvPoint struct {
	Seq    int     `csv:"seq"`
	LatDeg float64 `csv:"lat"`
	LonDeg float64 `csv:"lon"`
}

func encodeCSV(w io.Writer, points []gps.Position) error {
	rows := make([]*csvPoint, 0, len(points))
	for i, p := range points {
		rows = append(rows, &csvPoint{Seq: i + 1, LatDeg: p.LatDeg, LonDeg: p.LonDeg})
	}
	return gocsv.Marshal(&rows, w)
}
