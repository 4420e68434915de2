package track

import (
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"nmeatrack/internal/gps"
)

// encodeGeoJSON writes a FeatureCollection holding a single LineString.
func encodeGeoJSON(w io.Writer, meta Meta, points []gps.Position) error {
	ls := make(orb.LineString, 0, len(points))
	for _, p := range points {
		ls = append(ls, orb.Point{p.LonDeg, p.LatDeg})
	}

	f := geojson.NewFeature(ls)
	f.Properties["name"] = meta.Name
	f.Properties["points"] = len(points)

	fc := geojson.NewFeatureCollection()
	fc.Append(f)

	b, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return err
	}
	return nil
}
