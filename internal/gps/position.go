package gps

import (
	"strconv"
	"strings"
)

// Position is a decoded RMC location in decimal degrees.
type Position struct {
	LatDeg float64
	LonDeg float64
}

// Shift moves the position by the given deltas in place.
func (p *Position) Shift(dLat, dLon float64) {
	p.LatDeg += dLat
	p.LonDeg += dLon
}

// RMC: Recommended Minimum Specific GNSS Data
// Fields used here:
//
//	3: latitude (ddmm.mmmm)
//	4: N/S
//	5: longitude (dddmm.mmmm)
//	6: E/W
//
// Degrees and minutes are taken from fixed character offsets. Unless
// hemisphere is true the receivers are assumed to be north-west: latitude is
// never adjusted and longitude is always negated.
func ParsePosition(fields []string, hemisphere bool) (Position, error) {
	latField, err := fieldAt(fields, 3, "latitude")
	if err != nil {
		return Position{}, err
	}
	lonField, err := fieldAt(fields, 5, "longitude")
	if err != nil {
		return Position{}, err
	}

	lat, err := parseDegMin(latField, 2, 9, "latitude")
	if err != nil {
		return Position{}, err
	}
	lon, err := parseDegMin(lonField, 3, 10, "longitude")
	if err != nil {
		return Position{}, err
	}

	if !hemisphere {
		return Position{LatDeg: lat, LonDeg: -lon}, nil
	}

	if len(fields) > 4 && strings.EqualFold(strings.TrimSpace(fields[4]), "S") {
		lat = -lat
	}
	if len(fields) <= 6 || !strings.EqualFold(strings.TrimSpace(fields[6]), "E") {
		lon = -lon
	}
	return Position{LatDeg: lat, LonDeg: lon}, nil
}

// parseDegMin decodes v[:degLen] as whole degrees and v[degLen:minEnd] as
// minutes. A field shorter than minEnd contributes whatever minutes it has.
func parseDegMin(v string, degLen, minEnd int, name string) (float64, error) {
	if len(v) < degLen {
		return 0, &ParseError{Field: name + " degrees", Value: v, Err: ErrFieldMissing}
	}
	deg, err := strconv.Atoi(v[:degLen])
	if err != nil {
		return 0, &ParseError{Field: name + " degrees", Value: v[:degLen], Err: err}
	}

	if minEnd > len(v) {
		minEnd = len(v)
	}
	minStr := v[degLen:minEnd]
	mins, err := strconv.ParseFloat(minStr, 64)
	if err != nil {
		return 0, &ParseError{Field: name + " minutes", Value: minStr, Err: err}
	}
	return float64(deg) + mins/60.0, nil
}
