package gps

import (
	"errors"
	"strconv"
)

const (
	// GoodSNR is the exclusive lower bound for a usable signal reading (dB-Hz).
	GoodSNR = 35
	// MinGoodReadings is the number of usable readings a report needs for a good fix.
	MinGoodReadings = 3
)

// GSV field layout:
//
//	1: total number of sentences in this report
//	2: sentence number
//	3: satellites in view
//	4..7: PRN, elevation, azimuth, SNR (repeated up to four times)
const (
	gsvFirstSNR  = 7
	gsvSNRStride = 4
)

// FixGroup is one GSV sentence of a (possibly multi-sentence) report.
type FixGroup struct {
	// DeclaredCount is how many sentences, this one included, make up the report.
	DeclaredCount int
	SNR           []int
}

// ParseFixGroup decodes a tokenized GSV sentence. Empty SNR fields decode as 0.
func ParseFixGroup(fields []string) (FixGroup, error) {
	countStr, err := fieldAt(fields, 1, "gsv sentence count")
	if err != nil {
		return FixGroup{}, err
	}
	count, err := strconv.Atoi(countStr)
	if err != nil {
		return FixGroup{}, &ParseError{Field: "gsv sentence count", Value: countStr, Err: err}
	}
	if count < 1 {
		return FixGroup{}, &ParseError{Field: "gsv sentence count", Value: countStr, Err: errors.New("must be >= 1")}
	}

	g := FixGroup{DeclaredCount: count}
	for i := gsvFirstSNR; i < len(fields); i += gsvSNRStride {
		if fields[i] == "" {
			g.SNR = append(g.SNR, 0)
			continue
		}
		snr, err := strconv.Atoi(fields[i])
		if err != nil {
			return FixGroup{}, &ParseError{Field: "gsv snr", Value: fields[i], Err: err}
		}
		g.SNR = append(g.SNR, snr)
	}
	return g, nil
}

// GoodReadings counts SNR readings strictly above GoodSNR.
func (g FixGroup) GoodReadings() int {
	n := 0
	for _, snr := range g.SNR {
		if snr > GoodSNR {
			n++
		}
	}
	return n
}

// IsGoodFix reports whether a whole GSV report has at least MinGoodReadings
// usable readings across all of its sentences.
func IsGoodFix(groups []FixGroup) bool {
	total := 0
	for _, g := range groups {
		total += g.GoodReadings()
	}
	return total >= MinGoodReadings
}
