package gps

import (
	"strings"
)

// Kind identifies the sentence types the corrector acts on.
type Kind int

const (
	KindOther Kind = iota
	KindGSV
	KindRMC
)

func (k Kind) String() string {
	switch k {
	case KindGSV:
		return "GSV"
	case KindRMC:
		return "RMC"
	default:
		return "other"
	}
}

// DefaultTalker is the talker ID recognised when none is configured.
const DefaultTalker = "GP"

// Tokenize removes a trailing "*hh" checksum marker and splits the remaining
// sentence on commas. The checksum itself is not verified and field count or
// content is not validated; the first field keeps its "$" prefix.
func Tokenize(line string) []string {
	line = strings.TrimRight(line, "\r\n \t")
	if star := strings.LastIndexByte(line, '*'); star != -1 && len(line)-star-1 == 2 {
		line = line[:star]
	}
	return strings.Split(line, ",")
}

// Classify reports which sentence type a raw line carries for the given talker
// ("GP" when empty). Lines from other talkers are KindOther.
func Classify(line string, talker string) Kind {
	if talker == "" {
		talker = DefaultTalker
	}
	line = strings.TrimRight(line, "\r\n \t")
	prefix := "$" + talker
	if !strings.HasPrefix(line, prefix) {
		return KindOther
	}
	rest := line[len(prefix):]
	switch {
	case strings.HasPrefix(rest, "GSV"):
		return KindGSV
	case strings.HasPrefix(rest, "RMC"):
		return KindRMC
	default:
		return KindOther
	}
}
