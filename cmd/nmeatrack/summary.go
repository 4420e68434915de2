package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	nmea "github.com/adrianmo/go-nmea"
)

type nmeaSummary struct {
	Lines    int
	Blank    int
	Rejected int
	// GSVReports counts GSV sentences that start a report (message number 1).
	GSVReports int
	TypeCounts map[string]int
}

// summarizeNMEA inventories a log with a checksum-validating parser. It is
// diagnostic only; the corrector never depends on it.
func summarizeNMEA(r io.Reader) (nmeaSummary, error) {
	s := nmeaSummary{TypeCounts: map[string]int{}}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4*1024), 1024*1024)
	for sc.Scan() {
		s.Lines++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			s.Blank++
			continue
		}

		sentence, err := nmea.Parse(line)
		if err != nil {
			s.Rejected++
			continue
		}
		s.TypeCounts[sentence.DataType()]++

		if gsv, ok := sentence.(nmea.GSV); ok && gsv.MessageNumber == 1 {
			s.GSVReports++
		}
	}
	if err := sc.Err(); err != nil {
		return nmeaSummary{}, err
	}
	return s, nil
}

func printSummary(w io.Writer, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("path is empty")
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := summarizeNMEA(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Fprintf(w, "path: %s\n", path)
	fmt.Fprintf(w, "lines: %d\n", s.Lines)
	fmt.Fprintf(w, "blank: %d\n", s.Blank)
	fmt.Fprintf(w, "rejected: %d\n", s.Rejected)
	fmt.Fprintf(w, "gsv_reports: %d\n", s.GSVReports)

	keys := make([]string, 0, len(s.TypeCounts))
	for k := range s.TypeCounts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintf(w, "type_counts:\n")
	for _, k := range keys {
		fmt.Fprintf(w, "  %s: %d\n", k, s.TypeCounts[k])
	}
	return nil
}
