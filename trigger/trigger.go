// Package trigger reads camera trigger logs (DJI .MRK): one
// tab-separated line per shutter event, timestamped in GPS time.
package trigger

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"openppk.com/openppk/gnss"
)

// Record is one camera trigger event.  Fields holds the raw
// tab-separated tokens of the source line, preserved verbatim; UTC is
// derived from the GPS week and seconds-of-week fields.
type Record struct {
	Fields  []string
	Week    int
	Seconds float64
	UTC     time.Time
}

func parseLine(fields []string) (Record, error) {
	// Field positions: identifier, GPS seconds-of-week, [GPS week].
	if len(fields) < 3 {
		return Record{}, fmt.Errorf("expected at least 3 fields, got %d", len(fields))
	}
	week, err := strconv.Atoi(strings.Trim(fields[2], "[]"))
	if err != nil {
		return Record{}, err
	}
	seconds, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Fields:  fields,
		Week:    week,
		Seconds: seconds,
		UTC:     gnss.ToUTC(week, seconds),
	}, nil
}

// ReadLog parses a trigger log.  Malformed lines are skipped with a
// warning carrying the raw line number.  Derived UTC instants should
// be strictly increasing; a violation is warned about and the
// out-of-order record is kept.
func ReadLog(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	var records []Record
	var prev time.Time
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimRight(scanner.Text(), "\r\n \t")
		if len(line) == 0 {
			continue
		}
		record, err := parseLine(strings.Split(line, "\t"))
		if err != nil {
			log.Printf("trigger: line %d: %v, skipping", lineno, err)
			continue
		}
		if !prev.IsZero() && !record.UTC.After(prev) {
			log.Printf("trigger: line %d: UTC times are not increasing (%v after %v), continuing",
				lineno, record.UTC, prev)
		}
		prev = record.UTC
		records = append(records, record)
	}
	return records, scanner.Err()
}
