// Package trajectory reads post-processed position logs (RTKLIB .pos):
// whitespace-separated samples of UTC time, latitude, longitude and
// height, at a rate generally denser than camera triggers.
package trajectory

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"
)

// Sample is one trajectory log entry.  Date and Clock are the raw
// leading tokens; together they parse under the configured trajectory
// layout.  Rest holds the remaining fields, preserved opaquely.
type Sample struct {
	Date   string
	Clock  string
	Lat    float64 // degrees
	Lon    float64 // degrees
	Height float64 // meters
	Rest   []string
}

// Timestamp is the sample's raw date and time tokens joined for
// parsing against a layout.
func (s Sample) Timestamp() string {
	return s.Date + " " + s.Clock
}

// ReadLog parses a trajectory log.  Lines beginning with % are
// comments and skipped; lines whose position fields do not parse are
// skipped with a warning.  The whole log is held in memory.
func ReadLog(r io.Reader) ([]Sample, error) {
	scanner := bufio.NewScanner(r)
	var samples []Sample
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 5 {
			log.Printf("trajectory: line %d: expected at least 5 fields, got %d, skipping",
				lineno, len(fields))
			continue
		}
		lat, errLat := strconv.ParseFloat(fields[2], 64)
		lon, errLon := strconv.ParseFloat(fields[3], 64)
		height, errHeight := strconv.ParseFloat(fields[4], 64)
		if errLat != nil || errLon != nil || errHeight != nil {
			log.Printf("trajectory: line %d: non-numeric position fields, skipping", lineno)
			continue
		}
		samples = append(samples, Sample{
			Date:   fields[0],
			Clock:  fields[1],
			Lat:    lat,
			Lon:    lon,
			Height: height,
			Rest:   fields[5:],
		})
	}
	return samples, scanner.Err()
}
