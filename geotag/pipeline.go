package geotag

import (
	"fmt"
	"strconv"
	"strings"

	"openppk.com/openppk/gnss"
	"openppk.com/openppk/trajectory"
	"openppk.com/openppk/trigger"
)

// Record is one geotagged trigger: the trigger's raw fields plus the
// interpolated position.
type Record struct {
	Trigger trigger.Record
	Lat     float64
	Lon     float64
	Height  float64
	// See Position.Extrapolated.
	Extrapolated bool
}

// Line renders the record as one tab-separated output line: the
// trigger's first three raw fields, the derived UTC instant, latitude
// and longitude to 8 decimals, height to 3, then the trigger's
// remaining fields.
func (r Record) Line(layout string) string {
	fields := make([]string, 0, len(r.Trigger.Fields)+4)
	fields = append(fields, r.Trigger.Fields[:3]...)
	fields = append(fields, r.Trigger.UTC.Format(layout))
	fields = append(fields,
		strconv.FormatFloat(r.Lat, 'f', 8, 64),
		strconv.FormatFloat(r.Lon, 'f', 8, 64),
		strconv.FormatFloat(r.Height, 'f', 3, 64))
	fields = append(fields, r.Trigger.Fields[3:]...)
	return strings.Join(fields, "\t")
}

// Synchronize produces one geotagged record per trigger, in trigger
// order.  The run is all-or-nothing: a trigger instant that cannot be
// resolved against the trajectory (no candidate pair, or a degenerate
// interval) aborts the whole run with no partial output, because a
// pairing that fails once is not trusted to produce any.
func Synchronize(triggers []trigger.Record, samples []trajectory.Sample, triggerLayout, sampleLayout string) ([]Record, error) {
	records := make([]Record, 0, len(triggers))
	for _, trg := range triggers {
		// Round-trip the instant through its text form so the
		// lookup sees exactly the precision the log reports.
		text := trg.UTC.Format(triggerLayout)
		target, err := gnss.ParseUTC(text, triggerLayout)
		if err != nil {
			return nil, fmt.Errorf("trigger %s: %w", text, err)
		}
		pair, err := ClosestPair(target, samples, sampleLayout)
		if err != nil {
			return nil, fmt.Errorf("trigger %s: %w", text, err)
		}
		position, err := Interpolate(target, pair, sampleLayout)
		if err != nil {
			return nil, fmt.Errorf("trigger %s: %w", text, err)
		}
		records = append(records, Record{
			Trigger:      trg,
			Lat:          position.Lat,
			Lon:          position.Lon,
			Height:       position.Height,
			Extrapolated: position.Extrapolated,
		})
	}
	return records, nil
}
