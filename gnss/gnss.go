// Package gnss converts GNSS time representations to UTC and parses
// the UTC timestamp strings found in PPK logs.
//
// GPS time is raw epoch arithmetic with no leap-second correction,
// following PPK post-processing conventions; the result differs from
// true UTC by the current GPS-UTC leap-second offset.  Known
// limitation, accepted.
package gnss

import (
	"fmt"
	"strings"
	"time"
)

// Epoch is the zero point of the GPS week/seconds representation.
var Epoch = time.Date(1980, time.January, 6, 0, 0, 0, 0, time.UTC)

// Layout strings for the UTC timestamps in DJI .MRK and RTKLIB .pos
// files.  The fraction is a fixed six digits; ParseUTC pads shorter
// fractions before retrying.
const TriggerUTC = "2006-01-02 15:04:05.000000"
const TrajectoryUTC = "2006/01/02 15:04:05.000000"

const fractionDigits = 6

// ToUTC maps GPS week and seconds-of-week to an absolute UTC instant.
// The sub-second part of seconds carries through to the result.
func ToUTC(week int, seconds float64) time.Time {
	// Whole seconds stay in integer arithmetic; only the
	// sub-second remainder is scaled through float conversion.
	whole := int64(seconds)
	frac := seconds - float64(whole)
	d := time.Duration(week)*7*24*time.Hour +
		time.Duration(whole)*time.Second +
		time.Duration(frac*float64(time.Second))
	return Epoch.Add(d)
}

// FormatError reports a timestamp that does not match its layout.
type FormatError struct {
	Text string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid UTC timestamp format: %s", e.Text)
}

// ParseUTC parses text against a reference layout.  Logs truncate
// fractional seconds inconsistently (".5" vs ".500000"), so on a
// strict failure the fraction is right-padded with zeros to six digits
// and parsed once more.  Padding never changes the represented
// instant.
func ParseUTC(text, layout string) (time.Time, error) {
	t, err := time.Parse(layout, text)
	if err == nil {
		return t, nil
	}
	point := strings.IndexByte(text, '.')
	if point < 0 {
		return time.Time{}, &FormatError{Text: text}
	}
	frac := text[point+1:]
	if len(frac) < fractionDigits {
		padded := text[:point+1] + frac + strings.Repeat("0", fractionDigits-len(frac))
		if t, err = time.Parse(layout, padded); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &FormatError{Text: text}
}
