// Package geotag synchronizes camera trigger events against a
// post-processed trajectory and interpolates a geographic position for
// each one.
package geotag

import (
	"fmt"
	"time"
)

// NoMatchError reports that fewer than two trajectory samples with
// parseable timestamps were available for a lookup.
type NoMatchError struct {
	Target time.Time
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no matching trajectory timestamps for %v", e.Target)
}

// DegenerateIntervalError reports a zero time difference between the
// two samples chosen for interpolation; the linear blend is undefined
// there.
type DegenerateIntervalError struct {
	At time.Time
}

func (e *DegenerateIntervalError) Error() string {
	return fmt.Sprintf("degenerate interpolation interval at %v", e.At)
}
