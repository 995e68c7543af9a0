package geotag

import (
	"time"

	"openppk.com/openppk/gnss"
	"openppk.com/openppk/trajectory"
)

// Position is an interpolated geographic position.
type Position struct {
	Lat    float64 // degrees
	Lon    float64 // degrees
	Height float64 // meters
	// Extrapolated is set when target fell outside the pair's time
	// interval, which happens at the edges of the trajectory.
	Extrapolated bool
}

// Interpolate computes the linear blend of the pair's positions at
// target.  The pair is used in the order given, not re-sorted
// chronologically; the blend fraction may fall outside [0,1], which
// degenerates to extrapolation.  A zero time difference between the
// two samples is a DegenerateIntervalError, never a NaN.
func Interpolate(target time.Time, pair [2]trajectory.Sample, layout string) (Position, error) {
	t0, err := gnss.ParseUTC(pair[0].Timestamp(), layout)
	if err != nil {
		return Position{}, err
	}
	t1, err := gnss.ParseUTC(pair[1].Timestamp(), layout)
	if err != nil {
		return Position{}, err
	}
	if t1.Equal(t0) {
		return Position{}, &DegenerateIntervalError{At: t0}
	}
	f := float64(target.Sub(t0)) / float64(t1.Sub(t0))
	return Position{
		Lat:          pair[0].Lat + (pair[1].Lat-pair[0].Lat)*f,
		Lon:          pair[0].Lon + (pair[1].Lon-pair[0].Lon)*f,
		Height:       pair[0].Height + (pair[1].Height-pair[0].Height)*f,
		Extrapolated: f < 0 || f > 1,
	}, nil
}
