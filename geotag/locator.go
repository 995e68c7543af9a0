package geotag

import (
	"sort"
	"time"

	"openppk.com/openppk/gnss"
	"openppk.com/openppk/trajectory"
)

// ClosestPair returns the two trajectory samples nearest in time to
// target.  Samples whose timestamps do not parse under layout are
// excluded from candidacy.  The ranking is by absolute time distance,
// ties broken by log order.  The pair is not guaranteed to bracket
// target: near the edges of the trajectory both samples can sit on the
// same side, and the interpolator extrapolates there.
func ClosestPair(target time.Time, samples []trajectory.Sample, layout string) ([2]trajectory.Sample, error) {
	type candidate struct {
		at     time.Time
		sample trajectory.Sample
	}
	var candidates []candidate
	for _, s := range samples {
		at, err := gnss.ParseUTC(s.Timestamp(), layout)
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{at: at, sample: s})
	}

	// The trigger-side clock reports milliseconds; comparing at
	// finer precision invites spurious ties.
	probe := target.Truncate(time.Millisecond)
	sort.SliceStable(candidates, func(i, j int) bool {
		di := candidates[i].at.Sub(probe)
		if di < 0 {
			di = -di
		}
		dj := candidates[j].at.Sub(probe)
		if dj < 0 {
			dj = -dj
		}
		return di < dj
	})

	if len(candidates) < 2 {
		return [2]trajectory.Sample{}, &NoMatchError{Target: target}
	}
	return [2]trajectory.Sample{candidates[0].sample, candidates[1].sample}, nil
}
