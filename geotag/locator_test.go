package geotag

import (
	"errors"
	"testing"
	"time"

	"openppk.com/openppk/gnss"
	"openppk.com/openppk/trajectory"
)

// Five samples one second apart starting 2023/05/01 10:00:00.
func testSamples() []trajectory.Sample {
	return []trajectory.Sample{
		{Date: "2023/05/01", Clock: "10:00:00.000", Lat: 10.0, Lon: -100.0, Height: 100},
		{Date: "2023/05/01", Clock: "10:00:01.000", Lat: 10.1, Lon: -100.1, Height: 101},
		{Date: "2023/05/01", Clock: "10:00:02.000", Lat: 10.2, Lon: -100.2, Height: 102},
		{Date: "2023/05/01", Clock: "10:00:03.000", Lat: 10.3, Lon: -100.3, Height: 103},
		{Date: "2023/05/01", Clock: "10:00:04.000", Lat: 10.4, Lon: -100.4, Height: 104},
	}
}

func inlineTime(t *testing.T, s string) time.Time {
	tm, err := time.Parse("2006-01-02 15:04:05.000000", s)
	if err != nil {
		t.Fatal(err)
	}
	return tm
}

func TestClosestPairInside(t *testing.T) {
	target := inlineTime(t, "2023-05-01 10:00:01.400000")
	pair, err := ClosestPair(target, testSamples(), gnss.TrajectoryUTC)
	if err != nil {
		t.Fatal(err)
	}
	if pair[0].Clock != "10:00:01.000" {
		t.Fatalf("got %q, want nearest 10:00:01.000", pair[0].Clock)
	}
	if pair[1].Clock != "10:00:02.000" {
		t.Fatalf("got %q, want second 10:00:02.000", pair[1].Clock)
	}
}

func TestClosestPairAlwaysTwo(t *testing.T) {
	// Two samples always come back, wherever the target falls --
	// including entirely outside the trajectory's coverage.
	for _, s := range []string{
		"2023-05-01 09:00:00.000000", // far before
		"2023-05-01 10:00:00.000000", // exactly first
		"2023-05-01 10:00:02.500000", // between samples
		"2023-05-01 10:00:04.000000", // exactly last
		"2023-05-01 11:00:00.000000", // far after
	} {
		pair, err := ClosestPair(inlineTime(t, s), testSamples(), gnss.TrajectoryUTC)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		if pair[0].Timestamp() == pair[1].Timestamp() {
			t.Fatalf("%s: pair is one sample twice", s)
		}
	}
}

func TestClosestPairOneSided(t *testing.T) {
	// A target before the first sample gets the first two samples,
	// both on the same side.
	target := inlineTime(t, "2023-05-01 09:59:00.000000")
	pair, err := ClosestPair(target, testSamples(), gnss.TrajectoryUTC)
	if err != nil {
		t.Fatal(err)
	}
	if pair[0].Clock != "10:00:00.000" || pair[1].Clock != "10:00:01.000" {
		t.Fatalf("got %q, %q", pair[0].Clock, pair[1].Clock)
	}
}

func TestClosestPairTieStable(t *testing.T) {
	// Equidistant neighbors rank in log order.
	target := inlineTime(t, "2023-05-01 10:00:01.500000")
	pair, err := ClosestPair(target, testSamples(), gnss.TrajectoryUTC)
	if err != nil {
		t.Fatal(err)
	}
	if pair[0].Clock != "10:00:01.000" || pair[1].Clock != "10:00:02.000" {
		t.Fatalf("got %q, %q", pair[0].Clock, pair[1].Clock)
	}
}

func TestClosestPairMillisecondTruncation(t *testing.T) {
	// Sub-millisecond noise on the target is discarded before
	// comparison, so 1.5s plus microseconds still ties in log order.
	target := inlineTime(t, "2023-05-01 10:00:01.500499")
	pair, err := ClosestPair(target, testSamples(), gnss.TrajectoryUTC)
	if err != nil {
		t.Fatal(err)
	}
	if pair[0].Clock != "10:00:01.000" {
		t.Fatalf("got %q, want 10:00:01.000", pair[0].Clock)
	}
}

func TestClosestPairExcludesUnparseable(t *testing.T) {
	samples := []trajectory.Sample{
		{Date: "garbage", Clock: "tokens", Lat: 1, Lon: 2, Height: 3},
		{Date: "2023/05/01", Clock: "10:00:00.000", Lat: 10.0, Lon: -100.0, Height: 100},
		{Date: "2023/05/01", Clock: "10:00:01.000", Lat: 10.1, Lon: -100.1, Height: 101},
	}
	target := inlineTime(t, "2023-05-01 10:00:00.000000")
	pair, err := ClosestPair(target, samples, gnss.TrajectoryUTC)
	if err != nil {
		t.Fatal(err)
	}
	if pair[0].Date == "garbage" || pair[1].Date == "garbage" {
		t.Fatalf("unparseable sample became a candidate")
	}
}

func TestClosestPairNoMatch(t *testing.T) {
	target := inlineTime(t, "2023-05-01 10:00:00.000000")
	for _, samples := range [][]trajectory.Sample{
		nil,
		testSamples()[:1],
		{{Date: "bad", Clock: "bad"}, {Date: "also", Clock: "bad"}},
	} {
		_, err := ClosestPair(target, samples, gnss.TrajectoryUTC)
		var nm *NoMatchError
		if !errors.As(err, &nm) {
			t.Fatalf("got %v, want NoMatchError", err)
		}
	}
}
