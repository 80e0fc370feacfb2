package timeutil_test

import (
	"testing"
	"time"

	"calmind/internal/timeutil"
)

func TestSecsToMinsAndSecs(t *testing.T) {
	cases := []struct {
		seconds float64
		mins    int
		secs    int
	}{
		{0, 0, 0},
		{59, 0, 59},
		{60, 1, 0},
		{125, 2, 5},
		{3600, 60, 0},
	}

	for _, tc := range cases {
		mins, secs := timeutil.SecsToMinsAndSecs(tc.seconds)
		if mins != tc.mins || secs != tc.secs {
			t.Errorf(
				"expected %.0f seconds to be %02d:%02d, but got %02d:%02d",
				tc.seconds,
				tc.mins,
				tc.secs,
				mins,
				secs,
			)
		}
	}
}

func TestRoundToStart(t *testing.T) {
	v := time.Date(2026, time.August, 20, 17, 45, 12, 999, time.UTC)

	got := timeutil.RoundToStart(v)
	want := time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC)

	if !got.Equal(want) {
		t.Errorf("expected %v, but got %v", want, got)
	}
}

func TestClockStopIsIdempotent(t *testing.T) {
	clock := timeutil.NewClock()

	clock.Stop()
	clock.Stop()

	select {
	case <-clock.C:
		t.Error("received a tick after Stop")
	case <-time.After(1200 * time.Millisecond):
	}
}
