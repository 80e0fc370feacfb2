package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"calmind/internal/models"
	"calmind/internal/testutil"
	"calmind/store"
)

func TestProfileRoundTrip(t *testing.T) {
	kv := testutil.NewKV()
	m := NewManager(kv)

	want := models.Profile{
		Name:        "Ada",
		Age:         "34",
		FocusLevel:  "medium",
		DailyGoal:   "15 minutes",
		MoodTriggers: "deadlines",
	}

	if err := m.Save(want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.Equal(t, want, m.Load())
}

func TestProfileLoadDegrades(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		m := NewManager(testutil.NewKV())

		assert.Equal(t, models.Profile{}, m.Load())
	})

	t.Run("malformed", func(t *testing.T) {
		kv := testutil.NewKV()
		kv.Data[store.KeyProfile] = []byte("][")

		m := NewManager(kv)

		assert.Equal(t, models.Profile{}, m.Load())
	})
}

func newTestStreaks(day time.Time) (*Streaks, *time.Time) {
	now := day

	s := NewStreaks(testutil.NewKV())
	s.now = func() time.Time { return now }

	return s, &now
}

func TestStreakRules(t *testing.T) {
	day := time.Date(2026, time.August, 20, 8, 0, 0, 0, time.UTC)

	t.Run("first activity starts at one", func(t *testing.T) {
		s, _ := newTestStreaks(day)

		st, err := s.Touch()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assert.Equal(t, 1, st.Days)
	})

	t.Run("second activity on the same day is a no-op", func(t *testing.T) {
		s, now := newTestStreaks(day)

		first, _ := s.Touch()

		*now = day.Add(10 * time.Hour)
		st, err := s.Touch()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assert.Equal(t, 1, st.Days)
		assert.Equal(t, first.LastActivity, st.LastActivity)
	})

	t.Run("consecutive days extend the streak", func(t *testing.T) {
		s, now := newTestStreaks(day)

		_, _ = s.Touch()

		*now = day.AddDate(0, 0, 1)
		st, _ := s.Touch()
		assert.Equal(t, 2, st.Days)

		*now = day.AddDate(0, 0, 2)
		st, _ = s.Touch()
		assert.Equal(t, 3, st.Days)
	})

	t.Run("a gap restarts the streak", func(t *testing.T) {
		s, now := newTestStreaks(day)

		_, _ = s.Touch()

		*now = day.AddDate(0, 0, 1)
		_, _ = s.Touch()

		*now = day.AddDate(0, 0, 5)
		st, _ := s.Touch()

		assert.Equal(t, 1, st.Days)
	})
}

func TestStreakLoadDegrades(t *testing.T) {
	kv := testutil.NewKV()
	kv.Data[store.KeyStreak] = []byte("oops")

	s := NewStreaks(kv)

	assert.Equal(t, models.Streak{}, s.Load())
}
