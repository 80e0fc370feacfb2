// Package profile manages the user's cognitive details and the daily
// activity streak.
package profile

import (
	"encoding/json"
	"time"

	"github.com/charmbracelet/huh"

	"calmind/internal/models"
	"calmind/internal/timeutil"
	"calmind/store"
)

// Manager loads and saves the user profile.
type Manager struct {
	kv store.KV
}

// NewManager returns a Manager backed by the given store.
func NewManager(kv store.KV) *Manager {
	return &Manager{kv: kv}
}

// Load reads the saved profile. An absent key or malformed value reads
// as an empty profile.
func (m *Manager) Load() models.Profile {
	var p models.Profile

	b, err := m.kv.Get(store.KeyProfile)
	if err != nil || len(b) == 0 {
		return p
	}

	if err := json.Unmarshal(b, &p); err != nil {
		return models.Profile{}
	}

	return p
}

// Save stores the profile.
func (m *Manager) Save(p models.Profile) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}

	return m.kv.Set(store.KeyProfile, b)
}

// Edit presents an interactive form prefilled with the saved profile
// and persists the result.
func (m *Manager) Edit() (models.Profile, error) {
	p := m.Load()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&p.Name),
			huh.NewInput().
				Title("Age").
				Value(&p.Age),
			huh.NewSelect[string]().
				Title("Focus level").
				Options(levelOptions()...).
				Value(&p.FocusLevel),
			huh.NewSelect[string]().
				Title("Memory level").
				Options(levelOptions()...).
				Value(&p.MemoryLevel),
			huh.NewSelect[string]().
				Title("Reaction level").
				Options(levelOptions()...).
				Value(&p.ReactionLevel),
			huh.NewSelect[string]().
				Title("Meditation frequency").
				Options(
					huh.NewOption("Never", "never"),
					huh.NewOption("Occasionally", "occasionally"),
					huh.NewOption("Weekly", "weekly"),
					huh.NewOption("Daily", "daily"),
				).
				Value(&p.MeditationFrequency),
			huh.NewInput().
				Title("Typical hours of sleep").
				Value(&p.SleepHours),
			huh.NewInput().
				Title("Daily training goal").
				Value(&p.DailyGoal),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Favorite music").
				Value(&p.FavoriteMusic),
			huh.NewText().
				Title("Favorite activities").
				Value(&p.FavoriteActivities),
			huh.NewText().
				Title("Relaxation techniques that work for you").
				Value(&p.RelaxationTechniques),
			huh.NewText().
				Title("Common stressors").
				Value(&p.Stressors),
			huh.NewText().
				Title("Personal goals").
				Value(&p.PersonalGoals),
			huh.NewText().
				Title("Mood triggers").
				Value(&p.MoodTriggers),
		),
	)

	if err := form.Run(); err != nil {
		return p, err
	}

	return p, m.Save(p)
}

func levelOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Low", "low"),
		huh.NewOption("Medium", "medium"),
		huh.NewOption("High", "high"),
	}
}

// Streaks tracks consecutive days with at least one completed activity.
type Streaks struct {
	kv  store.KV
	now func() time.Time
}

// NewStreaks returns a Streaks tracker backed by the given store.
func NewStreaks(kv store.KV) *Streaks {
	return &Streaks{
		kv:  kv,
		now: time.Now,
	}
}

// Load reads the saved streak. An absent key or malformed value reads
// as no streak.
func (s *Streaks) Load() models.Streak {
	var st models.Streak

	b, err := s.kv.Get(store.KeyStreak)
	if err != nil || len(b) == 0 {
		return st
	}

	if err := json.Unmarshal(b, &st); err != nil {
		return models.Streak{}
	}

	return st
}

// Touch records an activity on the current day and returns the updated
// streak. A second activity on the same day leaves the streak alone,
// an activity on the following day extends it, and any longer gap
// restarts it at one.
func (s *Streaks) Touch() (models.Streak, error) {
	st := s.Load()

	today := timeutil.RoundToStart(s.now())
	last := timeutil.RoundToStart(st.LastActivity)

	switch {
	case st.Days == 0:
		st.Days = 1
	case today.Equal(last):
		return st, nil
	case today.Equal(last.AddDate(0, 0, 1)):
		st.Days++
	default:
		st.Days = 1
	}

	st.LastActivity = s.now()

	b, err := json.Marshal(st)
	if err != nil {
		return st, err
	}

	return st, s.kv.Set(store.KeyStreak, b)
}
