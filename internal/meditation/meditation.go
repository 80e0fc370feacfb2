// Package meditation provides guided meditation exercises with a timed
// session that credits XP on completion.
package meditation

import (
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"

	"calmind/internal/notify"
	"calmind/internal/progress"
	"calmind/internal/timeutil"
)

// Exercise is one guided meditation.
type Exercise struct {
	ID          string
	Title       string
	Description string
	Guide       []string
	Duration    time.Duration
	XPReward    int
}

// Exercises lists the available guided meditations.
var Exercises = []Exercise{
	{
		ID:          "mindful",
		Title:       "Mindful Breathing",
		Description: "Focus on your breath to center your mind",
		Duration:    5 * time.Minute,
		XPReward:    40,
		Guide: []string{
			"Find a comfortable position and close your eyes",
			"Bring your attention to your breath",
			"Inhale slowly through your nose for 4 counts",
			"Hold for 2 counts",
			"Exhale slowly through your mouth for 6 counts",
			"Notice when your mind wanders and gently return to your breath",
		},
	},
	{
		ID:          "loving",
		Title:       "Loving-Kindness",
		Description: "Cultivate compassion toward yourself and others",
		Duration:    6 * time.Minute,
		XPReward:    45,
		Guide: []string{
			"Sit comfortably with eyes closed",
			"Begin by focusing on your heart center",
			"Bring to mind someone you care about deeply",
			"Silently repeat: 'May you be happy, may you be healthy, may you be safe'",
			"Now direct these same wishes to yourself",
			"Finally, extend these wishes to all beings everywhere",
		},
	},
	{
		ID:          "morning",
		Title:       "Morning Energizer",
		Description: "Start your day with mental clarity and energy",
		Duration:    4 * time.Minute,
		XPReward:    35,
		Guide: []string{
			"Sit up straight with eyes gently closed",
			"Take 5 deep breaths, filling your lungs completely",
			"Visualize bright light filling your body with energy",
			"Set a positive intention for your day",
			"Gently open your eyes and bring awareness to your surroundings",
		},
	},
	{
		ID:          "evening",
		Title:       "Evening Wind-Down",
		Description: "Relax your mind and prepare for restful sleep",
		Duration:    7 * time.Minute,
		XPReward:    50,
		Guide: []string{
			"Lie down comfortably with your eyes closed",
			"Take deep breaths, focusing on relaxing your body",
			"Scan your body from toes to head, releasing tension",
			"Let go of thoughts about the day",
			"Visualize a peaceful scene that brings you comfort",
			"Allow yourself to drift toward sleep",
		},
	},
	{
		ID:          "focus",
		Title:       "Focus Enhancer",
		Description: "Sharpen concentration before important tasks",
		Duration:    3 * time.Minute,
		XPReward:    30,
		Guide: []string{
			"Sit upright in a comfortable position",
			"Take three deep clearing breaths",
			"Choose a single point of focus (a word, object, or your breath)",
			"When your mind wanders, gently bring it back to your focus point",
			"Notice distractions without judgment and return to your focus",
		},
	},
	{
		ID:          "body",
		Title:       "Body Scan Meditation",
		Description: "Develop awareness of physical sensations",
		Duration:    6 * time.Minute,
		XPReward:    45,
		Guide: []string{
			"Lie down or sit comfortably",
			"Begin by bringing attention to your feet",
			"Slowly move your attention up through each part of your body",
			"Notice any sensations without trying to change them",
			"Pay special attention to areas of tension",
			"End by being aware of your body as a whole",
		},
	},
}

// Find returns the exercise with the given id.
func Find(id string) (Exercise, bool) {
	for _, e := range Exercises {
		if e.ID == id {
			return e, true
		}
	}

	return Exercise{}, false
}

// Session runs one timed meditation.
type Session struct {
	exercise Exercise
	tracker  *progress.Tracker
	notifier notify.Notifier
	out      io.Writer
}

// NewSession prepares a session for the given exercise.
func NewSession(
	exercise Exercise,
	tracker *progress.Tracker,
	notifier notify.Notifier,
	out io.Writer,
) *Session {
	return &Session{
		exercise: exercise,
		tracker:  tracker,
		notifier: notifier,
		out:      out,
	}
}

// Run counts the exercise down on the given tick source, advancing the
// guide steps evenly across its duration, and credits the exercise XP
// once the full duration has elapsed. Closing the tick channel aborts
// the session without awarding anything.
func (s *Session) Run(ticks <-chan time.Time) error {
	total := int(s.exercise.Duration.Seconds())

	perStep := total
	if n := len(s.exercise.Guide); n > 0 {
		perStep = total / n
	}

	if perStep < 1 {
		perStep = 1
	}

	step := -1

	for elapsed := 0; elapsed < total; elapsed++ {
		if i := elapsed / perStep; i != step && i < len(s.exercise.Guide) {
			step = i

			fmt.Fprintf(
				s.out,
				"\n%s\n",
				pterm.Cyan(s.exercise.Guide[step]),
			)
		}

		remaining := total - elapsed
		m, sec := timeutil.SecsToMinsAndSecs(float64(remaining))
		fmt.Fprintf(s.out, "\r🧘%02d:%02d", m, sec)

		if _, ok := <-ticks; !ok {
			return nil
		}
	}

	fmt.Fprintf(s.out, "\r🧘00:00\n\n")

	s.notifier.Notify(
		notify.Success,
		fmt.Sprintf("%s complete", s.exercise.Title),
		"Well done. Take this calm with you.",
	)

	_, err := s.tracker.Award(s.exercise.XPReward)

	return err
}
