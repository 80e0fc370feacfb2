// Package recommend maps a finished game session to follow-up
// activities. The selection is a pure function of game type, score, and
// level; nothing here is persisted.
package recommend

import (
	"fmt"

	"calmind/internal/game"
)

// MediaType classifies a recommendation.
type MediaType string

const (
	Meditation MediaType = "meditation"
	Music      MediaType = "music"
	Video      MediaType = "video"
)

// Recommendation is one suggested follow-up activity.
type Recommendation struct {
	Title       string
	Description string
	Type        MediaType
	Link        string
	Duration    string
}

// Shown is how many entries consumers display.
const Shown = 3

// advancedThreshold is the score above which an advanced-techniques
// entry is added.
const advancedThreshold = 50

// baseline is always appended, in fixed order: one meditation, one
// piece of music, one video.
var baseline = []Recommendation{
	{
		Title:       "Mindful Breathing",
		Description: "A quick 5-minute meditation to reset your mental focus",
		Type:        Meditation,
		Link:        "meditate",
		Duration:    "5 min",
	},
	{
		Title:       "Focus Ambient",
		Description: "Calm instrumental music designed to improve concentration",
		Type:        Music,
		Link:        "relax",
		Duration:    "15 min",
	},
	{
		Title:       "Cognitive Training",
		Description: "Short video with techniques to improve mental processing",
		Type:        Video,
		Link:        "relax",
		Duration:    "8 min",
	},
}

var specific = map[game.Type][]Recommendation{
	game.Memory: {
		{
			Title:       "Memory Enhancement",
			Description: "Specific meditation for improving memory retention",
			Type:        Meditation,
			Link:        "meditate",
			Duration:    "7 min",
		},
		{
			Title:       "Alpha Wave Music",
			Description: "Sound patterns that support memory function",
			Type:        Music,
			Link:        "relax",
			Duration:    "20 min",
		},
	},
	game.Puzzle: {
		{
			Title:       "Problem Solving Focus",
			Description: "Meditation to enhance analytical thinking",
			Type:        Meditation,
			Link:        "meditate",
			Duration:    "6 min",
		},
		{
			Title:       "Spatial Reasoning Guide",
			Description: "Video tutorial on improving spatial intelligence",
			Type:        Video,
			Link:        "relax",
			Duration:    "12 min",
		},
	},
	game.Pattern: {
		{
			Title:       "Pattern Recognition",
			Description: "Meditation for enhancing pattern identification",
			Type:        Meditation,
			Link:        "meditate",
			Duration:    "8 min",
		},
	},
	game.Math: {
		{
			Title:       "Numerical Focus",
			Description: "Guided meditation for mathematical thinking",
			Type:        Meditation,
			Link:        "meditate",
			Duration:    "5 min",
		},
		{
			Title:       "Math Processing Techniques",
			Description: "Video with mental math enhancement methods",
			Type:        Video,
			Link:        "relax",
			Duration:    "10 min",
		},
	},
	game.Reaction: {
		{
			Title:       "Reflex Meditation",
			Description: "Meditation to improve reaction time",
			Type:        Meditation,
			Link:        "meditate",
			Duration:    "4 min",
		},
		{
			Title:       "Response Enhancement",
			Description: "Binaural beats designed to improve reaction speed",
			Type:        Music,
			Link:        "relax",
			Duration:    "15 min",
		},
	},
	game.Focus: {
		{
			Title:       "Deep Focus",
			Description: "Meditation for sustained attention",
			Type:        Meditation,
			Link:        "meditate",
			Duration:    "10 min",
		},
		{
			Title:       "Concentration Music",
			Description: "Specially designed audio to enhance focus",
			Type:        Music,
			Link:        "relax",
			Duration:    "25 min",
		},
	},
}

// For returns follow-up recommendations for a finished session, ordered
// game-specific entries first, then the fixed baseline. A score above
// 50 earns an extra advanced-techniques entry between the two groups.
func For(t game.Type, score, level int) []Recommendation {
	recs := make([]Recommendation, 0, len(specific[t])+len(baseline)+1)
	recs = append(recs, specific[t]...)

	if score > advancedThreshold {
		recs = append(recs, Recommendation{
			Title: "Advanced Techniques",
			Description: fmt.Sprintf(
				"Level up your %s skills with advanced strategies", t,
			),
			Type:     Video,
			Link:     "relax",
			Duration: "15 min",
		})
	}

	return append(recs, baseline...)
}
