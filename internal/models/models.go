// Package models defines the records calmind persists to its data store.
package models

import "time"

// Progress is the cognitive leveling state shared by every activity.
// The invariant xp < (level+1)*100 holds after every award.
type Progress struct {
	Level int `json:"level"`
	XP    int `json:"xp"`
}

// GameRecord is one entry in the append-only game history log.
type GameRecord struct {
	Date      time.Time `json:"date"`
	GameType  string    `json:"game_type"`
	GameTitle string    `json:"game_title"`
	Score     int       `json:"score"`
	Level     int       `json:"level"`
}

// ChatMessage is one turn in a persisted chat conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Profile holds the user's self-reported cognitive details.
type Profile struct {
	Name                 string `json:"name"`
	Age                  string `json:"age"`
	FocusLevel           string `json:"focus_level"`
	MemoryLevel          string `json:"memory_level"`
	ReactionLevel        string `json:"reaction_level"`
	MeditationFrequency  string `json:"meditation_frequency"`
	SleepHours           string `json:"sleep_hours"`
	DailyGoal            string `json:"daily_goal"`
	FavoriteMusic        string `json:"favorite_music"`
	FavoriteActivities   string `json:"favorite_activities"`
	RelaxationTechniques string `json:"relaxation_techniques"`
	Stressors            string `json:"stressors"`
	PersonalGoals        string `json:"personal_goals"`
	MoodTriggers         string `json:"mood_triggers"`
}

// Streak tracks consecutive days with at least one completed activity.
type Streak struct {
	Days         int       `json:"days"`
	LastActivity time.Time `json:"last_activity"`
}
