package store

import "calmind/internal/apperr"

// Keys used in the state bucket. Level and XP are decimal strings;
// the rest are JSON-encoded.
const (
	KeyLevel       = "cognitive_level"
	KeyXP          = "cognitive_xp"
	KeyGameHistory = "game_history"
	KeyProfile     = "cognitive_details"
	KeyStreak      = "activity_streak"
	KeyChatHistory = "chat_history"
)

// ErrStorageUnavailable wraps any read or write failure from the
// underlying store. Callers degrade to default state rather than crash.
var ErrStorageUnavailable = &apperr.Error{
	Message: "storage unavailable",
}

// KV is the narrow key-value contract consumed by the core components.
// Get returns nil (not an error) for an absent key.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// DB is the full data store interface.
type DB interface {
	KV

	// Close ends the database connection
	Close() error
}
