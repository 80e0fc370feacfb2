// Package game implements the six brain-training mini-games behind a
// single MiniGame interface. Engines hold only rules state (score,
// level, board); the countdown clock and input loop live in the play
// package so the scoring math stays testable without real time.
package game

import (
	"math/rand"
	"time"

	"calmind/internal/apperr"
)

// Type identifies a mini-game variant.
type Type string

const (
	Memory   Type = "memory"
	Puzzle   Type = "puzzle"
	Pattern  Type = "pattern"
	Math     Type = "math"
	Reaction Type = "reaction"
	Focus    Type = "focus"
)

// SessionSeconds is the duration of one play-through.
const SessionSeconds = 60

// Cells is the size of the 3x3 boards used by the reaction and focus games.
const Cells = 9

// ErrUnknownGame is returned by New for an unrecognized game type.
var ErrUnknownGame = &apperr.Error{
	Message: "unknown game type: %s",
}

// Config describes a mini-game variant.
type Config struct {
	Title       string
	Description string
	// Message explains the cognitive benefit, shown when a session ends.
	Message string
	// BaseXP is the flat XP credited on top of the score-derived XP.
	BaseXP int
}

// Catalog holds the per-variant configuration.
var Catalog = map[Type]Config{
	Memory: {
		Title:       "Memory Match",
		Description: "Test your memory by matching pairs of cards",
		BaseXP:      25,
		Message:     "Memory games strengthen your short-term memory and improve pattern recognition skills. Regular practice can increase attention to detail and visual recognition abilities.",
	},
	Puzzle: {
		Title:       "Speed Puzzle",
		Description: "Solve puzzles against the clock",
		BaseXP:      20,
		Message:     "Puzzles enhance problem-solving capabilities and spatial awareness. They help your brain form new neural pathways and improve mental flexibility.",
	},
	Pattern: {
		Title:       "Pattern Quest",
		Description: "Find and complete pattern sequences",
		BaseXP:      15,
		Message:     "Recognizing patterns improves your logical thinking and helps your brain identify relationships between concepts. This skill transfers to many real-world scenarios.",
	},
	Math: {
		Title:       "Quick Math",
		Description: "Solve math problems with lightning speed",
		BaseXP:      30,
		Message:     "Mental math exercises improve numerical fluency and processing speed. The practice stimulates areas of your brain associated with quantitative reasoning.",
	},
	Reaction: {
		Title:       "Reaction Time",
		Description: "Test your reflexes and response time",
		BaseXP:      18,
		Message:     "Improving reaction time benefits decision-making speed and hand-eye coordination. This skill is valuable in many daily activities and emergency situations.",
	},
	Focus: {
		Title:       "Focus Finder",
		Description: "Improve concentration through target exercises",
		BaseXP:      22,
		Message:     "Concentration exercises enhance your ability to ignore distractions and maintain attention on important tasks. This skill is fundamental to productivity and learning.",
	},
}

// All returns the game types in display order.
func All() []Type {
	return []Type{Memory, Puzzle, Pattern, Math, Reaction, Focus}
}

// Rand is the random source used by the engines. Injecting it lets
// tests script round generation and level promotion exactly.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a time-seeded random source.
func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Input carries one user action into an engine. Which fields matter
// depends on the variant: Cell for board games, Answer for quick math,
// At for reaction timing.
type Input struct {
	At     time.Time
	Answer string
	Cell   int
}

// Outcome reports the result of a round resolution.
type Outcome struct {
	Message string
	// Points is the score delta actually applied after flooring at zero.
	Points int
	// Pending indicates the round is not resolved yet, e.g. the first
	// card flip in the memory game.
	Pending   bool
	Correct   bool
	LeveledUp bool
}

// Snapshot is the externally visible session state.
type Snapshot struct {
	Type  Type
	Score int
	Level int
}

// MiniGame is the capability shared by all six variants.
type MiniGame interface {
	Type() Type
	// Start resets score and level and generates the first round.
	Start()
	// Resolve applies one user action to the current round.
	Resolve(in Input) Outcome
	// Active reports whether a session is in progress.
	Active() bool
	// End terminates the session.
	End()
	Snapshot() Snapshot
}

// New returns a fresh engine for the given game type.
func New(t Type, rng Rand) (MiniGame, error) {
	switch t {
	case Memory:
		return &MemoryGame{base: base{rng: rng}}, nil
	case Puzzle:
		return &PuzzleGame{base: base{rng: rng}}, nil
	case Pattern:
		return &PatternGame{base: base{rng: rng}}, nil
	case Math:
		return &MathGame{base: base{rng: rng}}, nil
	case Reaction:
		return &ReactionGame{base: base{rng: rng}}, nil
	case Focus:
		return &FocusGame{base: base{rng: rng}}, nil
	default:
		return nil, ErrUnknownGame.Fmt(t)
	}
}

// EarnedXP converts a final session score into an XP credit.
func EarnedXP(t Type, score, level int) int {
	return int(float64(score)*float64(level)*0.5) + Catalog[t].BaseXP
}

// base holds the state common to every engine.
type base struct {
	rng    Rand
	score  int
	level  int
	active bool
}

func (b *base) reset() {
	b.score = 0
	b.level = 1
	b.active = true
}

func (b *base) Active() bool {
	return b.active
}

func (b *base) End() {
	b.active = false
}

// addPoints adjusts the score, flooring at zero, and returns the delta
// actually applied.
func (b *base) addPoints(n int) int {
	prev := b.score

	b.score += n
	if b.score < 0 {
		b.score = 0
	}

	return b.score - prev
}

// promote rolls the stochastic level-up check. The threshold is the
// probability of NOT advancing, so promote(0.7) advances 30% of the time.
func (b *base) promote(threshold float64) bool {
	if b.rng.Float64() > threshold {
		b.level++
		return true
	}

	return false
}

func (b *base) snapshot(t Type) Snapshot {
	return Snapshot{
		Type:  t,
		Score: b.score,
		Level: b.level,
	}
}
