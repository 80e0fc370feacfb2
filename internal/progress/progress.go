// Package progress implements the cognitive leveling engine. Every
// activity in calmind funnels its XP awards through a single Tracker so
// that level state is read, mutated, and persisted in exactly one place.
package progress

import (
	"fmt"
	"strconv"

	"calmind/internal/apperr"
	"calmind/internal/models"
	"calmind/internal/notify"
	"calmind/store"
)

const xpLevelStep = 100

// ErrNegativeAward is returned when an XP award is negative.
var ErrNegativeAward = &apperr.Error{
	Message: "xp award must not be negative",
}

// XPForNextLevel returns the XP required to advance past the given level.
func XPForNextLevel(level int) int {
	return (level + 1) * xpLevelStep
}

// AwardXP applies an XP award to the given progress and reports whether
// at least one level was gained. The threshold check loops, so a single
// large award can cross several levels and the returned progress always
// satisfies xp < XPForNextLevel(level).
func AwardXP(p models.Progress, amount int) (models.Progress, bool, error) {
	if amount < 0 {
		return p, false, ErrNegativeAward
	}

	p.XP += amount

	var leveledUp bool

	for p.XP >= XPForNextLevel(p.Level) {
		p.XP -= XPForNextLevel(p.Level)
		p.Level++
		leveledUp = true
	}

	return p, leveledUp, nil
}

// Tracker loads, updates, and persists leveling state, and surfaces a
// notification for every award.
type Tracker struct {
	kv       store.KV
	notifier notify.Notifier
}

// NewTracker returns a Tracker backed by the given store.
func NewTracker(kv store.KV, notifier notify.Notifier) *Tracker {
	return &Tracker{
		kv:       kv,
		notifier: notifier,
	}
}

// Load reads persisted progress. An absent key, a malformed value, or a
// storage failure all degrade to the zero state.
func (t *Tracker) Load() models.Progress {
	var p models.Progress

	if b, err := t.kv.Get(store.KeyLevel); err == nil && b != nil {
		if v, err := strconv.Atoi(string(b)); err == nil && v >= 0 {
			p.Level = v
		}
	}

	if b, err := t.kv.Get(store.KeyXP); err == nil && b != nil {
		if v, err := strconv.Atoi(string(b)); err == nil && v >= 0 {
			p.XP = v
		}
	}

	return p
}

func (t *Tracker) save(p models.Progress) error {
	err := t.kv.Set(store.KeyLevel, []byte(strconv.Itoa(p.Level)))
	if err != nil {
		return err
	}

	return t.kv.Set(store.KeyXP, []byte(strconv.Itoa(p.XP)))
}

// Award credits the given XP amount, persists the result, and notifies
// the user of the gain or the level-up.
func (t *Tracker) Award(amount int) (models.Progress, error) {
	p, leveledUp, err := AwardXP(t.Load(), amount)
	if err != nil {
		return p, err
	}

	if err := t.save(p); err != nil {
		return p, err
	}

	if leveledUp {
		t.notifier.Notify(
			notify.Success,
			fmt.Sprintf("Level Up! You are now Level %d!", p.Level),
			"Keep practicing to improve your cognitive abilities.",
		)
	} else {
		t.notifier.Notify(
			notify.Success,
			fmt.Sprintf("Gained %d XP!", amount),
			fmt.Sprintf(
				"%d XP needed for next level.",
				XPForNextLevel(p.Level)-p.XP,
			),
		)
	}

	return p, nil
}
