// Package reminder schedules the daily training reminder.
package reminder

import (
	"time"

	"github.com/go-co-op/gocron"

	"calmind/internal/apperr"
	"calmind/internal/notify"
)

var errInvalidTime = &apperr.Error{
	Message: "reminder time must be in HH:MM format: %s",
}

// Reminder fires a daily notification at a fixed local time.
type Reminder struct {
	notifier notify.Notifier
	at       string
	message  string
}

// New returns a Reminder firing at the given HH:MM local time.
func New(at, message string, notifier notify.Notifier) (*Reminder, error) {
	if _, err := time.Parse("15:04", at); err != nil {
		return nil, errInvalidTime.Fmt(at)
	}

	return &Reminder{
		at:       at,
		message:  message,
		notifier: notifier,
	}, nil
}

// Run blocks, delivering the reminder once a day.
func (r *Reminder) Run() error {
	s := gocron.NewScheduler(time.Local)

	_, err := s.Every(1).Day().At(r.at).Do(func() {
		r.notifier.Notify(
			notify.Info,
			"Daily Training Reminder",
			r.message,
		)
	})
	if err != nil {
		return err
	}

	s.StartBlocking()

	return nil
}
