package reminder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"calmind/internal/reminder"
	"calmind/internal/testutil"
)

func TestNewValidatesTime(t *testing.T) {
	notifier := &testutil.Notifier{}

	_, err := reminder.New("09:00", "train", notifier)
	assert.NoError(t, err)

	_, err = reminder.New("9 o'clock", "train", notifier)
	assert.Error(t, err)

	_, err = reminder.New("25:00", "train", notifier)
	assert.Error(t, err)
}
