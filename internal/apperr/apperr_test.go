package apperr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"calmind/internal/apperr"
)

var errMissing = &apperr.Error{Message: "no record found for %s"}

func TestFmtKeepsIdentity(t *testing.T) {
	err := errMissing.Fmt("alice")

	assert.EqualError(t, err, "no record found for alice")
	assert.ErrorIs(t, err, errMissing)
}

func TestWrapExposesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := errMissing.Wrap(cause)

	assert.ErrorIs(t, err, errMissing)
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "no record found for %s: disk full")
}

func TestFmtThenWrap(t *testing.T) {
	cause := errors.New("disk full")
	err := errMissing.Fmt("bob").Wrap(cause)

	assert.ErrorIs(t, err, errMissing)
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "no record found for bob: disk full")
}

func TestIsIgnoresForeignErrors(t *testing.T) {
	assert.NotErrorIs(t, errMissing, errors.New("no record found for %s"))
}
