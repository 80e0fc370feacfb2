package relax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"calmind/internal/progress"
	"calmind/internal/relax"
	"calmind/internal/testutil"
)

func TestFind(t *testing.T) {
	item, err := relax.Find("waves")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.Equal(t, "Ocean Waves", item.Title)
	assert.Equal(t, 12, item.XPValue)

	_, err = relax.Find("silence")
	assert.ErrorContains(t, err, "unknown relaxation item: silence")
}

func TestCatalogIsComplete(t *testing.T) {
	for _, item := range relax.Catalog {
		assert.NotEmpty(t, item.File, "%s has no audio file", item.ID)
		assert.Positive(t, item.XPValue, "%s grants no XP", item.ID)
	}
}

func TestPlayMissingFile(t *testing.T) {
	kv := testutil.NewKV()
	notifier := &testutil.Notifier{}

	player := relax.NewPlayer(
		t.TempDir(),
		progress.NewTracker(kv, notifier),
		notifier,
	)

	err := player.Play(relax.Item{ID: "x", File: "missing.mp3"})

	assert.Error(t, err)
	assert.Empty(t, notifier.Messages, "no reward for an unplayed track")
}
