package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"calmind/store"
)

func newTestClient(t *testing.T) *store.Client {
	t.Helper()

	client, err := store.NewClient(filepath.Join(t.TempDir(), "calmind.db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

func TestRoundTrip(t *testing.T) {
	client := newTestClient(t)

	if err := client.Set(store.KeyLevel, []byte("3")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := client.Get(store.KeyLevel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.Equal(t, []byte("3"), got)
}

func TestGetAbsentKey(t *testing.T) {
	client := newTestClient(t)

	got, err := client.Get("nonexistent")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRemove(t *testing.T) {
	client := newTestClient(t)

	_ = client.Set(store.KeyGameHistory, []byte("[]"))

	if err := client.Remove(store.KeyGameHistory); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := client.Get(store.KeyGameHistory)
	assert.NoError(t, err)
	assert.Nil(t, got)

	// removing an absent key is not an error
	assert.NoError(t, client.Remove(store.KeyGameHistory))
}

func TestSingleInstanceLock(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "calmind.db")

	first, err := store.NewClient(dbPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defer first.Close()

	_, err = store.NewClient(dbPath)
	assert.ErrorContains(t, err, "already running")
}
