// Package history records finished game sessions in a capped,
// most-recent-first log.
package history

import (
	"encoding/json"
	"time"

	"calmind/internal/game"
	"calmind/internal/models"
	"calmind/store"
)

// maxRecords caps the persisted log; the oldest entries are evicted.
const maxRecords = 50

// Recorder reads and writes the game history log.
type Recorder struct {
	kv  store.KV
	now func() time.Time
}

// NewRecorder returns a Recorder backed by the given store.
func NewRecorder(kv store.KV) *Recorder {
	return &Recorder{
		kv:  kv,
		now: time.Now,
	}
}

// Record prepends a new entry to the log and truncates it to the most
// recent fifty records.
func (r *Recorder) Record(t game.Type, title string, score, level int) error {
	records, err := r.List()
	if err != nil {
		return err
	}

	entry := models.GameRecord{
		GameType:  string(t),
		GameTitle: title,
		Score:     score,
		Level:     level,
		Date:      r.now(),
	}

	records = append([]models.GameRecord{entry}, records...)
	if len(records) > maxRecords {
		records = records[:maxRecords]
	}

	return r.save(records)
}

// List returns the log most-recent-first. An absent key or a malformed
// value yields an empty list, not an error.
func (r *Recorder) List() ([]models.GameRecord, error) {
	b, err := r.kv.Get(store.KeyGameHistory)
	if err != nil {
		return nil, err
	}

	if len(b) == 0 {
		return nil, nil
	}

	var records []models.GameRecord

	if err := json.Unmarshal(b, &records); err != nil {
		// A corrupt log reads as empty rather than crashing the UI.
		return nil, nil
	}

	return records, nil
}

// Delete removes the record at the given position in the log.
func (r *Recorder) Delete(index int) error {
	records, err := r.List()
	if err != nil {
		return err
	}

	if index < 0 || index >= len(records) {
		return nil
	}

	return r.save(append(records[:index], records[index+1:]...))
}

// Clear removes the entire log.
func (r *Recorder) Clear() error {
	return r.kv.Remove(store.KeyGameHistory)
}

func (r *Recorder) save(records []models.GameRecord) error {
	b, err := json.Marshal(records)
	if err != nil {
		return err
	}

	return r.kv.Set(store.KeyGameHistory, b)
}
