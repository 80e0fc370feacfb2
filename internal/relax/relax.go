// Package relax plays relaxation audio and credits XP when a track is
// listened to completion.
package relax

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"calmind/internal/apperr"
	"calmind/internal/notify"
	"calmind/internal/progress"
)

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format",
	}

	errUnknownItem = &apperr.Error{
		Message: "unknown relaxation item: %s",
	}
)

// Item is one relaxation track.
type Item struct {
	ID          string
	Title       string
	File        string
	Description string
	XPValue     int
}

// Catalog lists the relaxation media.
var Catalog = []Item{
	{
		ID:          "waves",
		Title:       "Ocean Waves",
		File:        "ocean_waves.mp3",
		XPValue:     12,
		Description: "Calming ocean waves to reduce stress and stabilize breathing patterns.",
	},
	{
		ID:          "rain",
		Title:       "Rainy Mood",
		File:        "rainy_mood.mp3",
		XPValue:     12,
		Description: "Calm your mind and block out distractions with soothing thunder and rain sounds.",
	},
	{
		ID:          "forest",
		Title:       "Forest Birds",
		File:        "forest_birds.mp3",
		XPValue:     10,
		Description: "Birdsong and forest ambience to promote mindfulness and presence.",
	},
	{
		ID:          "breathing",
		Title:       "Guided Meditation - Breathing",
		File:        "guided_breathing.ogg",
		XPValue:     30,
		Description: "A breathing-focused guided meditation to help regulate emotions.",
	},
	{
		ID:          "nature",
		Title:       "Nature Meditation",
		File:        "nature_meditation.ogg",
		XPValue:     25,
		Description: "Uses nature visualization to reduce rumination and negative thought patterns.",
	},
	{
		ID:          "movement",
		Title:       "Mindful Movement",
		File:        "mindful_movement.ogg",
		XPValue:     35,
		Description: "A gentle movement practice that combines mindfulness with physical awareness.",
	},
}

// Find returns the catalog item with the given id.
func Find(id string) (Item, error) {
	for _, item := range Catalog {
		if item.ID == id {
			return item, nil
		}
	}

	return Item{}, errUnknownItem.Fmt(id)
}

// Player decodes and plays relaxation audio from the media directory.
type Player struct {
	tracker  *progress.Tracker
	notifier notify.Notifier
	mediaDir string
}

// NewPlayer returns a Player reading audio files from mediaDir.
func NewPlayer(
	mediaDir string,
	tracker *progress.Tracker,
	notifier notify.Notifier,
) *Player {
	return &Player{
		mediaDir: mediaDir,
		tracker:  tracker,
		notifier: notifier,
	}
}

// Play blocks until the track finishes, then credits its XP value.
func (p *Player) Play(item Item) error {
	stream, err := p.prepSoundStream(filepath.Join(p.mediaDir, item.File))
	if err != nil {
		return err
	}

	defer stream.Close()

	done := make(chan bool)

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		done <- true
	})))

	<-done

	speaker.Clear()

	p.notifier.Notify(
		notify.Success,
		fmt.Sprintf("%s finished", item.Title),
		item.Description,
	)

	_, err = p.tracker.Award(item.XPValue)

	return err
}

// prepSoundStream returns an audio stream for the specified sound file.
func (p *Player) prepSoundStream(sound string) (beep.StreamSeekCloser, error) {
	var (
		f      fs.File
		err    error
		stream beep.StreamSeekCloser
		format beep.Format
	)

	f, err = os.Open(sound)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = f.Close()
	}()

	switch filepath.Ext(sound) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		return nil, errInvalidSoundFormat
	}

	if err != nil {
		return nil, err
	}

	bufferSize := 10

	err = speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
	)
	if err != nil {
		return nil, err
	}

	err = stream.Seek(0)
	if err != nil {
		return nil, err
	}

	return stream, nil
}
