package history

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/markusmobius/go-dateparser"
	"github.com/maruel/natural"

	"calmind/internal/apperr"
	"calmind/internal/models"
	"calmind/internal/ui"
)

var errInvalidSince = &apperr.Error{
	Message: "please provide a valid start date: %s",
}

// ParseSince turns a natural-language date expression (e.g. "3 days
// ago") into a cutoff time.
func ParseSince(s string) (time.Time, error) {
	dt, err := dateparser.Parse(nil, s)
	if err != nil {
		return time.Time{}, errInvalidSince.Fmt(s)
	}

	return dt.Time, nil
}

// FilterSince drops records older than the cutoff.
func FilterSince(
	records []models.GameRecord,
	cutoff time.Time,
) []models.GameRecord {
	filtered := make([]models.GameRecord, 0, len(records))

	for _, r := range records {
		if !r.Date.Before(cutoff) {
			filtered = append(filtered, r)
		}
	}

	return filtered
}

// Render writes the log as a table, most recent first.
func Render(records []models.GameRecord, w io.Writer) {
	data := make([][]string, 0, len(records)+1)
	data = append(data, []string{"#", "DATE", "GAME", "SCORE", "LEVEL"})

	for i, r := range records {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			r.Date.Format("Jan 02, 2006 03:04:05 PM"),
			r.GameTitle,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Level),
		})
	}

	ui.PrintTable(data, w)
}

// Summary aggregates the log per game.
type Summary struct {
	GameTitle string
	Plays     int
	BestScore int
	BestLevel int
}

// Summarize groups records by game title, ordered naturally by title.
func Summarize(records []models.GameRecord) []Summary {
	byTitle := make(map[string]*Summary)

	for _, r := range records {
		s, ok := byTitle[r.GameTitle]
		if !ok {
			s = &Summary{GameTitle: r.GameTitle}
			byTitle[r.GameTitle] = s
		}

		s.Plays++

		if r.Score > s.BestScore {
			s.BestScore = r.Score
		}

		if r.Level > s.BestLevel {
			s.BestLevel = r.Level
		}
	}

	summaries := make([]Summary, 0, len(byTitle))
	for _, s := range byTitle {
		summaries = append(summaries, *s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return natural.Less(summaries[i].GameTitle, summaries[j].GameTitle)
	})

	return summaries
}

// RenderSummary writes the per-game aggregate table.
func RenderSummary(summaries []Summary, w io.Writer) {
	data := make([][]string, 0, len(summaries)+1)
	data = append(data, []string{"GAME", "PLAYS", "BEST SCORE", "BEST LEVEL"})

	for _, s := range summaries {
		data = append(data, []string{
			s.GameTitle,
			fmt.Sprintf("%d", s.Plays),
			fmt.Sprintf("%d", s.BestScore),
			fmt.Sprintf("%d", s.BestLevel),
		})
	}

	ui.PrintTable(data, w)
}
