package play

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"calmind/internal/game"
	"calmind/internal/timeutil"
)

const (
	padding  = 2
	maxWidth = 80
)

var (
	baseStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	targetStyle = cellStyle.
			Foreground(lipgloss.Color("212")).
			BorderForeground(lipgloss.Color("212")).
			Bold(true)

	foundStyle = cellStyle.
			Foreground(lipgloss.Color("42")).
			BorderForeground(lipgloss.Color("42"))

	hintStyle = lipgloss.NewStyle().Faint(true)
)

// formatTimeRemaining returns the remaining time formatted as "MM:SS".
func (s *Session) formatTimeRemaining() string {
	m, sec := timeutil.SecsToMinsAndSecs(s.clock.Timeout.Seconds())

	return fmt.Sprintf("%02d:%02d", m, sec)
}

func (s *Session) headerView() string {
	snap := s.game.Snapshot()
	cfg := game.Catalog[snap.Type]

	var b strings.Builder

	b.WriteString(titleStyle.Render(cfg.Title))
	b.WriteString(hintStyle.Render(
		fmt.Sprintf("  %s  score %d  level %d",
			s.formatTimeRemaining(),
			snap.Score,
			snap.Level,
		),
	))

	percent := s.clock.Timeout.Seconds() / float64(game.SessionSeconds)

	b.WriteString("\n\n")
	b.WriteString(s.bar.ViewAs(1 - percent))

	if s.feedback != "" {
		b.WriteString("\n" + s.feedback)
	}

	return b.String()
}

func (s *Session) boardView() string {
	switch g := s.game.(type) {
	case *game.MemoryGame:
		return s.memoryView(g)
	case *game.PuzzleGame:
		return s.puzzleView(g)
	case *game.PatternGame:
		return s.patternView(g)
	case *game.MathGame:
		return s.mathView(g)
	case *game.ReactionGame:
		return s.reactionView(g)
	case *game.FocusGame:
		return s.focusView(g)
	}

	return ""
}

func (s *Session) memoryView(g *game.MemoryGame) string {
	cells := make([]string, len(g.Cards()))

	for i, v := range g.Cards() {
		face := "?"
		style := cellStyle

		if g.Revealed(i) {
			face = fmt.Sprintf("%d", v)
			style = foundStyle
		}

		cells[i] = style.Render(face)
	}

	return grid(cells, 4) + "\n" + s.cellHelp("flip a card")
}

func (s *Session) puzzleView(g *game.PuzzleGame) string {
	cells := make([]string, len(g.Digits()))
	for i, d := range g.Digits() {
		cells[i] = cellStyle.Render(fmt.Sprintf("%d", d))
	}

	return grid(cells, len(cells)) +
		"\n" + s.cellHelp("pick an even number")
}

func (s *Session) patternView(g *game.PatternGame) string {
	var b strings.Builder

	b.WriteString("Reproduce the sequence:\n")
	b.WriteString(titleStyle.Render(joinInts(g.Sequence())))
	b.WriteString("\n\n")

	cells := make([]string, len(g.Choices()))
	for i, v := range g.Choices() {
		cells[i] = cellStyle.Render(fmt.Sprintf("%d", v))
	}

	b.WriteString(grid(cells, len(cells)))
	b.WriteString("\nEntered: " + joinInts(g.Entered()))
	b.WriteString("\n" + s.cellHelp("pick the next value"))

	return b.String()
}

func (s *Session) mathView(g *game.MathGame) string {
	return titleStyle.Render(g.Problem().String()) +
		"\n\n" + s.answer.View() +
		"\n\n" + s.help.ShortHelpView([]key.Binding{
		defaultKeymap.submit,
		defaultKeymap.quit,
	})
}

func (s *Session) reactionView(g *game.ReactionGame) string {
	cells := make([]string, game.Cells)

	for i := range cells {
		style := cellStyle
		if i == g.Target() {
			style = targetStyle
		}

		cells[i] = style.Render(fmt.Sprintf("%d", i+1))
	}

	stats := hintStyle.Render(fmt.Sprintf(
		"streak %d  best %dms  avg %dms",
		g.Streak(),
		g.BestMs(),
		g.AverageMs(),
	))

	return grid(cells, 3) + "\n" + stats +
		"\n" + s.cellHelp("hit the lit square")
}

func (s *Session) focusView(g *game.FocusGame) string {
	cells := make([]string, game.Cells)

	for i := range cells {
		style := cellStyle

		switch {
		case g.IsFound(i):
			style = foundStyle
		case g.IsTarget(i):
			style = targetStyle
		}

		cells[i] = style.Render(fmt.Sprintf("%d", i+1))
	}

	return grid(cells, 3) + "\n" + s.cellHelp("click every lit square")
}

func (s *Session) cellHelp(action string) string {
	return "\n" + s.help.ShortHelpView([]key.Binding{
		key.NewBinding(
			key.WithKeys(defaultKeymap.cells.Keys()...),
			key.WithHelp("1-9", action),
		),
		defaultKeymap.quit,
	})
}

// grid lays cells out in rows of the given width.
func grid(cells []string, width int) string {
	var rows []string

	for i := 0; i < len(cells); i += width {
		end := i + width
		if end > len(cells) {
			end = len(cells)
		}

		rows = append(
			rows,
			lipgloss.JoinHorizontal(lipgloss.Top, cells[i:end]...),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}

	return strings.Join(parts, " ")
}

func (s *Session) View() string {
	if s.done {
		return ""
	}

	return baseStyle.Render(s.headerView() + "\n\n" + s.boardView())
}
