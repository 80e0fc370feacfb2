package play

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	bprogress "github.com/charmbracelet/bubbles/progress"
	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"calmind/internal/game"
)

func (s *Session) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case btimer.TickMsg:
		s.clock, cmd = s.clock.Update(msg)
		return s, cmd

	case btimer.StartStopMsg:
		s.clock, cmd = s.clock.Update(msg)
		return s, cmd

	case btimer.TimeoutMsg:
		s.done = true
		return s, tea.Batch(tea.ClearScreen, tea.Quit)

	case spawnMsg:
		return s.handleSpawn(msg)

	case expireMsg:
		return s.handleExpire(msg)

	case tea.KeyMsg:
		return s.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		s.bar.Width = msg.Width - padding*2 - 4
		if s.bar.Width > maxWidth {
			s.bar.Width = maxWidth
		}

		return s, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case bprogress.FrameMsg:
		var barModel tea.Model

		barModel, cmd = s.bar.Update(msg)
		s.bar, _ = barModel.(bprogress.Model)

		return s, cmd
	}

	return s, nil
}

func (s *Session) handleSpawn(msg spawnMsg) (tea.Model, tea.Cmd) {
	r, ok := s.game.(*game.ReactionGame)
	if !ok || s.done || !s.game.Active() {
		return s, nil
	}

	s.spawnGen++
	r.Spawn(msg.at)

	return s, s.scheduleExpire(r)
}

func (s *Session) handleExpire(msg expireMsg) (tea.Model, tea.Cmd) {
	r, ok := s.game.(*game.ReactionGame)
	if !ok || s.done || msg.gen != s.spawnGen {
		return s, nil
	}

	if r.Target() == game.NoTarget {
		return s, nil
	}

	r.Expire()
	s.feedback = "Too slow!"

	return s, s.scheduleSpawn(r)
}

func (s *Session) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		s.done = true
		return s, tea.Batch(tea.ClearScreen, tea.Quit)

	case s.game.Type() == game.Math:
		return s.handleAnswerKey(msg)

	case key.Matches(msg, defaultKeymap.cells):
		return s.handleCellKey(msg)
	}

	return s, nil
}

// handleAnswerKey routes keystrokes to the answer field and submits it
// on enter.
func (s *Session) handleAnswerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, defaultKeymap.submit) {
		out := s.game.Resolve(game.Input{Answer: s.answer.Value()})
		if !out.Pending {
			s.feedback = out.Message
			s.answer.Reset()
		}

		return s, nil
	}

	var cmd tea.Cmd
	s.answer, cmd = s.answer.Update(msg)

	return s, cmd
}

// handleCellKey maps the digit keys onto board positions.
func (s *Session) handleCellKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cell := int(msg.String()[0] - '1')

	out := s.game.Resolve(game.Input{Cell: cell, At: time.Now()})
	if !out.Pending {
		s.feedback = out.Message
	}

	// a resolved reaction round frees the board for the next target
	if r, ok := s.game.(*game.ReactionGame); ok && !out.Pending &&
		out.Correct {
		s.spawnGen++
		return s, s.scheduleSpawn(r)
	}

	return s, nil
}
