// Package play runs one timed mini-game session in the terminal and
// settles its rewards when the clock runs out.
package play

import (
	"fmt"
	"os/exec"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	bprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kballard/go-shellquote"

	"calmind/internal/config"
	"calmind/internal/game"
	"calmind/internal/history"
	"calmind/internal/models"
	"calmind/internal/profile"
	"calmind/internal/progress"
	"calmind/internal/recommend"
)

type keymap struct {
	cells  key.Binding
	submit key.Binding
	quit   key.Binding
}

var defaultKeymap = keymap{
	cells: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "pick a square"),
	),
	submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit answer"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "end session"),
	),
}

// spawnMsg asks the reaction game to light up a square.
type spawnMsg struct {
	at time.Time
}

// expireMsg clears a square that was not clicked in time. gen guards
// against stale expirations once the square has already been resolved.
type expireMsg struct {
	gen int
}

// Result is the settled outcome of one session.
type Result struct {
	Snapshot  game.Snapshot
	XPEarned  int
	Progress  models.Progress
	Streak    models.Streak
	LeveledUp bool
	Suggested []recommend.Recommendation
}

// Session drives one mini-game play-through.
type Session struct {
	game     game.MiniGame
	cfg      *config.Config
	tracker  *progress.Tracker
	recorder *history.Recorder
	streaks  *profile.Streaks

	clock    btimer.Model
	answer   textinput.Model
	bar      bprogress.Model
	help     help.Model
	feedback string
	spawnGen int
	done     bool
}

// NewSession prepares a session for the given engine.
func NewSession(
	g game.MiniGame,
	cfg *config.Config,
	tracker *progress.Tracker,
	recorder *history.Recorder,
	streaks *profile.Streaks,
) *Session {
	answer := textinput.New()
	answer.Placeholder = "answer"
	answer.CharLimit = 10
	answer.Width = 12
	answer.Focus()

	return &Session{
		game:     g,
		cfg:      cfg,
		tracker:  tracker,
		recorder: recorder,
		streaks:  streaks,
		clock:    btimer.New(game.SessionSeconds * time.Second),
		answer:   answer,
		bar:      bprogress.New(bprogress.WithDefaultGradient()),
		help:     help.New(),
	}
}

func (s *Session) Init() tea.Cmd {
	s.game.Start()

	cmds := []tea.Cmd{s.clock.Init()}

	if r, ok := s.game.(*game.ReactionGame); ok {
		cmds = append(cmds, s.scheduleSpawn(r))
	}

	if s.game.Type() == game.Math {
		cmds = append(cmds, textinput.Blink)
	}

	return tea.Batch(cmds...)
}

// Run plays the session to completion and settles its rewards.
func (s *Session) Run() (Result, error) {
	if _, err := tea.NewProgram(s).Run(); err != nil {
		return Result{}, err
	}

	return s.settle()
}

// settle converts the final score into XP, records the session, and
// advances the daily streak.
func (s *Session) settle() (Result, error) {
	s.game.End()

	snap := s.game.Snapshot()

	res := Result{
		Snapshot: snap,
		XPEarned: game.EarnedXP(snap.Type, snap.Score, snap.Level),
	}

	before := s.tracker.Load()

	p, err := s.tracker.Award(res.XPEarned)
	if err != nil {
		return res, err
	}

	res.Progress = p
	res.LeveledUp = p.Level > before.Level

	err = s.recorder.Record(
		snap.Type,
		game.Catalog[snap.Type].Title,
		snap.Score,
		snap.Level,
	)
	if err != nil {
		return res, err
	}

	res.Streak, err = s.streaks.Touch()
	if err != nil {
		return res, err
	}

	res.Suggested = recommend.For(snap.Type, snap.Score, snap.Level)
	if len(res.Suggested) > recommend.Shown {
		res.Suggested = res.Suggested[:recommend.Shown]
	}

	if err := s.runSessionCmd(s.cfg.Settings.Cmd); err != nil {
		return res, err
	}

	return res, nil
}

// runSessionCmd executes the configured post-session command.
func (s *Session) runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}

// scheduleSpawn queues the next reaction target after a random delay.
func (s *Session) scheduleSpawn(r *game.ReactionGame) tea.Cmd {
	return tea.Tick(r.NextDelay(), func(t time.Time) tea.Msg {
		return spawnMsg{at: t}
	})
}

// scheduleExpire queues the timeout for the current reaction target.
func (s *Session) scheduleExpire(r *game.ReactionGame) tea.Cmd {
	gen := s.spawnGen

	return tea.Tick(r.Window(), func(time.Time) tea.Msg {
		return expireMsg{gen: gen}
	})
}
