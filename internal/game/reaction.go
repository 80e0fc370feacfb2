package game

import (
	"fmt"
	"time"
)

// NoTarget indicates no cell is currently highlighted.
const NoTarget = -1

// targetWindow is how long a spawned target stays clickable.
const targetWindow = time.Second

// ReactionGame highlights one of nine cells after a random delay and
// scores clicks by reaction time and streak. There is no level scaling;
// the streak bonus plays that role.
type ReactionGame struct {
	base

	target  int
	shownAt time.Time
	streak  int
	times   []int64
	best    int64
}

func (g *ReactionGame) Type() Type {
	return Reaction
}

func (g *ReactionGame) Start() {
	g.reset()

	g.target = NoTarget
	g.streak = 0
	g.times = nil
	g.best = 0
}

// NextDelay returns the random 1-3s wait before the next target appears.
func (g *ReactionGame) NextDelay() time.Duration {
	return time.Second + time.Duration(g.rng.Float64()*float64(2*time.Second))
}

// Window returns how long a target remains clickable once shown.
func (g *ReactionGame) Window() time.Duration {
	return targetWindow
}

// Spawn highlights a random cell at the given instant and returns its index.
func (g *ReactionGame) Spawn(at time.Time) int {
	g.target = g.rng.Intn(Cells)
	g.shownAt = at

	return g.target
}

// Target returns the highlighted cell index, or NoTarget.
func (g *ReactionGame) Target() int {
	return g.target
}

// Expire clears an unclicked target and resets the streak.
func (g *ReactionGame) Expire() {
	g.target = NoTarget
	g.streak = 0
}

// Streak returns the current run of consecutive hits.
func (g *ReactionGame) Streak() int {
	return g.streak
}

// BestMs returns the fastest reaction so far in milliseconds.
func (g *ReactionGame) BestMs() int64 {
	return g.best
}

// AverageMs returns the mean reaction time in milliseconds.
func (g *ReactionGame) AverageMs() int64 {
	if len(g.times) == 0 {
		return 0
	}

	var sum int64
	for _, t := range g.times {
		sum += t
	}

	return sum / int64(len(g.times))
}

// Resolve scores a click on in.Cell at instant in.At. A click anywhere
// but the live target costs five points and resets the streak.
func (g *ReactionGame) Resolve(in Input) Outcome {
	if !g.active {
		return Outcome{Pending: true}
	}

	var out Outcome

	if g.target == NoTarget || in.Cell != g.target {
		g.streak = 0
		out.Points = g.addPoints(-5)
		out.Message = "Wrong square!"

		return out
	}

	rt := in.At.Sub(g.shownAt).Milliseconds()
	if rt < 0 {
		rt = 0
	}

	timeBonus := (1000 - rt) / 10
	if timeBonus < 0 {
		timeBonus = 0
	}

	points := 10 + int(timeBonus) + g.streak*2

	out.Correct = true
	out.Points = g.addPoints(points)
	out.Message = fmt.Sprintf("Reaction time: %dms (+%d points)", rt, out.Points)

	g.times = append(g.times, rt)
	g.streak++

	if g.best == 0 || rt < g.best {
		g.best = rt
	}

	g.target = NoTarget

	return out
}

func (g *ReactionGame) Snapshot() Snapshot {
	return g.snapshot(Reaction)
}
