package game

import "fmt"

// PuzzleGame shows level+3 random digits, capped at the board size;
// clicking an even digit scores, an odd one costs two points.
type PuzzleGame struct {
	base

	digits []int
}

func (g *PuzzleGame) Type() Type {
	return Puzzle
}

func (g *PuzzleGame) Start() {
	g.reset()
	g.deal()
}

func (g *PuzzleGame) deal() {
	size := g.level + 3
	if size > Cells {
		size = Cells
	}

	g.digits = make([]int, size)
	for i := range g.digits {
		g.digits[i] = g.rng.Intn(9) + 1
	}
}

// Digits returns the current board.
func (g *PuzzleGame) Digits() []int {
	return g.digits
}

func (g *PuzzleGame) Resolve(in Input) Outcome {
	if !g.active || in.Cell < 0 || in.Cell >= len(g.digits) {
		return Outcome{Pending: true}
	}

	var out Outcome

	if g.digits[in.Cell]%2 == 0 {
		out.Correct = true
		out.Points = g.addPoints(5 * g.level)
		out.Message = fmt.Sprintf("Correct! +%d points", out.Points)
	} else {
		out.Points = g.addPoints(-2)
		out.Message = "Try again!"
	}

	if g.promote(0.6) {
		out.LeveledUp = true

		g.deal()
	}

	return out
}

func (g *PuzzleGame) Snapshot() Snapshot {
	return g.snapshot(Puzzle)
}
