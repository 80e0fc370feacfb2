package game

import "fmt"

// FocusGame highlights level+2 target cells (capped at the board size)
// among nine. Clicking every target clears the board; clicking anything
// else costs two points.
type FocusGame struct {
	base

	targets map[int]bool
	found   map[int]bool
}

func (g *FocusGame) Type() Type {
	return Focus
}

func (g *FocusGame) Start() {
	g.reset()
	g.deal()
}

func (g *FocusGame) deal() {
	count := g.level + 2
	if count > Cells {
		count = Cells
	}

	g.targets = make(map[int]bool, count)
	g.found = make(map[int]bool, count)

	for len(g.targets) < count {
		g.targets[g.rng.Intn(Cells)] = true
	}
}

// IsTarget reports whether the cell is a highlighted target.
func (g *FocusGame) IsTarget(cell int) bool {
	return g.targets[cell]
}

// IsFound reports whether the target cell has already been clicked.
func (g *FocusGame) IsFound(cell int) bool {
	return g.found[cell]
}

func (g *FocusGame) Resolve(in Input) Outcome {
	if !g.active || in.Cell < 0 || in.Cell >= Cells {
		return Outcome{Pending: true}
	}

	var out Outcome

	if g.targets[in.Cell] && !g.found[in.Cell] {
		g.found[in.Cell] = true

		out.Correct = true
		out.Points = g.addPoints(5 * g.level)
		out.Message = fmt.Sprintf("Target found! +%d points", out.Points)
	} else {
		out.Points = g.addPoints(-2)
		out.Message = "Try again!"
	}

	if g.promote(0.6) {
		out.LeveledUp = true

		g.deal()

		return out
	}

	if len(g.found) == len(g.targets) {
		g.deal()
	}

	return out
}

func (g *FocusGame) Snapshot() Snapshot {
	return g.snapshot(Focus)
}
