package game

import "fmt"

// MemoryGame deals level+2 value pairs face down, capped so the board
// stays within the nine addressable cells. A round is two card flips;
// matching values score, mismatches flip back without penalty.
type MemoryGame struct {
	base

	cards   []int
	matched []bool
	flipped []int
}

func (g *MemoryGame) Type() Type {
	return Memory
}

func (g *MemoryGame) Start() {
	g.reset()
	g.deal()
}

// deal lays out a shuffled board of level+2 value pairs.
func (g *MemoryGame) deal() {
	pairs := g.level + 2
	if pairs > Cells/2 {
		pairs = Cells / 2
	}

	g.cards = make([]int, 0, pairs*2)
	for v := 1; v <= pairs; v++ {
		g.cards = append(g.cards, v, v)
	}

	for i := len(g.cards) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		g.cards[i], g.cards[j] = g.cards[j], g.cards[i]
	}

	g.matched = make([]bool, len(g.cards))
	g.flipped = nil
}

// Cards returns the board values.
func (g *MemoryGame) Cards() []int {
	return g.cards
}

// Revealed reports whether the card at index is face up.
func (g *MemoryGame) Revealed(index int) bool {
	if index < 0 || index >= len(g.cards) {
		return false
	}

	if g.matched[index] {
		return true
	}

	for _, f := range g.flipped {
		if f == index {
			return true
		}
	}

	return false
}

func (g *MemoryGame) Resolve(in Input) Outcome {
	if !g.active {
		return Outcome{Pending: true}
	}

	if in.Cell < 0 || in.Cell >= len(g.cards) || g.Revealed(in.Cell) {
		return Outcome{Pending: true}
	}

	g.flipped = append(g.flipped, in.Cell)
	if len(g.flipped) < 2 {
		return Outcome{Pending: true}
	}

	first, second := g.flipped[0], g.flipped[1]
	g.flipped = nil

	out := Outcome{Message: "No match"}

	if g.cards[first] == g.cards[second] {
		g.matched[first] = true
		g.matched[second] = true

		out.Correct = true
		out.Points = g.addPoints(10 * g.level)
		out.Message = fmt.Sprintf("Match found! +%d points", out.Points)
	}

	if g.promote(0.7) {
		out.LeveledUp = true

		g.deal()

		return out
	}

	if g.cleared() {
		g.deal()
	}

	return out
}

func (g *MemoryGame) cleared() bool {
	for _, m := range g.matched {
		if !m {
			return false
		}
	}

	return true
}

func (g *MemoryGame) Snapshot() Snapshot {
	return g.snapshot(Memory)
}
