package game

import "fmt"

// PatternKind is a sequence family used by the pattern game.
type PatternKind string

const (
	Arithmetic  PatternKind = "arithmetic"
	Geometric   PatternKind = "geometric"
	Fibonacci   PatternKind = "fibonacci"
	Alternating PatternKind = "alternating"
)

var patternKinds = []PatternKind{Arithmetic, Geometric, Fibonacci, Alternating}

// PatternGame asks the player to reproduce an integer sequence of
// length level+3, capped at the board size, from a shuffled set of
// choices. The sequence family rotates round-robin on every level-up.
type PatternGame struct {
	base

	kindIndex int
	sequence  []int
	choices   []int
	entered   []int
}

func (g *PatternGame) Type() Type {
	return Pattern
}

func (g *PatternGame) Start() {
	g.reset()
	g.kindIndex = 0
	g.next()
}

func (g *PatternGame) next() {
	length := g.level + 3
	if length > Cells {
		length = Cells
	}
	start := g.rng.Intn(10) + 1
	seq := make([]int, length)

	switch patternKinds[g.kindIndex] {
	case Arithmetic:
		diff := g.rng.Intn(5) + 1
		for i := range seq {
			seq[i] = start + i*diff
		}
	case Geometric:
		ratio := g.rng.Intn(3) + 2
		value := start

		for i := range seq {
			seq[i] = value
			value *= ratio
		}
	case Fibonacci:
		seq[0], seq[1] = start, start
		for i := 2; i < length; i++ {
			seq[i] = seq[i-1] + seq[i-2]
		}
	case Alternating:
		diff := g.rng.Intn(3) + 1
		for i := range seq {
			if i%2 == 0 {
				seq[i] = start + i*diff
			} else {
				seq[i] = start - i*diff
			}
		}
	}

	g.sequence = seq
	g.entered = nil

	g.choices = make([]int, length)
	copy(g.choices, seq)

	for i := length - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		g.choices[i], g.choices[j] = g.choices[j], g.choices[i]
	}
}

// Kind returns the current sequence family.
func (g *PatternGame) Kind() PatternKind {
	return patternKinds[g.kindIndex]
}

// Sequence returns the target sequence.
func (g *PatternGame) Sequence() []int {
	return g.sequence
}

// Choices returns the shuffled values the player picks from.
func (g *PatternGame) Choices() []int {
	return g.choices
}

// Entered returns the player's input so far.
func (g *PatternGame) Entered() []int {
	return g.entered
}

// Resolve appends the choice at in.Cell to the player's input. The
// round resolves once the input reaches the sequence length: an exact
// match scores, a mismatch costs two points and resets the input.
func (g *PatternGame) Resolve(in Input) Outcome {
	if !g.active || in.Cell < 0 || in.Cell >= len(g.choices) {
		return Outcome{Pending: true}
	}

	g.entered = append(g.entered, g.choices[in.Cell])
	if len(g.entered) < len(g.sequence) {
		return Outcome{Pending: true}
	}

	var out Outcome

	if g.matches() {
		out.Correct = true
		out.Points = g.addPoints(10 * g.level)
		out.Message = fmt.Sprintf("Pattern matched! +%d points", out.Points)

		if g.promote(0.7) {
			out.LeveledUp = true
			g.kindIndex = (g.kindIndex + 1) % len(patternKinds)
		}

		g.next()

		return out
	}

	out.Points = g.addPoints(-2)
	out.Message = "Pattern mismatch!"
	g.entered = nil

	return out
}

func (g *PatternGame) matches() bool {
	for i, v := range g.entered {
		if v != g.sequence[i] {
			return false
		}
	}

	return true
}

func (g *PatternGame) Snapshot() Snapshot {
	return g.snapshot(Pattern)
}
