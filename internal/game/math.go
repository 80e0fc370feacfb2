package game

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var operators = []string{"+", "-", "×", "÷"}

// Problem is one arithmetic question. Division problems are constructed
// from their answer, so num1 = num2 * answer always divides evenly.
type Problem struct {
	Operator string
	Num1     int
	Num2     int
	Answer   int
}

func (p Problem) String() string {
	return fmt.Sprintf("%d %s %d = ?", p.Num1, p.Operator, p.Num2)
}

// MathGame poses one arithmetic problem per round, with operand ranges
// scaled by the session level.
type MathGame struct {
	base

	problem Problem
}

func (g *MathGame) Type() Type {
	return Math
}

func (g *MathGame) Start() {
	g.reset()
	g.next()
}

func (g *MathGame) next() {
	p := Problem{Operator: operators[g.rng.Intn(len(operators))]}

	switch p.Operator {
	case "+":
		p.Num1 = g.rng.Intn(10*g.level) + 1
		p.Num2 = g.rng.Intn(10*g.level) + 1
		p.Answer = p.Num1 + p.Num2
	case "-":
		p.Num1 = g.rng.Intn(10*g.level) + 10
		p.Num2 = g.rng.Intn(10*g.level) + 1
		p.Answer = p.Num1 - p.Num2
	case "×":
		p.Num1 = g.rng.Intn(5*g.level) + 1
		p.Num2 = g.rng.Intn(5*g.level) + 1
		p.Answer = p.Num1 * p.Num2
	case "÷":
		p.Num2 = g.rng.Intn(5*g.level) + 1
		p.Answer = g.rng.Intn(5*g.level) + 1
		p.Num1 = p.Num2 * p.Answer
	}

	g.problem = p
}

// Problem returns the current question.
func (g *MathGame) Problem() Problem {
	return g.problem
}

// Resolve checks the submitted answer against the current problem.
// Anything that does not parse as a number counts as a wrong answer.
func (g *MathGame) Resolve(in Input) Outcome {
	if !g.active {
		return Outcome{Pending: true}
	}

	var out Outcome

	answer, err := strconv.ParseFloat(strings.TrimSpace(in.Answer), 64)
	correct := err == nil &&
		math.Abs(answer-float64(g.problem.Answer)) < 0.01

	if !correct {
		out.Points = g.addPoints(-2)
		out.Message = "Try again!"

		return out
	}

	out.Correct = true
	out.Points = g.addPoints(10 * g.level)
	out.Message = fmt.Sprintf("Correct! +%d points", out.Points)
	out.LeveledUp = g.promote(0.7)

	g.next()

	return out
}

func (g *MathGame) Snapshot() Snapshot {
	return g.snapshot(Math)
}
