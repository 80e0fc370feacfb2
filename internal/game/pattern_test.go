package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// enterSequence feeds the target sequence back through the shuffled
// choices and returns the final outcome.
func enterSequence(t *testing.T, g *PatternGame) Outcome {
	t.Helper()

	var out Outcome

	for _, want := range g.Sequence() {
		cell := -1

		entered := len(g.Entered())

		for i, v := range g.Choices() {
			if v == want {
				cell = i
				break
			}
		}

		if cell == -1 {
			t.Fatalf("value %d missing from choices %v", want, g.Choices())
		}

		out = g.Resolve(Input{Cell: cell})

		if !out.Pending && len(g.Entered()) != 0 {
			t.Fatal("input should reset once the round resolves")
		}

		if out.Pending && len(g.Entered()) != entered+1 {
			t.Fatal("pending input should grow by one")
		}
	}

	return out
}

func TestPatternArithmeticSequence(t *testing.T) {
	rng := &scriptRand{ints: []int{4, 2, 0, 0, 0}}
	g := &PatternGame{base: base{rng: rng}}
	g.Start()

	assert.Equal(t, Arithmetic, g.Kind())
	assert.Equal(t, []int{5, 8, 11, 14}, g.Sequence())
	assert.ElementsMatch(t, g.Sequence(), g.Choices())
}

func TestPatternMatch(t *testing.T) {
	g := &PatternGame{base: base{rng: &scriptRand{ints: []int{4, 2, 3, 1, 2}}}}
	g.Start()

	out := enterSequence(t, g)

	assert.True(t, out.Correct)
	assert.Equal(t, 10, out.Points)
	assert.Equal(t, 10, g.Snapshot().Score)
}

func TestPatternMismatchKeepsSequence(t *testing.T) {
	g := &PatternGame{base: base{rng: &scriptRand{ints: []int{4, 2, 3, 1, 2}}}}
	g.Start()

	seq := append([]int(nil), g.Sequence()...)

	// enter the choices in board order, which cannot match a shuffled
	// arithmetic sequence of distinct values unless it is already sorted
	var out Outcome
	for i := range g.Choices() {
		out = g.Resolve(Input{Cell: len(g.Choices()) - 1 - i})
	}

	if out.Correct {
		t.Skip("board order happened to match the sequence")
	}

	assert.Equal(t, "Pattern mismatch!", out.Message)
	assert.Equal(t, 0, g.Snapshot().Score)
	assert.Empty(t, g.Entered())
	assert.Equal(t, seq, g.Sequence(), "the sequence survives a mismatch")
}

func TestPatternPromotionRotatesKind(t *testing.T) {
	rng := &scriptRand{
		ints:   []int{4, 2, 3, 1, 2},
		floats: []float64{0.9, 0.9, 0.9},
	}
	g := &PatternGame{base: base{rng: rng}}
	g.Start()

	kinds := []PatternKind{g.Kind()}

	for range 3 {
		out := enterSequence(t, g)
		assert.True(t, out.LeveledUp)

		kinds = append(kinds, g.Kind())
	}

	assert.Equal(
		t,
		[]PatternKind{Arithmetic, Geometric, Fibonacci, Alternating},
		kinds,
	)
}

func TestPatternSequenceStaysAddressable(t *testing.T) {
	g := &PatternGame{base: base{rng: &scriptRand{}}}
	g.Start()

	g.level = 20
	g.next()

	assert.Len(t, g.Sequence(), Cells)
	assert.Len(t, g.Choices(), Cells)
}

func TestPatternGenerators(t *testing.T) {
	cases := []struct {
		kind PatternKind
		ints []int
		want []int
	}{
		// start 3, ratio 2
		{Geometric, []int{2, 0}, []int{3, 6, 12, 24}},
		// start 3, both seeds equal start
		{Fibonacci, []int{2}, []int{3, 3, 6, 9}},
		// start 3, diff 3: even indices climb, odd indices fall
		{Alternating, []int{2, 2}, []int{3, 0, 9, -6}},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			g := &PatternGame{base: base{rng: &scriptRand{ints: tc.ints}}}
			g.reset()

			for i, k := range patternKinds {
				if k == tc.kind {
					g.kindIndex = i
				}
			}

			g.next()

			if diff := cmp.Diff(tc.want, g.Sequence()); diff != "" {
				t.Errorf("sequence mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
