package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// findPair returns the indices of two cards sharing a value, or of two
// cards with different values when match is false.
func findPair(t *testing.T, g *MemoryGame, match bool) (int, int) {
	t.Helper()

	cards := g.Cards()

	for i := range cards {
		for j := i + 1; j < len(cards); j++ {
			if (cards[i] == cards[j]) == match {
				return i, j
			}
		}
	}

	t.Fatal("no suitable pair on the board")

	return 0, 0
}

func TestMemoryDeal(t *testing.T) {
	g := &MemoryGame{base: base{rng: &scriptRand{}}}
	g.Start()

	// level 1 deals three pairs
	assert.Len(t, g.Cards(), 6)
	assert.Equal(t, Snapshot{Type: Memory, Score: 0, Level: 1}, g.Snapshot())

	counts := make(map[int]int)
	for _, v := range g.Cards() {
		counts[v]++
	}

	for v, n := range counts {
		assert.Equal(t, 2, n, "value %d should appear twice", v)
	}
}

func TestMemoryMatch(t *testing.T) {
	g := &MemoryGame{base: base{rng: &scriptRand{ints: []int{3, 1, 2, 4, 0}}}}
	g.Start()

	i, j := findPair(t, g, true)

	out := g.Resolve(Input{Cell: i})
	assert.True(t, out.Pending)
	assert.True(t, g.Revealed(i))

	out = g.Resolve(Input{Cell: j})
	assert.True(t, out.Correct)
	assert.Equal(t, 10, out.Points)
	assert.Equal(t, 10, g.Snapshot().Score)
	assert.True(t, g.Revealed(i))
	assert.True(t, g.Revealed(j))
}

func TestMemoryMismatch(t *testing.T) {
	g := &MemoryGame{base: base{rng: &scriptRand{ints: []int{3, 1, 2, 4, 0}}}}
	g.Start()

	i, j := findPair(t, g, false)

	g.Resolve(Input{Cell: i})
	out := g.Resolve(Input{Cell: j})

	assert.False(t, out.Correct)
	assert.Equal(t, "No match", out.Message)
	assert.Equal(t, 0, g.Snapshot().Score)
	assert.False(t, g.Revealed(i), "mismatched cards flip back")
	assert.False(t, g.Revealed(j))
}

func TestMemoryFlippedCardIgnoresRepeatFlip(t *testing.T) {
	g := &MemoryGame{base: base{rng: &scriptRand{}}}
	g.Start()

	g.Resolve(Input{Cell: 0})
	out := g.Resolve(Input{Cell: 0})

	assert.True(t, out.Pending, "flipping the same card twice stays pending")
}

func TestMemoryPromotionRedeals(t *testing.T) {
	rng := &scriptRand{floats: []float64{0.9}}
	g := &MemoryGame{base: base{rng: rng}}
	g.Start()

	i, j := findPair(t, g, true)
	g.Resolve(Input{Cell: i})
	out := g.Resolve(Input{Cell: j})

	assert.True(t, out.LeveledUp)
	assert.Equal(t, 2, g.Snapshot().Level)

	// level 2 deals four pairs
	assert.Len(t, g.Cards(), 8)

	for idx := range g.Cards() {
		assert.False(t, g.Revealed(idx))
	}
}

func TestMemoryBoardStaysAddressable(t *testing.T) {
	g := &MemoryGame{base: base{rng: &scriptRand{}}}
	g.Start()

	g.level = 20
	g.deal()

	// four pairs are the most that fit the nine playable cells
	assert.Len(t, g.Cards(), 8)
	assert.LessOrEqual(t, len(g.Cards()), Cells)
}
