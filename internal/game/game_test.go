package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scriptRand replays a fixed script of random values. An exhausted
// script yields zeros, which never triggers a level promotion.
type scriptRand struct {
	ints   []int
	floats []float64
}

func (r *scriptRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}

	v := r.ints[0] % n
	r.ints = r.ints[1:]

	return v
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}

	v := r.floats[0]
	r.floats = r.floats[1:]

	return v
}

func TestNew(t *testing.T) {
	for _, typ := range All() {
		g, err := New(typ, &scriptRand{})
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", typ, err)
		}

		assert.Equal(t, typ, g.Type())
		assert.False(t, g.Active())
	}

	_, err := New("chess", &scriptRand{})
	assert.ErrorIs(t, err, ErrUnknownGame)
	assert.ErrorContains(t, err, "unknown game type: chess")
}

func TestEarnedXP(t *testing.T) {
	cases := []struct {
		typ   Type
		score int
		level int
		want  int
	}{
		{Memory, 30, 2, 55},
		{Math, 0, 1, 30},
		{Reaction, 45, 1, 40},
		{Puzzle, 7, 3, 30},
		{Focus, 0, 1, 22},
		{Pattern, 100, 1, 65},
	}

	for _, tc := range cases {
		got := EarnedXP(tc.typ, tc.score, tc.level)
		if got != tc.want {
			t.Errorf(
				"expected %s score %d at level %d to earn %d XP, but got %d",
				tc.typ,
				tc.score,
				tc.level,
				tc.want,
				got,
			)
		}
	}
}

func TestScoreFloorsAtZero(t *testing.T) {
	b := base{rng: &scriptRand{}}
	b.reset()

	applied := b.addPoints(-5)

	assert.Equal(t, 0, applied)
	assert.Equal(t, 0, b.score)

	b.addPoints(3)
	applied = b.addPoints(-5)

	assert.Equal(t, -3, applied)
	assert.Equal(t, 0, b.score)
}

func TestPromote(t *testing.T) {
	b := base{rng: &scriptRand{floats: []float64{0.5, 0.9}}}
	b.reset()

	assert.False(t, b.promote(0.7))
	assert.Equal(t, 1, b.level)

	assert.True(t, b.promote(0.7))
	assert.Equal(t, 2, b.level)
}

func TestResolveInactive(t *testing.T) {
	for _, typ := range All() {
		g, err := New(typ, &scriptRand{})
		if err != nil {
			t.Fatal(err)
		}

		out := g.Resolve(Input{Answer: "1"})

		assert.True(t, out.Pending, "%s resolved before Start", typ)
	}
}
