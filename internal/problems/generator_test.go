package problems

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestGenerator() *Generator {
	return NewGenerator(rand.New(rand.NewPCG(1, 2)))
}

func TestGenerator_FocusMode(t *testing.T) {
	g := newTestGenerator()

	problems := g.Generate(true, 7)
	assert.Len(t, problems, 10)

	seen := map[int]bool{}
	for _, p := range problems {
		assert.Equal(t, 7, p.A)
		assert.GreaterOrEqual(t, p.B, 2)
		assert.LessOrEqual(t, p.B, 9)
		seen[p.B] = true
	}
	// the first eight cover the whole row
	for b := 2; b <= 9; b++ {
		assert.True(t, seen[b], "missing factor %d", b)
	}
	// the two extras repeat other factors, never number itself
	assert.NotEqual(t, 7, problems[8].B)
	assert.NotEqual(t, 7, problems[9].B)
}

func TestGenerator_MixedMode(t *testing.T) {
	g := newTestGenerator()

	problems := g.Generate(false, 5)
	assert.Len(t, problems, 10)
	for _, p := range problems {
		assert.GreaterOrEqual(t, p.A, 2)
		assert.LessOrEqual(t, p.A, 5)
		assert.GreaterOrEqual(t, p.B, 2)
		assert.LessOrEqual(t, p.B, 9)
	}
}

func TestGenerator_SmallTableStillYieldsTen(t *testing.T) {
	g := newTestGenerator()

	// a=2 gives only eight distinct pairs, the set is padded by repetition
	problems := g.Generate(false, 2)
	assert.Len(t, problems, 10)
	for _, p := range problems {
		assert.Equal(t, 2, p.A)
	}
}

func TestGenerator_NumberCoercion(t *testing.T) {
	g := newTestGenerator()

	for _, p := range g.Generate(true, 15) {
		assert.Equal(t, 9, p.A)
	}
	for _, p := range g.Generate(true, -3) {
		assert.Equal(t, 2, p.A)
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewPCG(4, 4))).Generate(false, 9)
	b := NewGenerator(rand.New(rand.NewPCG(4, 4))).Generate(false, 9)
	assert.Equal(t, a, b)
}
