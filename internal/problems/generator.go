package problems

import "math/rand/v2"

const (
	minTable = 2
	maxTable = 9
	setSize  = 10
)

type Problem struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Generator builds practice sets from an injected random source, so tests
// can seed it deterministically.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate returns ten problems. In focus mode the full multiplication row
// for number is drilled, plus two random repeats from the same row; otherwise
// the set is sampled from all tables up to number. number is coerced into
// [2, 9].
func (g *Generator) Generate(focus bool, number int) []Problem {
	if number < minTable {
		number = minTable
	}
	if number > maxTable {
		number = maxTable
	}

	if focus {
		problems := make([]Problem, 0, setSize)
		for b := minTable; b <= maxTable; b++ {
			problems = append(problems, Problem{A: number, B: b})
		}

		var others []int
		for b := minTable; b <= maxTable; b++ {
			if b != number {
				others = append(others, b)
			}
		}
		for _, i := range g.rng.Perm(len(others))[:setSize-len(problems)] {
			problems = append(problems, Problem{A: number, B: others[i]})
		}
		return problems
	}

	var pairs []Problem
	for a := minTable; a <= number; a++ {
		for b := minTable; b <= maxTable; b++ {
			pairs = append(pairs, Problem{A: a, B: b})
		}
	}
	// small tables repeat so there is always enough to sample from
	for len(pairs) < setSize {
		pairs = append(pairs, pairs...)
	}

	problems := make([]Problem, 0, setSize)
	for _, i := range g.rng.Perm(len(pairs))[:setSize] {
		problems = append(problems, pairs[i])
	}
	return problems
}
