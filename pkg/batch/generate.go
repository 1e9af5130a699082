package batch

import (
	"math/rand/v2"
	"slices"

	"github.com/matzehuels/printlayout/pkg/errors"
)

// Generate assigns a front and back theme to every layout. The theme list
// is repeated until it covers the layouts, truncated, and shuffled
// independently per side. Layouts keep their input order.
//
// When len(layouts) >= len(themes) every theme appears at least once on
// each side.
func Generate(layouts, themes []string, rng *rand.Rand) ([]Entry, error) {
	if len(layouts) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidBatch, "no layouts to assign")
	}
	if len(themes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidBatch, "no themes to assign")
	}

	front := cover(themes, len(layouts))
	back := cover(themes, len(layouts))
	rng.Shuffle(len(front), func(i, j int) { front[i], front[j] = front[j], front[i] })
	rng.Shuffle(len(back), func(i, j int) { back[i], back[j] = back[j], back[i] })

	entries := make([]Entry, len(layouts))
	for i, l := range layouts {
		entries[i] = Entry{Layout: l, FrontTheme: front[i], BackTheme: back[i]}
	}
	return entries, nil
}

// cover repeats themes until it has n items.
func cover(themes []string, n int) []string {
	repeats := (n + len(themes) - 1) / len(themes)
	out := make([]string, 0, repeats*len(themes))
	for range repeats {
		out = append(out, themes...)
	}
	return slices.Clip(out[:n])
}

// NewRand returns a generator seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
