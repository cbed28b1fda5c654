package matching

import (
	"math/rand/v2"
	"slices"
)

// Messages shown by the game.
const (
	MismatchNotice = "Not quite! Try again."
	CompleteNotice = "Mastery Achieved!"
)

// Outcome of picking a definition.
type Outcome int

const (
	Ignored  Outcome = iota // no protein selected
	Matched                 // correct pair, protein moved to matched
	Mismatch                // wrong pair, selection kept
)

// Game is one round of the matching game. It is a value: transitions return
// the next Game. The definition order is fixed when the game is created.
type Game struct {
	definitions []Protein
	selected    string
	matched     []string
}

// NewGame shuffles the definitions with seed. The same seed always yields
// the same order.
func NewGame(seed uint64) Game {
	defs := Catalog()
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	r.Shuffle(len(defs), func(i, j int) { defs[i], defs[j] = defs[j], defs[i] })
	return Game{definitions: defs}
}

// Proteins returns the left-hand column in catalog order.
func (g Game) Proteins() []Protein {
	return Catalog()
}

// Definitions returns the right-hand column in shuffled order.
func (g Game) Definitions() []Protein {
	return slices.Clone(g.definitions)
}

// Selected returns the currently selected protein ID.
func (g Game) Selected() (string, bool) {
	return g.selected, g.selected != ""
}

// IsMatched reports whether id has been paired.
func (g Game) IsMatched(id string) bool {
	return slices.Contains(g.matched, id)
}

// MatchedCount returns how many pairs are done.
func (g Game) MatchedCount() int {
	return len(g.matched)
}

// Complete reports whether every catalog protein is matched.
func (g Game) Complete() bool {
	return len(g.matched) == len(catalog)
}

// SelectProtein selects a protein that is not yet matched.
func (g Game) SelectProtein(id string) (Game, bool) {
	if _, ok := Lookup(id); !ok || g.IsMatched(id) || g.selected == id {
		return g, false
	}
	g.selected = id
	return g, true
}

// SelectDefinition pairs the selected protein with the definition id.
func (g Game) SelectDefinition(id string) (Game, Outcome) {
	if g.selected == "" {
		return g, Ignored
	}
	if id != g.selected {
		return g, Mismatch
	}
	g.matched = append(slices.Clone(g.matched), id)
	g.selected = ""
	return g, Matched
}

// Reset clears all progress and keeps the definition order.
func (g Game) Reset() Game {
	return Game{definitions: g.definitions}
}
