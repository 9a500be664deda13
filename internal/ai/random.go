package ai

import (
	"math/rand"

	"battleship/internal/game"
)

// Random fires uniformly at random among the cells not yet fired upon. It
// keeps no memory of hits, so it never hunts around a wounded ship; that is
// the intended easy opponent, not an oversight.
type Random struct {
	rng *rand.Rand
}

// NewRandom builds a Random strategy driven by the given source.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// ChooseTarget draws from the complement of the fired set, so it can never
// waste a turn on an already-fired cell.
func (r *Random) ChooseTarget(view game.TargetView) (game.Coord, error) {
	open := make([]game.Coord, 0, view.Width()*view.Height()-view.FiredCount())
	for row := 0; row < view.Height(); row++ {
		for col := 0; col < view.Width(); col++ {
			c := game.C(col, row)
			if !view.Fired(c) {
				open = append(open, c)
			}
		}
	}
	if len(open) == 0 {
		return game.Coord{}, ErrExhausted
	}
	return open[r.rng.Intn(len(open))], nil
}
