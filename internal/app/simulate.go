package app

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"battleship/internal/ai"
	"battleship/internal/game"
)

// SimResult summarizes one computer-vs-computer match.
type SimResult struct {
	Winner game.Side
	Turns  int
}

// Simulate plays a full match with both fleets placed at random and both
// sides driven by strategies. It exercises the same engine path as an
// interactive game and always terminates: strategies only pick unfired
// cells, and the board is finite.
func Simulate(rules game.Rules, one, two ai.Strategy, rng *rand.Rand, log zerolog.Logger) (SimResult, error) {
	m := game.NewMatch(rules)
	for _, side := range []game.Side{game.SideOne, game.SideTwo} {
		layout, err := game.RandomLayout(rules, rng)
		if err != nil {
			return SimResult{}, fmt.Errorf("%s layout: %w", side, err)
		}
		if err := m.SubmitPlacement(side, layout); err != nil {
			return SimResult{}, fmt.Errorf("%s placement: %w", side, err)
		}
	}

	gunners := map[game.Side]ai.Strategy{game.SideOne: one, game.SideTwo: two}
	turns := 0
	for m.State().Phase == game.InProgress {
		side := m.State().Active
		target, err := gunners[side].ChooseTarget(m.OpponentView(side))
		if err != nil {
			return SimResult{}, fmt.Errorf("%s targeting: %w", side, err)
		}
		res, err := m.SubmitShot(side, target)
		if err != nil {
			return SimResult{}, fmt.Errorf("%s shot: %w", side, err)
		}
		turns++
		log.Debug().
			Stringer("side", side).
			Stringer("coord", target).
			Stringer("outcome", res.Outcome).
			Msg("simulated shot")
	}
	winner := m.State().Winner
	log.Info().Stringer("winner", winner).Int("turns", turns).Msg("simulation finished")
	return SimResult{Winner: winner, Turns: turns}, nil
}
