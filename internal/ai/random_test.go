package ai

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"battleship/internal/game"
)

func TestRandomNeverRepeatsUntilExhaustion(t *testing.T) {
	rules := game.Rules{Width: 4, Height: 4, Fleet: []game.ShipClass{{Name: "Destroyer", Length: 2}}}
	g := game.NewGrid(rules)
	require.NoError(t, g.PlaceFleet([]game.Placement{
		game.Span("Destroyer", game.C(0, 0), game.Horizontal, 2),
	}))

	gunner := NewRandom(rand.New(rand.NewSource(7)))
	seen := make(map[game.Coord]bool)
	for i := 0; i < rules.Cells(); i++ {
		c, err := gunner.ChooseTarget(g.TargetView())
		require.NoError(t, err)
		require.False(t, seen[c], "repeated target %s", c)
		seen[c] = true
		_, err = g.Fire(c)
		require.NoError(t, err)
	}
	require.Len(t, seen, rules.Cells())

	_, err := gunner.ChooseTarget(g.TargetView())
	require.ErrorIs(t, err, ErrExhausted)
}

func TestRandomAvoidsFiredCells(t *testing.T) {
	rules := game.Rules{Width: 2, Height: 2, Fleet: []game.ShipClass{{Name: "Destroyer", Length: 2}}}
	g := game.NewGrid(rules)
	require.NoError(t, g.PlaceFleet([]game.Placement{
		game.Span("Destroyer", game.C(0, 0), game.Horizontal, 2),
	}))
	for _, c := range []game.Coord{game.C(0, 0), game.C(1, 0), game.C(0, 1)} {
		_, err := g.Fire(c)
		require.NoError(t, err)
	}

	// One open cell left: every draw must pick it, regardless of seed.
	for seed := int64(0); seed < 10; seed++ {
		gunner := NewRandom(rand.New(rand.NewSource(seed)))
		c, err := gunner.ChooseTarget(g.TargetView())
		require.NoError(t, err)
		require.Equal(t, game.C(1, 1), c)
	}
}
