package app

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"battleship/internal/ai"
	"battleship/internal/game"
)

func tinyRules() game.Rules {
	return game.Rules{Width: 3, Height: 3, Fleet: []game.ShipClass{{Name: "Destroyer", Length: 2}}}
}

func newTestSession(t *testing.T, rules game.Rules) *Session {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	s, err := NewSession(rules, ai.NewRandom(rng), rng, zerolog.Nop())
	require.NoError(t, err)
	return s
}

func TestNewSessionPlacesComputerFleet(t *testing.T) {
	s := newTestSession(t, tinyRules())
	state := s.State()
	require.Equal(t, game.AwaitingPlacement, state.Phase)
	require.True(t, state.Placed[ComputerSide])
	require.False(t, state.Placed[HumanSide])
}

func TestAutoPlaceHumanStartsMatch(t *testing.T) {
	s := newTestSession(t, tinyRules())
	require.NoError(t, s.AutoPlaceHumanFleet())
	state := s.State()
	require.Equal(t, game.InProgress, state.Phase)
	require.Equal(t, HumanSide, state.Active)
}

func TestPlaceHumanFleetRejectionIsRecoverable(t *testing.T) {
	s := newTestSession(t, tinyRules())
	err := s.PlaceHumanFleet([]game.Placement{
		game.Span("Destroyer", game.C(2, 0), game.Horizontal, 2), // off the board
	})
	var pe *game.PlacementError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, game.PlacementOutOfBounds, pe.Reason)

	require.NoError(t, s.PlaceHumanFleet([]game.Placement{
		game.Span("Destroyer", game.C(0, 0), game.Horizontal, 2),
	}))
}

func TestHumanShotDrawsComputerReply(t *testing.T) {
	s := newTestSession(t, tinyRules())
	require.NoError(t, s.AutoPlaceHumanFleet())

	report, err := s.HumanShot(game.C(0, 0))
	require.NoError(t, err)
	require.Equal(t, game.C(0, 0), report.Human.Coord)

	if report.State.Phase == game.Finished {
		require.Equal(t, HumanSide, report.State.Winner)
		require.Nil(t, report.Computer)
	} else {
		require.NotNil(t, report.Computer)
		require.Equal(t, ComputerSide, report.Computer.Side)
		require.Equal(t, HumanSide, report.State.Active)
	}
}

func TestHumanShotAlreadyFiredDrawsNoReply(t *testing.T) {
	s := newTestSession(t, game.DefaultRules())
	require.NoError(t, s.AutoPlaceHumanFleet())

	first, err := s.HumanShot(game.C(0, 0))
	require.NoError(t, err)
	require.NotEqual(t, game.AlreadyFired, first.Human.Result.Outcome)

	// The computer cannot have fired at our shot's cell on the opposing
	// board, so repeating it must come back AlreadyFired with no reply and
	// the turn still ours.
	repeat, err := s.HumanShot(game.C(0, 0))
	require.NoError(t, err)
	require.Equal(t, game.AlreadyFired, repeat.Human.Result.Outcome)
	require.Nil(t, repeat.Computer)
	require.Equal(t, HumanSide, repeat.State.Active)
}

func TestHumanShotOutOfBounds(t *testing.T) {
	s := newTestSession(t, tinyRules())
	require.NoError(t, s.AutoPlaceHumanFleet())
	_, err := s.HumanShot(game.C(9, 9))
	require.ErrorIs(t, err, game.ErrShotOutOfBounds)
}

func TestSimulateTerminatesWithWinner(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 5; i++ {
		res, err := Simulate(game.DefaultRules(), ai.NewRandom(rng), ai.NewRandom(rng), rng, zerolog.Nop())
		require.NoError(t, err)
		require.Contains(t, []game.Side{game.SideOne, game.SideTwo}, res.Winner)
		// The winner needs at least 17 shots to sink the standard fleet,
		// and the whole board bounds the match from above.
		require.GreaterOrEqual(t, res.Turns, 17)
		require.LessOrEqual(t, res.Turns, 200)
	}
}
