// Package app wires the game engine, a targeting strategy, and logging into
// one human-vs-computer session the CLI and HTTP front ends drive.
package app

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"battleship/internal/ai"
	"battleship/internal/game"
)

const (
	// HumanSide and ComputerSide fix which engine side each player holds.
	HumanSide    = game.SideOne
	ComputerSide = game.SideTwo
)

// Session is one match between the human and the computer. The computer's
// fleet is placed at construction; the human places (or auto-places) theirs
// before play starts.
type Session struct {
	ID string

	match  *game.Match
	gunner ai.Strategy
	rng    *rand.Rand
	log    zerolog.Logger
	lastAI *ShotRecord
}

// NewSession starts a match under the given rules with the computer fleet
// already placed.
func NewSession(rules game.Rules, gunner ai.Strategy, rng *rand.Rand, log zerolog.Logger) (*Session, error) {
	id := uuid.NewString()[:8]
	s := &Session{
		ID:     id,
		match:  game.NewMatch(rules),
		gunner: gunner,
		rng:    rng,
		log:    log.With().Str("match", id).Logger(),
	}
	layout, err := game.RandomLayout(rules, rng)
	if err != nil {
		return nil, fmt.Errorf("computer layout: %w", err)
	}
	if err := s.match.SubmitPlacement(ComputerSide, layout); err != nil {
		return nil, fmt.Errorf("computer placement: %w", err)
	}
	s.log.Info().
		Int("width", rules.Width).
		Int("height", rules.Height).
		Int("ships", len(rules.Fleet)).
		Msg("match created")
	return s, nil
}

// PlaceHumanFleet submits the human's proposed fleet. Rejections are
// recoverable; the caller prompts again.
func (s *Session) PlaceHumanFleet(placements []game.Placement) error {
	if err := s.match.SubmitPlacement(HumanSide, placements); err != nil {
		var pe *game.PlacementError
		if errors.As(err, &pe) {
			s.log.Warn().Stringer("reason", pe.Reason).Msg("human placement rejected")
		}
		return err
	}
	s.log.Info().Msg("human fleet placed")
	return nil
}

// AutoPlaceHumanFleet places the human's fleet at random, the same way the
// computer's was.
func (s *Session) AutoPlaceHumanFleet() error {
	layout, err := game.RandomLayout(s.match.Rules(), s.rng)
	if err != nil {
		return fmt.Errorf("human layout: %w", err)
	}
	return s.PlaceHumanFleet(layout)
}

// State snapshots the underlying match.
func (s *Session) State() game.MatchState { return s.match.State() }

// Rules returns the match configuration.
func (s *Session) Rules() game.Rules { return s.match.Rules() }

// HumanFleetView is the human's own board.
func (s *Session) HumanFleetView() game.FleetView { return s.match.FleetView(HumanSide) }

// HumanTargetView is what the human knows about the computer's board.
func (s *Session) HumanTargetView() game.TargetView { return s.match.OpponentView(HumanSide) }

// ShotRecord is one resolved shot.
type ShotRecord struct {
	Side   game.Side
	Coord  game.Coord
	Result game.ShotResult
}

// TurnReport is everything that happened after one human submission: the
// human shot and, if the turn passed, the computer's reply.
type TurnReport struct {
	Human    ShotRecord
	Computer *ShotRecord
	State    game.MatchState
}

// HumanShot resolves the human's shot and, when the turn is consumed and the
// match is still live, immediately plays the computer's answer. An
// AlreadyFired outcome keeps the turn with the human and draws no reply.
func (s *Session) HumanShot(c game.Coord) (TurnReport, error) {
	res, err := s.match.SubmitShot(HumanSide, c)
	if err != nil {
		return TurnReport{}, err
	}
	report := TurnReport{
		Human: ShotRecord{Side: HumanSide, Coord: c, Result: res},
	}
	s.log.Info().
		Stringer("coord", c).
		Stringer("outcome", res.Outcome).
		Msg("human shot")
	if res.Outcome == game.AlreadyFired || s.match.State().Phase == game.Finished {
		report.State = s.match.State()
		return report, nil
	}
	reply, err := s.computerTurn()
	if err != nil {
		return TurnReport{}, err
	}
	report.Computer = &reply
	report.State = s.match.State()
	return report, nil
}

// LastComputerShot returns the computer's most recent shot, if any.
func (s *Session) LastComputerShot() *ShotRecord { return s.lastAI }

func (s *Session) computerTurn() (ShotRecord, error) {
	view := s.match.OpponentView(ComputerSide)
	target, err := s.gunner.ChooseTarget(view)
	if err != nil {
		return ShotRecord{}, fmt.Errorf("choose target: %w", err)
	}
	res, err := s.match.SubmitShot(ComputerSide, target)
	if err != nil {
		return ShotRecord{}, fmt.Errorf("computer shot: %w", err)
	}
	rec := ShotRecord{Side: ComputerSide, Coord: target, Result: res}
	s.lastAI = &rec
	s.log.Info().
		Stringer("coord", target).
		Stringer("outcome", res.Outcome).
		Msg("computer shot")
	return rec, nil
}
