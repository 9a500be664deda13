package game

// Side identifies one of the two players of a match.
type Side uint8

const (
	SideOne Side = iota
	SideTwo
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SideOne {
		return SideTwo
	}
	return SideOne
}

func (s Side) String() string {
	if s == SideTwo {
		return "player two"
	}
	return "player one"
}

// Phase is the match lifecycle state.
type Phase uint8

const (
	AwaitingPlacement Phase = iota
	InProgress
	Finished
)

func (p Phase) String() string {
	switch p {
	case AwaitingPlacement:
		return "awaiting-placement"
	case InProgress:
		return "in-progress"
	case Finished:
		return "finished"
	default:
		return "invalid"
	}
}

// MatchState is a snapshot of the turn machine. Active is meaningful only in
// InProgress, Winner only in Finished.
type MatchState struct {
	Phase  Phase
	Active Side
	Winner Side
	Placed [2]bool
}

// Match sequences a two-player game: placement, alternating shots, victory.
// It owns both grids; each side only ever sees the opponent's grid through
// the TargetView projection.
type Match struct {
	rules  Rules
	grids  [2]*Grid
	placed [2]bool
	phase  Phase
	active Side
	winner Side
}

// NewMatch creates a match in AwaitingPlacement for both sides.
func NewMatch(rules Rules) *Match {
	return &Match{
		rules: rules,
		grids: [2]*Grid{NewGrid(rules), NewGrid(rules)},
	}
}

// Rules returns the match configuration.
func (m *Match) Rules() Rules { return m.rules }

// SubmitPlacement validates and installs a side's fleet. Rejected fleets
// leave the grid empty and can be resubmitted. Once both sides are placed
// the match moves to InProgress with SideOne to act.
func (m *Match) SubmitPlacement(side Side, placements []Placement) error {
	if m.phase != AwaitingPlacement {
		return ErrFleetPlaced
	}
	if err := m.grids[side].PlaceFleet(placements); err != nil {
		return err
	}
	m.placed[side] = true
	if m.placed[SideOne] && m.placed[SideTwo] {
		m.phase = InProgress
		m.active = SideOne
	}
	return nil
}

// SubmitShot resolves the active side's shot against the opponent's grid.
// AlreadyFired keeps the turn with the shooter; any other outcome consumes
// it. The shot that destroys the last ship finishes the match with the
// shooter as winner.
func (m *Match) SubmitShot(side Side, c Coord) (ShotResult, error) {
	switch m.phase {
	case AwaitingPlacement:
		return ShotResult{}, ErrMatchNotReady
	case Finished:
		return ShotResult{}, ErrGameFinished
	}
	if side != m.active {
		return ShotResult{}, ErrNotYourTurn
	}
	target := m.grids[side.Other()]
	res, err := target.Fire(c)
	if err != nil {
		return ShotResult{}, err
	}
	if res.Outcome == AlreadyFired {
		return res, nil
	}
	if target.FleetDestroyed() {
		m.phase = Finished
		m.winner = side
		return res, nil
	}
	m.active = side.Other()
	return res, nil
}

// State snapshots the turn machine.
func (m *Match) State() MatchState {
	return MatchState{
		Phase:  m.phase,
		Active: m.active,
		Winner: m.winner,
		Placed: m.placed,
	}
}

// OpponentView is what side knows about the other side's board.
func (m *Match) OpponentView(side Side) TargetView {
	return m.grids[side.Other()].TargetView()
}

// FleetView is a side's picture of its own board.
func (m *Match) FleetView(side Side) FleetView {
	return m.grids[side].FleetView()
}
