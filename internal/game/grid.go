package game

import "fmt"

// Outcome classifies one resolved shot.
type Outcome uint8

const (
	Miss Outcome = iota
	Hit
	HitAndSunk
	AlreadyFired
)

func (o Outcome) String() string {
	switch o {
	case Miss:
		return "miss"
	case Hit:
		return "hit"
	case HitAndSunk:
		return "sunk"
	case AlreadyFired:
		return "already-fired"
	default:
		return "invalid"
	}
}

// ShotResult is the outcome of a shot plus the name of the ship it touched,
// if any. Ship is empty on Miss and AlreadyFired.
type ShotResult struct {
	Outcome Outcome
	Ship    string
}

func (r ShotResult) String() string {
	switch r.Outcome {
	case Hit:
		return fmt.Sprintf("Hit %s", r.Ship)
	case HitAndSunk:
		return fmt.Sprintf("Sunk %s", r.Ship)
	case AlreadyFired:
		return "Already fired upon"
	default:
		return "Miss"
	}
}

// Grid is one player's board: the installed fleet and the cells the opponent
// has fired upon. The fired set only grows; Fire is the only gameplay
// mutation.
type Grid struct {
	rules   Rules
	ships   []*Ship
	byCoord map[Coord]*Ship
	fired   map[Coord]Outcome
}

// NewGrid returns an empty board governed by the given rules.
func NewGrid(rules Rules) *Grid {
	return &Grid{
		rules:   rules,
		byCoord: make(map[Coord]*Ship),
		fired:   make(map[Coord]Outcome),
	}
}

// Rules returns the board's dimensions and fleet composition.
func (g *Grid) Rules() Rules { return g.rules }

// InBounds reports whether c lies on the board.
func (g *Grid) InBounds(c Coord) bool { return g.rules.inBounds(c) }

// Occupied reports whether a ship covers c.
func (g *Grid) Occupied(c Coord) bool {
	_, ok := g.byCoord[c]
	return ok
}

// ShipCount returns the number of installed ships.
func (g *Grid) ShipCount() int { return len(g.ships) }

// PlaceFleet validates the proposed fleet against the board's rules and,
// only if the whole fleet is acceptable, installs it. On rejection the board
// is left untouched.
func (g *Grid) PlaceFleet(placements []Placement) error {
	if len(g.ships) > 0 {
		return ErrFleetPlaced
	}
	if err := ValidateFleet(g.rules, placements); err != nil {
		return err
	}
	for _, p := range placements {
		s := newShip(ShipClass{Name: p.Name, Length: len(p.Coords)}, p.Coords)
		g.ships = append(g.ships, s)
		for _, c := range p.Coords {
			g.byCoord[c] = s
		}
	}
	return nil
}

// Fire resolves a shot at c. Out-of-bounds coordinates are a caller error.
// A repeated coordinate yields AlreadyFired and changes nothing; any other
// shot is recorded exactly once.
func (g *Grid) Fire(c Coord) (ShotResult, error) {
	if !g.InBounds(c) {
		return ShotResult{}, fmt.Errorf("%w: %s", ErrShotOutOfBounds, c)
	}
	if _, dup := g.fired[c]; dup {
		return ShotResult{Outcome: AlreadyFired}, nil
	}
	s, ok := g.byCoord[c]
	if !ok {
		g.fired[c] = Miss
		return ShotResult{Outcome: Miss}, nil
	}
	s.markHit(c)
	out := Hit
	if s.Sunk() {
		out = HitAndSunk
	}
	g.fired[c] = out
	return ShotResult{Outcome: out, Ship: s.Name()}, nil
}

// FleetDestroyed reports whether every installed ship is sunk.
func (g *Grid) FleetDestroyed() bool {
	if len(g.ships) == 0 {
		return false
	}
	for _, s := range g.ships {
		if !s.Sunk() {
			return false
		}
	}
	return true
}
