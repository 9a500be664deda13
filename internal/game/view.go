package game

// Mark is what a fired-upon cell looks like from the attacker's side.
type Mark uint8

const (
	MarkMiss Mark = iota
	MarkHit
)

// TargetView is the attacker's knowledge of an opponent board: which cells
// have been fired upon and whether each was a hit. Ship positions are not
// represented at all, so a targeting strategy cannot read them even by
// accident.
type TargetView struct {
	width  int
	height int
	marks  map[Coord]Mark
}

// Width returns the board width.
func (v TargetView) Width() int { return v.width }

// Height returns the board height.
func (v TargetView) Height() int { return v.height }

// Fired reports whether c has been fired upon.
func (v TargetView) Fired(c Coord) bool {
	_, ok := v.marks[c]
	return ok
}

// MarkAt returns the mark at c and whether c has been fired upon.
func (v TargetView) MarkAt(c Coord) (Mark, bool) {
	m, ok := v.marks[c]
	return m, ok
}

// FiredCount returns how many distinct cells have been fired upon.
func (v TargetView) FiredCount() int { return len(v.marks) }

// TargetView projects the attacker-visible subset of the board.
func (g *Grid) TargetView() TargetView {
	marks := make(map[Coord]Mark, len(g.fired))
	for c, out := range g.fired {
		m := MarkMiss
		if out == Hit || out == HitAndSunk {
			m = MarkHit
		}
		marks[c] = m
	}
	return TargetView{width: g.rules.Width, height: g.rules.Height, marks: marks}
}

// FleetView is the owner's picture of their own board: ship cells by name
// plus incoming shot marks. Only ever handed to the side that owns the grid.
type FleetView struct {
	width  int
	height int
	ships  map[Coord]string
	marks  map[Coord]Mark
}

// Width returns the board width.
func (v FleetView) Width() int { return v.width }

// Height returns the board height.
func (v FleetView) Height() int { return v.height }

// ShipAt returns the name of the ship covering c, if any.
func (v FleetView) ShipAt(c Coord) (string, bool) {
	name, ok := v.ships[c]
	return name, ok
}

// MarkAt returns the incoming shot mark at c, if the cell was fired upon.
func (v FleetView) MarkAt(c Coord) (Mark, bool) {
	m, ok := v.marks[c]
	return m, ok
}

// FleetView projects the owner-visible board.
func (g *Grid) FleetView() FleetView {
	ships := make(map[Coord]string, len(g.byCoord))
	for c, s := range g.byCoord {
		ships[c] = s.Name()
	}
	marks := make(map[Coord]Mark, len(g.fired))
	for c, out := range g.fired {
		m := MarkMiss
		if out == Hit || out == HitAndSunk {
			m = MarkHit
		}
		marks[c] = m
	}
	return FleetView{width: g.rules.Width, height: g.rules.Height, ships: ships, marks: marks}
}
