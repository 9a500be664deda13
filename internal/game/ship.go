package game

// ShipClass names a ship type and fixes its length.
type ShipClass struct {
	Name   string `json:"name" yaml:"name"`
	Length int    `json:"length" yaml:"length"`
}

// StandardFleet is the classic five-ship fleet (17 cells).
func StandardFleet() []ShipClass {
	return []ShipClass{
		{Name: "Carrier", Length: 5},
		{Name: "Battleship", Length: 4},
		{Name: "Cruiser", Length: 3},
		{Name: "Submarine", Length: 3},
		{Name: "Destroyer", Length: 2},
	}
}

// Rules fixes the board dimensions and fleet composition for one match.
type Rules struct {
	Width  int
	Height int
	Fleet  []ShipClass
}

// DefaultRules is a 10x10 board with the standard fleet.
func DefaultRules() Rules {
	return Rules{Width: 10, Height: 10, Fleet: StandardFleet()}
}

// Cells is the total number of board cells.
func (r Rules) Cells() int { return r.Width * r.Height }

func (r Rules) inBounds(c Coord) bool {
	return c.Col >= 0 && c.Col < r.Width && c.Row >= 0 && c.Row < r.Height
}

// Placement is one proposed ship: a class name and the exact cells it covers.
// Span builds the common straight-line case.
type Placement struct {
	Name   string
	Coords []Coord
}

// Span expands a bow coordinate into a straight run of the given length.
func Span(name string, bow Coord, o Orientation, length int) Placement {
	coords := make([]Coord, 0, length)
	for i := 0; i < length; i++ {
		if o == Horizontal {
			coords = append(coords, Coord{Col: bow.Col + i, Row: bow.Row})
		} else {
			coords = append(coords, Coord{Col: bow.Col, Row: bow.Row + i})
		}
	}
	return Placement{Name: name, Coords: coords}
}

// Ship is an installed ship: its class, the cells it occupies, and which of
// those cells have been hit.
type Ship struct {
	class  ShipClass
	coords []Coord
	hits   map[Coord]bool
}

func newShip(class ShipClass, coords []Coord) *Ship {
	cp := make([]Coord, len(coords))
	copy(cp, coords)
	return &Ship{class: class, coords: cp, hits: make(map[Coord]bool, len(coords))}
}

// Name returns the ship's class name.
func (s *Ship) Name() string { return s.class.Name }

// Length returns the ship's class length.
func (s *Ship) Length() int { return s.class.Length }

// Coords returns a copy of the cells the ship occupies.
func (s *Ship) Coords() []Coord {
	cp := make([]Coord, len(s.coords))
	copy(cp, s.coords)
	return cp
}

func (s *Ship) markHit(c Coord) { s.hits[c] = true }

// Hit reports whether the given segment has been hit.
func (s *Ship) Hit(c Coord) bool { return s.hits[c] }

// Sunk reports whether every segment has been hit.
func (s *Ship) Sunk() bool { return len(s.hits) == len(s.coords) }
