package game

import (
	"errors"
	"math/rand"
)

const layoutMaxTries = 10000

// RandomLayout places the rules' fleet at random without overlap (no
// adjacency rule enforced). The result always passes ValidateFleet. Fails
// only if the fleet cannot be fitted within the retry budget, which for any
// sane rules means the fleet is too big for the board.
func RandomLayout(rules Rules, rng *rand.Rand) ([]Placement, error) {
	taken := make(map[Coord]bool)
	placements := make([]Placement, 0, len(rules.Fleet))
	tries := 0
	for _, class := range rules.Fleet {
	retry:
		if tries > layoutMaxTries {
			return nil, errors.New("failed to place fleet")
		}
		tries++
		o := Horizontal
		if rng.Intn(2) == 0 {
			o = Vertical
		}
		bow := Coord{Col: rng.Intn(rules.Width), Row: rng.Intn(rules.Height)}
		if o == Horizontal && bow.Col+class.Length > rules.Width {
			goto retry
		}
		if o == Vertical && bow.Row+class.Length > rules.Height {
			goto retry
		}
		p := Span(class.Name, bow, o, class.Length)
		for _, c := range p.Coords {
			if taken[c] {
				goto retry
			}
		}
		for _, c := range p.Coords {
			taken[c] = true
		}
		placements = append(placements, p)
	}
	return placements, nil
}
