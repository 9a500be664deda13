package game

// ValidateFleet checks a proposed fleet against the rules. Checks run in
// order and stop at the first violation: class count/length match, bounds,
// contiguity, overlap. The caller can branch on PlacementError.Reason.
func ValidateFleet(rules Rules, placements []Placement) error {
	if len(placements) != len(rules.Fleet) {
		return rejectPlacement(PlacementWrongCount,
			"fleet needs %d ships, got %d", len(rules.Fleet), len(placements))
	}

	want := make(map[string][]int)
	for _, class := range rules.Fleet {
		want[class.Name] = append(want[class.Name], class.Length)
	}
	for _, p := range placements {
		lengths := want[p.Name]
		if len(lengths) == 0 {
			return rejectPlacement(PlacementWrongCount,
				"unexpected ship %q", p.Name)
		}
		if lengths[0] != len(p.Coords) {
			return rejectPlacement(PlacementWrongCount,
				"%s must cover %d cells, got %d", p.Name, lengths[0], len(p.Coords))
		}
		want[p.Name] = lengths[1:]
	}

	for _, p := range placements {
		for _, c := range p.Coords {
			if !rules.inBounds(c) {
				return rejectPlacement(PlacementOutOfBounds,
					"%s cell %s is off the board", p.Name, c)
			}
		}
	}

	for _, p := range placements {
		if !isStraightRun(p.Coords) {
			return rejectPlacement(PlacementNonContiguous,
				"%s cells do not form a straight contiguous line", p.Name)
		}
	}

	seen := make(map[Coord]string)
	for _, p := range placements {
		for _, c := range p.Coords {
			if other, dup := seen[c]; dup {
				return rejectPlacement(PlacementOverlap,
					"%s and %s both occupy %s", other, p.Name, c)
			}
			seen[c] = p.Name
		}
	}
	return nil
}

// isStraightRun reports whether coords form a single horizontal or vertical
// run with no gaps or duplicates. A one-cell ship is trivially a run.
func isStraightRun(coords []Coord) bool {
	if len(coords) == 0 {
		return false
	}
	if len(coords) == 1 {
		return true
	}
	horizontal := true
	vertical := true
	for _, c := range coords[1:] {
		if c.Row != coords[0].Row {
			horizontal = false
		}
		if c.Col != coords[0].Col {
			vertical = false
		}
	}
	if !horizontal && !vertical {
		return false
	}
	occupied := make(map[int]bool, len(coords))
	min := 0
	for i, c := range coords {
		axis := c.Col
		if vertical {
			axis = c.Row
		}
		if occupied[axis] {
			return false
		}
		occupied[axis] = true
		if i == 0 || axis < min {
			min = axis
		}
	}
	for i := 0; i < len(coords); i++ {
		if !occupied[min+i] {
			return false
		}
	}
	return true
}
