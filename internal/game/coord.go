package game

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Coord is one cell on a board. Col and Row are zero-based.
type Coord struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// C is a shorthand constructor for Coord.
func C(col, row int) Coord { return Coord{Col: col, Row: row} }

// Label renders the coordinate in the classic letter-row form, e.g. C7 for
// row C (index 2), column 7 (index 6). Rows past Z have no letter form and
// fall back to a numeric pair.
func (c Coord) Label() string {
	if c.Row < 0 || c.Row >= 26 || c.Col < 0 {
		return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
	}
	return fmt.Sprintf("%c%d", rune('A'+c.Row), c.Col+1)
}

func (c Coord) String() string { return c.Label() }

var coordPattern = regexp.MustCompile(`^([A-Z])([0-9]+)$`)

// ErrBadCoord reports input that does not match the letter-row grammar.
var ErrBadCoord = errors.New("malformed coordinate")

// ParseCoord reads a letter-row coordinate such as "C7". The letter is the
// row, the number is the 1-based column. Input must already be upper-cased.
func ParseCoord(s string) (Coord, error) {
	m := coordPattern.FindStringSubmatch(s)
	if m == nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	col, err := strconv.Atoi(m[2])
	if err != nil || col < 1 {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	row := int(m[1][0] - 'A')
	return Coord{Col: col - 1, Row: row}, nil
}

// Orientation is the direction a ship extends from its bow.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}
