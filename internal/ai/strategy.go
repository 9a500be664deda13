// Package ai holds targeting strategies for the computer player. A strategy
// only ever sees the attacker's TargetView of the opponent board, so ship
// positions are structurally out of reach.
package ai

import (
	"errors"

	"battleship/internal/game"
)

// ErrExhausted means every cell on the board has been fired upon.
var ErrExhausted = errors.New("no unfired cells remain")

// Strategy picks the next cell to fire at. Implementations must return a
// coordinate absent from the view's fired set, or ErrExhausted when none
// remain.
type Strategy interface {
	ChooseTarget(view game.TargetView) (game.Coord, error)
}
