package game

import (
	"errors"
	"fmt"
)

// Shot rejections. All are caller errors the input loop can recover from.
var (
	ErrShotOutOfBounds = errors.New("shot out of bounds")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrGameFinished    = errors.New("game already finished")
	ErrMatchNotReady   = errors.New("both fleets must be placed first")
	ErrFleetPlaced     = errors.New("fleet already placed")
)

// PlacementReason distinguishes why a proposed fleet was rejected.
type PlacementReason uint8

const (
	PlacementWrongCount PlacementReason = iota
	PlacementOutOfBounds
	PlacementNonContiguous
	PlacementOverlap
)

func (r PlacementReason) String() string {
	switch r {
	case PlacementWrongCount:
		return "wrong-count"
	case PlacementOutOfBounds:
		return "out-of-bounds"
	case PlacementNonContiguous:
		return "non-contiguous"
	case PlacementOverlap:
		return "overlap"
	default:
		return "unknown"
	}
}

// PlacementError rejects a whole proposed fleet. Nothing is installed when
// one is returned.
type PlacementError struct {
	Reason PlacementReason
	Detail string
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("placement rejected (%s): %s", e.Reason, e.Detail)
}

func rejectPlacement(reason PlacementReason, format string, args ...any) error {
	return &PlacementError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}
