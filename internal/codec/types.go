// Package codec holds the JSON types shared by the HTTP API, the websocket
// event feed, and the browser client.
package codec

import "battleship/internal/game"

// CellRef is a board cell on the wire.
type CellRef struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// ToCoord converts a wire cell into an engine coordinate.
func (c CellRef) ToCoord() game.Coord { return game.C(c.Col, c.Row) }

// FromCoord converts an engine coordinate into a wire cell.
func FromCoord(c game.Coord) CellRef { return CellRef{Col: c.Col, Row: c.Row} }

// ShipPlacement is one proposed ship on the wire.
type ShipPlacement struct {
	Name  string    `json:"name"`
	Cells []CellRef `json:"cells"`
}

// PlacementRequest submits the human fleet. Auto asks the server to place it
// at random instead of reading Ships.
type PlacementRequest struct {
	Auto  bool            `json:"auto,omitempty"`
	Ships []ShipPlacement `json:"ships,omitempty"`
}

// ShootRequest fires one human shot.
type ShootRequest struct {
	Target CellRef `json:"target"`
}

// ShotPayload is one resolved shot on the wire.
type ShotPayload struct {
	Side    string  `json:"side"`
	Target  CellRef `json:"target"`
	Label   string  `json:"label"`
	Outcome string  `json:"outcome"`
	Ship    string  `json:"ship,omitempty"`
}

// ShootResponse reports the human shot and the computer's reply, if the turn
// passed.
type ShootResponse struct {
	Human    ShotPayload  `json:"human"`
	Computer *ShotPayload `json:"computer,omitempty"`
	Status   Status       `json:"status"`
}

// CellState is one rendered board cell: "ship", "hit", or "miss".
type CellState struct {
	CellRef
	State string `json:"state"`
	Ship  string `json:"ship,omitempty"`
}

// Status is the consolidated match snapshot behind GET /v1/status.
type Status struct {
	Match   string      `json:"match"`
	Phase   string      `json:"phase"`
	Active  string      `json:"active,omitempty"`
	Winner  string      `json:"winner,omitempty"`
	Width   int         `json:"width"`
	Height  int         `json:"height"`
	Fleet   []CellState `json:"fleet"`
	Targets []CellState `json:"targets"`
}

// Event is one websocket feed message.
type Event struct {
	Type   string       `json:"type"` // "shot" | "finished"
	Shot   *ShotPayload `json:"shot,omitempty"`
	Winner string       `json:"winner,omitempty"`
}
