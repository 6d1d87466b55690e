package proto

import "ctchen222/tictactoe-cli/internal/game"

// Message types exchanged over the websocket.
const (
	TypeMove       = "move"
	TypeRematch    = "rematch"
	TypeAssignment = "assignment"
	TypeUpdate     = "update"
	TypeError      = "error"
)

// ClientToServerMessage represents a message from the client to the server.
type ClientToServerMessage struct {
	Type     string `json:"type" validate:"required,oneof=move rematch"`
	Position int    `json:"position,omitempty"`
}

// ServerToClientMessage represents a message from the server to the client.
// Position is the computer's reply to the last move, if it made one.
type ServerToClientMessage struct {
	Type     string              `json:"type" validate:"required"`
	Reason   string              `json:"reason,omitempty"`
	Board    [][]game.PlayerMark `json:"board,omitempty"`
	Next     game.PlayerMark     `json:"next,omitempty"`
	Winner   game.PlayerMark     `json:"winner,omitempty"`
	Outcome  string              `json:"outcome,omitempty"`
	Position int                 `json:"position,omitempty"`
	Score    *Score              `json:"score,omitempty"`
}

type Score struct {
	X     int `json:"x"`
	O     int `json:"o"`
	Draws int `json:"draws"`
}

// PlayerAssignmentMessage informs a player of their assigned mark.
type PlayerAssignmentMessage struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId"`
	PlayerID  string          `json:"playerId,omitempty"`
	Mark      game.PlayerMark `json:"mark"`
	Opponent  string          `json:"opponent"`
}
