package player

import (
	"context"
	"ctchen222/tictactoe-cli/internal/game"
)

// Mover abstracts where a player's moves come from: a terminal prompt,
// the heuristic selector, or a websocket.
type Mover interface {
	NextMove(ctx context.Context, board game.Board) (game.Position, error)
}

// Player represents one side of a match.
type Player struct {
	ID    string
	Name  string
	Mark  game.PlayerMark
	Mover Mover
	IsBot bool
}

// NewPlayer creates a human player.
func NewPlayer(id, name string, mark game.PlayerMark, mover Mover) Player {
	return Player{
		ID:    id,
		Name:  name,
		Mark:  mark,
		Mover: mover,
	}
}

// Label is how the player is shown on screen, e.g. "Ana (X)".
func (p Player) Label() string {
	return p.Name + " (" + string(p.Mark) + ")"
}
