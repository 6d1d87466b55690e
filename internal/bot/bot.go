package bot

import (
	"context"
	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/player"
	"errors"
	"log/slog"

	"github.com/google/uuid"
)

var ErrNoMoveAvailable = errors.New("no move available")

// Computer is a player.Mover backed by a Selector.
type Computer struct {
	mark     game.PlayerMark
	selector *Selector
}

// NewComputer creates a mover that plays mark.
func NewComputer(mark game.PlayerMark, selector *Selector) *Computer {
	return &Computer{
		mark:     mark,
		selector: selector,
	}
}

// NextMove asks the selector for a move. The board is not modified.
func (c *Computer) NextMove(ctx context.Context, board game.Board) (game.Position, error) {
	pos, rule := c.selector.Decide(ctx, board, c.mark, c.mark.Opponent())
	if pos == game.NoPosition {
		return game.NoPosition, ErrNoMoveAvailable
	}
	slog.DebugContext(ctx, "computer chose a move", "player.mark", c.mark, "position", int(pos), "rule", rule)
	return pos, nil
}

// NewBotPlayer creates a new player instance that is a bot.
func NewBotPlayer(name string, mark game.PlayerMark, difficulty Difficulty) player.Player {
	botID := "bot-" + uuid.New().String()[:8]
	p := player.NewPlayer(botID, name, mark, NewComputer(mark, NewSelector(difficulty, nil)))
	p.IsBot = true
	return p
}
