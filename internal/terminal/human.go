package terminal

import (
	"context"
	"ctchen222/tictactoe-cli/internal/game"
	"fmt"
)

// HumanMover asks a person at the keyboard for a position. It implements player.Mover.
type HumanMover struct {
	prompter *Prompter
	prompt   string
}

func NewHumanMover(prompter *Prompter, screen *Screen, name string, mark game.PlayerMark) *HumanMover {
	return &HumanMover{
		prompter: prompter,
		prompt:   fmt.Sprintf("\n%s (%s), choose a position (1-9): ", name, screen.Mark(mark)),
	}
}

func (h *HumanMover) NextMove(_ context.Context, board game.Board) (game.Position, error) {
	return h.prompter.ReadPosition(h.prompt, board)
}
