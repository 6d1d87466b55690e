package controller

import (
	"ctchen222/tictactoe-cli/internal/api/models"
	"ctchen222/tictactoe-cli/internal/api/response"
	"ctchen222/tictactoe-cli/internal/bot"
	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/validator"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GameController exposes the evaluator and the move selector over HTTP.
type GameController struct{}

func NewGameController() *GameController {
	return &GameController{}
}

// Evaluate reports the outcome of a board.
func (gc *GameController) Evaluate(c *gin.Context) {
	var req models.EvaluateRequest
	if !bindAndValidate(c, &req) {
		return
	}

	board := game.BoardFromRows(req.Board)
	outcome := game.Evaluate(board)

	response.SuccessResponse(c, models.EvaluateResponse{
		Outcome: outcome.String(),
		Winner:  outcome.Winner(),
		Full:    board.IsFull(),
	})
}

// Move asks the computer for its next move on the given board.
func (gc *GameController) Move(c *gin.Context) {
	var req models.MoveRequest
	if !bindAndValidate(c, &req) {
		return
	}

	board := game.BoardFromRows(req.Board)
	selector := bot.NewSelector(bot.ParseDifficulty(req.Difficulty), nil)
	pos, rule := selector.Decide(c.Request.Context(), board, req.Mark, req.Mark.Opponent())
	if pos == game.NoPosition {
		response.AbortWithError(c, http.StatusConflict, bot.ErrNoMoveAvailable)
		return
	}

	row, col, _ := pos.Coords()
	response.SuccessResponse(c, models.MoveResponse{
		Position: int(pos),
		Row:      row,
		Col:      col,
		Rule:     string(rule),
	})
}

func bindAndValidate(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return false
	}
	if err := validator.GetValidator().Struct(req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
