package models

import "ctchen222/tictactoe-cli/internal/game"

// EvaluateRequest carries a board to score. Rows are top to bottom.
type EvaluateRequest struct {
	Board [][]game.PlayerMark `json:"board" validate:"len=3,dive,len=3,dive,mark"`
}

type EvaluateResponse struct {
	Outcome string          `json:"outcome"`
	Winner  game.PlayerMark `json:"winner"`
	Full    bool            `json:"full"`
}

// MoveRequest asks the computer for a move as Mark.
type MoveRequest struct {
	Board      [][]game.PlayerMark `json:"board" validate:"len=3,dive,len=3,dive,mark"`
	Mark       game.PlayerMark     `json:"mark" validate:"required,oneof=X O"`
	Difficulty string              `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

type MoveResponse struct {
	Position int    `json:"position"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Rule     string `json:"rule"`
}
