package session

import (
	"context"
	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/validator"
	"ctchen222/tictactoe-cli/pkg/proto"
	"encoding/json"
	"errors"

	"github.com/gorilla/websocket"
)

func decode(raw []byte) (proto.ClientToServerMessage, error) {
	var message proto.ClientToServerMessage
	if err := json.Unmarshal(raw, &message); err != nil {
		return message, err
	}
	if err := validator.GetValidator().Struct(message); err != nil {
		return message, err
	}
	return message, nil
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidPosition):
		return "invalid_position"
	case errors.Is(err, game.ErrCellOccupied):
		return "cell_occupied"
	case errors.Is(err, game.ErrGameFinished):
		return "game_finished"
	default:
		return "invalid_move"
	}
}

// outcomeLabel is the outcome as shown to clients, with "draw" for a full board.
func outcomeLabel(g *game.Game) string {
	if g.IsDraw() {
		return "draw"
	}
	return g.Outcome.String()
}

func (s *Session) sendUpdate(ctx context.Context, computerMove game.Position) {
	msg := proto.ServerToClientMessage{
		Type:     proto.TypeUpdate,
		Board:    s.game.Board.Rows(),
		Position: int(computerMove),
		Score: &proto.Score{
			X:     s.state.Score.X,
			O:     s.state.Score.O,
			Draws: s.state.Score.Draws,
		},
	}
	if s.game.Finished() {
		msg.Winner = s.game.Outcome.Winner()
		msg.Outcome = outcomeLabel(s.game)
	} else {
		msg.Next = s.game.CurrentTurn
	}
	s.send(ctx, msg)
}

func (s *Session) sendError(ctx context.Context, reason string) {
	s.send(ctx, proto.ServerToClientMessage{Type: proto.TypeError, Reason: reason})
}

func (s *Session) send(ctx context.Context, message any) {
	data, err := json.Marshal(message)
	if err != nil {
		s.logger.ErrorContext(ctx, "error marshalling message", "error", err)
		return
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.logger.WarnContext(ctx, "error writing message to client", "error", err)
	}
}
