package session

import (
	"context"
	"ctchen222/tictactoe-cli/internal/bot"
	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/match"
	"ctchen222/tictactoe-cli/internal/player"
	"ctchen222/tictactoe-cli/pkg/proto"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	heartbeatInterval = 10 * time.Second
	computerName      = "Computer"
)

var tracer = otel.Tracer("session")

// Conn is the part of *websocket.Conn a session uses.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Session is one human (X) playing the computer (O) over a websocket. Messages are
// handled one at a time on the goroutine that calls Run.
type Session struct {
	ID         string
	conn       Conn
	writeMu    sync.Mutex
	state      match.State
	game       *game.Game
	store      match.ResultStore
	thinkDelay time.Duration
	sleep      func(time.Duration)
	logger     *slog.Logger
}

// New creates a session for conn. store may be nil.
func New(conn Conn, name string, difficulty bot.Difficulty, store match.ResultStore, thinkDelay time.Duration, logger *slog.Logger) *Session {
	if name == "" {
		name = "Guest"
	}
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.NewString()
	human := player.NewPlayer(uuid.NewString(), name, game.PlayerX, nil)
	computer := bot.NewBotPlayer(computerName, game.PlayerO, difficulty)

	return &Session{
		ID:         id,
		conn:       conn,
		state:      match.NewState(match.Online, human, computer),
		game:       game.NewGame(),
		store:      store,
		thinkDelay: thinkDelay,
		sleep:      time.Sleep,
		logger:     logger.With("session.id", id),
	}
}

// State returns the scores and players of the session so far.
func (s *Session) State() match.State {
	return s.state
}

// Run greets the client and handles its messages until the connection closes or ctx
// is done.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.conn.Close()

	go s.heartbeat(ctx)

	s.send(ctx, proto.PlayerAssignmentMessage{
		Type:      proto.TypeAssignment,
		SessionID: s.ID,
		PlayerID:  s.state.PlayerX.ID,
		Mark:      game.PlayerX,
		Opponent:  s.state.PlayerO.Name,
	})
	s.sendUpdate(ctx, game.NoPosition)

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.WarnContext(ctx, "connection closed unexpectedly", "error", err)
			}
			s.logger.InfoContext(ctx, "session ended", "rounds", s.state.Round)
			return nil
		}
		s.HandleMessage(ctx, raw)
	}
}

// heartbeat pings the client and closes the connection once ctx is done, which
// unblocks the read loop.
func (s *Session) heartbeat(ctx context.Context) {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.conn.Close()
			return
		case <-ticker.C:
			s.writeMu.Lock()
			err := s.conn.WriteMessage(websocket.PingMessage, nil)
			s.writeMu.Unlock()
			if err != nil {
				s.logger.WarnContext(ctx, "failed to send ping", "error", err)
			}
		}
	}
}

// HandleMessage handles a message from the client. It acts as a dispatcher.
func (s *Session) HandleMessage(ctx context.Context, rawMessage []byte) {
	ctx, span := tracer.Start(ctx, "session.HandleMessage", trace.WithAttributes(
		attribute.String("session.id", s.ID),
	))
	defer span.End()

	message, err := decode(rawMessage)
	if err != nil {
		s.logger.WarnContext(ctx, "invalid message from client", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid message format")
		s.sendError(ctx, "invalid_message")
		return
	}
	span.SetAttributes(attribute.String("message.type", message.Type))

	switch message.Type {
	case proto.TypeMove:
		s.handleMove(ctx, game.Position(message.Position))
	case proto.TypeRematch:
		s.handleRematch(ctx)
	}
}

// handleMove plays the human's move and, if the round goes on, the computer's reply.
func (s *Session) handleMove(ctx context.Context, pos game.Position) {
	ctx, span := tracer.Start(ctx, "session.handleMove", trace.WithAttributes(
		attribute.String("session.id", s.ID),
		attribute.Int("move.position", int(pos)),
	))
	defer span.End()

	if err := s.game.Move(pos); err != nil {
		s.logger.DebugContext(ctx, "rejected move", "position", int(pos), "error", err)
		span.SetAttributes(attribute.Bool("move.valid", false))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid move")
		s.sendError(ctx, rejectReason(err))
		return
	}
	span.SetAttributes(attribute.Bool("move.valid", true))

	if s.game.Finished() {
		s.finishRound(ctx)
		s.sendUpdate(ctx, game.NoPosition)
		return
	}

	s.sleep(s.thinkDelay)
	computer := s.state.PlayerO
	reply, err := computer.Mover.NextMove(ctx, s.game.Board)
	if err == nil {
		err = s.game.Move(reply)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "computer failed to move", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Computer failed to move")
		s.sendError(ctx, "computer_error")
		return
	}

	if s.game.Finished() {
		s.finishRound(ctx)
	}
	s.sendUpdate(ctx, reply)
}

// handleRematch starts a new round once the current one is over. X moves first again.
func (s *Session) handleRematch(ctx context.Context) {
	if !s.game.Finished() {
		s.sendError(ctx, "game_in_progress")
		return
	}
	s.logger.InfoContext(ctx, "rematch started", "round", s.state.Round+1)
	s.game = game.NewGame()
	s.sendUpdate(ctx, game.NoPosition)
}

func (s *Session) finishRound(ctx context.Context) {
	s.state = s.state.Finish(s.game.Outcome)
	s.logger.InfoContext(ctx, "round finished", "outcome", s.game.Outcome.String(), "round", s.state.Round)

	if s.store == nil {
		return
	}
	if err := s.store.Save(ctx, match.NewResult(s.state, s.game)); err != nil {
		s.logger.WarnContext(ctx, "failed to save round result", "error", err)
	}
}
