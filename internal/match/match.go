package match

import (
	"context"
	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/player"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("match")

var roundsCounter metric.Int64Counter

func init() {
	var err error
	// On error the meter still hands back a usable no-op counter.
	roundsCounter, err = otel.Meter("match").Int64Counter("ttt.rounds.finished",
		metric.WithDescription("Rounds played to completion, by outcome"),
	)
	if err != nil {
		otel.Handle(err)
	}
}

var ErrIllegalMove = errors.New("illegal move")

// Presenter is the screen the round is played on.
type Presenter interface {
	ShowTurn(st State, board game.Board, moveNumber int)
	ShowThinking(p player.Player)
	ShowComputerMove(p player.Player, pos game.Position)
	ShowResult(st State, board game.Board, outcome game.Outcome)
	Pause(d time.Duration)
}

// Result describes one finished round.
type Result struct {
	ID       string
	Mode     Mode
	PlayerX  string
	PlayerO  string
	Winner   game.PlayerMark
	Moves    int
	PlayedAt time.Time
}

// ResultStore receives every finished round.
type ResultStore interface {
	Save(ctx context.Context, result Result) error
}

// Runner drives the turn loop of a round.
type Runner struct {
	presenter  Presenter
	store      ResultStore
	thinkDelay time.Duration
	logger     *slog.Logger
}

// NewRunner creates a Runner. store may be nil.
func NewRunner(presenter Presenter, store ResultStore, thinkDelay time.Duration, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		presenter:  presenter,
		store:      store,
		thinkDelay: thinkDelay,
		logger:     logger.With("component", "match"),
	}
}

// PlayRound plays one round from an empty board until someone wins or the board
// is full, and returns the state with the score updated.
func (r *Runner) PlayRound(ctx context.Context, st State) (State, game.Outcome, error) {
	ctx, span := tracer.Start(ctx, "match.PlayRound", trace.WithAttributes(
		attribute.String("match.mode", string(st.Mode)),
		attribute.Int("match.round", st.Round+1),
	))
	defer span.End()

	g := game.NewGame()
	for !g.Finished() {
		r.presenter.ShowTurn(st, g.Board, g.Moves+1)

		current := st.PlayerFor(g.CurrentTurn)
		if current.IsBot {
			r.presenter.ShowThinking(current)
			r.presenter.Pause(r.thinkDelay)
		}

		pos, err := current.Mover.NextMove(ctx, g.Board)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Mover failed")
			return st, game.NoWinner, fmt.Errorf("move %d by %s: %w", g.Moves+1, current.Label(), err)
		}
		if err := g.Move(pos); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Illegal move")
			return st, game.NoWinner, fmt.Errorf("%w at position %d by %s: %w", ErrIllegalMove, pos, current.Label(), err)
		}
		r.logger.DebugContext(ctx, "move played", "player.mark", current.Mark, "position", int(pos))

		if current.IsBot {
			r.presenter.ShowComputerMove(current, pos)
			r.presenter.Pause(r.thinkDelay)
		}
	}

	next := st.Finish(g.Outcome)
	r.presenter.ShowResult(next, g.Board, g.Outcome)

	span.SetAttributes(attribute.String("match.outcome", g.Outcome.String()), attribute.Int("match.moves", g.Moves))
	roundsCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", g.Outcome.String())))
	r.logger.InfoContext(ctx, "round finished", "outcome", g.Outcome.String(), "moves", g.Moves, "round", next.Round)

	r.save(ctx, st, g)
	return next, g.Outcome, nil
}

// save hands the round to the store. Failures are logged, the round still counts.
func (r *Runner) save(ctx context.Context, st State, g *game.Game) {
	if r.store == nil {
		return
	}
	if err := r.store.Save(ctx, NewResult(st, g)); err != nil {
		r.logger.WarnContext(ctx, "failed to save round result", "error", err)
	}
}

// NewResult describes the finished game g played under st.
func NewResult(st State, g *game.Game) Result {
	return Result{
		ID:       uuid.NewString(),
		Mode:     st.Mode,
		PlayerX:  st.PlayerX.Name,
		PlayerO:  st.PlayerO.Name,
		Winner:   g.Outcome.Winner(),
		Moves:    g.Moves,
		PlayedAt: time.Now().UTC(),
	}
}

// WinnerName is the name of the winning player, or "" on a draw.
func (r Result) WinnerName() string {
	switch r.Winner {
	case game.PlayerX:
		return r.PlayerX
	case game.PlayerO:
		return r.PlayerO
	default:
		return ""
	}
}
