package service

import (
	"context"
	"ctchen222/tictactoe-cli/internal/events"
	"ctchen222/tictactoe-cli/internal/match"
	"ctchen222/tictactoe-cli/internal/repository"
	"errors"
	"fmt"
	"log/slog"
)

var (
	ErrHistoryDisabled     = errors.New("match history is not configured")
	ErrLeaderboardDisabled = errors.New("leaderboard is not configured")
)

// ResultService defines the business logic around finished rounds. It satisfies
// match.ResultStore.
type ResultService interface {
	Save(ctx context.Context, result match.Result) error
	Recent(ctx context.Context, limit int) ([]repository.MatchResult, error)
	Leaderboard(ctx context.Context, n int64) ([]repository.Standing, error)
}

type resultService struct {
	results     repository.ResultRepository
	leaderboard repository.LeaderboardRepository
	logger      *slog.Logger
}

// NewResultService creates a ResultService. Either repository may be nil to turn that
// backend off.
func NewResultService(results repository.ResultRepository, leaderboard repository.LeaderboardRepository, logger *slog.Logger) ResultService {
	if logger == nil {
		logger = slog.Default()
	}
	return &resultService{
		results:     results,
		leaderboard: leaderboard,
		logger:      logger.With("component", "result_service"),
	}
}

// Save writes the round to history and credits the winner on the leaderboard. Every
// backend is attempted; failures are joined.
func (s *resultService) Save(ctx context.Context, result match.Result) error {
	var errs []error
	winner := result.WinnerName()

	if s.results != nil {
		row := &repository.MatchResult{
			ID:       result.ID,
			Mode:     string(result.Mode),
			PlayerX:  result.PlayerX,
			PlayerO:  result.PlayerO,
			Winner:   winner,
			Moves:    result.Moves,
			PlayedAt: result.PlayedAt,
		}
		if err := s.results.Save(ctx, row); err != nil {
			errs = append(errs, fmt.Errorf("history: %w", err))
		}
	}

	if s.leaderboard != nil {
		if winner != "" {
			if err := s.leaderboard.RecordWin(ctx, winner); err != nil {
				errs = append(errs, fmt.Errorf("leaderboard: %w", err))
			}
		}
		payload := events.MatchFinishedPayload{
			MatchID: result.ID,
			Mode:    string(result.Mode),
			PlayerX: result.PlayerX,
			PlayerO: result.PlayerO,
			Winner:  winner,
			Moves:   result.Moves,
		}
		if err := s.leaderboard.PublishFinished(ctx, payload); err != nil {
			errs = append(errs, fmt.Errorf("events: %w", err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	s.logger.DebugContext(ctx, "round result saved", "match.id", result.ID, "winner", winner)
	return nil
}

func (s *resultService) Recent(ctx context.Context, limit int) ([]repository.MatchResult, error) {
	if s.results == nil {
		return nil, ErrHistoryDisabled
	}
	return s.results.Recent(ctx, limit)
}

func (s *resultService) Leaderboard(ctx context.Context, n int64) ([]repository.Standing, error) {
	if s.leaderboard == nil {
		return nil, ErrLeaderboardDisabled
	}
	return s.leaderboard.Top(ctx, n)
}
