package repository

import (
	"context"
	"ctchen222/tictactoe-cli/internal/events"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	leaderboardKey = "leaderboard"
)

// Standing is one row of the leaderboard.
type Standing struct {
	Name string `json:"name"`
	Wins int64  `json:"wins"`
}

// LeaderboardRepository defines the interface for win tallies and match events.
type LeaderboardRepository interface {
	RecordWin(ctx context.Context, name string) error
	Top(ctx context.Context, n int64) ([]Standing, error)
	PublishFinished(ctx context.Context, payload events.MatchFinishedPayload) error
}

type redisLeaderboardRepository struct {
	rdb *redis.Client
}

// NewLeaderboardRepository creates a new Redis-based LeaderboardRepository.
func NewLeaderboardRepository(rdb *redis.Client) LeaderboardRepository {
	return &redisLeaderboardRepository{rdb: rdb}
}

func (r *redisLeaderboardRepository) RecordWin(ctx context.Context, name string) error {
	ctx, span := tracer.Start(ctx, "LeaderboardRepository.RecordWin", trace.WithAttributes(
		attribute.String("player.name", name),
	))
	defer span.End()

	if err := r.rdb.ZIncrBy(ctx, leaderboardKey, 1, name).Err(); err != nil {
		return fail(span, fmt.Errorf("failed to record win: %w", err))
	}
	return nil
}

// Top returns the n players with the most wins, best first. Ties keep Redis order.
func (r *redisLeaderboardRepository) Top(ctx context.Context, n int64) ([]Standing, error) {
	ctx, span := tracer.Start(ctx, "LeaderboardRepository.Top")
	defer span.End()

	if n <= 0 {
		return []Standing{}, nil
	}

	entries, err := r.rdb.ZRevRangeWithScores(ctx, leaderboardKey, 0, n-1).Result()
	if err != nil {
		return nil, fail(span, fmt.Errorf("failed to read leaderboard: %w", err))
	}

	standings := make([]Standing, 0, len(entries))
	for _, z := range entries {
		name, _ := z.Member.(string)
		standings = append(standings, Standing{Name: name, Wins: int64(z.Score)})
	}
	return standings, nil
}

func (r *redisLeaderboardRepository) PublishFinished(ctx context.Context, payload events.MatchFinishedPayload) error {
	ctx, span := tracer.Start(ctx, "LeaderboardRepository.PublishFinished")
	defer span.End()

	ev, err := events.New(events.TypeMatchFinished, payload)
	if err != nil {
		return fail(span, err)
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return fail(span, fmt.Errorf("failed to marshal event: %w", err))
	}
	if err := r.rdb.Publish(ctx, events.EventsChannel, data).Err(); err != nil {
		return fail(span, fmt.Errorf("failed to publish %s: %w", ev.Type, err))
	}
	return nil
}
