package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// MatchResult is one finished round as stored in match_results. Winner holds the
// winner's name and is empty on a draw.
type MatchResult struct {
	ID       string    `json:"id"`
	Mode     string    `json:"mode"`
	PlayerX  string    `json:"player_x"`
	PlayerO  string    `json:"player_o"`
	Winner   string    `json:"winner"`
	Moves    int       `json:"moves"`
	PlayedAt time.Time `json:"played_at"`
}

type matchResultRow struct {
	ID       string `db:"id"`
	Mode     string `db:"mode"`
	PlayerX  string `db:"player_x"`
	PlayerO  string `db:"player_o"`
	Winner   string `db:"winner"`
	Moves    int    `db:"moves"`
	PlayedAt int64  `db:"played_at"`
}

// ResultRepository defines the interface for match history operations.
type ResultRepository interface {
	Save(ctx context.Context, result *MatchResult) error
	Recent(ctx context.Context, limit int) ([]MatchResult, error)
}

type sqliteResultRepository struct {
	db *sqlx.DB
}

// NewResultRepository creates a new SQLite-based ResultRepository.
func NewResultRepository(db *sqlx.DB) ResultRepository {
	return &sqliteResultRepository{db: db}
}

func (r *sqliteResultRepository) Save(ctx context.Context, result *MatchResult) error {
	ctx, span := tracer.Start(ctx, "ResultRepository.Save", trace.WithAttributes(
		attribute.String("match.id", result.ID),
	))
	defer span.End()

	row := matchResultRow{
		ID:       result.ID,
		Mode:     result.Mode,
		PlayerX:  result.PlayerX,
		PlayerO:  result.PlayerO,
		Winner:   result.Winner,
		Moves:    result.Moves,
		PlayedAt: result.PlayedAt.UnixMilli(),
	}

	const query = `
	INSERT INTO match_results (id, mode, player_x, player_o, winner, moves, played_at)
	VALUES (:id, :mode, :player_x, :player_o, :winner, :moves, :played_at)`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fail(span, fmt.Errorf("failed to insert match result: %w", err))
	}
	return nil
}

// Recent returns up to limit results, newest first.
func (r *sqliteResultRepository) Recent(ctx context.Context, limit int) ([]MatchResult, error) {
	ctx, span := tracer.Start(ctx, "ResultRepository.Recent", trace.WithAttributes(
		attribute.Int("limit", limit),
	))
	defer span.End()

	var rows []matchResultRow
	const query = `
	SELECT id, mode, player_x, player_o, winner, moves, played_at
	FROM match_results
	ORDER BY played_at DESC, rowid DESC
	LIMIT ?`
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fail(span, fmt.Errorf("failed to query match results: %w", err))
	}

	results := make([]MatchResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, MatchResult{
			ID:       row.ID,
			Mode:     row.Mode,
			PlayerX:  row.PlayerX,
			PlayerO:  row.PlayerO,
			Winner:   row.Winner,
			Moves:    row.Moves,
			PlayedAt: time.UnixMilli(row.PlayedAt).UTC(),
		})
	}
	return results, nil
}
