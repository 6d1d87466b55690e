package repository

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=result_repository.go -destination=mocks/result_repository.go -package=mocks
//go:generate mockgen -source=leaderboard_repository.go -destination=mocks/leaderboard_repository.go -package=mocks

var tracer = otel.Tracer("repository")

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
