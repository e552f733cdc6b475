package services

import (
	"context"

	"go.opentelemetry.io/otel"

	"github.com/tbourn/go-songrequest-backend/internal/domain"
	"github.com/tbourn/go-songrequest-backend/internal/repo"
)

// StatsService computes the request summary on demand.
type StatsService struct {
	Store repo.Store
}

// Summary returns the current statistics. An empty store yields zeros.
func (s *StatsService) Summary(ctx context.Context) (domain.Stats, error) {
	ctx, span := otel.Tracer("services/StatsService").Start(ctx, "Summary")
	defer span.End()
	return s.Store.Stats(ctx)
}
