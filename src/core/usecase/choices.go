// Package usecase holds the application services used by the HTTP and CLI layers.
package usecase

import (
	"context"
	"log/slog"
	"time"

	"choicefetch/src/core/domain"
	"choicefetch/src/core/ports"
)

// ChoicesService serves the configured choices query.
type ChoicesService struct {
	fetcher ports.ChoiceFetcher
	query   domain.Query
	log     *slog.Logger
}

func NewChoicesService(fetcher ports.ChoiceFetcher, query domain.Query, log *slog.Logger) *ChoicesService {
	return &ChoicesService{fetcher: fetcher, query: query, log: log}
}

// Query returns the statement this service runs.
func (s *ChoicesService) Query() domain.Query {
	return s.query
}

// List runs the configured query through the fetcher.
func (s *ChoicesService) List(ctx context.Context) ([]domain.Choice, error) {
	start := time.Now()
	choices, err := s.fetcher.Choices(ctx, s.query)
	if err != nil {
		s.log.Warn("choices lookup failed", "error", err, "duration", time.Since(start))
		return nil, err
	}
	s.log.Debug("choices lookup", "rows", len(choices), "duration", time.Since(start))
	return choices, nil
}
