package ports

import (
	"context"

	"choicefetch/src/core/domain"
)

// ExternalService is the base interface for dependencies with a health probe.
type ExternalService interface {
	// Health checks if the service is reachable.
	Health(ctx context.Context) error
}

// ChoiceFetcher runs choices queries on behalf of HTTP handlers and commands.
type ChoiceFetcher interface {
	ExternalService

	// Choices runs query and waits for its rows.
	Choices(ctx context.Context, query domain.Query) ([]domain.Choice, error)
}

// Reporter exposes runtime counters for diagnostics endpoints.
type Reporter interface {
	Report() map[string]any
}
