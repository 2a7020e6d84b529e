package usecase

import (
	"context"
	"log/slog"

	"choicefetch/src/core/ports"
)

// HealthService handles health check logic.
type HealthService struct {
	db       ports.ExternalService
	reporter ports.Reporter
	log      *slog.Logger
}

// NewHealthService creates a new HealthService. reporter may be nil.
func NewHealthService(db ports.ExternalService, reporter ports.Reporter, log *slog.Logger) *HealthService {
	return &HealthService{
		db:       db,
		reporter: reporter,
		log:      log,
	}
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
	Details    map[string]any             `json:"details,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check performs a health check of all application components.
// Returns the overall health status.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth),
	}

	if s.db != nil {
		if err := s.db.Health(ctx); err != nil {
			s.log.Warn("database health check failed", "error", err)
			status.Status = "degraded"
			status.Components["database"] = ComponentHealth{
				Status:  "unhealthy",
				Message: err.Error(),
			}
		} else {
			status.Components["database"] = ComponentHealth{Status: "healthy"}
		}
	}

	if s.reporter != nil {
		status.Details = s.reporter.Report()
	}

	return status
}
