// Package billing implements the engine's billing port. Events are logged
// until the invoicing backend comes online; billing reconciles from storage
// on its own schedule, so the engine only reports, never retries.
package billing

import (
	"context"
	"log/slog"

	"hauling/internal/core/domain/model/kernel"
)

// SlogBillingService logs billable lifecycle events.
type SlogBillingService struct {
	logger *slog.Logger
}

// NewSlogBillingService creates a log-backed billing service.
func NewSlogBillingService(logger *slog.Logger) *SlogBillingService {
	return &SlogBillingService{
		logger: logger.With("component", "billing"),
	}
}

// ReportFinished reports a completed scheduled job for invoicing.
func (s *SlogBillingService) ReportFinished(ctx context.Context, scheduledJobID kernel.UUID) error {
	s.logger.InfoContext(ctx, "scheduled job finished",
		"scheduled_job_id", scheduledJobID.String())
	return nil
}

// ReportCanceled reports a cancellation and who triggered it.
func (s *SlogBillingService) ReportCanceled(ctx context.Context, scheduledJobID kernel.UUID, byOwner bool) error {
	s.logger.InfoContext(ctx, "scheduled job canceled",
		"scheduled_job_id", scheduledJobID.String(),
		"by_owner", byOwner)
	return nil
}

// ReportZeroRated reports a scheduled job the daily sweep zero-rated.
func (s *SlogBillingService) ReportZeroRated(ctx context.Context, scheduledJobID kernel.UUID) error {
	s.logger.InfoContext(ctx, "scheduled job zero-rated",
		"scheduled_job_id", scheduledJobID.String())
	return nil
}
