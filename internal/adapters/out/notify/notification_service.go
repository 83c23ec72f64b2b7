// Package notify implements the engine's notification port. The current
// implementation writes structured log lines; the push gateway integration
// swaps in behind the same interface without touching command handlers.
package notify

import (
	"context"
	"log/slog"

	"hauling/internal/core/domain/model/kernel"
)

// SlogNotificationService logs engine events instead of pushing them.
// Delivery is fire-and-forget by contract, so no method returns an error.
type SlogNotificationService struct {
	logger *slog.Logger
}

// NewSlogNotificationService creates a log-backed notification service.
func NewSlogNotificationService(logger *slog.Logger) *SlogNotificationService {
	return &SlogNotificationService{
		logger: logger.With("component", "notifications"),
	}
}

// NotifySwitchRequested tells the destination contractor a switch awaits
// their decision.
func (s *SlogNotificationService) NotifySwitchRequested(ctx context.Context, switchID, contractorID kernel.UUID) {
	s.logger.InfoContext(ctx, "switch requested",
		"switch_id", switchID.String(),
		"contractor_id", contractorID.String())
}

// NotifySwitchDecided tells the requesting driver the outcome.
func (s *SlogNotificationService) NotifySwitchDecided(ctx context.Context, switchID, driverID kernel.UUID, accepted bool) {
	s.logger.InfoContext(ctx, "switch decided",
		"switch_id", switchID.String(),
		"driver_id", driverID.String(),
		"accepted", accepted)
}

// NotifyJobCanceled tells affected drivers their scheduled job is gone.
func (s *SlogNotificationService) NotifyJobCanceled(ctx context.Context, jobID kernel.UUID, driverIDs []kernel.UUID) {
	drivers := make([]string, 0, len(driverIDs))
	for _, id := range driverIDs {
		drivers = append(drivers, id.String())
	}
	s.logger.InfoContext(ctx, "job canceled",
		"job_id", jobID.String(),
		"driver_ids", drivers)
}

// NotifyDisputeRaised tells the admins a dispute needs review.
func (s *SlogNotificationService) NotifyDisputeRaised(ctx context.Context, scheduledJobID kernel.UUID, message string) {
	s.logger.InfoContext(ctx, "dispute raised",
		"scheduled_job_id", scheduledJobID.String(),
		"message", message)
}
