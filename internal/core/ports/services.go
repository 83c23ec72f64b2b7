package ports

import (
	"context"

	"hauling/internal/core/domain/model/kernel"
)

// GeolocationService resolves whether a driver's reported position is inside
// a job site's geofence. Implementations call the fleet tracking provider.
type GeolocationService interface {
	// IsInsideArea reports whether the given point lies within the geofence
	// around the site.
	IsInsideArea(ctx context.Context, site kernel.Site, position kernel.GeoPoint) (bool, error)
}

// NotificationService pushes engine events to the affected parties. Delivery
// is fire-and-forget: a failed notification never fails the command that
// produced it.
type NotificationService interface {
	// NotifySwitchRequested tells the destination contractor a switch awaits
	// their decision.
	NotifySwitchRequested(ctx context.Context, switchID, contractorID kernel.UUID)

	// NotifySwitchDecided tells the requesting driver the outcome.
	NotifySwitchDecided(ctx context.Context, switchID, driverID kernel.UUID, accepted bool)

	// NotifyJobCanceled tells affected drivers their scheduled job is gone.
	NotifyJobCanceled(ctx context.Context, jobID kernel.UUID, driverIDs []kernel.UUID)

	// NotifyDisputeRaised tells the admins a dispute needs review.
	NotifyDisputeRaised(ctx context.Context, scheduledJobID kernel.UUID, message string)
}

// BillingService receives billable lifecycle events after the owning
// transaction commits. Calls are best-effort; billing reconciles from
// storage on its own schedule.
type BillingService interface {
	// ReportFinished reports a completed scheduled job for invoicing.
	ReportFinished(ctx context.Context, scheduledJobID kernel.UUID) error

	// ReportCanceled reports a cancellation and who triggered it, which
	// decides the charged party.
	ReportCanceled(ctx context.Context, scheduledJobID kernel.UUID, byOwner bool) error

	// ReportZeroRated reports a scheduled job the daily sweep zero-rated.
	ReportZeroRated(ctx context.Context, scheduledJobID kernel.UUID) error
}
