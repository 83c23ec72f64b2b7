package ports

import (
	"context"
	"time"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/schedule"
)

// ScheduledJobRepository defines the persistence contract for scheduled job
// aggregates and their assignations.
type ScheduledJobRepository interface {
	// Add persists a new scheduled job aggregate to storage.
	Add(ctx context.Context, aggregate *schedule.ScheduledJob) error

	// Update persists changes to an existing scheduled job aggregate,
	// including added, mutated, and removed assignations.
	Update(ctx context.Context, aggregate *schedule.ScheduledJob) error

	// Get retrieves a scheduled job aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*schedule.ScheduledJob, error)

	// GetForUpdate retrieves a scheduled job under a row lock held until the
	// surrounding transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*schedule.ScheduledJob, error)

	// GetByJob retrieves the live scheduled job for the given job, if any.
	GetByJob(ctx context.Context, jobID kernel.UUID) (*schedule.ScheduledJob, error)

	// GetByAssignation retrieves the scheduled job holding the given assignation.
	GetByAssignation(ctx context.Context, assignationID kernel.UUID) (*schedule.ScheduledJob, error)

	// GetAllMissed retrieves Pending scheduled jobs whose job start time
	// passed before the cutoff and that are not yet zero-rated. Used by the
	// daily sweep.
	GetAllMissed(ctx context.Context, cutoff time.Time) ([]*schedule.ScheduledJob, error)
}
