// Package ports defines repository and service interfaces for the hauling
// engine. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"hauling/internal/core/domain/model/job"
	"hauling/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
// Provides methods for storing, retrieving, and locking job entities with
// their complete requirement lines and slot occupancy.
type JobRepository interface {
	// Add persists a new job aggregate to storage.
	// The job must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate.
	// The job must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetForUpdate retrieves a job aggregate under a row lock held until the
	// surrounding transaction ends. Every mutation of slot occupancy or status
	// must read through this method so concurrent schedulers serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// NextOrderNumber atomically reserves the next sequential order number
	// for the given contractor. Safe under concurrent job creation.
	NextOrderNumber(ctx context.Context, contractorID kernel.UUID) (int, error)
}
