package ports

import (
	"context"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/switchjob"
)

// SwitchJobRepository defines the persistence contract for shift switches.
type SwitchJobRepository interface {
	// Add persists a new switch aggregate to storage.
	Add(ctx context.Context, aggregate *switchjob.SwitchJob) error

	// Update persists changes to an existing switch aggregate.
	Update(ctx context.Context, aggregate *switchjob.SwitchJob) error

	// Get retrieves a switch aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*switchjob.SwitchJob, error)

	// GetForUpdate retrieves a switch under a row lock held until the
	// surrounding transaction ends. Decisions must read through this method
	// so concurrent accept/deny calls serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*switchjob.SwitchJob, error)

	// GetOutstandingByAssignation retrieves the Requested switch for the
	// given assignation, if one exists.
	GetOutstandingByAssignation(ctx context.Context, assignationID kernel.UUID) (*switchjob.SwitchJob, error)
}
