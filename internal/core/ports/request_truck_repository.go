package ports

import (
	"context"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/requesttruck"
)

// RequestTruckRepository defines the persistence contract for truck requests.
type RequestTruckRepository interface {
	// Add persists a new truck request to storage.
	Add(ctx context.Context, aggregate *requesttruck.RequestTruck) error

	// Update persists changes to an existing truck request.
	Update(ctx context.Context, aggregate *requesttruck.RequestTruck) error

	// Get retrieves a truck request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*requesttruck.RequestTruck, error)

	// GetForUpdate retrieves a truck request under a row lock held until the
	// surrounding transaction ends. MarkFulfilled must read through this
	// method so it stays a once-only transition.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*requesttruck.RequestTruck, error)

	// GetAllPending retrieves every request still awaiting a dispatcher.
	GetAllPending(ctx context.Context) ([]*requesttruck.RequestTruck, error)
}
