package ports

import (
	"context"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/truck"
)

// TruckRepository defines the read contract against the truck directory.
// Trucks are owned by the company profile service; the engine only reads
// them for category matching.
type TruckRepository interface {
	// Get retrieves a truck directory entry by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (truck.Truck, error)

	// GetAll retrieves the directory entries for the given identifiers.
	// Returns an error when any identifier is unknown.
	GetAll(ctx context.Context, ids []kernel.UUID) ([]truck.Truck, error)
}
