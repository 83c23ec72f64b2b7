// Package truckrepo provides read access to the truck directory. Truck rows
// are owned by the company profile service; the engine only reads them to
// match (driver, truck) pairs against category requirements.
package truckrepo

import (
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/truck"

	"github.com/google/uuid"
)

// TruckDTO represents the database structure of a truck directory entry.
type TruckDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Type    string    `gorm:"type:varchar(32);not null"`
	Subtype string    `gorm:"type:varchar(32);not null"`
}

// TableName specifies the database table name for truck entities.
func (TruckDTO) TableName() string {
	return "trucks"
}

// toDomain converts a database DTO to a truck directory entry.
func toDomain(dto TruckDTO) (truck.Truck, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return truck.Truck{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return truck.Truck{}, err
	}

	return truck.NewTruck(id, ownerID, truck.Type(dto.Type), truck.Subtype(dto.Subtype))
}
