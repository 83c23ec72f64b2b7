package truckrepo

import (
	"context"
	"errors"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/truck"
	"hauling/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTruckRepository implements TruckRepository using GORM. It is read-only;
// the directory is written by the company profile service.
type GormTruckRepository struct {
	db *gorm.DB
}

// NewGormTruckRepository creates a new GORM truck repository.
func NewGormTruckRepository(db *gorm.DB) *GormTruckRepository {
	return &GormTruckRepository{db: db}
}

// Get retrieves a truck directory entry by ID.
func (r *GormTruckRepository) Get(ctx context.Context, id kernel.UUID) (truck.Truck, error) {
	if err := id.Validate(); err != nil {
		return truck.Truck{}, err
	}

	var dto TruckDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return truck.Truck{}, errs.NewObjectNotFoundError("truck", id.String())
		}
		return truck.Truck{}, err
	}

	return toDomain(dto)
}

// GetAll retrieves the directory entries for the given identifiers and
// returns an error naming the first missing one.
func (r *GormTruckRepository) GetAll(ctx context.Context, ids []kernel.UUID) ([]truck.Truck, error) {
	if len(ids) == 0 {
		return nil, errs.NewValueIsRequiredError("ids")
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []TruckDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]TruckDTO, len(dtos))
	for _, dto := range dtos {
		found[dto.ID] = dto
	}

	trucks := make([]truck.Truck, 0, len(ids))
	for i, id := range ids {
		dto, ok := found[raw[i]]
		if !ok {
			return nil, errs.NewObjectNotFoundError("truck", id.String())
		}
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		trucks = append(trucks, t)
	}

	return trucks, nil
}
