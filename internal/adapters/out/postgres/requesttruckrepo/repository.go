package requesttruckrepo

import (
	"context"
	"errors"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/requesttruck"
	"hauling/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRequestTruckRepository implements RequestTruckRepository using GORM.
type GormRequestTruckRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRequestTruckRepository creates a new GORM truck request repository.
func NewGormRequestTruckRepository(db *gorm.DB, tracker aggregateTracker) *GormRequestTruckRepository {
	return &GormRequestTruckRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new truck request to the database with its capacity lines.
func (r *GormRequestTruckRepository) Add(ctx context.Context, aggregate *requesttruck.RequestTruck) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing truck request to the database. Capacity lines are
// immutable after creation, so only the request row is written.
func (r *GormRequestTruckRepository) Update(ctx context.Context, aggregate *requesttruck.RequestTruck) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RequestTruckDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("Lines").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a truck request by ID with its capacity lines.
func (r *GormRequestTruckRepository) Get(ctx context.Context, id kernel.UUID) (*requesttruck.RequestTruck, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a truck request by ID under a FOR UPDATE row lock so
// fulfillment stays a once-only transition under concurrency.
func (r *GormRequestTruckRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*requesttruck.RequestTruck, error) {
	return r.get(ctx, id, true)
}

func (r *GormRequestTruckRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*requesttruck.RequestTruck, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto RequestTruckDTO
	err := db.Preload("Lines", lineOrder).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("request truck", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPending retrieves every request still awaiting a dispatcher, oldest
// first.
func (r *GormRequestTruckRepository) GetAllPending(ctx context.Context) ([]*requesttruck.RequestTruck, error) {
	var dtos []RequestTruckDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", lineOrder).
		Where("status = ?", int(requesttruck.Pending)).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*requesttruck.RequestTruck, 0, len(dtos))
	for _, dto := range dtos {
		req, reqErr := toDomain(dto)
		if reqErr != nil {
			return nil, reqErr
		}
		requests = append(requests, req)
	}

	return requests, nil
}

func lineOrder(db *gorm.DB) *gorm.DB {
	return db.Order("request_truck_lines.position")
}
