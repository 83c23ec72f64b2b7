package jobrepo

import (
	"context"
	"errors"

	"hauling/internal/core/domain/model/job"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormJobRepository implements JobRepository using GORM.
type GormJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormJobRepository creates a new GORM job repository.
func NewGormJobRepository(db *gorm.DB, tracker aggregateTracker) *GormJobRepository {
	return &GormJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new job to the database, including its requirement lines and
// their slots.
func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
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

// Update saves an existing job to the database. Requirement lines are
// replaced wholesale so removed categories and freed slots do not linger.
func (r *GormJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&JobDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("Categories").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	// Slot deletion rides on the category cascade.
	if err := r.db.WithContext(ctx).
		Where("job_id = ?", dto.ID).
		Delete(&TruckCategoryDTO{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&dto.Categories).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a job by ID with its complete requirement lines.
func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a job by ID under a FOR UPDATE row lock. The lock is
// held until the surrounding transaction ends, serializing concurrent slot
// and status mutations on the same job.
func (r *GormJobRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	return r.get(ctx, id, true)
}

func (r *GormJobRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto JobDTO
	err := db.
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("job_categories.position")
		}).
		Preload("Categories.Slots", func(db *gorm.DB) *gorm.DB {
			return db.Order("category_slots.position")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// NextOrderNumber atomically reserves the next sequential order number for
// the given contractor. The upsert keeps concurrent creators from ever
// observing the same counter value.
func (r *GormJobRepository) NextOrderNumber(ctx context.Context, contractorID kernel.UUID) (int, error) {
	if err := contractorID.Validate(); err != nil {
		return 0, err
	}

	var counter int
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO order_counters (contractor_id, counter)
		VALUES (?, 1)
		ON CONFLICT (contractor_id)
		DO UPDATE SET counter = order_counters.counter + 1
		RETURNING counter
	`, contractorID.Bytes()).Scan(&counter).Error
	if err != nil {
		return 0, err
	}

	return counter, nil
}
