package switchrepo

import (
	"context"
	"errors"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/switchjob"
	"hauling/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSwitchJobRepository implements SwitchJobRepository using GORM.
type GormSwitchJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSwitchJobRepository creates a new GORM switch repository.
func NewGormSwitchJobRepository(db *gorm.DB, tracker aggregateTracker) *GormSwitchJobRepository {
	return &GormSwitchJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new switch to the database.
func (r *GormSwitchJobRepository) Add(ctx context.Context, aggregate *switchjob.SwitchJob) error {
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

// Update saves an existing switch to the database.
func (r *GormSwitchJobRepository) Update(ctx context.Context, aggregate *switchjob.SwitchJob) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SwitchJobDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
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

// Get retrieves a switch by ID.
func (r *GormSwitchJobRepository) Get(ctx context.Context, id kernel.UUID) (*switchjob.SwitchJob, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a switch by ID under a FOR UPDATE row lock so
// concurrent accept and deny decisions serialize.
func (r *GormSwitchJobRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*switchjob.SwitchJob, error) {
	return r.get(ctx, id, true)
}

func (r *GormSwitchJobRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*switchjob.SwitchJob, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto SwitchJobDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("switch", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOutstandingByAssignation retrieves the Requested switch for the given
// assignation, if one exists. The per-assignation uniqueness of outstanding
// switches is enforced by checking through this method under the origin's
// row lock before Add.
func (r *GormSwitchJobRepository) GetOutstandingByAssignation(ctx context.Context, assignationID kernel.UUID) (*switchjob.SwitchJob, error) {
	if err := assignationID.Validate(); err != nil {
		return nil, err
	}

	var dto SwitchJobDTO
	err := r.db.WithContext(ctx).
		First(&dto, "assignation_id = ? AND status = ?",
			assignationID.Bytes(), int(switchjob.Requested)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("outstanding switch", assignationID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
