package schedulerepo

import (
	"context"
	"errors"
	"time"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/schedule"
	"hauling/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormScheduledJobRepository implements ScheduledJobRepository using GORM.
type GormScheduledJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormScheduledJobRepository creates a new GORM scheduled job repository.
func NewGormScheduledJobRepository(db *gorm.DB, tracker aggregateTracker) *GormScheduledJobRepository {
	return &GormScheduledJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new scheduled job to the database with its assignations.
func (r *GormScheduledJobRepository) Add(ctx context.Context, aggregate *schedule.ScheduledJob) error {
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

// Update saves an existing scheduled job to the database. Assignations are
// replaced wholesale so detached and dropped ones do not linger.
func (r *GormScheduledJobRepository) Update(ctx context.Context, aggregate *schedule.ScheduledJob) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&ScheduledJobDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("Assignations").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).
		Where("scheduled_job_id = ?", dto.ID).
		Delete(&AssignationDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Assignations) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Assignations).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a scheduled job by ID with its assignations.
func (r *GormScheduledJobRepository) Get(ctx context.Context, id kernel.UUID) (*schedule.ScheduledJob, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, false, id.String(), "id = ?", id.Bytes())
}

// GetForUpdate retrieves a scheduled job by ID under a FOR UPDATE row lock.
func (r *GormScheduledJobRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*schedule.ScheduledJob, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, true, id.String(), "id = ?", id.Bytes())
}

// GetByJob retrieves the live (Pending or Started) scheduled job for the
// given job. At most one exists at a time.
func (r *GormScheduledJobRepository) GetByJob(ctx context.Context, jobID kernel.UUID) (*schedule.ScheduledJob, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, false, "live for job "+jobID.String(),
		"job_id = ? AND status IN ?", jobID.Bytes(),
		[]int{int(schedule.Pending), int(schedule.Started)})
}

// GetByAssignation retrieves the scheduled job holding the given assignation.
func (r *GormScheduledJobRepository) GetByAssignation(ctx context.Context, assignationID kernel.UUID) (*schedule.ScheduledJob, error) {
	if err := assignationID.Validate(); err != nil {
		return nil, err
	}

	var holder AssignationDTO
	err := r.db.WithContext(ctx).First(&holder, "id = ?", assignationID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignation", assignationID.String())
		}
		return nil, err
	}

	return r.first(ctx, false, "holding "+assignationID.String(),
		"id = ?", holder.ScheduledJobID)
}

// GetAllMissed retrieves Pending scheduled jobs whose job start time passed
// before the cutoff and that are not yet zero-rated.
func (r *GormScheduledJobRepository) GetAllMissed(ctx context.Context, cutoff time.Time) ([]*schedule.ScheduledJob, error) {
	var dtos []ScheduledJobDTO
	err := r.db.WithContext(ctx).
		Preload("Assignations", assignationOrder).
		Joins("JOIN jobs ON jobs.id = scheduled_jobs.job_id").
		Where("scheduled_jobs.status = ? AND scheduled_jobs.zero_rated = ? AND jobs.start_date < ?",
			int(schedule.Pending), false, cutoff).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	scheduledJobs := make([]*schedule.ScheduledJob, 0, len(dtos))
	for _, dto := range dtos {
		s, sErr := toDomain(dto)
		if sErr != nil {
			return nil, sErr
		}
		scheduledJobs = append(scheduledJobs, s)
	}

	return scheduledJobs, nil
}

func (r *GormScheduledJobRepository) first(ctx context.Context, lock bool, desc, query string, args ...any) (*schedule.ScheduledJob, error) {
	db := r.db.WithContext(ctx)
	if lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto ScheduledJobDTO
	err := db.Preload("Assignations", assignationOrder).
		Where(query, args...).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("scheduled job", desc)
		}
		return nil, err
	}

	return toDomain(dto)
}

func assignationOrder(db *gorm.DB) *gorm.DB {
	return db.Order("assignations.position")
}
