// Package schedulerepo provides data transfer objects and mapping functions
// for scheduled job persistence. A scheduled job row owns its assignation
// rows; assignations move between scheduled jobs only through the switch
// accept path, which rewrites both aggregates in one transaction.
package schedulerepo

import (
	"time"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/schedule"

	"github.com/google/uuid"
)

// ScheduledJobDTO represents the database structure for persisting scheduled
// job aggregates.
type ScheduledJobDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Status          int       `gorm:"type:int;not null;index"`
	CanceledAt      *time.Time
	CanceledByOwner bool   `gorm:"not null"`
	Disputed        bool   `gorm:"not null"`
	DisputeMessage  string `gorm:"type:text"`
	DisputeUpheld   *bool
	ZeroRated       bool `gorm:"not null"`
	PaidAt          *time.Time
	Assignations    []AssignationDTO `gorm:"foreignKey:ScheduledJobID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for scheduled job entities.
func (ScheduledJobDTO) TableName() string {
	return "scheduled_jobs"
}

// AssignationDTO represents one driver/truck binding within a scheduled job.
type AssignationDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ScheduledJobID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Position       int        `gorm:"type:int;not null"`
	CategoryID     *uuid.UUID `gorm:"type:uuid"`
	DriverID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	TruckID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	StartedAt      *time.Time
	FinishedAt     *time.Time
	InsideArea     bool `gorm:"not null"`
}

// TableName specifies the database table name for assignation entities.
func (AssignationDTO) TableName() string {
	return "assignations"
}

// fromDomain converts a scheduled job domain aggregate to its database
// representation.
func fromDomain(aggregate *schedule.ScheduledJob) ScheduledJobDTO {
	scheduledJobID := aggregate.ID().Bytes()

	assignations := make([]AssignationDTO, 0, len(aggregate.Assignations()))
	for i, a := range aggregate.Assignations() {
		var categoryID *uuid.UUID
		if id := a.CategoryID(); id != nil {
			raw := id.Bytes()
			categoryID = &raw
		}

		assignations = append(assignations, AssignationDTO{
			ID:             a.ID().Bytes(),
			ScheduledJobID: scheduledJobID,
			Position:       i,
			CategoryID:     categoryID,
			DriverID:       a.DriverID().Bytes(),
			TruckID:        a.TruckID().Bytes(),
			StartedAt:      a.StartedAt(),
			FinishedAt:     a.FinishedAt(),
			InsideArea:     a.InsideArea(),
		})
	}

	return ScheduledJobDTO{
		ID:              scheduledJobID,
		JobID:           aggregate.JobID().Bytes(),
		Status:          int(aggregate.Status()),
		CanceledAt:      aggregate.CanceledAt(),
		CanceledByOwner: aggregate.CanceledByOwner(),
		Disputed:        aggregate.Disputed(),
		DisputeMessage:  aggregate.DisputeMessage(),
		DisputeUpheld:   aggregate.DisputeUpheld(),
		ZeroRated:       aggregate.ZeroRated(),
		PaidAt:          aggregate.PaidAt(),
		Assignations:    assignations,
	}
}

// toDomain converts a database DTO to a scheduled job domain aggregate.
func toDomain(dto ScheduledJobDTO) (*schedule.ScheduledJob, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}

	assignations := make([]*schedule.Assignation, 0, len(dto.Assignations))
	for _, aDto := range dto.Assignations {
		a, aErr := assignationToDomain(aDto)
		if aErr != nil {
			return nil, aErr
		}
		assignations = append(assignations, a)
	}

	return schedule.RestoreScheduledJob(id, jobID, assignations,
		schedule.Status(dto.Status), dto.CanceledAt, dto.CanceledByOwner,
		dto.Disputed, dto.DisputeMessage, dto.DisputeUpheld,
		dto.ZeroRated, dto.PaidAt)
}

func assignationToDomain(dto AssignationDTO) (*schedule.Assignation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var categoryID *kernel.UUID
	if dto.CategoryID != nil {
		cID, cErr := kernel.UUIDFromBytes((*dto.CategoryID)[:])
		if cErr != nil {
			return nil, cErr
		}
		categoryID = &cID
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}
	truckID, err := kernel.UUIDFromBytes(dto.TruckID[:])
	if err != nil {
		return nil, err
	}

	return schedule.RestoreAssignation(id, categoryID, driverID, truckID,
		dto.StartedAt, dto.FinishedAt, dto.InsideArea)
}
