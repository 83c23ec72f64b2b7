// Package switchrepo provides data transfer objects and mapping functions
// for shift switch persistence.
package switchrepo

import (
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/switchjob"

	"github.com/google/uuid"
)

// SwitchJobDTO represents the database structure for persisting switches.
type SwitchJobDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AssignationID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	InitialScheduledJobID uuid.UUID  `gorm:"type:uuid;not null"`
	FinalJobID            *uuid.UUID `gorm:"type:uuid"`
	FinalScheduledJobID   *uuid.UUID `gorm:"type:uuid"`
	Status                int        `gorm:"type:int;not null;index"`
}

// TableName specifies the database table name for switch entities.
func (SwitchJobDTO) TableName() string {
	return "switch_jobs"
}

// fromDomain converts a switch domain aggregate to its database representation.
func fromDomain(aggregate *switchjob.SwitchJob) SwitchJobDTO {
	var finalJobID, finalScheduledJobID *uuid.UUID
	if id := aggregate.FinalJobID(); id != nil {
		raw := id.Bytes()
		finalJobID = &raw
	}
	if id := aggregate.FinalScheduledJobID(); id != nil {
		raw := id.Bytes()
		finalScheduledJobID = &raw
	}

	return SwitchJobDTO{
		ID:                    aggregate.ID().Bytes(),
		AssignationID:         aggregate.AssignationID().Bytes(),
		InitialScheduledJobID: aggregate.InitialScheduledJobID().Bytes(),
		FinalJobID:            finalJobID,
		FinalScheduledJobID:   finalScheduledJobID,
		Status:                int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a switch domain aggregate.
func toDomain(dto SwitchJobDTO) (*switchjob.SwitchJob, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	assignationID, err := kernel.UUIDFromBytes(dto.AssignationID[:])
	if err != nil {
		return nil, err
	}
	initialScheduledJobID, err := kernel.UUIDFromBytes(dto.InitialScheduledJobID[:])
	if err != nil {
		return nil, err
	}

	finalJobID, err := optionalUUID(dto.FinalJobID)
	if err != nil {
		return nil, err
	}
	finalScheduledJobID, err := optionalUUID(dto.FinalScheduledJobID)
	if err != nil {
		return nil, err
	}

	return switchjob.RestoreSwitchJob(id, assignationID, initialScheduledJobID,
		finalJobID, finalScheduledJobID, switchjob.Status(dto.Status))
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
