package switchjob

import (
	"errors"

	"hauling/internal/core/domain/model/kernel"
)

// ErrSwitchJobIsNotConstructed is returned when using an improperly initialized SwitchJob.
var ErrSwitchJobIsNotConstructed = errors.New(
	"SwitchJob must be created via NewSwitchJob or RestoreSwitchJob")

// SwitchJob is a driver's request to move one assignation from its current
// scheduled job to a destination job mid-shift.
//
// An assignation may have at most one outstanding Requested switch; the
// repository enforces that uniqueness under the same lock that decides the
// switch.
type SwitchJob struct {
	id                    kernel.UUID
	assignationID         kernel.UUID
	initialScheduledJobID kernel.UUID
	finalJobID            *kernel.UUID
	finalScheduledJobID   *kernel.UUID
	status                Status
	isConstructed         bool
}

// NewSwitchJob creates a switch in NotRequested state for the given
// assignation. Call Request to publish it.
func NewSwitchJob(id, assignationID, initialScheduledJobID kernel.UUID) (*SwitchJob, error) {
	return RestoreSwitchJob(id, assignationID, initialScheduledJobID, nil, nil, NotRequested)
}

// RestoreSwitchJob reconstructs a switch from persistence.
func RestoreSwitchJob(
	id, assignationID, initialScheduledJobID kernel.UUID,
	finalJobID, finalScheduledJobID *kernel.UUID,
	status Status,
) (*SwitchJob, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := assignationID.Validate(); err != nil {
		return nil, err
	}
	if err := initialScheduledJobID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if finalJobID != nil {
		if err := finalJobID.Validate(); err != nil {
			return nil, err
		}
	}
	if finalScheduledJobID != nil {
		if err := finalScheduledJobID.Validate(); err != nil {
			return nil, err
		}
	}

	return &SwitchJob{
		id:                    id,
		assignationID:         assignationID,
		initialScheduledJobID: initialScheduledJobID,
		finalJobID:            finalJobID,
		finalScheduledJobID:   finalScheduledJobID,
		status:                status,
		isConstructed:         true,
	}, nil
}

// Validate ensures the SwitchJob was created through a constructor.
func (s *SwitchJob) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSwitchJobIsNotConstructed
	}
	return nil
}

// ID returns the switch's identifier.
func (s *SwitchJob) ID() kernel.UUID { return s.id }

// AssignationID returns the assignation being moved.
func (s *SwitchJob) AssignationID() kernel.UUID { return s.assignationID }

// InitialScheduledJobID returns the scheduled job the assignation leaves.
func (s *SwitchJob) InitialScheduledJobID() kernel.UUID { return s.initialScheduledJobID }

// FinalJobID returns the destination job, nil before the request is published.
func (s *SwitchJob) FinalJobID() *kernel.UUID { return s.finalJobID }

// FinalScheduledJobID returns the destination scheduled job, set on accept.
func (s *SwitchJob) FinalScheduledJobID() *kernel.UUID { return s.finalScheduledJobID }

// Status returns the switch's current state.
func (s *SwitchJob) Status() Status { return s.status }

// Request publishes the switch toward the destination job.
func (s *SwitchJob) Request(finalJobID kernel.UUID) error {
	if err := finalJobID.Validate(); err != nil {
		return err
	}
	newStatus, err := s.status.Request()
	if err != nil {
		return err
	}
	s.status = newStatus
	s.finalJobID = &finalJobID
	return nil
}

// Accept records the decision and the destination scheduled job the
// assignation lands on. The caller performs the actual move under the same
// transaction and then calls Finish.
func (s *SwitchJob) Accept(finalScheduledJobID kernel.UUID) error {
	if err := finalScheduledJobID.Validate(); err != nil {
		return err
	}
	newStatus, err := s.status.Accept()
	if err != nil {
		return err
	}
	s.status = newStatus
	s.finalScheduledJobID = &finalScheduledJobID
	return nil
}

// Deny rejects the switch; the original assignation is untouched.
func (s *SwitchJob) Deny() error {
	newStatus, err := s.status.Deny()
	if err != nil {
		return err
	}
	s.status = newStatus
	return nil
}

// Finish completes an accepted switch after the assignation moved.
func (s *SwitchJob) Finish() error {
	newStatus, err := s.status.Finish()
	if err != nil {
		return err
	}
	s.status = newStatus
	return nil
}

// IsOutstanding reports whether the switch still awaits a decision.
func (s *SwitchJob) IsOutstanding() bool {
	return s.status == Requested
}
