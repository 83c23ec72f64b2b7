package schedule

import (
	"errors"
	"fmt"
	"time"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/errs"
)

// Domain errors for scheduled job operations.
var (
	// ErrScheduledJobIsNotConstructed is returned when using an improperly initialized ScheduledJob.
	ErrScheduledJobIsNotConstructed = errors.New(
		"ScheduledJob must be created via NewScheduledJob or RestoreScheduledJob")
	// ErrAssignationNotFound is returned when an assignation id is not part of the scheduled job.
	ErrAssignationNotFound = errors.New("assignation not found on scheduled job")
)

// ScheduledJob is the aggregate root for a job's concrete execution: the
// batch of driver/truck assignations and their shared lifecycle.
//
// Business rules:
//   - The first clock-in moves Pending to Started
//   - Completion of every assignation, or a supervisory force-finish, moves
//     Started to Done
//   - Cancellation is legal while Pending or Started and records who canceled
//   - Disputes flag the scheduled job without changing its status
type ScheduledJob struct {
	id              kernel.UUID
	jobID           kernel.UUID
	assignations    []*Assignation
	status          Status
	canceledAt      *time.Time
	canceledByOwner bool
	disputed        bool
	disputeMessage  string
	disputeUpheld   *bool
	zeroRated       bool
	paidAt          *time.Time
	isConstructed   bool
}

// NewScheduledJob creates an empty Pending scheduled job for the given job.
func NewScheduledJob(id, jobID kernel.UUID) (*ScheduledJob, error) {
	return RestoreScheduledJob(id, jobID, nil, Pending, nil, false, false, "", nil, false, nil)
}

// RestoreScheduledJob reconstructs a scheduled job from persistence.
func RestoreScheduledJob(
	id, jobID kernel.UUID,
	assignations []*Assignation,
	status Status,
	canceledAt *time.Time,
	canceledByOwner bool,
	disputed bool,
	disputeMessage string,
	disputeUpheld *bool,
	zeroRated bool,
	paidAt *time.Time,
) (*ScheduledJob, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := jobID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	for _, a := range assignations {
		if err := a.Validate(); err != nil {
			return nil, err
		}
	}

	return &ScheduledJob{
		id:              id,
		jobID:           jobID,
		assignations:    assignations,
		status:          status,
		canceledAt:      canceledAt,
		canceledByOwner: canceledByOwner,
		disputed:        disputed,
		disputeMessage:  disputeMessage,
		disputeUpheld:   disputeUpheld,
		zeroRated:       zeroRated,
		paidAt:          paidAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the ScheduledJob was created through a constructor.
func (s *ScheduledJob) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrScheduledJobIsNotConstructed
	}
	return nil
}

// ID returns the scheduled job's identifier.
func (s *ScheduledJob) ID() kernel.UUID { return s.id }

// JobID returns the job this execution belongs to.
func (s *ScheduledJob) JobID() kernel.UUID { return s.jobID }

// Assignations returns the scheduled job's assignations.
func (s *ScheduledJob) Assignations() []*Assignation { return s.assignations }

// Status returns the current lifecycle status.
func (s *ScheduledJob) Status() Status { return s.status }

// CanceledAt returns when the scheduled job was canceled, if it was.
func (s *ScheduledJob) CanceledAt() *time.Time { return s.canceledAt }

// CanceledByOwner reports whether the owner (vs the contractor side) canceled.
// Billing uses this to decide who is charged.
func (s *ScheduledJob) CanceledByOwner() bool { return s.canceledByOwner }

// Disputed reports whether a dispute was raised.
func (s *ScheduledJob) Disputed() bool { return s.disputed }

// DisputeMessage returns the dispute text.
func (s *ScheduledJob) DisputeMessage() string { return s.disputeMessage }

// DisputeUpheld returns the admin's resolution, nil while unreviewed.
func (s *ScheduledJob) DisputeUpheld() *bool { return s.disputeUpheld }

// ZeroRated reports whether the daily sweep zero-rated this scheduled job.
func (s *ScheduledJob) ZeroRated() bool { return s.zeroRated }

// PaidAt returns when the scheduled job was paid out, if it was.
func (s *ScheduledJob) PaidAt() *time.Time { return s.paidAt }

// Assignation returns the assignation with the given id.
func (s *ScheduledJob) Assignation(id kernel.UUID) (*Assignation, error) {
	for _, a := range s.assignations {
		if a.ID().IsEqual(id) {
			return a, nil
		}
	}
	return nil, errs.NewObjectNotFoundErrorWithCause("assignationId", id.String(), ErrAssignationNotFound)
}

// AssignationByTruck returns the unfinished assignation for the given truck.
func (s *ScheduledJob) AssignationByTruck(truckID kernel.UUID) (*Assignation, error) {
	for _, a := range s.assignations {
		if a.TruckID().IsEqual(truckID) && !a.IsFinished() {
			return a, nil
		}
	}
	return nil, errs.NewObjectNotFoundErrorWithCause("truckId", truckID.String(), ErrAssignationNotFound)
}

// UnfinishedCount returns how many assignations have not yet finished.
func (s *ScheduledJob) UnfinishedCount() int {
	count := 0
	for _, a := range s.assignations {
		if !a.IsFinished() {
			count++
		}
	}
	return count
}

// AllFinished reports whether every assignation completed.
func (s *ScheduledJob) AllFinished() bool {
	if len(s.assignations) == 0 {
		return false
	}
	for _, a := range s.assignations {
		if !a.IsFinished() {
			return false
		}
	}
	return true
}

// AddAssignation attaches a new assignation to the batch. Legal while the
// scheduled job is live; the per-batch driver/truck uniqueness is validated
// by the scheduling service before any slot mutates.
func (s *ScheduledJob) AddAssignation(a *Assignation) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if !s.status.IsLive() {
		return errs.NewIllegalStateTransitionErrorWithCause("scheduled job assignation",
			fmt.Errorf("%s is not a valid status to add assignations", s.status))
	}
	for _, existing := range s.assignations {
		if existing.ID().IsEqual(a.ID()) {
			return errs.NewConflictErrorWithCause("assignation",
				fmt.Errorf("assignation %s already attached", a.ID()))
		}
	}
	s.assignations = append(s.assignations, a)
	return nil
}

// AdoptAssignation attaches an assignation arriving from another scheduled
// job via a switch. Unlike AddAssignation it accepts mid-shift assignations
// and moves a Pending scheduled job to Started when the adopted assignation
// is already clocked in.
func (s *ScheduledJob) AdoptAssignation(a *Assignation) error {
	if err := s.AddAssignation(a); err != nil {
		return err
	}
	if a.HasStarted() {
		newStatus, err := s.status.Start()
		if err != nil {
			return err
		}
		s.status = newStatus
	}
	return nil
}

// RemoveAssignation detaches a never-started assignation and returns it so
// the caller can free its category slot.
func (s *ScheduledJob) RemoveAssignation(id kernel.UUID) (*Assignation, error) {
	for i, a := range s.assignations {
		if !a.ID().IsEqual(id) {
			continue
		}
		if a.HasStarted() {
			return nil, errs.NewIllegalStateTransitionErrorWithCause("assignation removal",
				fmt.Errorf("assignation %s already started", id))
		}
		s.assignations = append(s.assignations[:i], s.assignations[i+1:]...)
		return a, nil
	}
	return nil, errs.NewObjectNotFoundErrorWithCause("assignationId", id.String(), ErrAssignationNotFound)
}

// DetachAssignation removes an assignation regardless of its clock state and
// returns it. Used by the switch accept path to move a possibly mid-shift
// assignation to its destination scheduled job.
func (s *ScheduledJob) DetachAssignation(id kernel.UUID) (*Assignation, error) {
	if !s.status.IsLive() {
		return nil, errs.NewIllegalStateTransitionErrorWithCause("assignation detach",
			fmt.Errorf("%s is not a valid status to detach assignations", s.status))
	}
	for i, a := range s.assignations {
		if a.ID().IsEqual(id) {
			s.assignations = append(s.assignations[:i], s.assignations[i+1:]...)
			return a, nil
		}
	}
	return nil, errs.NewObjectNotFoundErrorWithCause("assignationId", id.String(), ErrAssignationNotFound)
}

// ClockIn records a driver's start time, moving the scheduled job to Started
// on the first clock-in.
func (s *ScheduledJob) ClockIn(assignationID kernel.UUID, at time.Time, insideArea bool) error {
	if !s.status.IsLive() {
		return errs.NewIllegalStateTransitionErrorWithCause("scheduled job clock-in",
			fmt.Errorf("%s is not a valid status to clock in", s.status))
	}

	a, err := s.Assignation(assignationID)
	if err != nil {
		return err
	}
	if err = a.ClockIn(at, insideArea); err != nil {
		return err
	}

	newStatus, err := s.status.Start()
	if err != nil {
		return err
	}
	s.status = newStatus
	return nil
}

// FinishAssignation records one assignation's completion. When every
// assignation is finished the scheduled job transitions to Done.
func (s *ScheduledJob) FinishAssignation(assignationID kernel.UUID, at time.Time) error {
	a, err := s.Assignation(assignationID)
	if err != nil {
		return err
	}
	if err = a.Finish(at); err != nil {
		return err
	}

	if s.AllFinished() {
		newStatus, finishErr := s.status.Finish()
		if finishErr != nil {
			return finishErr
		}
		s.status = newStatus
	}
	return nil
}

// ForceFinish completes every active assignation at the given time and moves
// the scheduled job to Done without full driver sign-off. Never-started
// assignations are dropped from the batch.
func (s *ScheduledJob) ForceFinish(at time.Time) ([]*Assignation, error) {
	newStatus, err := s.status.Finish()
	if err != nil {
		return nil, err
	}

	remaining := s.assignations[:0]
	var dropped []*Assignation
	for _, a := range s.assignations {
		switch {
		case a.IsActive():
			if finishErr := a.Finish(at); finishErr != nil {
				return nil, finishErr
			}
			remaining = append(remaining, a)
		case !a.HasStarted():
			dropped = append(dropped, a)
		default:
			remaining = append(remaining, a)
		}
	}
	s.assignations = remaining
	s.status = newStatus
	return dropped, nil
}

// Cancel moves the scheduled job to Canceled, recording when and by whom.
// The caller frees the job's category slots.
func (s *ScheduledJob) Cancel(at time.Time, byOwner bool) error {
	newStatus, err := s.status.Cancel()
	if err != nil {
		return err
	}
	s.status = newStatus
	s.canceledAt = &at
	s.canceledByOwner = byOwner
	return nil
}

// Dispute flags the scheduled job with the given message. The status is
// deliberately untouched; billing interprets the outcome downstream.
func (s *ScheduledJob) Dispute(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	if s.disputed {
		return errs.NewConflictError("scheduled job already disputed")
	}
	s.disputed = true
	s.disputeMessage = message
	return nil
}

// ResolveDispute records the admin's decision on an open dispute.
func (s *ScheduledJob) ResolveDispute(upheld bool) error {
	if !s.disputed {
		return errs.NewIllegalStateTransitionError("scheduled job is not disputed")
	}
	if s.disputeUpheld != nil {
		return errs.NewConflictError("dispute already reviewed")
	}
	s.disputeUpheld = &upheld
	return nil
}

// ZeroRate marks a scheduled job that never started past its start time.
// Legal only while Pending; repeated sweeps are no-ops.
func (s *ScheduledJob) ZeroRate() error {
	if s.status != Pending {
		return errs.NewIllegalStateTransitionErrorWithCause("scheduled job zero-rate",
			fmt.Errorf("%s is not a valid status to zero-rate", s.status))
	}
	s.zeroRated = true
	return nil
}
