package schedule

import (
	"errors"
	"fmt"
	"time"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/errs"
)

// ErrAssignationIsNotConstructed is returned when using an improperly initialized Assignation.
var ErrAssignationIsNotConstructed = errors.New(
	"Assignation must be created via NewAssignation or RestoreAssignation")

// Assignation binds one driver and one truck to a category slot of a
// scheduled job. Its startedAt/finishedAt timestamps arrive from the timer
// collaborator and drive the scheduled job's lifecycle.
type Assignation struct {
	id            kernel.UUID
	categoryID    *kernel.UUID
	driverID      kernel.UUID
	truckID       kernel.UUID
	startedAt     *time.Time
	finishedAt    *time.Time
	insideArea    bool
	isConstructed bool
}

// NewAssignation creates a not-yet-started assignation.
func NewAssignation(id kernel.UUID, categoryID *kernel.UUID, driverID, truckID kernel.UUID) (*Assignation, error) {
	return RestoreAssignation(id, categoryID, driverID, truckID, nil, nil, false)
}

// RestoreAssignation reconstructs an assignation from persistence.
func RestoreAssignation(
	id kernel.UUID,
	categoryID *kernel.UUID,
	driverID, truckID kernel.UUID,
	startedAt, finishedAt *time.Time,
	insideArea bool,
) (*Assignation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return nil, err
		}
	}
	if err := driverID.Validate(); err != nil {
		return nil, err
	}
	if err := truckID.Validate(); err != nil {
		return nil, err
	}
	if finishedAt != nil && startedAt == nil {
		return nil, errs.NewValueIsInvalidError("assignation cannot finish before starting")
	}

	return &Assignation{
		id:            id,
		categoryID:    categoryID,
		driverID:      driverID,
		truckID:       truckID,
		startedAt:     startedAt,
		finishedAt:    finishedAt,
		insideArea:    insideArea,
		isConstructed: true,
	}, nil
}

// Validate ensures the Assignation was created through a constructor.
func (a *Assignation) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignationIsNotConstructed
	}
	return nil
}

// ID returns the assignation's identifier.
func (a *Assignation) ID() kernel.UUID { return a.id }

// CategoryID returns the bound requirement line, nil when detached.
func (a *Assignation) CategoryID() *kernel.UUID { return a.categoryID }

// DriverID returns the assigned driver.
func (a *Assignation) DriverID() kernel.UUID { return a.driverID }

// TruckID returns the assigned truck.
func (a *Assignation) TruckID() kernel.UUID { return a.truckID }

// StartedAt returns the clock-in time, nil before clock-in.
func (a *Assignation) StartedAt() *time.Time { return a.startedAt }

// FinishedAt returns the clock-out time, nil while unfinished.
func (a *Assignation) FinishedAt() *time.Time { return a.finishedAt }

// InsideArea reports whether the driver clocked in inside the job geofence.
func (a *Assignation) InsideArea() bool { return a.insideArea }

// HasStarted reports whether the driver clocked in.
func (a *Assignation) HasStarted() bool { return a.startedAt != nil }

// IsFinished reports whether the assignation completed.
func (a *Assignation) IsFinished() bool { return a.finishedAt != nil }

// IsActive reports whether the driver is clocked in and not yet finished.
func (a *Assignation) IsActive() bool { return a.HasStarted() && !a.IsFinished() }

// ClockIn records the driver's start time and geofence presence.
func (a *Assignation) ClockIn(at time.Time, insideArea bool) error {
	if a.HasStarted() {
		return errs.NewIllegalStateTransitionErrorWithCause("assignation clock-in",
			fmt.Errorf("assignation %s already started", a.id))
	}
	a.startedAt = &at
	a.insideArea = insideArea
	return nil
}

// Finish records completion. Legal only for active assignations.
func (a *Assignation) Finish(at time.Time) error {
	if !a.HasStarted() {
		return errs.NewIllegalStateTransitionErrorWithCause("assignation finish",
			fmt.Errorf("assignation %s never started", a.id))
	}
	if a.IsFinished() {
		return errs.NewIllegalStateTransitionErrorWithCause("assignation finish",
			fmt.Errorf("assignation %s already finished", a.id))
	}
	a.finishedAt = &at
	return nil
}

// Reassign swaps the driver and truck. Legal only before clock-in; the caller
// must re-validate truck compatibility against the bound category.
func (a *Assignation) Reassign(driverID, truckID kernel.UUID) error {
	if a.HasStarted() {
		return errs.NewIllegalStateTransitionErrorWithCause("assignation edit",
			fmt.Errorf("assignation %s already started", a.id))
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	if err := truckID.Validate(); err != nil {
		return err
	}
	a.driverID = driverID
	a.truckID = truckID
	return nil
}

// RebindCategory points the assignation at a different requirement line.
// Used when a switch moves the assignation to a destination job.
func (a *Assignation) RebindCategory(categoryID *kernel.UUID) error {
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return err
		}
	}
	a.categoryID = categoryID
	return nil
}
