package commands

import (
	"errors"

	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var ErrEditAssignationCommandIsNotConstructed = errors.New(
	"EditAssignationCommand must be created via NewEditAssignationCommand constructor",
)

// EditAssignationCommand represents a request to swap the driver and truck of
// a not-yet-started assignation.
type EditAssignationCommand struct { //nolint:recvcheck //using for validation
	actor          account.Actor
	scheduledJobID kernel.UUID
	assignationID  kernel.UUID
	driverID       kernel.UUID
	truckID        kernel.UUID

	guard guard.ConstructorGuard
}

// NewEditAssignationCommand creates a command to edit an assignation.
func NewEditAssignationCommand(
	actor account.Actor,
	scheduledJobID, assignationID, driverID, truckID kernel.UUID,
) (EditAssignationCommand, error) {
	if err := actor.Validate(); err != nil {
		return EditAssignationCommand{}, err
	}
	for _, id := range []kernel.UUID{scheduledJobID, assignationID, driverID, truckID} {
		if err := id.Validate(); err != nil {
			return EditAssignationCommand{}, err
		}
	}

	return EditAssignationCommand{
		actor:          actor,
		scheduledJobID: scheduledJobID,
		assignationID:  assignationID,
		driverID:       driverID,
		truckID:        truckID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EditAssignationCommand) Validate() error {
	return c.guard.Validate(ErrEditAssignationCommandIsNotConstructed)
}

// Actor returns the caller.
func (c EditAssignationCommand) Actor() account.Actor { return c.actor }

// ScheduledJobID returns the scheduled job holding the assignation.
func (c EditAssignationCommand) ScheduledJobID() kernel.UUID { return c.scheduledJobID }

// AssignationID returns the assignation being edited.
func (c EditAssignationCommand) AssignationID() kernel.UUID { return c.assignationID }

// DriverID returns the replacement driver.
func (c EditAssignationCommand) DriverID() kernel.UUID { return c.driverID }

// TruckID returns the replacement truck.
func (c EditAssignationCommand) TruckID() kernel.UUID { return c.truckID }
