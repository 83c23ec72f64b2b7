package commands

import (
	"errors"

	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var (
	ErrRemoveAssignationsCommandIsNotConstructed = errors.New(
		"RemoveAssignationsCommand must be created via NewRemoveAssignationsCommand constructor",
	)
	ErrAssignationIDsAreRequired = errors.New("at least one assignation id is required")
)

// RemoveAssignationsCommand represents a request to detach not-yet-started
// assignations from a scheduled job, reopening their category slots.
type RemoveAssignationsCommand struct { //nolint:recvcheck //using for validation
	actor          account.Actor
	scheduledJobID kernel.UUID
	assignationIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveAssignationsCommand creates a command to remove assignations.
func NewRemoveAssignationsCommand(
	actor account.Actor,
	scheduledJobID kernel.UUID,
	assignationIDs []kernel.UUID,
) (RemoveAssignationsCommand, error) {
	if err := actor.Validate(); err != nil {
		return RemoveAssignationsCommand{}, err
	}
	if err := scheduledJobID.Validate(); err != nil {
		return RemoveAssignationsCommand{}, err
	}
	if len(assignationIDs) == 0 {
		return RemoveAssignationsCommand{}, ErrAssignationIDsAreRequired
	}
	for _, id := range assignationIDs {
		if err := id.Validate(); err != nil {
			return RemoveAssignationsCommand{}, err
		}
	}

	return RemoveAssignationsCommand{
		actor:          actor,
		scheduledJobID: scheduledJobID,
		assignationIDs: assignationIDs,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveAssignationsCommand) Validate() error {
	return c.guard.Validate(ErrRemoveAssignationsCommandIsNotConstructed)
}

// Actor returns the caller.
func (c RemoveAssignationsCommand) Actor() account.Actor { return c.actor }

// ScheduledJobID returns the scheduled job being trimmed.
func (c RemoveAssignationsCommand) ScheduledJobID() kernel.UUID { return c.scheduledJobID }

// AssignationIDs returns the assignations being removed.
func (c RemoveAssignationsCommand) AssignationIDs() []kernel.UUID { return c.assignationIDs }
