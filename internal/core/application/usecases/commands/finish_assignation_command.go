package commands

import (
	"errors"
	"time"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var ErrFinishAssignationCommandIsNotConstructed = errors.New(
	"FinishAssignationCommand must be created via NewFinishAssignationCommand constructor",
)

// FinishAssignationCommand represents a driver's shift end arriving from the
// timer collaborator.
type FinishAssignationCommand struct { //nolint:recvcheck //using for validation
	assignationID kernel.UUID
	at            time.Time

	guard guard.ConstructorGuard
}

// NewFinishAssignationCommand creates a shift-end command.
func NewFinishAssignationCommand(assignationID kernel.UUID, at time.Time) (FinishAssignationCommand, error) {
	if err := assignationID.Validate(); err != nil {
		return FinishAssignationCommand{}, err
	}
	if at.IsZero() {
		return FinishAssignationCommand{}, errors.New("finish time is required")
	}

	return FinishAssignationCommand{
		assignationID: assignationID,
		at:            at,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishAssignationCommand) Validate() error {
	return c.guard.Validate(ErrFinishAssignationCommandIsNotConstructed)
}

// AssignationID returns the assignation finishing.
func (c FinishAssignationCommand) AssignationID() kernel.UUID { return c.assignationID }

// At returns the finish time.
func (c FinishAssignationCommand) At() time.Time { return c.at }
