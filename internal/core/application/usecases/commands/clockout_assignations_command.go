package commands

import (
	"errors"
	"time"

	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var ErrClockoutAssignationsCommandIsNotConstructed = errors.New(
	"ClockoutAssignationsCommand must be created via NewClockoutAssignationsCommand constructor",
)

// ClockoutAssignationsCommand represents a supervisory request to clock out
// specific assignations on behalf of their drivers. Earnings for the closed
// shifts are settled by billing after the commit.
type ClockoutAssignationsCommand struct { //nolint:recvcheck //using for validation
	actor          account.Actor
	scheduledJobID kernel.UUID
	assignationIDs []kernel.UUID
	at             time.Time

	guard guard.ConstructorGuard
}

// NewClockoutAssignationsCommand creates a supervisory clock-out command.
func NewClockoutAssignationsCommand(
	actor account.Actor,
	scheduledJobID kernel.UUID,
	assignationIDs []kernel.UUID,
	at time.Time,
) (ClockoutAssignationsCommand, error) {
	if err := actor.Validate(); err != nil {
		return ClockoutAssignationsCommand{}, err
	}
	if err := scheduledJobID.Validate(); err != nil {
		return ClockoutAssignationsCommand{}, err
	}
	if len(assignationIDs) == 0 {
		return ClockoutAssignationsCommand{}, ErrAssignationIDsAreRequired
	}
	for _, id := range assignationIDs {
		if err := id.Validate(); err != nil {
			return ClockoutAssignationsCommand{}, err
		}
	}
	if at.IsZero() {
		return ClockoutAssignationsCommand{}, errors.New("clock-out time is required")
	}

	return ClockoutAssignationsCommand{
		actor:          actor,
		scheduledJobID: scheduledJobID,
		assignationIDs: assignationIDs,
		at:             at,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClockoutAssignationsCommand) Validate() error {
	return c.guard.Validate(ErrClockoutAssignationsCommandIsNotConstructed)
}

// Actor returns the caller.
func (c ClockoutAssignationsCommand) Actor() account.Actor { return c.actor }

// ScheduledJobID returns the scheduled job holding the assignations.
func (c ClockoutAssignationsCommand) ScheduledJobID() kernel.UUID { return c.scheduledJobID }

// AssignationIDs returns the assignations being clocked out.
func (c ClockoutAssignationsCommand) AssignationIDs() []kernel.UUID { return c.assignationIDs }

// At returns the clock-out time.
func (c ClockoutAssignationsCommand) At() time.Time { return c.at }
