package commands

import (
	"errors"
	"time"

	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var ErrCancelTruckCommandIsNotConstructed = errors.New(
	"CancelTruckCommand must be created via NewCancelTruckCommand constructor",
)

// CancelTruckCommand represents a request to pull one truck off a scheduled
// job. When the pulled truck carried the last remaining assignation, the
// whole scheduled job cancels.
type CancelTruckCommand struct { //nolint:recvcheck //using for validation
	actor          account.Actor
	scheduledJobID kernel.UUID
	truckID        kernel.UUID
	at             time.Time

	guard guard.ConstructorGuard
}

// NewCancelTruckCommand creates a command to pull a truck off a scheduled job.
func NewCancelTruckCommand(
	actor account.Actor,
	scheduledJobID, truckID kernel.UUID,
	at time.Time,
) (CancelTruckCommand, error) {
	if err := actor.Validate(); err != nil {
		return CancelTruckCommand{}, err
	}
	if err := scheduledJobID.Validate(); err != nil {
		return CancelTruckCommand{}, err
	}
	if err := truckID.Validate(); err != nil {
		return CancelTruckCommand{}, err
	}
	if at.IsZero() {
		return CancelTruckCommand{}, errors.New("cancellation time is required")
	}

	return CancelTruckCommand{
		actor:          actor,
		scheduledJobID: scheduledJobID,
		truckID:        truckID,
		at:             at,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelTruckCommand) Validate() error {
	return c.guard.Validate(ErrCancelTruckCommandIsNotConstructed)
}

// Actor returns the caller.
func (c CancelTruckCommand) Actor() account.Actor { return c.actor }

// ScheduledJobID returns the scheduled job the truck leaves.
func (c CancelTruckCommand) ScheduledJobID() kernel.UUID { return c.scheduledJobID }

// TruckID returns the truck being pulled.
func (c CancelTruckCommand) TruckID() kernel.UUID { return c.truckID }

// At returns the cancellation time.
func (c CancelTruckCommand) At() time.Time { return c.at }
