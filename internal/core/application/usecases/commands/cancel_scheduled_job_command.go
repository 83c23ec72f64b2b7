package commands

import (
	"errors"
	"time"

	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var ErrCancelScheduledJobCommandIsNotConstructed = errors.New(
	"CancelScheduledJobCommand must be created via NewCancelScheduledJobCommand constructor",
)

// CancelScheduledJobCommand represents a request to cancel a scheduled job
// and the job behind it. The byOwner flag records which side triggered the
// cancellation; billing charges accordingly.
type CancelScheduledJobCommand struct { //nolint:recvcheck //using for validation
	actor          account.Actor
	scheduledJobID kernel.UUID
	byOwner        bool
	at             time.Time

	guard guard.ConstructorGuard
}

// NewCancelScheduledJobCommand creates a command to cancel a scheduled job.
func NewCancelScheduledJobCommand(
	actor account.Actor,
	scheduledJobID kernel.UUID,
	byOwner bool,
	at time.Time,
) (CancelScheduledJobCommand, error) {
	if err := actor.Validate(); err != nil {
		return CancelScheduledJobCommand{}, err
	}
	if err := scheduledJobID.Validate(); err != nil {
		return CancelScheduledJobCommand{}, err
	}
	if at.IsZero() {
		return CancelScheduledJobCommand{}, errors.New("cancellation time is required")
	}

	return CancelScheduledJobCommand{
		actor:          actor,
		scheduledJobID: scheduledJobID,
		byOwner:        byOwner,
		at:             at,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelScheduledJobCommand) Validate() error {
	return c.guard.Validate(ErrCancelScheduledJobCommandIsNotConstructed)
}

// Actor returns the caller.
func (c CancelScheduledJobCommand) Actor() account.Actor { return c.actor }

// ScheduledJobID returns the scheduled job being canceled.
func (c CancelScheduledJobCommand) ScheduledJobID() kernel.UUID { return c.scheduledJobID }

// ByOwner reports whether the owner side triggered the cancellation.
func (c CancelScheduledJobCommand) ByOwner() bool { return c.byOwner }

// At returns the cancellation time.
func (c CancelScheduledJobCommand) At() time.Time { return c.at }
