package commands

import (
	"errors"
	"time"

	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var ErrFinishActiveJobCommandIsNotConstructed = errors.New(
	"FinishActiveJobCommand must be created via NewFinishActiveJobCommand constructor",
)

// FinishActiveJobCommand represents a request to force-finish a started
// scheduled job: active shifts close at the given time, never-started
// assignations drop and their slots reopen.
type FinishActiveJobCommand struct { //nolint:recvcheck //using for validation
	actor          account.Actor
	scheduledJobID kernel.UUID
	at             time.Time

	guard guard.ConstructorGuard
}

// NewFinishActiveJobCommand creates a command to force-finish a scheduled job.
func NewFinishActiveJobCommand(
	actor account.Actor,
	scheduledJobID kernel.UUID,
	at time.Time,
) (FinishActiveJobCommand, error) {
	if err := actor.Validate(); err != nil {
		return FinishActiveJobCommand{}, err
	}
	if err := scheduledJobID.Validate(); err != nil {
		return FinishActiveJobCommand{}, err
	}
	if at.IsZero() {
		return FinishActiveJobCommand{}, errors.New("finish time is required")
	}

	return FinishActiveJobCommand{
		actor:          actor,
		scheduledJobID: scheduledJobID,
		at:             at,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishActiveJobCommand) Validate() error {
	return c.guard.Validate(ErrFinishActiveJobCommandIsNotConstructed)
}

// Actor returns the caller.
func (c FinishActiveJobCommand) Actor() account.Actor { return c.actor }

// ScheduledJobID returns the scheduled job being force-finished.
func (c FinishActiveJobCommand) ScheduledJobID() kernel.UUID { return c.scheduledJobID }

// At returns the finish time.
func (c FinishActiveJobCommand) At() time.Time { return c.at }
