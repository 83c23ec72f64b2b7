package commands

import (
	"errors"
	"time"

	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var ErrCancelPendingJobCommandIsNotConstructed = errors.New(
	"CancelPendingJobCommand must be created via NewCancelPendingJobCommand constructor",
)

// CancelPendingJobCommand represents a request to withdraw a job that was
// never scheduled. Scheduled jobs go through CancelScheduledJobCommand
// instead so the cancellation records who triggered it.
type CancelPendingJobCommand struct { //nolint:recvcheck //using for validation
	actor account.Actor
	jobID kernel.UUID
	at    time.Time

	guard guard.ConstructorGuard
}

// NewCancelPendingJobCommand creates a command to withdraw a pending job.
func NewCancelPendingJobCommand(actor account.Actor, jobID kernel.UUID, at time.Time) (CancelPendingJobCommand, error) {
	if err := actor.Validate(); err != nil {
		return CancelPendingJobCommand{}, err
	}
	if err := jobID.Validate(); err != nil {
		return CancelPendingJobCommand{}, err
	}
	if at.IsZero() {
		return CancelPendingJobCommand{}, errors.New("cancellation time is required")
	}

	return CancelPendingJobCommand{
		actor: actor,
		jobID: jobID,
		at:    at,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelPendingJobCommand) Validate() error {
	return c.guard.Validate(ErrCancelPendingJobCommandIsNotConstructed)
}

// Actor returns the caller.
func (c CancelPendingJobCommand) Actor() account.Actor { return c.actor }

// JobID returns the job being withdrawn.
func (c CancelPendingJobCommand) JobID() kernel.UUID { return c.jobID }

// At returns the cancellation time.
func (c CancelPendingJobCommand) At() time.Time { return c.at }
