package commands

import (
	"errors"

	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/errs"
	"hauling/internal/pkg/guard"
)

var ErrDisputeScheduledJobCommandIsNotConstructed = errors.New(
	"DisputeScheduledJobCommand must be created via NewDisputeScheduledJobCommand constructor",
)

// DisputeScheduledJobCommand represents a request to flag a scheduled job as
// disputed. The lifecycle is untouched; admins review the flag separately.
type DisputeScheduledJobCommand struct { //nolint:recvcheck //using for validation
	actor          account.Actor
	scheduledJobID kernel.UUID
	message        string

	guard guard.ConstructorGuard
}

// NewDisputeScheduledJobCommand creates a command to dispute a scheduled job.
func NewDisputeScheduledJobCommand(
	actor account.Actor,
	scheduledJobID kernel.UUID,
	message string,
) (DisputeScheduledJobCommand, error) {
	if err := actor.Validate(); err != nil {
		return DisputeScheduledJobCommand{}, err
	}
	if err := scheduledJobID.Validate(); err != nil {
		return DisputeScheduledJobCommand{}, err
	}
	if message == "" {
		return DisputeScheduledJobCommand{}, errs.NewValueIsRequiredError("message")
	}

	return DisputeScheduledJobCommand{
		actor:          actor,
		scheduledJobID: scheduledJobID,
		message:        message,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DisputeScheduledJobCommand) Validate() error {
	return c.guard.Validate(ErrDisputeScheduledJobCommandIsNotConstructed)
}

// Actor returns the caller.
func (c DisputeScheduledJobCommand) Actor() account.Actor { return c.actor }

// ScheduledJobID returns the scheduled job being disputed.
func (c DisputeScheduledJobCommand) ScheduledJobID() kernel.UUID { return c.scheduledJobID }

// Message returns the dispute text.
func (c DisputeScheduledJobCommand) Message() string { return c.message }
