package commands

import (
	"errors"
	"time"

	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var ErrExtendFinishTimeCommandIsNotConstructed = errors.New(
	"ExtendFinishTimeCommand must be created via NewExtendFinishTimeCommand constructor",
)

// ExtendFinishTimeCommand represents a request to push a running job's end
// date forward. Legal only while the scheduled instance is still live.
type ExtendFinishTimeCommand struct { //nolint:recvcheck //using for validation
	actor  account.Actor
	jobID  kernel.UUID
	newEnd time.Time

	guard guard.ConstructorGuard
}

// NewExtendFinishTimeCommand creates a command to extend a job's end date.
func NewExtendFinishTimeCommand(
	actor account.Actor,
	jobID kernel.UUID,
	newEnd time.Time,
) (ExtendFinishTimeCommand, error) {
	if err := actor.Validate(); err != nil {
		return ExtendFinishTimeCommand{}, err
	}
	if err := jobID.Validate(); err != nil {
		return ExtendFinishTimeCommand{}, err
	}

	return ExtendFinishTimeCommand{
		actor:  actor,
		jobID:  jobID,
		newEnd: newEnd,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExtendFinishTimeCommand) Validate() error {
	return c.guard.Validate(ErrExtendFinishTimeCommandIsNotConstructed)
}

// Actor returns the caller.
func (c ExtendFinishTimeCommand) Actor() account.Actor { return c.actor }

// JobID returns the job being extended.
func (c ExtendFinishTimeCommand) JobID() kernel.UUID { return c.jobID }

// NewEnd returns the new end date.
func (c ExtendFinishTimeCommand) NewEnd() time.Time { return c.newEnd }
