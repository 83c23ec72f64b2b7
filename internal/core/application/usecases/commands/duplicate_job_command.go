package commands

import (
	"errors"
	"time"

	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var ErrDuplicateJobCommandIsNotConstructed = errors.New(
	"DuplicateJobCommand must be created via NewDuplicateJobCommand constructor",
)

// DuplicateJobCommand represents a request to repost an existing job order
// for a new date window. The copy gets a fresh order number and fully open
// slots; the source job is untouched.
type DuplicateJobCommand struct { //nolint:recvcheck //using for validation
	actor       account.Actor
	sourceJobID kernel.UUID
	newJobID    kernel.UUID
	startDate   time.Time
	endDate     time.Time

	guard guard.ConstructorGuard
}

// NewDuplicateJobCommand creates a command to duplicate a job order.
func NewDuplicateJobCommand(
	actor account.Actor,
	sourceJobID, newJobID kernel.UUID,
	startDate, endDate time.Time,
) (DuplicateJobCommand, error) {
	if err := actor.Validate(); err != nil {
		return DuplicateJobCommand{}, err
	}
	if err := sourceJobID.Validate(); err != nil {
		return DuplicateJobCommand{}, err
	}
	if err := newJobID.Validate(); err != nil {
		return DuplicateJobCommand{}, err
	}

	return DuplicateJobCommand{
		actor:       actor,
		sourceJobID: sourceJobID,
		newJobID:    newJobID,
		startDate:   startDate,
		endDate:     endDate,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DuplicateJobCommand) Validate() error {
	return c.guard.Validate(ErrDuplicateJobCommandIsNotConstructed)
}

// Actor returns the caller.
func (c DuplicateJobCommand) Actor() account.Actor { return c.actor }

// SourceJobID returns the job being copied.
func (c DuplicateJobCommand) SourceJobID() kernel.UUID { return c.sourceJobID }

// NewJobID returns the identifier the copy is created under.
func (c DuplicateJobCommand) NewJobID() kernel.UUID { return c.newJobID }

// StartDate returns the copy's start date.
func (c DuplicateJobCommand) StartDate() time.Time { return c.startDate }

// EndDate returns the copy's end date.
func (c DuplicateJobCommand) EndDate() time.Time { return c.endDate }
