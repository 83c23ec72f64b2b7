package commands

import (
	"errors"

	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/job"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var ErrUpdateJobCommandIsNotConstructed = errors.New(
	"UpdateJobCommand must be created via NewUpdateJobCommand constructor",
)

// UpdateJobCommand represents a request to edit a job's details and
// requirement lines. Without force, lines holding assignations are preserved
// as they are; with force, an incoming line with a matching id replaces the
// definition and adopts the occupancy.
type UpdateJobCommand struct { //nolint:recvcheck //using for validation
	actor      account.Actor
	jobID      kernel.UUID
	details    job.Details
	categories []CategoryInput
	force      bool

	guard guard.ConstructorGuard
}

// NewUpdateJobCommand creates a command to edit an existing job.
func NewUpdateJobCommand(
	actor account.Actor,
	jobID kernel.UUID,
	details job.Details,
	categories []CategoryInput,
	force bool,
) (UpdateJobCommand, error) {
	if err := actor.Validate(); err != nil {
		return UpdateJobCommand{}, err
	}
	if err := jobID.Validate(); err != nil {
		return UpdateJobCommand{}, err
	}
	if err := details.Validate(); err != nil {
		return UpdateJobCommand{}, err
	}
	if len(categories) == 0 {
		return UpdateJobCommand{}, ErrCategoriesAreRequired
	}

	return UpdateJobCommand{
		actor:      actor,
		jobID:      jobID,
		details:    details,
		categories: categories,
		force:      force,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateJobCommand) Validate() error {
	return c.guard.Validate(ErrUpdateJobCommandIsNotConstructed)
}

// Actor returns the caller.
func (c UpdateJobCommand) Actor() account.Actor { return c.actor }

// JobID returns the job being edited.
func (c UpdateJobCommand) JobID() kernel.UUID { return c.jobID }

// Details returns the replacement details.
func (c UpdateJobCommand) Details() job.Details { return c.details }

// Categories returns the incoming requirement line inputs.
func (c UpdateJobCommand) Categories() []CategoryInput { return c.categories }

// Force reports whether occupied lines may be edited in place.
func (c UpdateJobCommand) Force() bool { return c.force }
