package commands

import (
	"errors"

	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/job"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var (
	ErrCreateJobCommandIsNotConstructed = errors.New(
		"CreateJobCommand must be created via NewCreateJobCommand constructor",
	)
	ErrCategoriesAreRequired = errors.New("at least one truck category is required")
)

// CreateJobCommand represents a request to post a new hauling job with its
// requirement lines. Optionally consumes the truck request the job fulfills.
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	actor          account.Actor
	jobID          kernel.UUID
	details        job.Details
	categories     []CategoryInput
	onSite         bool
	generalJobID   *kernel.UUID
	requestTruckID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a command to post a new job.
// Validates the actor, job id, details, and that at least one category line
// is present. Per-line validation happens when the lines are materialized.
func NewCreateJobCommand(
	actor account.Actor,
	jobID kernel.UUID,
	details job.Details,
	categories []CategoryInput,
	onSite bool,
	generalJobID *kernel.UUID,
	requestTruckID *kernel.UUID,
) (CreateJobCommand, error) {
	if err := actor.Validate(); err != nil {
		return CreateJobCommand{}, err
	}
	if err := jobID.Validate(); err != nil {
		return CreateJobCommand{}, err
	}
	if err := details.Validate(); err != nil {
		return CreateJobCommand{}, err
	}
	if len(categories) == 0 {
		return CreateJobCommand{}, ErrCategoriesAreRequired
	}

	return CreateJobCommand{
		actor:          actor,
		jobID:          jobID,
		details:        details,
		categories:     categories,
		onSite:         onSite,
		generalJobID:   generalJobID,
		requestTruckID: requestTruckID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

// Actor returns the caller.
func (c CreateJobCommand) Actor() account.Actor { return c.actor }

// JobID returns the identifier the new job is created under.
func (c CreateJobCommand) JobID() kernel.UUID { return c.jobID }

// Details returns the descriptive part of the order.
func (c CreateJobCommand) Details() job.Details { return c.details }

// Categories returns the requirement line inputs.
func (c CreateJobCommand) Categories() []CategoryInput { return c.categories }

// OnSite reports whether clock-in requires geofence presence.
func (c CreateJobCommand) OnSite() bool { return c.onSite }

// GeneralJobID returns the optional customer-level grouping reference.
func (c CreateJobCommand) GeneralJobID() *kernel.UUID { return c.generalJobID }

// RequestTruckID returns the truck request this job fulfills, if any.
func (c CreateJobCommand) RequestTruckID() *kernel.UUID { return c.requestTruckID }
