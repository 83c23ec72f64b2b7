package commands

import (
	"errors"

	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var (
	ErrScheduleJobCommandIsNotConstructed = errors.New(
		"ScheduleJobCommand must be created via NewScheduleJobCommand constructor",
	)
	ErrPairsAreRequired = errors.New("at least one driver/truck pair is required")
)

// ScheduleJobCommand represents a request to schedule a batch of
// (driver, truck) pairs against a job. The batch is processed in request
// order and is all-or-nothing: one unplaceable pair fails the whole request.
type ScheduleJobCommand struct { //nolint:recvcheck //using for validation
	actor          account.Actor
	jobID          kernel.UUID
	scheduledJobID kernel.UUID
	pairs          []PairInput

	guard guard.ConstructorGuard
}

// NewScheduleJobCommand creates a command to schedule an assignation batch.
// The scheduled job id is only used when the job has no live scheduled
// instance yet.
func NewScheduleJobCommand(
	actor account.Actor,
	jobID, scheduledJobID kernel.UUID,
	pairs []PairInput,
) (ScheduleJobCommand, error) {
	if err := actor.Validate(); err != nil {
		return ScheduleJobCommand{}, err
	}
	if err := jobID.Validate(); err != nil {
		return ScheduleJobCommand{}, err
	}
	if err := scheduledJobID.Validate(); err != nil {
		return ScheduleJobCommand{}, err
	}
	if len(pairs) == 0 {
		return ScheduleJobCommand{}, ErrPairsAreRequired
	}
	for _, p := range pairs {
		if err := p.DriverID.Validate(); err != nil {
			return ScheduleJobCommand{}, err
		}
		if err := p.TruckID.Validate(); err != nil {
			return ScheduleJobCommand{}, err
		}
	}

	return ScheduleJobCommand{
		actor:          actor,
		jobID:          jobID,
		scheduledJobID: scheduledJobID,
		pairs:          pairs,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleJobCommand) Validate() error {
	return c.guard.Validate(ErrScheduleJobCommandIsNotConstructed)
}

// Actor returns the caller.
func (c ScheduleJobCommand) Actor() account.Actor { return c.actor }

// JobID returns the job being scheduled.
func (c ScheduleJobCommand) JobID() kernel.UUID { return c.jobID }

// ScheduledJobID returns the id a fresh scheduled instance is created under.
func (c ScheduleJobCommand) ScheduledJobID() kernel.UUID { return c.scheduledJobID }

// Pairs returns the batch in request order.
func (c ScheduleJobCommand) Pairs() []PairInput { return c.pairs }
