package commands

import (
	"errors"

	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var ErrHoldJobCommandIsNotConstructed = errors.New(
	"HoldJobCommand must be created via NewHoldJobCommand constructor",
)

// HoldJobCommand represents a request to suspend or resume a job's time and
// billing accrual without changing its lifecycle status.
type HoldJobCommand struct { //nolint:recvcheck //using for validation
	actor account.Actor
	jobID kernel.UUID
	hold  bool

	guard guard.ConstructorGuard
}

// NewHoldJobCommand creates a command to hold or continue a job.
func NewHoldJobCommand(actor account.Actor, jobID kernel.UUID, hold bool) (HoldJobCommand, error) {
	if err := actor.Validate(); err != nil {
		return HoldJobCommand{}, err
	}
	if err := jobID.Validate(); err != nil {
		return HoldJobCommand{}, err
	}

	return HoldJobCommand{
		actor: actor,
		jobID: jobID,
		hold:  hold,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c HoldJobCommand) Validate() error {
	return c.guard.Validate(ErrHoldJobCommandIsNotConstructed)
}

// Actor returns the caller.
func (c HoldJobCommand) Actor() account.Actor { return c.actor }

// JobID returns the job being held or continued.
func (c HoldJobCommand) JobID() kernel.UUID { return c.jobID }

// Hold reports whether accrual is being suspended (true) or resumed (false).
func (c HoldJobCommand) Hold() bool { return c.hold }
