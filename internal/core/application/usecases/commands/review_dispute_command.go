package commands

import (
	"errors"

	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var ErrReviewDisputeCommandIsNotConstructed = errors.New(
	"ReviewDisputeCommand must be created via NewReviewDisputeCommand constructor",
)

// ReviewDisputeCommand represents an admin's resolution of an open dispute.
type ReviewDisputeCommand struct { //nolint:recvcheck //using for validation
	actor          account.Actor
	scheduledJobID kernel.UUID
	upheld         bool

	guard guard.ConstructorGuard
}

// NewReviewDisputeCommand creates a command to resolve a dispute.
func NewReviewDisputeCommand(
	actor account.Actor,
	scheduledJobID kernel.UUID,
	upheld bool,
) (ReviewDisputeCommand, error) {
	if err := actor.Validate(); err != nil {
		return ReviewDisputeCommand{}, err
	}
	if err := scheduledJobID.Validate(); err != nil {
		return ReviewDisputeCommand{}, err
	}

	return ReviewDisputeCommand{
		actor:          actor,
		scheduledJobID: scheduledJobID,
		upheld:         upheld,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewDisputeCommand) Validate() error {
	return c.guard.Validate(ErrReviewDisputeCommandIsNotConstructed)
}

// Actor returns the caller.
func (c ReviewDisputeCommand) Actor() account.Actor { return c.actor }

// ScheduledJobID returns the disputed scheduled job.
func (c ReviewDisputeCommand) ScheduledJobID() kernel.UUID { return c.scheduledJobID }

// Upheld reports whether the dispute was decided in the disputant's favor.
func (c ReviewDisputeCommand) Upheld() bool { return c.upheld }
