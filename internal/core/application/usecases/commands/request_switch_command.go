package commands

import (
	"errors"

	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var (
	ErrRequestSwitchCommandIsNotConstructed = errors.New(
		"RequestSwitchCommand must be created via NewRequestSwitchCommand constructor",
	)
	ErrSwitchesAreRequired = errors.New("at least one assignation is required")
)

// RequestSwitchCommand represents a driver crew's request to move a batch of
// assignations to another job mid-shift. The batch is all-or-nothing: one
// assignation that cannot be switched fails the whole request. The
// destination contractor decides each switch individually afterwards.
type RequestSwitchCommand struct { //nolint:recvcheck //using for validation
	actor      account.Actor
	switches   []SwitchInput
	finalJobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestSwitchCommand creates a command to request a batch of shift
// switches towards one destination job.
func NewRequestSwitchCommand(
	actor account.Actor,
	switches []SwitchInput,
	finalJobID kernel.UUID,
) (RequestSwitchCommand, error) {
	if err := actor.Validate(); err != nil {
		return RequestSwitchCommand{}, err
	}
	if len(switches) == 0 {
		return RequestSwitchCommand{}, ErrSwitchesAreRequired
	}
	for _, s := range switches {
		if err := s.SwitchID.Validate(); err != nil {
			return RequestSwitchCommand{}, err
		}
		if err := s.AssignationID.Validate(); err != nil {
			return RequestSwitchCommand{}, err
		}
	}
	if err := finalJobID.Validate(); err != nil {
		return RequestSwitchCommand{}, err
	}

	return RequestSwitchCommand{
		actor:      actor,
		switches:   switches,
		finalJobID: finalJobID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestSwitchCommand) Validate() error {
	return c.guard.Validate(ErrRequestSwitchCommandIsNotConstructed)
}

// Actor returns the caller.
func (c RequestSwitchCommand) Actor() account.Actor { return c.actor }

// Switches returns the batch in request order.
func (c RequestSwitchCommand) Switches() []SwitchInput { return c.switches }

// FinalJobID returns the destination job.
func (c RequestSwitchCommand) FinalJobID() kernel.UUID { return c.finalJobID }
