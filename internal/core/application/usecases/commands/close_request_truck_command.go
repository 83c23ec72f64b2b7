package commands

import (
	"errors"

	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var ErrCloseRequestTruckCommandIsNotConstructed = errors.New(
	"CloseRequestTruckCommand must be created via NewCloseRequestTruckCommand constructor",
)

// CloseRequestTruckCommand represents a request to withdraw a pending truck
// request without turning it into a job.
type CloseRequestTruckCommand struct { //nolint:recvcheck //using for validation
	actor     account.Actor
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCloseRequestTruckCommand creates a command to close a truck request.
func NewCloseRequestTruckCommand(
	actor account.Actor,
	requestID kernel.UUID,
) (CloseRequestTruckCommand, error) {
	if err := actor.Validate(); err != nil {
		return CloseRequestTruckCommand{}, err
	}
	if err := requestID.Validate(); err != nil {
		return CloseRequestTruckCommand{}, err
	}

	return CloseRequestTruckCommand{
		actor:     actor,
		requestID: requestID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseRequestTruckCommand) Validate() error {
	return c.guard.Validate(ErrCloseRequestTruckCommandIsNotConstructed)
}

// Actor returns the caller.
func (c CloseRequestTruckCommand) Actor() account.Actor { return c.actor }

// RequestID returns the request being closed.
func (c CloseRequestTruckCommand) RequestID() kernel.UUID { return c.requestID }
