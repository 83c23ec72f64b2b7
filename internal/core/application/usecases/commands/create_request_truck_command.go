package commands

import (
	"errors"
	"time"

	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/job"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/requesttruck"
	"hauling/internal/pkg/errs"
	"hauling/internal/pkg/guard"
)

var ErrCreateRequestTruckCommandIsNotConstructed = errors.New(
	"CreateRequestTruckCommand must be created via NewCreateRequestTruckCommand constructor",
)

// CreateRequestTruckCommand represents a foreman's ask for hauling capacity,
// queued for their contractor to convert into a job.
type CreateRequestTruckCommand struct { //nolint:recvcheck //using for validation
	actor        account.Actor
	requestID    kernel.UUID
	generalJobID *kernel.UUID
	details      job.Details
	lines        []requesttruck.Line
	at           time.Time

	guard guard.ConstructorGuard
}

// NewCreateRequestTruckCommand creates a command to raise a truck request.
func NewCreateRequestTruckCommand(
	actor account.Actor,
	requestID kernel.UUID,
	generalJobID *kernel.UUID,
	details job.Details,
	lines []requesttruck.Line,
	at time.Time,
) (CreateRequestTruckCommand, error) {
	if err := actor.Validate(); err != nil {
		return CreateRequestTruckCommand{}, err
	}
	if err := requestID.Validate(); err != nil {
		return CreateRequestTruckCommand{}, err
	}
	if generalJobID != nil {
		if err := generalJobID.Validate(); err != nil {
			return CreateRequestTruckCommand{}, err
		}
	}
	if err := details.Validate(); err != nil {
		return CreateRequestTruckCommand{}, err
	}
	if len(lines) == 0 {
		return CreateRequestTruckCommand{}, errs.NewValueIsRequiredError("lines")
	}
	if at.IsZero() {
		return CreateRequestTruckCommand{}, errors.New("request time is required")
	}

	return CreateRequestTruckCommand{
		actor:        actor,
		requestID:    requestID,
		generalJobID: generalJobID,
		details:      details,
		lines:        lines,
		at:           at,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRequestTruckCommand) Validate() error {
	return c.guard.Validate(ErrCreateRequestTruckCommandIsNotConstructed)
}

// Actor returns the caller.
func (c CreateRequestTruckCommand) Actor() account.Actor { return c.actor }

// RequestID returns the identifier for the new request.
func (c CreateRequestTruckCommand) RequestID() kernel.UUID { return c.requestID }

// GeneralJobID returns the optional customer-level grouping reference.
func (c CreateRequestTruckCommand) GeneralJobID() *kernel.UUID { return c.generalJobID }

// Details returns the proto-job work details.
func (c CreateRequestTruckCommand) Details() job.Details { return c.details }

// Lines returns the requested capacity lines.
func (c CreateRequestTruckCommand) Lines() []requesttruck.Line { return c.lines }

// At returns when the request was raised.
func (c CreateRequestTruckCommand) At() time.Time { return c.at }
