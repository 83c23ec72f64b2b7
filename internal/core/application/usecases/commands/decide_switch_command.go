package commands

import (
	"errors"

	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var ErrDecideSwitchCommandIsNotConstructed = errors.New(
	"DecideSwitchCommand must be created via NewDecideSwitchCommand constructor",
)

// DecideSwitchCommand represents the destination contractor's decision on an
// outstanding shift switch. The scheduledJobID is used for the destination
// scheduled job when the accept path has to create one. The optional position
// is the driver's reported location, verified against the destination site's
// geofence on accept.
type DecideSwitchCommand struct { //nolint:recvcheck //using for validation
	actor          account.Actor
	switchID       kernel.UUID
	accept         bool
	scheduledJobID kernel.UUID
	position       *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewDecideSwitchCommand creates a command to accept or deny a switch.
func NewDecideSwitchCommand(
	actor account.Actor,
	switchID kernel.UUID,
	accept bool,
	scheduledJobID kernel.UUID,
	position *kernel.GeoPoint,
) (DecideSwitchCommand, error) {
	if err := actor.Validate(); err != nil {
		return DecideSwitchCommand{}, err
	}
	if err := switchID.Validate(); err != nil {
		return DecideSwitchCommand{}, err
	}
	if err := scheduledJobID.Validate(); err != nil {
		return DecideSwitchCommand{}, err
	}
	if position != nil {
		if err := position.Validate(); err != nil {
			return DecideSwitchCommand{}, err
		}
	}

	return DecideSwitchCommand{
		actor:          actor,
		switchID:       switchID,
		accept:         accept,
		scheduledJobID: scheduledJobID,
		position:       position,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DecideSwitchCommand) Validate() error {
	return c.guard.Validate(ErrDecideSwitchCommandIsNotConstructed)
}

// Actor returns the caller.
func (c DecideSwitchCommand) Actor() account.Actor { return c.actor }

// SwitchID returns the switch being decided.
func (c DecideSwitchCommand) SwitchID() kernel.UUID { return c.switchID }

// Accept reports whether the caller accepts the switch.
func (c DecideSwitchCommand) Accept() bool { return c.accept }

// ScheduledJobID returns the id reserved for a destination scheduled job
// created by the accept path.
func (c DecideSwitchCommand) ScheduledJobID() kernel.UUID { return c.scheduledJobID }

// Position returns the driver's reported location, nil when none was sent.
func (c DecideSwitchCommand) Position() *kernel.GeoPoint { return c.position }
