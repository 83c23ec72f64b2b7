package commands

import (
	"errors"
	"time"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var ErrClockInCommandIsNotConstructed = errors.New(
	"ClockInCommand must be created via NewClockInCommand constructor",
)

// ClockInCommand represents a driver's shift start arriving from the timer
// collaborator. Carries the reported position when the device provided one.
type ClockInCommand struct { //nolint:recvcheck //using for validation
	assignationID kernel.UUID
	at            time.Time
	position      *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewClockInCommand creates a clock-in command.
func NewClockInCommand(assignationID kernel.UUID, at time.Time, position *kernel.GeoPoint) (ClockInCommand, error) {
	if err := assignationID.Validate(); err != nil {
		return ClockInCommand{}, err
	}
	if at.IsZero() {
		return ClockInCommand{}, errors.New("clock-in time is required")
	}
	if position != nil {
		if err := position.Validate(); err != nil {
			return ClockInCommand{}, err
		}
	}

	return ClockInCommand{
		assignationID: assignationID,
		at:            at,
		position:      position,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClockInCommand) Validate() error {
	return c.guard.Validate(ErrClockInCommandIsNotConstructed)
}

// AssignationID returns the assignation clocking in.
func (c ClockInCommand) AssignationID() kernel.UUID { return c.assignationID }

// At returns the clock-in time.
func (c ClockInCommand) At() time.Time { return c.at }

// Position returns the reported position, nil when the device sent none.
func (c ClockInCommand) Position() *kernel.GeoPoint { return c.position }
