package commands

import (
	"errors"
	"time"

	"hauling/internal/pkg/guard"
)

var ErrZeroRateMissedJobsCommandIsNotConstructed = errors.New(
	"ZeroRateMissedJobsCommand must be created via NewZeroRateMissedJobsCommand constructor",
)

// ZeroRateMissedJobsCommand triggers the sweep that zero-rates scheduled jobs
// still pending past their job's start time. Raised by the daily cron, not by
// a caller, so it carries no actor.
type ZeroRateMissedJobsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewZeroRateMissedJobsCommand creates a command to sweep missed jobs up to
// the given cutoff.
func NewZeroRateMissedJobsCommand(cutoff time.Time) (ZeroRateMissedJobsCommand, error) {
	if cutoff.IsZero() {
		return ZeroRateMissedJobsCommand{}, errors.New("cutoff time is required")
	}

	return ZeroRateMissedJobsCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ZeroRateMissedJobsCommand) Validate() error {
	return c.guard.Validate(ErrZeroRateMissedJobsCommandIsNotConstructed)
}

// Cutoff returns the sweep's cutoff time.
func (c ZeroRateMissedJobsCommand) Cutoff() time.Time { return c.cutoff }
