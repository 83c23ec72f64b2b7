package schedule

import (
	"fmt"

	"hauling/internal/pkg/errs"
)

// Status represents the lifecycle state of a scheduled job.
//
// State transitions:
//
//	Pending ──(first clock-in)──> Started ──(all finished / forced)──> Done
//	   │                             │
//	   └────────(cancel)─────────────┴──────> Canceled
//
// Done and Canceled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: assignations exist but nobody clocked in.
	Pending

	// Started indicates at least one driver clocked in.
	Started

	// Done indicates every assignation finished, or a supervisor force-finished. Terminal.
	Done

	// Canceled indicates cancellation before completion. Terminal.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "Pending",
		Started:  "Started",
		Done:     "Done",
		Canceled: "Canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "Pending",
		Started:  "Started",
		Done:     "Done",
		Canceled: "Canceled",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Done || s == Canceled
}

// IsLive reports whether the scheduled job can still be mutated.
func (s Status) IsLive() bool {
	return s == Pending || s == Started
}

// Start transitions the status to Started on the first clock-in.
// Started stays Started for subsequent clock-ins.
func (s Status) Start() (Status, error) {
	if s != Pending && s != Started {
		return 0, errs.NewIllegalStateTransitionErrorWithCause("scheduled job start",
			fmt.Errorf("%s is not a valid status to start", s))
	}
	return Started, nil
}

// Finish transitions the status to Done. Legal from Started only.
func (s Status) Finish() (Status, error) {
	if s != Started {
		return 0, errs.NewIllegalStateTransitionErrorWithCause("scheduled job finish",
			fmt.Errorf("%s is not a valid status to finish", s))
	}
	return Done, nil
}

// Cancel transitions the status to Canceled. Legal from Pending and Started.
func (s Status) Cancel() (Status, error) {
	if !s.IsLive() {
		return 0, errs.NewIllegalStateTransitionErrorWithCause("scheduled job cancel",
			fmt.Errorf("%s is not a valid status to cancel", s))
	}
	return Canceled, nil
}
