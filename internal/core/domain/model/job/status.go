package job

import (
	"fmt"

	"hauling/internal/pkg/errs"
)

// Status represents the lifecycle state of a job order.
//
// State transitions:
//
//	Pending ──┬──> Scheduled ──> Done
//	          │        │
//	          │        └──> Canceled
//	          └──> Canceled
//
// A job is created Pending (posted, no assignations yet). Scheduling moves it
// to Scheduled; completion of its scheduled instance moves it to Done;
// cancellation is legal from Pending and Scheduled. Done and Canceled are
// terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: the job is posted but has no scheduled instance.
	Pending

	// Scheduled indicates at least one assignation batch was scheduled against the job.
	Scheduled

	// Done indicates the job's scheduled instance completed. Terminal.
	Done

	// Canceled indicates the job was canceled before completion. Terminal.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Scheduled: "Scheduled",
		Done:      "Done",
		Canceled:  "Canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Scheduled: "Scheduled",
		Done:      "Done",
		Canceled:  "Canceled",
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

// Schedule transitions the status to Scheduled. Legal from Pending (first
// batch) and Scheduled (additional batches against the same job).
func (s Status) Schedule() (Status, error) {
	if s != Pending && s != Scheduled {
		return 0, errs.NewIllegalStateTransitionErrorWithCause("job schedule",
			fmt.Errorf("%s is not a valid status to schedule", s))
	}
	return Scheduled, nil
}

// Finish transitions the status to Done. Legal from Scheduled only.
func (s Status) Finish() (Status, error) {
	if s != Scheduled {
		return 0, errs.NewIllegalStateTransitionErrorWithCause("job finish",
			fmt.Errorf("%s is not a valid status to finish", s))
	}
	return Done, nil
}

// Cancel transitions the status to Canceled. Legal from Pending and Scheduled.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() || s == Unknown {
		return 0, errs.NewIllegalStateTransitionErrorWithCause("job cancel",
			fmt.Errorf("%s is not a valid status to cancel", s))
	}
	return Canceled, nil
}
