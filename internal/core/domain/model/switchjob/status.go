package switchjob

import (
	"fmt"

	"hauling/internal/pkg/errs"
)

// Status represents the lifecycle state of a shift switch.
//
// State transitions:
//
//	NotRequested ──(request)──> Requested ──(accept)──> Accepted ──(move done)──> Finished
//	                               │
//	                               └─────────(deny)───> Denied
//
// Denied and Finished are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// NotRequested is the initial status before the driver publishes the switch.
	NotRequested

	// Requested indicates the switch awaits the destination side's decision.
	Requested

	// Accepted indicates the decision was positive; the move is in flight.
	Accepted

	// Denied indicates the destination side rejected the switch. Terminal.
	Denied

	// Finished indicates the assignation landed on its destination. Terminal.
	Finished
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "Unknown",
		NotRequested: "NotRequested",
		Requested:    "Requested",
		Accepted:     "Accepted",
		Denied:       "Denied",
		Finished:     "Finished",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		NotRequested: "NotRequested",
		Requested:    "Requested",
		Accepted:     "Accepted",
		Denied:       "Denied",
		Finished:     "Finished",
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
	return s == Denied || s == Finished
}

// Request transitions the status to Requested. Legal from NotRequested only.
func (s Status) Request() (Status, error) {
	if s != NotRequested {
		return 0, errs.NewIllegalStateTransitionErrorWithCause("switch request",
			fmt.Errorf("%s is not a valid status to request", s))
	}
	return Requested, nil
}

// Accept transitions the status to Accepted. Legal from Requested only.
func (s Status) Accept() (Status, error) {
	if s != Requested {
		return 0, errs.NewIllegalStateTransitionErrorWithCause("switch accept",
			fmt.Errorf("%s is not a valid status to accept", s))
	}
	return Accepted, nil
}

// Deny transitions the status to Denied. Legal from Requested only.
func (s Status) Deny() (Status, error) {
	if s != Requested {
		return 0, errs.NewIllegalStateTransitionErrorWithCause("switch deny",
			fmt.Errorf("%s is not a valid status to deny", s))
	}
	return Denied, nil
}

// Finish transitions the status to Finished. Legal from Accepted only.
func (s Status) Finish() (Status, error) {
	if s != Accepted {
		return 0, errs.NewIllegalStateTransitionErrorWithCause("switch finish",
			fmt.Errorf("%s is not a valid status to finish", s))
	}
	return Finished, nil
}
