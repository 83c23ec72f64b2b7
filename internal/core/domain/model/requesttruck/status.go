package requesttruck

import (
	"fmt"

	"hauling/internal/pkg/errs"
)

// Status represents the lifecycle state of a truck request.
//
// State transitions:
//
//	Pending ──(fulfill)──> Fulfilled
//	   │
//	   └──────(close)────> Closed
//
// Fulfilled and Closed are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: the ask awaits a dispatcher.
	Pending

	// Fulfilled indicates a dispatcher satisfied the ask. Terminal.
	Fulfilled

	// Closed indicates the ask was withdrawn without fulfillment. Terminal.
	Closed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Fulfilled: "Fulfilled",
		Closed:    "Closed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Fulfilled: "Fulfilled",
		Closed:    "Closed",
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

// Fulfill transitions the status to Fulfilled. Legal from Pending only.
func (s Status) Fulfill() (Status, error) {
	if s != Pending {
		return 0, errs.NewIllegalStateTransitionErrorWithCause("request fulfill",
			fmt.Errorf("%s is not a valid status to fulfill", s))
	}
	return Fulfilled, nil
}

// Close transitions the status to Closed. Legal from Pending only.
func (s Status) Close() (Status, error) {
	if s != Pending {
		return 0, errs.NewIllegalStateTransitionErrorWithCause("request close",
			fmt.Errorf("%s is not a valid status to close", s))
	}
	return Closed, nil
}
