// Package queries contains read-only operations against the storage read
// models. Query handlers bypass the aggregates and read with raw SQL, the
// read side of the CQRS split.
package queries

import (
	"errors"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var ErrCheckSwitchQueryIsNotConstructed = errors.New(
	"CheckSwitchQuery must be created via NewCheckSwitchQuery constructor",
)

// CheckSwitchQuery looks up the outstanding switch request for an
// assignation, if one exists. Drivers poll this while waiting for the
// destination contractor's decision.
type CheckSwitchQuery struct {
	assignationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckSwitchQuery creates a query for an assignation's outstanding switch.
func NewCheckSwitchQuery(assignationID kernel.UUID) (CheckSwitchQuery, error) {
	if err := assignationID.Validate(); err != nil {
		return CheckSwitchQuery{}, err
	}
	return CheckSwitchQuery{
		assignationID: assignationID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckSwitchQuery) Validate() error {
	return q.guard.Validate(ErrCheckSwitchQueryIsNotConstructed)
}

// AssignationID returns the assignation being checked.
func (q CheckSwitchQuery) AssignationID() kernel.UUID { return q.assignationID }

// CheckSwitchQueryResponse describes the outstanding switch. Outstanding is
// false and the rest zero-valued when no request is pending. FinalJobLive
// reports whether the destination job can still be switched to; it goes false
// when the destination reached a terminal status after the request.
type CheckSwitchQueryResponse struct {
	Outstanding  bool
	SwitchID     kernel.UUID
	FinalJobID   kernel.UUID
	FinalJobLive bool
}
