// Package account models the caller identity the engine authorizes against.
// Authentication itself happens upstream; the engine only receives a resolved
// Actor and enforces ownership rules (a contractor may mutate only its own
// jobs, dispatchers and foremen act on behalf of their contractor).
package account

import (
	"fmt"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/errs"
	"hauling/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when using an improperly initialized Actor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"actor must be created via NewActor constructor")

// Role identifies the caller category. Each role maps to one of the
// role-scoped HTTP surfaces; the engine itself is role-agnostic and only
// distinguishes admins (who bypass ownership checks) from everyone else.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleOwner is a truck owner employing drivers.
	RoleOwner

	// RoleContractor posts jobs and owns their lifecycle.
	RoleContractor

	// RoleDispatcher schedules on behalf of a contractor.
	RoleDispatcher

	// RoleForeman requests trucks on behalf of a contractor.
	RoleForeman

	// RoleAdmin reviews disputes and bypasses ownership checks.
	RoleAdmin
)

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleOwner:      "Owner",
		RoleContractor: "Contractor",
		RoleDispatcher: "Dispatcher",
		RoleForeman:    "Foreman",
		RoleAdmin:      "Admin",
	}
}

// Validate checks the role is one of the defined caller categories.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getValidRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// RoleFromString parses a role from its HTTP path segment form
// ("owner", "contractor", "dispatcher", "foreman", "admin").
func RoleFromString(s string) (Role, error) {
	switch s {
	case "owner":
		return RoleOwner, nil
	case "contractor":
		return RoleContractor, nil
	case "dispatcher":
		return RoleDispatcher, nil
	case "foreman":
		return RoleForeman, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%q is not a valid role", s))
	}
}

// Actor is the authenticated caller as seen by the engine: identity, role and
// the contractor the caller belongs to (nil for owners and admins).
type Actor struct { //nolint:recvcheck //using for validation
	id           kernel.UUID
	role         Role
	contractorID *kernel.UUID
	guard        guard.ConstructorGuard
}

// NewActor creates a validated Actor. Contractor, dispatcher and foreman
// actors must carry the contractor they belong to.
func NewActor(id kernel.UUID, role Role, contractorID *kernel.UUID) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	switch role {
	case RoleContractor, RoleDispatcher, RoleForeman:
		if contractorID == nil {
			return Actor{}, errs.NewValueIsRequiredError("contractorID")
		}
		if err := contractorID.Validate(); err != nil {
			return Actor{}, err
		}
	default:
	}

	return Actor{
		id:           id,
		role:         role,
		contractorID: contractorID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the Actor was built through its constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the caller's identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the caller's role.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the caller bypasses ownership checks.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// EffectiveContractor resolves the contractor the caller acts for. For a
// contractor that is the caller's own id lineage; dispatchers and foremen
// resolve to the contractor that employs them. Returns nil for owners and
// admins, which are not contractor-scoped.
func (a Actor) EffectiveContractor() *kernel.UUID {
	switch a.role {
	case RoleContractor, RoleDispatcher, RoleForeman:
		return a.contractorID
	default:
		return nil
	}
}

// CanMutateContractorJob reports whether the caller may mutate a job owned by
// the given contractor. Admins always may; contractor-scoped roles only for
// their own contractor; owners only through owner-specific operations, which
// perform their own assignation-level checks.
func (a Actor) CanMutateContractorJob(contractorID kernel.UUID) bool {
	if a.IsAdmin() {
		return true
	}
	effective := a.EffectiveContractor()
	return effective != nil && effective.IsEqual(contractorID)
}
