package commands

import (
	"errors"

	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/guard"
)

var (
	ErrSwitchMaterialCommandIsNotConstructed = errors.New(
		"SwitchMaterialCommand must be created via NewSwitchMaterialCommand constructor",
	)
	ErrMaterialIsRequired = errors.New("material is required")
)

// SwitchMaterialCommand represents a request to substitute the hauled
// material on a running job without rescheduling.
type SwitchMaterialCommand struct { //nolint:recvcheck //using for validation
	actor    account.Actor
	jobID    kernel.UUID
	material string

	guard guard.ConstructorGuard
}

// NewSwitchMaterialCommand creates a command to substitute a job's material.
func NewSwitchMaterialCommand(actor account.Actor, jobID kernel.UUID, material string) (SwitchMaterialCommand, error) {
	if err := actor.Validate(); err != nil {
		return SwitchMaterialCommand{}, err
	}
	if err := jobID.Validate(); err != nil {
		return SwitchMaterialCommand{}, err
	}
	if material == "" {
		return SwitchMaterialCommand{}, ErrMaterialIsRequired
	}

	return SwitchMaterialCommand{
		actor:    actor,
		jobID:    jobID,
		material: material,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SwitchMaterialCommand) Validate() error {
	return c.guard.Validate(ErrSwitchMaterialCommandIsNotConstructed)
}

// Actor returns the caller.
func (c SwitchMaterialCommand) Actor() account.Actor { return c.actor }

// JobID returns the job whose material changes.
func (c SwitchMaterialCommand) JobID() kernel.UUID { return c.jobID }

// Material returns the replacement material.
func (c SwitchMaterialCommand) Material() string { return c.material }
