// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"hauling/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobRepoFactory provides access to the job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// ScheduledJobRepoFactory provides access to the scheduled job repository within a transaction.
	ScheduledJobRepoFactory interface {
		ScheduledJobRepository() ports.ScheduledJobRepository
	}

	// SwitchJobRepoFactory provides access to the switch repository within a transaction.
	SwitchJobRepoFactory interface {
		SwitchJobRepository() ports.SwitchJobRepository
	}

	// RequestTruckRepoFactory provides access to the truck request repository within a transaction.
	RequestTruckRepoFactory interface {
		RequestTruckRepository() ports.RequestTruckRepository
	}

	// TruckRepoFactory provides access to the truck directory within a transaction.
	TruckRepoFactory interface {
		TruckRepository() ports.TruckRepository
	}

	// JobUoW manages transactions for job-only operations.
	JobUoW interface {
		TxManager
		JobRepoFactory
	}

	// JobUoWFactory creates new job unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// CreateJobUoW manages transactions for job creation, which may also
	// consume a truck request.
	CreateJobUoW interface {
		TxManager
		JobRepoFactory
		RequestTruckRepoFactory
	}

	// CreateJobUoWFactory creates new job creation unit of work instances.
	CreateJobUoWFactory interface {
		Create() CreateJobUoW
	}

	// ScheduleUoW manages transactions spanning a job, its scheduled
	// instance, and the truck directory.
	ScheduleUoW interface {
		TxManager
		JobRepoFactory
		ScheduledJobRepoFactory
		TruckRepoFactory
	}

	// ScheduleUoWFactory creates new scheduling unit of work instances.
	ScheduleUoWFactory interface {
		Create() ScheduleUoW
	}

	// ScheduledJobUoW manages transactions touching a scheduled job and its job.
	ScheduledJobUoW interface {
		TxManager
		JobRepoFactory
		ScheduledJobRepoFactory
	}

	// ScheduledJobUoWFactory creates new scheduled job unit of work instances.
	ScheduledJobUoWFactory interface {
		Create() ScheduledJobUoW
	}

	// SwitchUoW manages transactions for the shift-switch protocol, which
	// spans both jobs, both scheduled instances, the switch itself, and the
	// truck directory for rematching.
	SwitchUoW interface {
		TxManager
		JobRepoFactory
		ScheduledJobRepoFactory
		SwitchJobRepoFactory
		TruckRepoFactory
	}

	// SwitchUoWFactory creates new switch unit of work instances.
	SwitchUoWFactory interface {
		Create() SwitchUoW
	}

	// RequestTruckUoW manages transactions for truck request operations.
	RequestTruckUoW interface {
		TxManager
		RequestTruckRepoFactory
	}

	// RequestTruckUoWFactory creates new truck request unit of work instances.
	RequestTruckUoWFactory interface {
		Create() RequestTruckUoW
	}
)
