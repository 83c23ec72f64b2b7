// Package postgres provides the GORM-based Unit of Work for the hauling
// engine. A unit of work spans one business transaction: the command handler
// begins it, reads aggregates through transaction-bound repositories (locking
// rows with GetForUpdate where slot occupancy or status mutates), and commits
// or rolls back as a whole.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	job, err := uow.JobRepository().GetForUpdate(ctx, jobID)
//	if err != nil {
//	    return err
//	}
//
//	// mutate the aggregate, then persist and commit
//	if err := uow.JobRepository().Update(ctx, job); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Each Create call produces a fresh instance, so concurrent commands never
// share transaction state.
package postgres

import (
	"context"

	"hauling/internal/adapters/out/postgres/jobrepo"
	"hauling/internal/adapters/out/postgres/requesttruckrepo"
	"hauling/internal/adapters/out/postgres/schedulerepo"
	"hauling/internal/adapters/out/postgres/switchrepo"
	"hauling/internal/adapters/out/postgres/truckrepo"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Kept for post-commit processing such as an outbox or domain event publishing.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances backed by a shared GORM
// connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided connection is shared by every instance; transaction
// state is not.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the engine's
// repositories and tracks every aggregate written through them.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a new database transaction. Calling Begin again on an instance
// with an open transaction is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction and
// releases every row lock taken through GetForUpdate.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// JobRepository returns a job repository bound to the current transaction,
// or to the main connection when no transaction is open.
func (uow *GormUnitOfWork) JobRepository() ports.JobRepository {
	return jobrepo.NewGormJobRepository(uow.conn(), uow)
}

// ScheduledJobRepository returns a scheduled job repository bound to the
// current transaction.
func (uow *GormUnitOfWork) ScheduledJobRepository() ports.ScheduledJobRepository {
	return schedulerepo.NewGormScheduledJobRepository(uow.conn(), uow)
}

// SwitchJobRepository returns a switch repository bound to the current
// transaction.
func (uow *GormUnitOfWork) SwitchJobRepository() ports.SwitchJobRepository {
	return switchrepo.NewGormSwitchJobRepository(uow.conn(), uow)
}

// RequestTruckRepository returns a truck request repository bound to the
// current transaction.
func (uow *GormUnitOfWork) RequestTruckRepository() ports.RequestTruckRepository {
	return requesttruckrepo.NewGormRequestTruckRepository(uow.conn(), uow)
}

// TruckRepository returns the read-only truck directory. Trucks are never
// written by the engine, so no aggregate tracking is involved.
func (uow *GormUnitOfWork) TruckRepository() ports.TruckRepository {
	return truckrepo.NewGormTruckRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Called by repository implementations on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
