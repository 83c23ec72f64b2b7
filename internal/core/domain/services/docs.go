// Package services provides domain services that orchestrate business
// operations across multiple aggregates of the hauling engine.
//
// The package includes:
//   - CategoryScheduler: places (driver, truck) batches into a job's
//     category slots with all-or-nothing semantics
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
