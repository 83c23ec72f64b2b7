// Package errs provides standardized error types for the hauling application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the engine's error taxonomy:
//   - ValueIsRequiredError / ValueIsInvalidError: validation failures, rejected pre-mutation
//   - ObjectNotFoundError: unknown job/scheduled job/assignation/switch identifiers
//   - ConflictError: optimistic concurrency losses (slot already filled, switch already decided)
//   - IllegalStateTransitionError: lifecycle operations illegal from the current status
//   - ForbiddenError: ownership or role mismatches detected inside the engine
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the failure
//
// Batch operations are all-or-nothing: a single item's error from this package
// aborts and rolls back the whole batch at the unit-of-work boundary.
package errs
