// Package errs provides standardized error types for the logistics dispatch core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a value lies outside its allowed bounds
//   - ObjectNotFoundError: for when an object cannot be found
//   - CapacityExceededError: for assignments that would overcommit a vehicle
//   - InvalidStateTransitionError: for illegal order lifecycle moves
//   - ReferentialConflictError: for deletions blocked by active dependents
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrCapacityExceeded)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Capacity and lifecycle violations are always reported as declined
// operations: callers receive one of these errors and the underlying
// ledger/state is left exactly as it was.
package errs
