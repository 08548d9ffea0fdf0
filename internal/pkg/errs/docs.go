// Package errs provides standardized error types for the supply-chain application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - InvalidTransitionError: For when an order status change is not legal
//     from the current state
//   - ConcurrencyConflictError: For when a mutation lost a race with a
//     concurrent request
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// All caller-facing kinds (validation, not-found, invalid transition, conflict)
// are recoverable at the API boundary: handlers map them to HTTP statuses and
// never collapse them into a generic failure.
package errs
