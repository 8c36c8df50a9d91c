// Package errs provides standardized error types for the lab workflow engine.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Two kinds of errors live here:
//
// Input validation errors, raised while building value objects and commands:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ObjectNotFoundError: a referenced object cannot be found
//
// Workflow errors, raised while executing operations:
//   - InvalidReferenceError: a foreign key is dangling or points at an
//     inactive object (surfaced, not retried)
//   - InvalidTransitionError: an illegal state machine transition
//   - ConcurrentModificationError: a stale write rejected by the optimistic
//     concurrency check (caller refetches and retries)
//   - ForbiddenError: a caller role outside its access bounds (never retried)
//   - UpstreamUnavailableError: a transient dependency failure (retryable)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrForbidden)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Money-affecting operations must fail closed: any error from this package
// aborts the whole operation, never a partial write.
package errs
