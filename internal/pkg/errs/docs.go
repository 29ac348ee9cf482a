// Package errs provides standardized error types for the fulfillment engine.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type carrying error details
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Domain-specific failures (missing schedules, incomplete inspections,
// invalid one-time codes and so on) are declared as sentinel errors next to
// the aggregates that raise them; this package covers the generic cases:
// required values, invalid values, out-of-range values, missing objects and
// optimistic-concurrency version conflicts.
package errs
