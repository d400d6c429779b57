// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the codebase.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// The HTTP boundary relies on this classification to map domain failures to
// status codes (ErrObjectNotFound becomes a 404, ErrValueIsInvalid and
// ErrValueIsRequired become 400s).
package errs
