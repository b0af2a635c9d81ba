// Package errs provides the generic error types shared across the drive-through engine.
//
// Every type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the details (parameter name, offending value, optional cause)
//   - New…Error and New…ErrorWithCause constructors
//   - Error() for the message and Unwrap() returning the sentinel
//
// Domain packages (menu, intent, order) define their own typed errors in the same shape.
package errs
