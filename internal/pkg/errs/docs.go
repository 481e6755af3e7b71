// Package errs provides standardized error types for the food-ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Two families of errors live here:
//
//   - Validation errors (ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError, ObjectNotFoundError). Each follows the same shape:
//     a sentinel variable, a struct with detail fields, constructors with and
//     without cause, Error() formatting, and Unwrap() for errors.Is support.
//
//   - The fixed domain catalog (DomainError plus the ErrUserNotFound,
//     ErrCartEmpty, ErrOrderStatusInvalid, ... variables). Catalog entries carry
//     a stable numeric code and message; use cases raise them at the point of
//     detection and the HTTP boundary translates the code into a response
//     status. No catalog error is swallowed or retried internally.
package errs
