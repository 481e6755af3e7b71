package errs

import "fmt"

// DomainError is a business failure from the fixed application catalog.
// Every catalog entry carries a stable numeric code and a human-readable
// message; the boundary layer translates the code to a transport status.
//
// Catalog entries are package-level variables, so callers classify failures
// with errors.Is:
//
//	if errors.Is(err, errs.ErrCartEmpty) {
//	    // reject the request, nothing was persisted
//	}
//
// WithCause attaches an underlying error while keeping the catalog identity
// intact for errors.Is.
type DomainError struct {
	code    int
	message string
	cause   error
	parent  *DomainError
}

// NewDomainError creates a catalog entry with a stable code and message.
func NewDomainError(code int, message string) *DomainError {
	return &DomainError{code: code, message: message}
}

// WithCause returns a copy of the catalog entry wrapping the given cause.
// The copy still matches the original entry under errors.Is.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{code: e.code, message: e.message, cause: cause, parent: e}
}

// Code returns the stable numeric code of the error.
func (e *DomainError) Code() int {
	return e.code
}

// Message returns the human-readable catalog message without any cause detail.
func (e *DomainError) Message() string {
	return e.message
}

func (e *DomainError) Error() string {
	if e.cause != nil {
		return sanitize(fmt.Sprintf("%s (cause: %s)", e.message, e.cause))
	}
	return e.message
}

// Unwrap exposes both the parent catalog entry and the attached cause,
// so errors.Is matches either.
func (e *DomainError) Unwrap() []error {
	chain := make([]error, 0, 2)
	if e.parent != nil {
		chain = append(chain, e.parent)
	}
	if e.cause != nil {
		chain = append(chain, e.cause)
	}
	return chain
}

// The fixed error catalog. Codes mirror the transport statuses the boundary
// layer reports: 400 invalid input or state, 401 unauthenticated, 403 role
// mismatch, 404 missing object, 409 write conflict.
var (
	ErrUserNotFound       = NewDomainError(404, "User not found")
	ErrRestaurantNotFound = NewDomainError(400, "Restaurant not found")
	ErrAddressNotFound    = NewDomainError(404, "Address not found")
	ErrAddressExists      = NewDomainError(400, "Address is exist")
	ErrCartNotFound       = NewDomainError(404, "Cart not found")
	ErrCartEmpty          = NewDomainError(400, "Cart is empty")
	ErrOrderNotFound      = NewDomainError(404, "Order not found")
	ErrOrderStatusInvalid = NewDomainError(400, "Order status is invalid")
	ErrUnauthenticated    = NewDomainError(401, "Unauthenticated")
	ErrForbiddenRole      = NewDomainError(403, "Role is not allowed to perform this operation")
	ErrCartModified       = NewDomainError(409, "Cart was modified concurrently")
)
