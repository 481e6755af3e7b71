package kernel

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Role identifies which side of the marketplace the authenticated caller
// belongs to. Every order operation is gated on a required role before any
// data is read.
type Role int

const (
	// RoleUnknown represents an unresolved or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleUser is a customer placing and cancelling orders.
	RoleUser

	// RoleRestaurant is a restaurant account advancing order statuses and
	// listing its own orders.
	RoleRestaurant
)

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleUser:       "USER",
		RoleRestaurant: "RESTAURANT",
	}
}

// RoleFromString parses a role tag as carried in authentication claims.
// Accepts "USER" and "RESTAURANT"; anything else fails.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate returns an error for RoleUnknown or any undefined value.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns "USER" or "RESTAURANT", or "UNKNOWN" for invalid values.
func (r Role) String() string {
	if str, ok := getValidRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// RequireRole is the authorization guard invoked at the start of every
// operation. It returns the catalog ErrForbiddenRole when the actual role
// does not match the required one, before any state is read.
func RequireRole(actual Role, required Role) error {
	if err := required.Validate(); err != nil {
		return err
	}
	if actual != required {
		return errs.ErrForbiddenRole
	}
	return nil
}
