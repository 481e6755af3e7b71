// Package account provides the User read model consumed by the order
// subsystem: user identity plus the user's owned address collection. Address
// and user management live elsewhere; this package only exposes what order
// placement needs.
package account

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via RestoreUser constructor")
	// ErrEmailIsRequired is returned when a user has no email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
)

// Address is a delivery address owned by exactly one user.
type Address struct {
	id       kernel.UUID
	street   string
	city     string
	postcode string
}

// RestoreAddress reconstructs an address from persistence.
func RestoreAddress(id kernel.UUID, street string, city string, postcode string) (Address, error) {
	if err := id.Validate(); err != nil {
		return Address{}, err
	}
	return Address{id: id, street: street, city: city, postcode: postcode}, nil
}

// ID returns the address identifier.
func (a Address) ID() kernel.UUID { return a.id }

// Street returns the street line of the address.
func (a Address) Street() string { return a.street }

// City returns the city of the address.
func (a Address) City() string { return a.city }

// Postcode returns the postal code of the address.
func (a Address) Postcode() string { return a.postcode }

// User is the customer read model: identity, contact fields, and the owned
// address collection eagerly loaded by the store.
type User struct {
	id        kernel.UUID
	email     string
	fullName  string
	addresses []Address

	isConstructed bool
}

// RestoreUser reconstructs a user with their owned addresses.
func RestoreUser(id kernel.UUID, email string, fullName string, addresses []Address) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, ErrEmailIsRequired
	}

	owned := make([]Address, len(addresses))
	copy(owned, addresses)

	return &User{
		id:            id,
		email:         email,
		fullName:      fullName,
		addresses:     owned,
		isConstructed: true,
	}, nil
}

// Validate ensures the User was created through RestoreUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Email returns the user's email, which also serves as the login identity.
func (u *User) Email() string { return u.email }

// FullName returns the user's display name.
func (u *User) FullName() string { return u.fullName }

// Addresses returns a copy of the user's owned addresses.
func (u *User) Addresses() []Address {
	out := make([]Address, len(u.addresses))
	copy(out, u.addresses)
	return out
}

// AddressByID selects the address with the given id from the user's own
// collection. Selecting only from the caller's own addresses is what
// prevents ordering to another user's address even when its id is known;
// a miss fails with the catalog AddressNotFound error.
func (u *User) AddressByID(id kernel.UUID) (Address, error) {
	for _, address := range u.addresses {
		if address.ID().IsEqual(id) {
			return address, nil
		}
	}
	return Address{}, errs.ErrAddressNotFound
}
