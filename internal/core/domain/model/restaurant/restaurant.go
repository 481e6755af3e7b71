// Package restaurant provides the Restaurant read model consumed by the order
// subsystem. Catalog and restaurant management live elsewhere.
package restaurant

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrRestaurantIsNotConstructed is returned when using an improperly initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via RestoreRestaurant constructor")
	// ErrNameIsRequired is returned when a restaurant has no name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Restaurant is the restaurant account read model: identity, display name,
// and the owner email used to resolve the caller on restaurant-side
// operations.
type Restaurant struct {
	id         kernel.UUID
	name       string
	ownerEmail string
	open       bool

	isConstructed bool
}

// RestoreRestaurant reconstructs a restaurant from persistence.
func RestoreRestaurant(id kernel.UUID, name string, ownerEmail string, open bool) (*Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Restaurant{
		id:            id,
		name:          name,
		ownerEmail:    ownerEmail,
		open:          open,
		isConstructed: true,
	}, nil
}

// Validate ensures the Restaurant was created through RestoreRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant identifier.
func (r *Restaurant) ID() kernel.UUID { return r.id }

// Name returns the restaurant display name.
func (r *Restaurant) Name() string { return r.name }

// OwnerEmail returns the email of the owning account.
func (r *Restaurant) OwnerEmail() string { return r.ownerEmail }

// IsOpen reports whether the restaurant currently accepts orders. The flag is
// enforced during catalog browsing, outside this subsystem; placement does not
// re-check it.
func (r *Restaurant) IsOpen() bool { return r.open }
