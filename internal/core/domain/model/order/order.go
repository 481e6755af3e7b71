package order

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrderFromCart or RestoreOrder constructors.
	ErrOrderIsNotConstructed = errors.New(
		"Order must be created via NewOrderFromCart or RestoreOrder constructor")
)

// Order is the aggregate root for a placed order. It is an immutable snapshot
// of the cart taken at placement time, plus a mutable lifecycle status.
//
// Order follows these invariants:
//   - totalItem and totalPrice are frozen at creation and never recomputed
//     from the items afterward; they are a point-in-time copy of the cart
//   - the address reference is a point-in-time copy by id
//   - status transitions follow the Status state machine rules
//   - an order always holds at least one item
type Order struct {
	// id is the unique identifier of the order
	id kernel.UUID

	// customerID references the placing user
	customerID kernel.UUID

	// restaurantID references the restaurant the order was placed against
	restaurantID kernel.UUID

	// addressID is the point-in-time copy of the chosen delivery address
	addressID kernel.UUID

	// totalItem is the item count frozen at placement
	totalItem int

	// totalPrice is the cart total frozen at placement
	totalPrice kernel.Price

	// status is the current state in the order lifecycle
	status Status

	// createdAt is the placement instant
	createdAt time.Time

	// items are the frozen copies of the cart items
	items []OrderItem

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrderFromCart creates an Order by snapshotting the given cart. The
// cart's current total price and item count become the frozen snapshot
// values, every cart item is copied into an order-owned OrderItem, the
// status starts at Pending, and createdAt is set to now.
//
// Fails with the catalog CartEmpty error when the cart holds zero items: an
// order with zero items must never be created.
func NewOrderFromCart(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	addressID kernel.UUID,
	sourceCart *cart.Cart,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		restaurantID.Validate(),
		addressID.Validate(),
		sourceCart.Validate(),
	); err != nil {
		return nil, err
	}

	if sourceCart.IsEmpty() {
		return nil, errs.ErrCartEmpty
	}

	cartItems := sourceCart.Items()
	items := make([]OrderItem, 0, len(cartItems))
	for _, cartItem := range cartItems {
		item, err := NewOrderItemFromCart(cartItem)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		restaurantID:  restaurantID,
		addressID:     addressID,
		totalItem:     sourceCart.ItemCount(),
		totalPrice:    sourceCart.TotalPrice(),
		status:        Pending,
		createdAt:     now,
		items:         items,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order aggregate from persistence, preserving
// the frozen snapshot values and the persisted status.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	addressID kernel.UUID,
	totalItem int,
	totalPrice kernel.Price,
	status Status,
	createdAt time.Time,
	items []OrderItem,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		restaurantID.Validate(),
		addressID.Validate(),
		totalPrice.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	owned := make([]OrderItem, len(items))
	copy(owned, items)

	return &Order{
		id:            id,
		customerID:    customerID,
		restaurantID:  restaurantID,
		addressID:     addressID,
		totalItem:     totalItem,
		totalPrice:    totalPrice,
		status:        status,
		createdAt:     createdAt,
		items:         owned,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// This method should be called when reconstructing orders from persistence
// to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the placing user's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// AddressID returns the identifier of the delivery address chosen at placement.
func (o *Order) AddressID() kernel.UUID {
	return o.addressID
}

// TotalItem returns the item count frozen at placement.
func (o *Order) TotalItem() int {
	return o.totalItem
}

// TotalPrice returns the cart total frozen at placement.
func (o *Order) TotalPrice() kernel.Price {
	return o.totalPrice
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns a copy of the frozen order items.
func (o *Order) Items() []OrderItem {
	out := make([]OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

// ChangeStatus moves the order to the requested status under the state
// machine rules: forward or level along the ladder, Cancelled from anywhere.
// The status is unchanged when the transition is rejected.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.ChangeTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel sets the status to Cancelled unconditionally. Unlike ChangeStatus
// there is no rank check: a customer may cancel at any stage, including
// after delivery.
func (o *Order) Cancel() {
	o.status = Cancelled
}
