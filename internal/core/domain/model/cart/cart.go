package cart

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when an instance was not created through
	// the NewCart or RestoreCart constructors.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")
)

// Cart is the aggregate root for a user's pending food selections. Exactly one
// cart exists per user; its running total always equals the sum of the item
// totals, and an empty cart has a zero total.
//
// The version field is an optimistic-lock counter. The repository matches it
// on update and rejects stale writes, so two concurrent order placements
// reading the same cart cannot both clear it.
type Cart struct {
	// id is the unique identifier of the cart
	id kernel.UUID

	// userID is the owning user
	userID kernel.UUID

	// items are the current selections, owned exclusively by this cart
	items []CartItem

	// totalPrice is the running sum of the item totals
	totalPrice kernel.Price

	// version is the optimistic-lock counter matched on update
	version int64

	// isConstructed ensures the cart was created via a constructor
	isConstructed bool
}

// NewCart creates an empty cart for the given user with a zero total.
func NewCart(id kernel.UUID, userID kernel.UUID) (*Cart, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}

	return &Cart{
		id:            id,
		userID:        userID,
		totalPrice:    kernel.ZeroPrice(),
		isConstructed: true,
	}, nil
}

// RestoreCart reconstructs a cart from persistence, including its items,
// stored total, and optimistic-lock version. The stored total must equal the
// sum of the item totals; a mismatch means the persisted state violates the
// cart invariant and restoration fails.
func RestoreCart(
	id kernel.UUID,
	userID kernel.UUID,
	items []CartItem,
	totalPrice kernel.Price,
	version int64,
) (*Cart, error) {
	cart, err := NewCart(id, userID)
	if err != nil {
		return nil, err
	}

	sum := kernel.ZeroPrice()
	for _, item := range items {
		if itemErr := item.Validate(); itemErr != nil {
			return nil, itemErr
		}
		sum = sum.Add(item.TotalPrice())
	}

	if err = totalPrice.Validate(); err != nil {
		return nil, err
	}
	if !sum.IsEqual(totalPrice) {
		return nil, errs.NewValueIsInvalidErrorWithCause("cart total price",
			fmt.Errorf("stored total %d does not match item sum %d", totalPrice.Amount(), sum.Amount()))
	}
	if version < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("cart version",
			fmt.Errorf("%d is negative", version))
	}

	cart.items = make([]CartItem, len(items))
	copy(cart.items, items)
	cart.totalPrice = totalPrice
	cart.version = version
	return cart, nil
}

// Validate ensures the Cart instance was properly constructed.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// ID returns the cart identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// UserID returns the owning user's identifier.
func (c *Cart) UserID() kernel.UUID {
	return c.userID
}

// Items returns a copy of the current cart items.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// ItemCount returns the number of items currently in the cart.
func (c *Cart) ItemCount() int {
	return len(c.items)
}

// TotalPrice returns the running total of the cart.
func (c *Cart) TotalPrice() kernel.Price {
	return c.totalPrice
}

// Version returns the optimistic-lock counter loaded from storage.
func (c *Cart) Version() int64 {
	return c.version
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// AddItem appends a selection to the cart and folds its total into the
// running total, preserving the sum invariant.
func (c *Cart) AddItem(item CartItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	c.items = append(c.items, item)
	c.totalPrice = c.totalPrice.Add(item.TotalPrice())
	return nil
}

// Clear removes every item and resets the total to zero. Order placement
// calls this exactly once after the order snapshot has been persisted.
func (c *Cart) Clear() {
	c.items = nil
	c.totalPrice = kernel.ZeroPrice()
}
