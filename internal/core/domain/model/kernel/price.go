package kernel

import (
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrPriceIsNotConstructed is returned when validating a Price that was not
// created via NewPrice or ZeroPrice.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPrice or ZeroPrice constructors")

// Price is a monetary amount in minor currency units (e.g. cents).
// Price is an immutable value object; the amount is never negative.
// A zero amount is valid and represents an empty cart.
//
// Example:
//
//	total, err := kernel.NewPrice(3500)
//	if err != nil {
//	    // handle validation error
//	}
//	total = total.Add(itemPrice)
type Price struct { //nolint:recvcheck //using for validation
	amount int64
	guard  guard.ConstructorGuard
}

// NewPrice creates a Price with the given amount in minor units.
// Returns an error if the amount is negative.
func NewPrice(amount int64) (Price, error) {
	price := Price{
		guard: guard.NewConstructorGuard(),
	}

	if err := price.setAmount(amount); err != nil {
		return Price{}, err
	}

	return price, nil
}

// ZeroPrice creates a valid Price of zero minor units.
func ZeroPrice() Price {
	return Price{guard: guard.NewConstructorGuard()}
}

// Validate checks that the Price was created through a constructor.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Amount returns the amount in minor currency units.
func (p Price) Amount() int64 {
	return p.amount
}

// IsZero reports whether the amount is zero.
func (p Price) IsZero() bool {
	return p.amount == 0
}

// Add returns a new Price holding the sum of both amounts.
func (p Price) Add(other Price) Price {
	sum := Price{guard: guard.NewConstructorGuard()}
	sum.amount = p.amount + other.amount
	return sum
}

// IsEqual reports whether two prices hold the same amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount
}

func (p *Price) setAmount(amount int64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is negative", amount))
	}
	p.amount = amount
	return nil
}
