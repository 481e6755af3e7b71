package ports

import (
	"context"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
type CartRepository interface {
	// GetByUserIDWithItems retrieves the user's cart with its items eagerly
	// loaded. The core always requests the fully populated aggregate; there
	// is no lazy on-access loading. A missing cart is reported as the
	// catalog CartNotFound error.
	GetByUserIDWithItems(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)

	// Update persists the cart under optimistic locking: the write matches
	// the aggregate's loaded version and bumps it. A version mismatch, such
	// as a concurrent placement clearing the same cart, is reported as the
	// catalog CartModified error and must abort the enclosing transaction.
	Update(ctx context.Context, aggregate *cart.Cart) error
}
