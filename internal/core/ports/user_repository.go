package ports

import (
	"context"

	"foodorder/internal/core/domain/model/account"
)

// UserRepository defines read access to the user store.
type UserRepository interface {
	// GetByEmailWithAddresses resolves a user by login email with their
	// owned address collection eagerly loaded. A miss is reported as the
	// catalog UserNotFound error.
	GetByEmailWithAddresses(ctx context.Context, email string) (*account.User, error)
}
