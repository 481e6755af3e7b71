package userrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// GetByEmailWithAddresses resolves a user by email with their addresses loaded.
func (r *GormUserRepository) GetByEmailWithAddresses(
	ctx context.Context,
	email string,
) (*account.User, error) {
	var dto UserDTO
	err := r.db.WithContext(ctx).
		Preload("Addresses").
		First(&dto, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}

	return toDomain(dto)
}
