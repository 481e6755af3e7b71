package restaurantrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// GetByID resolves a restaurant by identifier.
func (r *GormRestaurantRepository) GetByID(
	ctx context.Context,
	restaurantID kernel.UUID,
) (*restaurant.Restaurant, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", restaurantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrRestaurantNotFound
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOwnerEmail resolves the restaurant operated by the given account.
func (r *GormRestaurantRepository) GetByOwnerEmail(
	ctx context.Context,
	email string,
) (*restaurant.Restaurant, error) {
	var dto RestaurantDTO
	err := r.db.WithContext(ctx).First(&dto, "owner_email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrRestaurantNotFound
		}
		return nil, err
	}

	return toDomain(dto)
}
