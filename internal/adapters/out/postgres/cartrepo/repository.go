package cartrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// GetByUserIDWithItems retrieves the user's cart with its items and
// ingredient rows loaded.
func (r *GormCartRepository) GetByUserIDWithItems(
	ctx context.Context,
	userID kernel.UUID,
) (*cart.Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	err := r.db.WithContext(ctx).
		Preload("Items.Ingredients").
		First(&dto, "user_id = ?", userID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrCartNotFound
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update persists the cart's current state with an optimistic version match.
// The item rows are replaced wholesale, then the cart row is written with
// WHERE id AND version; zero rows affected means another writer got there
// first and the update fails with the catalog CartModified error.
func (r *GormCartRepository) Update(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	cartID := aggregate.ID().Bytes()

	err := db.
		Where("cart_item_id IN (?)",
			db.Session(&gorm.Session{NewDB: true}).
				Model(&CartItemDTO{}).Select("id").Where("cart_id = ?", cartID)).
		Delete(&CartItemIngredientDTO{}).Error
	if err != nil {
		return err
	}
	if err = db.Where("cart_id = ?", cartID).Delete(&CartItemDTO{}).Error; err != nil {
		return err
	}

	items := itemsFromDomain(aggregate)
	if len(items) > 0 {
		if err = db.Create(&items).Error; err != nil {
			return err
		}
	}

	result := db.Model(&CartDTO{}).
		Where("id = ? AND version = ?", cartID, aggregate.Version()).
		Updates(map[string]interface{}{
			"total_price": aggregate.TotalPrice().Amount(),
			"version":     aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.ErrCartModified
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
