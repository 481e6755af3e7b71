package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRestaurantOrdersQueryHandler lists the orders placed with a restaurant.
// The restaurant is resolved through its owner's account email, so a
// restaurant operator only ever sees their own incoming orders.
type GetRestaurantOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantOrdersQueryHandler creates a handler for restaurant order listings.
// Requires a GORM database connection for query execution.
func NewGetRestaurantOrdersQueryHandler(db *gorm.DB) GetRestaurantOrdersQueryHandler {
	return GetRestaurantOrdersQueryHandler{db: db}
}

// Handle executes the restaurant listing.
// A negative rank means no status filter; a non-negative rank must name a
// valid status and filters to it exactly. An unknown owner email fails with
// the catalog RestaurantNotFound error.
func (h GetRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filterRank := -1
	if query.StatusRank() >= 0 {
		status, err := order.StatusFromRank(query.StatusRank())
		if err != nil {
			return nil, err
		}
		filterRank = status.Rank()
	}

	var restaurantID uuid.UUID
	row := h.db.WithContext(ctx).Raw(`
		SELECT id FROM restaurants WHERE owner_email = ?
	`, query.OwnerEmail()).Row()
	if err := row.Scan(&restaurantID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrRestaurantNotFound
		}
		return nil, err
	}

	listing := h.db.WithContext(ctx)
	var rows *sql.Rows
	var err error
	if filterRank < 0 {
		rows, err = listing.Raw(`
			SELECT
				o.id,
				o.status,
				o.total_item,
				o.total_price,
				o.created_at,
				r.name,
				a.street,
				a.city,
				a.postcode
			FROM orders o
			JOIN restaurants r ON r.id = o.restaurant_id
			JOIN addresses a ON a.id = o.address_id
			WHERE o.restaurant_id = ?
			ORDER BY o.created_at DESC, o.id
		`, restaurantID).Rows()
	} else {
		rows, err = listing.Raw(`
			SELECT
				o.id,
				o.status,
				o.total_item,
				o.total_price,
				o.created_at,
				r.name,
				a.street,
				a.city,
				a.postcode
			FROM orders o
			JOIN restaurants r ON r.id = o.restaurant_id
			JOIN addresses a ON a.id = o.address_id
			WHERE o.restaurant_id = ? AND o.status = ?
			ORDER BY o.created_at DESC, o.id
		`, restaurantID, filterRank).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	orderIDs := make([]uuid.UUID, 0)

	for rows.Next() {
		var view OrderView
		var id uuid.UUID
		var statusRank int

		err = rows.Scan(
			&id,
			&statusRank,
			&view.TotalItem,
			&view.TotalPrice,
			&view.CreatedAt,
			&view.Restaurant,
			&view.Address.Street,
			&view.Address.City,
			&view.Address.Postcode,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = orderID

		rowStatus, statusErr := order.StatusFromRank(statusRank)
		if statusErr != nil {
			return nil, statusErr
		}
		view.Status = rowStatus.String()
		view.StatusRank = rowStatus.Rank()

		orders = append(orders, view)
		orderIDs = append(orderIDs, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	lines, err := loadOrderLines(ctx, h.db, orderIDs)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = lines[orderIDs[i]]
	}

	return orders, nil
}
