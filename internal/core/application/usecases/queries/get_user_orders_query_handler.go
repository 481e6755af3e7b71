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

// GetUserOrdersQueryHandler lists a customer's orders in a given status.
// Reads through raw SQL: the listing is a projection, not an aggregate load.
//
// Example:
//
//	handler := NewGetUserOrdersQueryHandler(db)
//	query, _ := NewGetUserOrdersQuery("alice@example.com", 1)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for customer order listings.
// Requires a GORM database connection for query execution.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the customer listing.
// The status filter is mandatory on the user side; an out-of-range rank is
// rejected before any query runs, and an unknown email fails with the
// catalog UserNotFound error.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	status, err := order.StatusFromRank(query.StatusRank())
	if err != nil {
		return nil, err
	}

	var customerID uuid.UUID
	row := h.db.WithContext(ctx).Raw(`
		SELECT id FROM users WHERE email = ?
	`, query.CustomerEmail()).Row()
	if err = row.Scan(&customerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}

	orders := make([]OrderView, 0)
	orderIDs := make([]uuid.UUID, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE o.customer_id = ? AND o.status = ?
		ORDER BY o.created_at DESC, o.id
	`, customerID, status.Rank()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

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
