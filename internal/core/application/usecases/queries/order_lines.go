package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// loadOrderLines fetches the order lines for the given orders in two round
// trips: one for the items, one for their ingredient names. Both listings
// share this follow-up so the main listing query stays a flat join.
func loadOrderLines(
	ctx context.Context,
	db *gorm.DB,
	orderIDs []uuid.UUID,
) (map[uuid.UUID][]OrderLineView, error) {
	lines := make(map[uuid.UUID][]OrderLineView, len(orderIDs))
	if len(orderIDs) == 0 {
		return lines, nil
	}

	itemRows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			food_name,
			quantity,
			special_instructions,
			total_price
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	itemIDs := make([]uuid.UUID, 0)
	itemOwner := make(map[uuid.UUID]uuid.UUID)
	itemIndex := make(map[uuid.UUID]int)

	for itemRows.Next() {
		var itemID, orderID uuid.UUID
		var line OrderLineView

		err = itemRows.Scan(
			&itemID,
			&orderID,
			&line.FoodName,
			&line.Quantity,
			&line.SpecialInstructions,
			&line.TotalPrice,
		)
		if err != nil {
			return nil, err
		}

		itemIDs = append(itemIDs, itemID)
		itemOwner[itemID] = orderID
		itemIndex[itemID] = len(lines[orderID])
		lines[orderID] = append(lines[orderID], line)
	}
	if err = itemRows.Err(); err != nil {
		return nil, err
	}

	if len(itemIDs) == 0 {
		return lines, nil
	}

	ingredientRows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_item_id,
			name
		FROM order_item_ingredients
		WHERE order_item_id IN ?
		ORDER BY order_item_id, name
	`, itemIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer ingredientRows.Close()

	for ingredientRows.Next() {
		var itemID uuid.UUID
		var name string

		if err = ingredientRows.Scan(&itemID, &name); err != nil {
			return nil, err
		}

		orderID := itemOwner[itemID]
		idx := itemIndex[itemID]
		lines[orderID][idx].Ingredients = append(lines[orderID][idx].Ingredients, name)
	}
	if err = ingredientRows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
