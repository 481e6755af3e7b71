package http

import (
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
)

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	RestaurantID string `json:"restaurantId"`
	AddressID    string `json:"addressId"`
}

// UpdateOrderStatusRequest is the body of PUT /api/v1/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status int `json:"status"`
}

// ErrorResponse is the uniform error body: a stable numeric code plus a
// human-readable message.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CustomerResponse summarizes the customer in the placement response.
type CustomerResponse struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// AddressResponse is the delivery address of an order.
type AddressResponse struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
}

// OrderItemResponse is one order line with its ingredient names.
type OrderItemResponse struct {
	FoodName            string   `json:"foodName"`
	Quantity            int      `json:"quantity"`
	SpecialInstructions string   `json:"specialInstructions,omitempty"`
	TotalPrice          int64    `json:"totalPrice"`
	Ingredients         []string `json:"ingredients"`
}

// OrderResponse is the order projection returned by the API. The customer
// block is only present on the placement response; listings omit it.
type OrderResponse struct {
	ID         string              `json:"id"`
	Status     string              `json:"status"`
	StatusRank int                 `json:"statusRank"`
	TotalItem  int                 `json:"totalItem"`
	TotalPrice int64               `json:"totalPrice"`
	CreatedAt  time.Time           `json:"createdAt"`
	Customer   *CustomerResponse   `json:"customer,omitempty"`
	Restaurant string              `json:"restaurant"`
	Address    AddressResponse     `json:"address"`
	Items      []OrderItemResponse `json:"items"`
}

func placedOrderToResponse(view commands.PlacedOrderView) OrderResponse {
	items := make([]OrderItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, OrderItemResponse{
			FoodName:            item.FoodName,
			Quantity:            item.Quantity,
			SpecialInstructions: item.SpecialInstructions,
			TotalPrice:          item.TotalPrice,
			Ingredients:         item.Ingredients,
		})
	}

	return OrderResponse{
		ID:         view.OrderID,
		Status:     view.Status,
		StatusRank: view.StatusRank,
		TotalItem:  view.TotalItem,
		TotalPrice: view.TotalPrice,
		CreatedAt:  view.CreatedAt,
		Customer: &CustomerResponse{
			FullName: view.Customer.FullName,
			Email:    view.Customer.Email,
		},
		Restaurant: view.Restaurant,
		Address: AddressResponse{
			Street:   view.Address.Street,
			City:     view.Address.City,
			Postcode: view.Address.Postcode,
		},
		Items: items,
	}
}

func orderViewsToResponse(views []queries.OrderView) []OrderResponse {
	out := make([]OrderResponse, 0, len(views))
	for _, view := range views {
		items := make([]OrderItemResponse, 0, len(view.Items))
		for _, item := range view.Items {
			items = append(items, OrderItemResponse{
				FoodName:            item.FoodName,
				Quantity:            item.Quantity,
				SpecialInstructions: item.SpecialInstructions,
				TotalPrice:          item.TotalPrice,
				Ingredients:         item.Ingredients,
			})
		}

		out = append(out, OrderResponse{
			ID:         view.ID.String(),
			Status:     view.Status,
			StatusRank: view.StatusRank,
			TotalItem:  view.TotalItem,
			TotalPrice: view.TotalPrice,
			CreatedAt:  view.CreatedAt,
			Restaurant: view.Restaurant,
			Address: AddressResponse{
				Street:   view.Address.Street,
				City:     view.Address.City,
				Postcode: view.Address.Postcode,
			},
			Items: items,
		})
	}
	return out
}
