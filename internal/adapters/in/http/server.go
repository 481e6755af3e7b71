// Package http exposes the order workflow over an Echo HTTP API.
// Every route runs behind the bearer-token middleware; handlers translate
// catalog errors into their numeric codes and matching HTTP statuses.
package http

import (
	"errors"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrderHandler        commands.PlaceOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler

	getUserOrdersHandler       queries.GetUserOrdersQueryHandler
	getRestaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getRestaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:          placeOrderHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		cancelOrderHandler:         cancelOrderHandler,
		getUserOrdersHandler:       getUserOrdersHandler,
		getRestaurantOrdersHandler: getRestaurantOrdersHandler,
	}
}

// RegisterRoutes mounts the order routes under /api/v1 with the bearer-token
// middleware applied.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret []byte) {
	api := e.Group("/api/v1", AuthMiddleware(jwtSecret))
	api.POST("/orders", s.PlaceOrder)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)
	api.PUT("/orders/:id/cancel", s.CancelOrder)
	api.GET("/orders/user", s.GetUserOrders)
	api.GET("/orders/restaurant", s.GetRestaurantOrders)
}

// PlaceOrder handles POST /api/v1/orders - converts the caller's cart into an order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id")
	}
	addressID, err := kernel.UUIDFromString(req.AddressID)
	if err != nil {
		return badRequest(ctx, "Invalid address id")
	}

	cmd, err := commands.NewPlaceOrderCommand(actorEmail(ctx), restaurantID, addressID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	view, err := s.placeOrderHandler.Handle(ctx.Request().Context(), actorRole(ctx), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, placedOrderToResponse(view))
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status - moves an order
// forward through the status ladder.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, req.Status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), actorRole(ctx), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles PUT /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), actorRole(ctx), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUserOrders handles GET /api/v1/orders/user?status= - lists the caller's
// orders in the given status. The status parameter is mandatory here.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	if err := kernel.RequireRole(actorRole(ctx), kernel.RoleUser); err != nil {
		return writeError(ctx, err)
	}

	rank, err := statusParam(ctx, false)
	if err != nil {
		return writeError(ctx, errs.ErrOrderStatusInvalid)
	}

	query, err := queries.NewGetUserOrdersQuery(actorEmail(ctx), rank)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	views, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderViewsToResponse(views))
}

// GetRestaurantOrders handles GET /api/v1/orders/restaurant?status= - lists
// the caller's incoming restaurant orders. Omitting the status lists everything.
func (s *Server) GetRestaurantOrders(ctx echo.Context) error {
	if err := kernel.RequireRole(actorRole(ctx), kernel.RoleRestaurant); err != nil {
		return writeError(ctx, err)
	}

	rank, err := statusParam(ctx, true)
	if err != nil {
		return writeError(ctx, errs.ErrOrderStatusInvalid)
	}

	query, err := queries.NewGetRestaurantOrdersQuery(actorEmail(ctx), rank)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	views, err := s.getRestaurantOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderViewsToResponse(views))
}

// statusParam parses the status query parameter. When optional, a missing
// parameter means "all orders" and is reported as -1.
func statusParam(ctx echo.Context, optional bool) (int, error) {
	raw := ctx.QueryParam("status")
	if raw == "" {
		if optional {
			return -1, nil
		}
		return 0, errs.ErrOrderStatusInvalid
	}

	var rank int
	if err := echo.QueryParamsBinder(ctx).Int("status", &rank).BindError(); err != nil {
		return 0, errs.ErrOrderStatusInvalid
	}
	return rank, nil
}

// writeError translates an application error into the uniform error body.
// Catalog errors carry their own stable code, which doubles as the HTTP
// status; everything else is a plain 400 or 500.
func writeError(ctx echo.Context, err error) error {
	var domainErr *errs.DomainError
	if errors.As(err, &domainErr) {
		status := domainErr.Code()
		if status < http.StatusBadRequest || status > http.StatusNetworkAuthenticationRequired {
			status = http.StatusInternalServerError
		}
		return ctx.JSON(status, ErrorResponse{
			Code:    domainErr.Code(),
			Message: domainErr.Message(),
		})
	}

	var valueInvalid *errs.ValueIsInvalidError
	var valueRequired *errs.ValueIsRequiredError
	var valueOutOfRange *errs.ValueIsOutOfRangeError
	if errors.As(err, &valueInvalid) || errors.As(err, &valueRequired) || errors.As(err, &valueOutOfRange) {
		return badRequest(ctx, err.Error())
	}

	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
