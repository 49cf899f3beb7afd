package http

import (
	"net/http"

	"arribaeats/internal/core/application/usecases/commands"
	"arribaeats/internal/core/application/usecases/queries"
	"arribaeats/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type createOrderRequest struct {
	RestaurantID string `json:"restaurantId"`
}

type createOrderResponse struct {
	OrderID int64 `json:"orderId"`
}

type addOrderItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type advanceOrderRequest struct {
	ActorID string `json:"actorId"`
}

type customerOrderView struct {
	OrderID        int64   `json:"orderId"`
	RestaurantName string  `json:"restaurantName"`
	Status         string  `json:"status"`
	TotalPrice     float64 `json:"totalPrice"`
}

type customerOrdersResponse struct {
	Orders     []customerOrderView `json:"orders"`
	TotalSpend float64             `json:"totalSpend"`
}

type availableOrderView struct {
	OrderID        int64   `json:"orderId"`
	RestaurantID   string  `json:"restaurantId"`
	RestaurantName string  `json:"restaurantName"`
	TotalPrice     float64 `json:"totalPrice"`
	TotalDistance  float64 `json:"totalDistance"`
}

// CreateOrder handles POST /api/v1/customers/:customerID/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	customerID, err := parseUUIDParam(ctx, "customerID")
	if err != nil {
		return writeBadRequest(ctx, "invalid customerID")
	}

	var request createOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return writeBadRequest(ctx, "invalid restaurantId")
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, restaurantID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	orderID, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{OrderID: orderID})
}

// AddOrderItem handles POST /api/v1/customers/:customerID/orders/:orderID/items.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	customerID, err := parseUUIDParam(ctx, "customerID")
	if err != nil {
		return writeBadRequest(ctx, "invalid customerID")
	}
	orderID, err := parseOrderIDParam(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid orderID")
	}

	var request addOrderItemRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAddOrderItemCommand(customerID, orderID, request.Name, request.Quantity)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.handlers.AddOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FinalizeOrder handles POST /api/v1/customers/:customerID/orders/:orderID/finalize.
func (s *Server) FinalizeOrder(ctx echo.Context) error {
	customerID, err := parseUUIDParam(ctx, "customerID")
	if err != nil {
		return writeBadRequest(ctx, "invalid customerID")
	}
	orderID, err := parseOrderIDParam(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid orderID")
	}

	cmd, err := commands.NewFinalizeOrderCommand(customerID, orderID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.handlers.FinalizeOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/customers/:customerID/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	customerID, err := parseUUIDParam(ctx, "customerID")
	if err != nil {
		return writeBadRequest(ctx, "invalid customerID")
	}
	orderID, err := parseOrderIDParam(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid orderID")
	}

	cmd, err := commands.NewCancelOrderCommand(customerID, orderID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomerOrders handles GET /api/v1/customers/:customerID/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := parseUUIDParam(ctx, "customerID")
	if err != nil {
		return writeBadRequest(ctx, "invalid customerID")
	}

	query, err := queries.NewCustomerOrdersQuery(customerID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	history, err := s.handlers.CustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := customerOrdersResponse{
		Orders:     make([]customerOrderView, len(history.Orders)),
		TotalSpend: history.TotalSpend,
	}
	for i, entry := range history.Orders {
		response.Orders[i] = customerOrderView{
			OrderID:        entry.OrderID,
			RestaurantName: entry.RestaurantName,
			Status:         entry.Status.String(),
			TotalPrice:     entry.TotalPrice,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableOrders handles GET /api/v1/couriers/:courierID/orders/available.
// Entries come back ranked by total trip distance, closest first.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	courierID, err := parseUUIDParam(ctx, "courierID")
	if err != nil {
		return writeBadRequest(ctx, "invalid courierID")
	}

	query, err := queries.NewAvailableOrdersQuery(courierID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	board, err := s.handlers.AvailableOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]availableOrderView, len(board))
	for i, entry := range board {
		response[i] = availableOrderView{
			OrderID:        entry.OrderID,
			RestaurantID:   entry.RestaurantID.String(),
			RestaurantName: entry.RestaurantName,
			TotalPrice:     entry.TotalPrice,
			TotalDistance:  entry.TotalDistance,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptOrder handles POST /api/v1/couriers/:courierID/orders/:orderID/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	courierID, err := parseUUIDParam(ctx, "courierID")
	if err != nil {
		return writeBadRequest(ctx, "invalid courierID")
	}
	orderID, err := parseOrderIDParam(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid orderID")
	}

	cmd, err := commands.NewAcceptOrderCommand(courierID, orderID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrder handles POST /api/v1/orders/:orderID/advance.
// The acting operator or courier identifies themselves in the body; the
// command decides which transition applies from the order's status.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := parseOrderIDParam(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid orderID")
	}

	var request advanceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	actorID, err := kernel.UUIDFromString(request.ActorID)
	if err != nil {
		return writeBadRequest(ctx, "invalid actorId")
	}

	cmd, err := commands.NewAdvanceOrderCommand(actorID, orderID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.handlers.AdvanceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
