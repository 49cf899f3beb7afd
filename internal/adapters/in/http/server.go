// Package http exposes the marketplace use cases over a JSON API.
// Handlers translate transport concerns only; every rule lives in the
// command and query handlers they delegate to.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"arribaeats/internal/core/application/usecases/commands"
	"arribaeats/internal/core/application/usecases/queries"
	"arribaeats/internal/core/domain/model/actor"
	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/core/domain/model/order"
	"arribaeats/internal/core/domain/model/restaurant"
	"arribaeats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// Handlers bundles every use case the API exposes.
type Handlers struct {
	RegisterCustomer commands.RegisterCustomerCommandHandler
	RegisterCourier  commands.RegisterCourierCommandHandler
	RegisterOperator commands.RegisterOperatorCommandHandler
	AddMenuItem      commands.AddMenuItemCommandHandler
	CreateOrder      commands.CreateOrderCommandHandler
	AddOrderItem     commands.AddOrderItemCommandHandler
	FinalizeOrder    commands.FinalizeOrderCommandHandler
	CancelOrder      commands.CancelOrderCommandHandler
	AdvanceOrder     commands.AdvanceOrderCommandHandler
	AcceptOrder      commands.AcceptOrderCommandHandler
	AddReview        commands.AddReviewCommandHandler

	Login             queries.LoginQueryHandler
	SortedRestaurants queries.SortedRestaurantsQueryHandler
	AvailableOrders   queries.AvailableOrdersQueryHandler
	CustomerOrders    queries.CustomerOrdersQueryHandler
	MarketplaceStats  queries.MarketplaceStatsQueryHandler
}

// NewServer creates an HTTP server delegating to the supplied handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/customers", s.RegisterCustomer)
	v1.POST("/couriers", s.RegisterCourier)
	v1.POST("/operators", s.RegisterOperator)
	v1.POST("/login", s.Login)

	v1.GET("/customers/:customerID/restaurants", s.GetRestaurants)
	v1.POST("/customers/:customerID/orders", s.CreateOrder)
	v1.GET("/customers/:customerID/orders", s.GetCustomerOrders)
	v1.POST("/customers/:customerID/orders/:orderID/items", s.AddOrderItem)
	v1.POST("/customers/:customerID/orders/:orderID/finalize", s.FinalizeOrder)
	v1.POST("/customers/:customerID/orders/:orderID/cancel", s.CancelOrder)
	v1.POST("/customers/:customerID/reviews", s.AddReview)

	v1.POST("/operators/:operatorID/menu", s.AddMenuItem)

	v1.GET("/couriers/:courierID/orders/available", s.GetAvailableOrders)
	v1.POST("/couriers/:courierID/orders/:orderID/accept", s.AcceptOrder)

	v1.POST("/orders/:orderID/advance", s.AdvanceOrder)

	v1.GET("/stats", s.GetStats)
}

// GetStats handles GET /api/v1/stats - retrieves marketplace-wide counters.
func (s *Server) GetStats(ctx echo.Context) error {
	response, err := s.handlers.MarketplaceStats.Handle(
		ctx.Request().Context(), queries.NewMarketplaceStatsQuery())
	if err != nil {
		return writeDomainError(ctx, err)
	}

	orders := make(map[string]int, len(response.OrdersByStatus))
	for status, count := range response.OrdersByStatus {
		orders[status.String()] = count
	}
	actors := make(map[string]int, len(response.ActorsByRole))
	for role, count := range response.ActorsByRole {
		actors[role.String()] = count
	}

	return ctx.JSON(http.StatusOK, statsResponse{
		Orders:      orders,
		Actors:      actors,
		Restaurants: response.Restaurants,
	})
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type locationPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type statsResponse struct {
	Orders      map[string]int `json:"orders"`
	Actors      map[string]int `json:"actors"`
	Restaurants int            `json:"restaurants"`
}

// writeDomainError maps application errors onto HTTP status codes.
// Unrecognized errors are reported as internal.
func writeDomainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, queries.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, actor.ErrEmailAlreadyInUse),
		errors.Is(err, actor.ErrCourierBusy),
		errors.Is(err, order.ErrOrderAlreadyTaken),
		errors.Is(err, order.ErrOrderAlreadyFinalized),
		errors.Is(err, order.ErrOrderNotFinalized),
		errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, order.ErrCourierMismatch),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, restaurant.ErrMenuItemAlreadyExists),
		errors.Is(err, commands.ErrNotOrderOwner),
		errors.Is(err, commands.ErrNotRestaurantOperator):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, errorResponse{Code: code, Message: err.Error()})
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func parseUUIDParam(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func parseOrderIDParam(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("orderID"), 10, 64)
}
