package http

import (
	"net/http"

	"arribaeats/internal/core/application/usecases/commands"
	"arribaeats/internal/core/application/usecases/queries"
	"arribaeats/internal/core/domain/model/actor"
	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/core/domain/model/restaurant"

	"github.com/labstack/echo/v4"
)

type registerCustomerRequest struct {
	Name     string          `json:"name"`
	Age      int             `json:"age"`
	Email    string          `json:"email"`
	Mobile   string          `json:"mobile"`
	Password string          `json:"password"`
	Location locationPayload `json:"location"`
}

type registerCourierRequest struct {
	registerCustomerRequest
	LicencePlate string `json:"licencePlate"`
}

type registerOperatorRequest struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Email      string `json:"email"`
	Mobile     string `json:"mobile"`
	Password   string `json:"password"`
	Restaurant struct {
		Name     string          `json:"name"`
		Style    string          `json:"style"`
		Location locationPayload `json:"location"`
	} `json:"restaurant"`
}

type registeredResponse struct {
	ID string `json:"id"`
}

type registeredOperatorResponse struct {
	OperatorID   string `json:"operatorId"`
	RestaurantID string `json:"restaurantId"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	ActorID string `json:"actorId"`
	Role    string `json:"role"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var request registerCustomerRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	details, err := actor.NewDetails(
		request.Name, request.Age, request.Email, request.Mobile, request.Password)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(
		customerID, details, kernel.NewLocation(request.Location.X, request.Location.Y))
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.handlers.RegisterCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, registeredResponse{ID: customerID.String()})
}

// RegisterCourier handles POST /api/v1/couriers.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	var request registerCourierRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	details, err := actor.NewDetails(
		request.Name, request.Age, request.Email, request.Mobile, request.Password)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	courierID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCourierCommand(
		courierID, details, request.LicencePlate,
		kernel.NewLocation(request.Location.X, request.Location.Y))
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.handlers.RegisterCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, registeredResponse{ID: courierID.String()})
}

// RegisterOperator handles POST /api/v1/operators.
// Registers the operator together with their restaurant.
func (s *Server) RegisterOperator(ctx echo.Context) error {
	var request registerOperatorRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	details, err := actor.NewDetails(
		request.Name, request.Age, request.Email, request.Mobile, request.Password)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	style, err := restaurant.ParseFoodStyle(request.Restaurant.Style)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	operatorID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewRegisterOperatorCommand(
		operatorID, restaurantID, details, request.Restaurant.Name, style,
		kernel.NewLocation(request.Restaurant.Location.X, request.Restaurant.Location.Y))
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.handlers.RegisterOperator.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, registeredOperatorResponse{
		OperatorID:   operatorID.String(),
		RestaurantID: restaurantID.String(),
	})
}

// Login handles POST /api/v1/login - authenticates any actor role.
func (s *Server) Login(ctx echo.Context) error {
	var request loginRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	query, err := queries.NewLoginQuery(request.Email, request.Password)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response, err := s.handlers.Login.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		ActorID: response.ActorID.String(),
		Role:    response.Role.String(),
		Name:    response.Name,
		Email:   response.Email,
	})
}
