package http

import (
	"net/http"

	"arribaeats/internal/core/application/usecases/commands"
	"arribaeats/internal/core/application/usecases/queries"
	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

type restaurantView struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Style         string          `json:"style"`
	Location      locationPayload `json:"location"`
	Distance      float64         `json:"distance"`
	AverageRating float64         `json:"averageRating"`
	ReviewCount   int             `json:"reviewCount"`
}

type addMenuItemRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type addReviewRequest struct {
	RestaurantID string `json:"restaurantId"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

// GetRestaurants handles GET /api/v1/customers/:customerID/restaurants.
// The sort query parameter selects the ordering; Name is the default.
func (s *Server) GetRestaurants(ctx echo.Context) error {
	customerID, err := parseUUIDParam(ctx, "customerID")
	if err != nil {
		return writeBadRequest(ctx, "invalid customerID")
	}

	strategy := services.SortByName
	if name := ctx.QueryParam("sort"); name != "" {
		parsed, err := services.ParseSortStrategy(name)
		if err != nil {
			return writeDomainError(ctx, err)
		}
		strategy = parsed
	}

	query, err := queries.NewSortedRestaurantsQuery(customerID, strategy)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	views, err := s.handlers.SortedRestaurants.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]restaurantView, len(views))
	for i, view := range views {
		response[i] = restaurantView{
			ID:            view.ID.String(),
			Name:          view.Name,
			Style:         view.Style.String(),
			Location:      locationPayload{X: view.Location.X(), Y: view.Location.Y()},
			Distance:      view.Distance,
			AverageRating: view.AverageRating,
			ReviewCount:   view.ReviewCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddMenuItem handles POST /api/v1/operators/:operatorID/menu.
// Operators can only stock their own restaurant's menu.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	operatorID, err := parseUUIDParam(ctx, "operatorID")
	if err != nil {
		return writeBadRequest(ctx, "invalid operatorID")
	}

	var request addMenuItemRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAddMenuItemCommand(operatorID, request.Name, request.Price)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.handlers.AddMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AddReview handles POST /api/v1/customers/:customerID/reviews.
func (s *Server) AddReview(ctx echo.Context) error {
	customerID, err := parseUUIDParam(ctx, "customerID")
	if err != nil {
		return writeBadRequest(ctx, "invalid customerID")
	}

	var request addReviewRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return writeBadRequest(ctx, "invalid restaurantId")
	}

	cmd, err := commands.NewAddReviewCommand(customerID, restaurantID, request.Rating, request.Comment)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.handlers.AddReview.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}
