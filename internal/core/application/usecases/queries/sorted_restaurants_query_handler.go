package queries

import (
	"context"

	"arribaeats/internal/core/domain/services"
)

// SortedRestaurantsQueryHandler serves the customer-facing catalogue.
// The whole read runs inside one unit of work so the sort and the per-entry
// figures come from the same snapshot.
type SortedRestaurantsQueryHandler struct {
	uowFactory CatalogueUoWFactory
}

// NewSortedRestaurantsQueryHandler creates a handler for catalogue queries.
func NewSortedRestaurantsQueryHandler(uowFactory CatalogueUoWFactory) SortedRestaurantsQueryHandler {
	return SortedRestaurantsQueryHandler{
		uowFactory: uowFactory,
	}
}

// Handle executes the catalogue query.
func (h SortedRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query SortedRestaurantsQuery,
) ([]SortedRestaurantsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := uow.ActorRepository().GetCustomer(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}

	catalogue, err := uow.RestaurantRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sorted, err := services.SortRestaurants(catalogue, customer.Location(), query.Strategy())
	if err != nil {
		return nil, err
	}

	views := make([]SortedRestaurantsQueryResponse, 0, len(sorted))
	for _, venue := range sorted {
		views = append(views, SortedRestaurantsQueryResponse{
			ID:            venue.ID(),
			Name:          venue.Name(),
			Style:         venue.Style(),
			Location:      venue.Location(),
			Distance:      venue.Location().Distance(customer.Location()),
			AverageRating: venue.AverageRating(),
			ReviewCount:   venue.ReviewCount(),
		})
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return views, nil
}
