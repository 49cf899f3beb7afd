package queries

import (
	"context"

	"arribaeats/internal/core/domain/model/order"
)

// MarketplaceStatsQueryHandler counts orders, actors and restaurants in one
// consistent snapshot.
type MarketplaceStatsQueryHandler struct {
	uowFactory UoWFactory
}

// NewMarketplaceStatsQueryHandler creates a handler for stats queries.
func NewMarketplaceStatsQueryHandler(uowFactory UoWFactory) MarketplaceStatsQueryHandler {
	return MarketplaceStatsQueryHandler{
		uowFactory: uowFactory,
	}
}

// Handle executes the stats query.
func (h MarketplaceStatsQueryHandler) Handle(
	ctx context.Context,
	query MarketplaceStatsQuery,
) (MarketplaceStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return MarketplaceStatsQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return MarketplaceStatsQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actors, err := uow.ActorRepository().CountByRole(ctx)
	if err != nil {
		return MarketplaceStatsQueryResponse{}, err
	}

	catalogue, err := uow.RestaurantRepository().GetAll(ctx)
	if err != nil {
		return MarketplaceStatsQueryResponse{}, err
	}

	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return MarketplaceStatsQueryResponse{}, err
	}

	response := MarketplaceStatsQueryResponse{
		OrdersByStatus: make(map[order.Status]int),
		ActorsByRole:   actors,
		Restaurants:    len(catalogue),
	}
	for _, o := range orders {
		response.OrdersByStatus[o.Status()]++
	}

	if err = uow.Commit(ctx); err != nil {
		return MarketplaceStatsQueryResponse{}, err
	}

	return response, nil
}
