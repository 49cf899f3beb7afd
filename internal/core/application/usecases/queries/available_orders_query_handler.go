package queries

import (
	"context"

	"arribaeats/internal/core/domain/services"
)

// AvailableOrdersQueryHandler builds the dispatch board for a courier.
// The board is advisory: an entry may be gone by the time the courier
// accepts, and the accept command re-checks everything.
type AvailableOrdersQueryHandler struct {
	uowFactory UoWFactory
}

// NewAvailableOrdersQueryHandler creates a handler for dispatch board queries.
func NewAvailableOrdersQueryHandler(uowFactory UoWFactory) AvailableOrdersQueryHandler {
	return AvailableOrdersQueryHandler{
		uowFactory: uowFactory,
	}
}

// Handle executes the dispatch board query.
func (h AvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query AvailableOrdersQuery,
) ([]AvailableOrdersQueryResponse, error) {
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

	courier, err := uow.ActorRepository().GetCourier(ctx, query.CourierID())
	if err != nil {
		return nil, err
	}

	ready, err := uow.OrderRepository().GetAllInReadyForPickupStatus(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(ready))
	candidates := make([]services.PickupCandidate, 0, len(ready))
	for _, o := range ready {
		venue, venueErr := uow.RestaurantRepository().Get(ctx, o.RestaurantID())
		if venueErr != nil {
			return nil, venueErr
		}
		customer, customerErr := uow.ActorRepository().GetCustomer(ctx, o.CustomerID())
		if customerErr != nil {
			return nil, customerErr
		}

		names[o.ID()] = venue.Name()
		candidates = append(candidates, services.PickupCandidate{
			Order:              o,
			RestaurantLocation: venue.Location(),
			CustomerLocation:   customer.Location(),
		})
	}

	ranked, err := services.NewDispatchBoard().RankAvailable(courier.Location(), candidates)
	if err != nil {
		return nil, err
	}

	board := make([]AvailableOrdersQueryResponse, 0, len(ranked))
	for _, entry := range ranked {
		board = append(board, AvailableOrdersQueryResponse{
			OrderID:        entry.Order.ID(),
			RestaurantID:   entry.Order.RestaurantID(),
			RestaurantName: names[entry.Order.ID()],
			TotalPrice:     entry.Order.TotalPrice(),
			TotalDistance:  entry.TotalDistance,
		})
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return board, nil
}
