package queries

import (
	"context"

	"arribaeats/internal/core/domain/model/order"
)

// CustomerOrdersQueryHandler serves a customer's order history. Spend is
// derived from the orders on every read, never stored.
type CustomerOrdersQueryHandler struct {
	uowFactory UoWFactory
}

// NewCustomerOrdersQueryHandler creates a handler for order history queries.
func NewCustomerOrdersQueryHandler(uowFactory UoWFactory) CustomerOrdersQueryHandler {
	return CustomerOrdersQueryHandler{
		uowFactory: uowFactory,
	}
}

// Handle executes the order history query.
func (h CustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query CustomerOrdersQuery,
) (CustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerOrdersQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CustomerOrdersQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ActorRepository().GetCustomer(ctx, query.CustomerID()); err != nil {
		return CustomerOrdersQueryResponse{}, err
	}

	owned, err := uow.OrderRepository().GetAllByCustomer(ctx, query.CustomerID())
	if err != nil {
		return CustomerOrdersQueryResponse{}, err
	}

	response := CustomerOrdersQueryResponse{
		Orders: make([]CustomerOrderView, 0, len(owned)),
	}
	for _, o := range owned {
		venue, venueErr := uow.RestaurantRepository().Get(ctx, o.RestaurantID())
		if venueErr != nil {
			return CustomerOrdersQueryResponse{}, venueErr
		}

		response.Orders = append(response.Orders, CustomerOrderView{
			OrderID:        o.ID(),
			RestaurantName: venue.Name(),
			Status:         o.Status(),
			TotalPrice:     o.TotalPrice(),
		})

		if o.Status() != order.StatusCancelled {
			response.TotalSpend += o.TotalPrice()
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return CustomerOrdersQueryResponse{}, err
	}

	return response, nil
}
