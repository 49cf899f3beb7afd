package commands

import (
	"context"

	"arribaeats/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles order creation. The identifier comes from
// the order repository's sequence, so it is returned to the caller rather
// than supplied with the command.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the new order's
// identifier. The customer and restaurant must both exist; the order is
// recorded on both so their histories stay navigable.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := uow.ActorRepository().GetCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return 0, err
	}

	venue, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return 0, err
	}

	orderRepo := uow.OrderRepository()
	orderID, err := orderRepo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	newOrder, err := order.NewOrder(orderID, customer.ID(), venue.ID())
	if err != nil {
		return 0, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return 0, err
	}

	customer.AddOrder(orderID)
	if err = uow.ActorRepository().UpdateCustomer(ctx, customer); err != nil {
		return 0, err
	}

	venue.AddOrder(orderID)
	if err = uow.RestaurantRepository().Update(ctx, venue); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return orderID, nil
}
