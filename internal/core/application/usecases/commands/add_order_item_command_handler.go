package commands

import (
	"context"
	"errors"
)

// ErrNotOrderOwner is returned when a customer tries to change an order that
// another customer placed. Shared by every customer-scoped order command.
var ErrNotOrderOwner = errors.New("order belongs to another customer")

// AddOrderItemCommandHandler handles adding menu items to an open order.
// The item must exist on the menu of the restaurant the order targets;
// repeated additions accumulate in the cart.
type AddOrderItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for cart additions.
func NewAddOrderItemCommandHandler(uowFactory UoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-item command.
func (h AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !o.CustomerID().IsEqual(cmd.CustomerID()) {
		return ErrNotOrderOwner
	}

	venue, err := uow.RestaurantRepository().Get(ctx, o.RestaurantID())
	if err != nil {
		return err
	}

	item, err := venue.MenuItemByName(cmd.ItemName())
	if err != nil {
		return err
	}

	if err = o.AddItem(item, cmd.Quantity()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
