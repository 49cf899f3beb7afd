package commands

import (
	"context"
	"errors"

	"arribaeats/internal/core/domain/model/order"
)

// ErrNotRestaurantOperator is returned when an operator tries to advance an
// order placed with a restaurant they do not run.
var ErrNotRestaurantOperator = errors.New("order belongs to another restaurant")

// AdvanceOrderCommandHandler advances an order one lifecycle step.
//
// Which actor is authorized follows from the order's status:
//   - Placed: the restaurant's operator starts cooking (requires a finalized cart)
//   - Cooking: the restaurant's operator marks the order ready for pickup
//   - BeingDelivered: the bound courier completes the delivery, which frees
//     the courier's active slot and moves them to the customer's location
//
// ReadyForPickup is not advanced here: leaving it is the accept action and
// belongs to AcceptOrderCommandHandler.
type AdvanceOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAdvanceOrderCommandHandler creates a handler for advancing orders.
func NewAdvanceOrderCommandHandler(uowFactory UoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advance command.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	switch o.Status() {
	case order.StatusPlaced, order.StatusCooking:
		err = h.advanceAsOperator(ctx, uow, cmd, o)
	case order.StatusBeingDelivered:
		err = h.advanceAsCourier(ctx, uow, cmd, o)
	default:
		return order.ErrInvalidTransition
	}
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h AdvanceOrderCommandHandler) advanceAsOperator(
	ctx context.Context, uow UoW, cmd AdvanceOrderCommand, o *order.Order,
) error {
	operator, err := uow.ActorRepository().GetOperator(ctx, cmd.ActorID())
	if err != nil {
		return err
	}
	if !operator.RestaurantID().IsEqual(o.RestaurantID()) {
		return ErrNotRestaurantOperator
	}

	if o.Status() == order.StatusPlaced {
		return o.StartCooking()
	}
	return o.MarkReadyForPickup()
}

func (h AdvanceOrderCommandHandler) advanceAsCourier(
	ctx context.Context, uow UoW, cmd AdvanceOrderCommand, o *order.Order,
) error {
	courier, err := uow.ActorRepository().GetCourier(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	if err = o.CompleteDelivery(courier.ID()); err != nil {
		return err
	}

	if err = courier.ReleaseOrder(o.ID()); err != nil {
		return err
	}

	customer, err := uow.ActorRepository().GetCustomer(ctx, o.CustomerID())
	if err != nil {
		return err
	}
	courier.SetLocation(customer.Location())

	return uow.ActorRepository().UpdateCourier(ctx, courier)
}
