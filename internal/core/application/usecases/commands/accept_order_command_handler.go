package commands

import (
	"context"

	"arribaeats/internal/core/domain/model/actor"
)

// AcceptOrderCommandHandler handles a courier accepting an order.
// Acceptance and departure are one serialized action: the courier binds to
// the order, the order moves to BeingDelivered, and the courier relocates to
// the restaurant, all within a single unit of work. Under concurrency exactly
// one courier wins; every other accept of the same order observes
// order.ErrOrderAlreadyTaken.
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory UoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accept command.
// Fails with actor.ErrCourierBusy if the courier already carries an order and
// with order.ErrOrderAlreadyTaken if another courier holds this one.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	courier, err := uow.ActorRepository().GetCourier(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// Guard both sides before mutating either: the rollback of the in-memory
	// unit releases the lock without undoing writes, so a failed accept must
	// not leave a half-claimed order or courier behind.
	if courier.IsBusy() {
		return actor.ErrCourierBusy
	}
	if err = o.AssignCourier(courier.ID()); err != nil {
		return err
	}
	if err = courier.TakeOrder(o.ID()); err != nil {
		return err
	}

	venue, err := uow.RestaurantRepository().Get(ctx, o.RestaurantID())
	if err != nil {
		return err
	}
	courier.SetLocation(venue.Location())

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}
	if err = uow.ActorRepository().UpdateCourier(ctx, courier); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
