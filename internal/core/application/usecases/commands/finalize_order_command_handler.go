package commands

import (
	"context"
)

// FinalizeOrderCommandHandler handles cart finalization. An empty cart is
// rejected with order.ErrEmptyOrder; a second finalize fails.
type FinalizeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFinalizeOrderCommandHandler creates a handler for order finalization.
func NewFinalizeOrderCommandHandler(uowFactory OrderUoWFactory) FinalizeOrderCommandHandler {
	return FinalizeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the finalize command.
func (h FinalizeOrderCommandHandler) Handle(ctx context.Context, cmd FinalizeOrderCommand) error {
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

	if err = o.Finalize(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
