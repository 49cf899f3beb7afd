package commands

import (
	"context"
)

// AddMenuItemCommandHandler handles menu changes. The target restaurant is
// resolved from the operator, so an operator can only ever stock their own
// menu. Duplicate names are rejected ignoring case.
type AddMenuItemCommandHandler struct {
	uowFactory CatalogueUoWFactory
}

// NewAddMenuItemCommandHandler creates a handler for menu additions.
func NewAddMenuItemCommandHandler(uowFactory CatalogueUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-menu-item command.
func (h AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) error {
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

	operator, err := uow.ActorRepository().GetOperator(ctx, cmd.OperatorID())
	if err != nil {
		return err
	}

	venue, err := uow.RestaurantRepository().Get(ctx, operator.RestaurantID())
	if err != nil {
		return err
	}

	if _, err = venue.AddMenuItem(cmd.Name(), cmd.Price()); err != nil {
		return err
	}

	if err = uow.RestaurantRepository().Update(ctx, venue); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
