package commands

import (
	"context"

	"arribaeats/internal/core/domain/model/actor"
	"arribaeats/internal/core/domain/model/restaurant"
)

// RegisterOperatorCommandHandler handles operator registration.
// The operator and their restaurant are created within one unit of work, so
// either both become visible or neither does. Both aggregates are constructed
// and validated before the first write; the only write that can fail is the
// email uniqueness check, which runs first.
type RegisterOperatorCommandHandler struct {
	uowFactory CatalogueUoWFactory
}

// NewRegisterOperatorCommandHandler creates a handler for operator registration.
func NewRegisterOperatorCommandHandler(uowFactory CatalogueUoWFactory) RegisterOperatorCommandHandler {
	return RegisterOperatorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the operator registration command.
// Returns actor.ErrEmailAlreadyInUse if the email is registered under any role.
func (h RegisterOperatorCommandHandler) Handle(ctx context.Context, cmd RegisterOperatorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	operator, err := actor.NewOperator(cmd.OperatorID(), cmd.Details(), cmd.RestaurantID())
	if err != nil {
		return err
	}

	venue, err := restaurant.NewRestaurant(
		cmd.RestaurantID(),
		cmd.RestaurantName(),
		cmd.Style(),
		cmd.RestaurantLocation(),
		cmd.OperatorID(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ActorRepository().AddOperator(ctx, operator); err != nil {
		return err
	}

	if err = uow.RestaurantRepository().Add(ctx, venue); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
