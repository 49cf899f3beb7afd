package commands

import (
	"context"

	"arribaeats/internal/core/domain/model/actor"
)

// RegisterCourierCommandHandler handles the business logic for courier
// registration.
type RegisterCourierCommandHandler struct {
	uowFactory ActorUoWFactory
}

// NewRegisterCourierCommandHandler creates a handler for courier registration.
func NewRegisterCourierCommandHandler(uowFactory ActorUoWFactory) RegisterCourierCommandHandler {
	return RegisterCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier registration command.
// Returns actor.ErrEmailAlreadyInUse if the email is registered under any role.
func (h RegisterCourierCommandHandler) Handle(ctx context.Context, cmd RegisterCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	courier, err := actor.NewCourier(cmd.CourierID(), cmd.Details(), cmd.Plate(), cmd.Location())
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

	if err = uow.ActorRepository().AddCourier(ctx, courier); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
