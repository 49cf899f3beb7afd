package commands

import (
	"context"

	"arribaeats/internal/core/domain/model/actor"
)

// RegisterCustomerCommandHandler handles the business logic for customer
// registration. Email uniqueness is enforced by the repository across every
// role while the unit of work is open.
type RegisterCustomerCommandHandler struct {
	uowFactory ActorUoWFactory
}

// NewRegisterCustomerCommandHandler creates a handler for customer registration.
func NewRegisterCustomerCommandHandler(uowFactory ActorUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer registration command.
// Returns actor.ErrEmailAlreadyInUse if the email is registered under any role.
func (h RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	customer, err := actor.NewCustomer(cmd.CustomerID(), cmd.Details(), cmd.Location())
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

	if err = uow.ActorRepository().AddCustomer(ctx, customer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
