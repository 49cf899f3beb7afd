package commands

import (
	"errors"
	"fmt"

	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/pkg/errs"
	"arribaeats/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand represents a request to push an order one step forward
// in its lifecycle. Who may advance depends on where the order stands: the
// restaurant's operator while it is Placed or Cooking, the bound courier while
// it is BeingDelivered.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	orderID int64

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order.
func NewAdvanceOrderCommand(actorID kernel.UUID, orderID int64) (AdvanceOrderCommand, error) {
	command := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActorID(actorID),
		command.setOrderID(orderID),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// ActorID returns the identifier of the operator or courier advancing the order.
func (c AdvanceOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// OrderID returns the identifier of the order being advanced.
func (c AdvanceOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *AdvanceOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *AdvanceOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}
