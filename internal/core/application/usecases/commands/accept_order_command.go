package commands

import (
	"errors"
	"fmt"

	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/pkg/errs"
	"arribaeats/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a courier claiming a ready-for-pickup order
// off the dispatch board.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	orderID   int64

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for a courier to accept an order.
func NewAcceptOrderCommand(courierID kernel.UUID, orderID int64) (AcceptOrderCommand, error) {
	command := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setOrderID(orderID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// CourierID returns the identifier of the accepting courier.
func (c AcceptOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}

// OrderID returns the identifier of the order being accepted.
func (c AcceptOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *AcceptOrderCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *AcceptOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}
