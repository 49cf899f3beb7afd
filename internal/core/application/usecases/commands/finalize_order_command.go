package commands

import (
	"errors"
	"fmt"

	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/pkg/errs"
	"arribaeats/internal/pkg/guard"
)

var ErrFinalizeOrderCommandIsNotConstructed = errors.New(
	"FinalizeOrderCommand must be created via NewFinalizeOrderCommand constructor",
)

// FinalizeOrderCommand represents a customer committing an order's cart,
// making it visible to the restaurant workflow.
type FinalizeOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	orderID    int64

	guard guard.ConstructorGuard
}

// NewFinalizeOrderCommand creates a command to finalize an order.
func NewFinalizeOrderCommand(customerID kernel.UUID, orderID int64) (FinalizeOrderCommand, error) {
	command := FinalizeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setOrderID(orderID),
	); err != nil {
		return FinalizeOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c FinalizeOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeOrderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the finalizing customer.
func (c FinalizeOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// OrderID returns the identifier of the order being finalized.
func (c FinalizeOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *FinalizeOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *FinalizeOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}
