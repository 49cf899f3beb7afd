package commands

import (
	"errors"
	"fmt"

	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/pkg/errs"
	"arribaeats/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand represents a customer's request to put a quantity of a
// menu item into an open order's cart.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	orderID    int64
	itemName   string
	quantity   int

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to add an item to an order.
// The item is referenced by menu name; quantity must be positive.
func NewAddOrderItemCommand(
	customerID kernel.UUID,
	orderID int64,
	itemName string,
	quantity int,
) (AddOrderItemCommand, error) {
	command := AddOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setOrderID(orderID),
		command.setItemName(itemName),
		command.setQuantity(quantity),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer making the change.
func (c AddOrderItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// OrderID returns the identifier of the order being changed.
func (c AddOrderItemCommand) OrderID() int64 {
	return c.orderID
}

// ItemName returns the menu name of the requested item.
func (c AddOrderItemCommand) ItemName() string {
	return c.itemName
}

// Quantity returns the requested quantity.
func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddOrderItemCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddOrderItemCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setItemName(itemName string) error {
	if itemName == "" {
		return errs.NewValueIsRequiredError("itemName")
	}

	c.itemName = itemName
	return nil
}

func (c *AddOrderItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}
