package commands

import (
	"errors"

	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/pkg/errs"
	"arribaeats/internal/pkg/guard"
)

var ErrAddMenuItemCommandIsNotConstructed = errors.New(
	"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
)

// AddMenuItemCommand represents an operator adding an item to their own
// restaurant's menu. Name and price bounds are enforced by the aggregate.
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	operatorID kernel.UUID
	name       string
	price      float64

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a menu item.
func NewAddMenuItemCommand(operatorID kernel.UUID, name string, price float64) (AddMenuItemCommand, error) {
	command := AddMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOperatorID(operatorID),
		command.setName(name),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	command.price = price
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// OperatorID returns the identifier of the operator adding the item.
func (c AddMenuItemCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

// Name returns the menu name of the new item.
func (c AddMenuItemCommand) Name() string {
	return c.name
}

// Price returns the price of the new item.
func (c AddMenuItemCommand) Price() float64 {
	return c.price
}

func (c *AddMenuItemCommand) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}

	c.operatorID = operatorID
	return nil
}

func (c *AddMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
