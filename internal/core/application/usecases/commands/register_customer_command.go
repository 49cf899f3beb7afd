package commands

import (
	"errors"

	"arribaeats/internal/core/domain/model/actor"
	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand represents a request to register a new customer
// with their personal details and delivery location.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	details    actor.Details
	location   kernel.Location

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a new customer.
// The caller allocates the identifier; details carry the validated personal
// data including the login email and secret.
func NewRegisterCustomerCommand(
	customerID kernel.UUID,
	details actor.Details,
	location kernel.Location,
) (RegisterCustomerCommand, error) {
	command := RegisterCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setDetails(details),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	command.location = location
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier allocated for the new customer.
func (c RegisterCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Details returns the customer's personal details.
func (c RegisterCustomerCommand) Details() actor.Details {
	return c.details
}

// Location returns the customer's delivery location.
func (c RegisterCustomerCommand) Location() kernel.Location {
	return c.location
}

func (c *RegisterCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RegisterCustomerCommand) setDetails(details actor.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}
