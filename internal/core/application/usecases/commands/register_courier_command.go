package commands

import (
	"errors"

	"arribaeats/internal/core/domain/model/actor"
	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/pkg/errs"
	"arribaeats/internal/pkg/guard"
)

var ErrRegisterCourierCommandIsNotConstructed = errors.New(
	"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
)

// RegisterCourierCommand represents a request to register a new courier with
// their personal details, licence plate and starting location.
type RegisterCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	details   actor.Details
	plate     string
	location  kernel.Location

	guard guard.ConstructorGuard
}

// NewRegisterCourierCommand creates a command to register a new courier.
func NewRegisterCourierCommand(
	courierID kernel.UUID,
	details actor.Details,
	plate string,
	location kernel.Location,
) (RegisterCourierCommand, error) {
	command := RegisterCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setDetails(details),
		command.setPlate(plate),
	); err != nil {
		return RegisterCourierCommand{}, err
	}

	command.location = location
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}

// CourierID returns the identifier allocated for the new courier.
func (c RegisterCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Details returns the courier's personal details.
func (c RegisterCourierCommand) Details() actor.Details {
	return c.details
}

// Plate returns the courier's licence plate.
func (c RegisterCourierCommand) Plate() string {
	return c.plate
}

// Location returns the courier's starting location.
func (c RegisterCourierCommand) Location() kernel.Location {
	return c.location
}

func (c *RegisterCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *RegisterCourierCommand) setDetails(details actor.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}

func (c *RegisterCourierCommand) setPlate(plate string) error {
	if plate == "" {
		return errs.NewValueIsRequiredError("plate")
	}

	c.plate = plate
	return nil
}
