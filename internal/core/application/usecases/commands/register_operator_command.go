package commands

import (
	"errors"

	"arribaeats/internal/core/domain/model/actor"
	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/core/domain/model/restaurant"
	"arribaeats/internal/pkg/errs"
	"arribaeats/internal/pkg/guard"
)

var ErrRegisterOperatorCommandIsNotConstructed = errors.New(
	"RegisterOperatorCommand must be created via NewRegisterOperatorCommand constructor",
)

// RegisterOperatorCommand represents a request to register a restaurant
// operator together with the restaurant they run. The two are created
// atomically: an operator never exists without a restaurant.
type RegisterOperatorCommand struct { //nolint:recvcheck //using for validation
	operatorID   kernel.UUID
	restaurantID kernel.UUID
	details      actor.Details

	restaurantName     string
	style              restaurant.FoodStyle
	restaurantLocation kernel.Location

	guard guard.ConstructorGuard
}

// NewRegisterOperatorCommand creates a command to register an operator and
// their restaurant. The caller allocates both identifiers.
func NewRegisterOperatorCommand(
	operatorID kernel.UUID,
	restaurantID kernel.UUID,
	details actor.Details,
	restaurantName string,
	style restaurant.FoodStyle,
	restaurantLocation kernel.Location,
) (RegisterOperatorCommand, error) {
	command := RegisterOperatorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOperatorID(operatorID),
		command.setRestaurantID(restaurantID),
		command.setDetails(details),
		command.setRestaurantName(restaurantName),
		command.setStyle(style),
	); err != nil {
		return RegisterOperatorCommand{}, err
	}

	command.restaurantLocation = restaurantLocation
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterOperatorCommand) Validate() error {
	return c.guard.Validate(ErrRegisterOperatorCommandIsNotConstructed)
}

// OperatorID returns the identifier allocated for the new operator.
func (c RegisterOperatorCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

// RestaurantID returns the identifier allocated for the new restaurant.
func (c RegisterOperatorCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Details returns the operator's personal details.
func (c RegisterOperatorCommand) Details() actor.Details {
	return c.details
}

// RestaurantName returns the name of the restaurant being registered.
func (c RegisterOperatorCommand) RestaurantName() string {
	return c.restaurantName
}

// Style returns the restaurant's cuisine style.
func (c RegisterOperatorCommand) Style() restaurant.FoodStyle {
	return c.style
}

// RestaurantLocation returns the restaurant's location.
func (c RegisterOperatorCommand) RestaurantLocation() kernel.Location {
	return c.restaurantLocation
}

func (c *RegisterOperatorCommand) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}

	c.operatorID = operatorID
	return nil
}

func (c *RegisterOperatorCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *RegisterOperatorCommand) setDetails(details actor.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}

func (c *RegisterOperatorCommand) setRestaurantName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("restaurantName")
	}

	c.restaurantName = name
	return nil
}

func (c *RegisterOperatorCommand) setStyle(style restaurant.FoodStyle) error {
	if err := style.Validate(); err != nil {
		return err
	}

	c.style = style
	return nil
}
