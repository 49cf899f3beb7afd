package commands

import (
	"errors"

	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/pkg/errs"
	"arribaeats/internal/pkg/guard"
)

var ErrAddReviewCommandIsNotConstructed = errors.New(
	"AddReviewCommand must be created via NewAddReviewCommand constructor",
)

// AddReviewCommand represents a customer reviewing a restaurant with a
// rating between 1 and 5 and a comment.
type AddReviewCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	restaurantID kernel.UUID
	rating       int
	comment      string

	guard guard.ConstructorGuard
}

// NewAddReviewCommand creates a command to review a restaurant.
// The rating bounds are enforced when the review value object is built.
func NewAddReviewCommand(
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	rating int,
	comment string,
) (AddReviewCommand, error) {
	command := AddReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setRestaurantID(restaurantID),
		command.setComment(comment),
	); err != nil {
		return AddReviewCommand{}, err
	}

	command.rating = rating
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddReviewCommand) Validate() error {
	return c.guard.Validate(ErrAddReviewCommandIsNotConstructed)
}

// CustomerID returns the identifier of the reviewing customer.
func (c AddReviewCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the identifier of the reviewed restaurant.
func (c AddReviewCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Rating returns the given rating.
func (c AddReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the review comment.
func (c AddReviewCommand) Comment() string {
	return c.comment
}

func (c *AddReviewCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddReviewCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *AddReviewCommand) setComment(comment string) error {
	if comment == "" {
		return errs.NewValueIsRequiredError("comment")
	}

	c.comment = comment
	return nil
}
