package actor

import (
	"errors"

	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when using a Customer that was not
// created via the NewCustomer constructor.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a registered client of the marketplace. Besides the shared
// Details record it carries a fixed location and an insertion-ordered,
// append-only history of the orders it has placed. Total spend is derived
// from those orders on read and never stored.
type Customer struct {
	id       kernel.UUID
	details  Details
	location kernel.Location
	orderIDs []int64

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer with a validated identity and details record.
func NewCustomer(id kernel.UUID, details Details, location kernel.Location) (*Customer, error) {
	if err := errors.Join(id.Validate(), details.Validate()); err != nil {
		return nil, err
	}

	return &Customer{
		id:       id,
		details:  details,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Customer was created through the constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Role returns RoleCustomer.
func (c *Customer) Role() Role {
	return RoleCustomer
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.details.Name()
}

// Email returns the customer's email as supplied at registration.
func (c *Customer) Email() string {
	return c.details.Email()
}

// Details returns the shared personal record.
func (c *Customer) Details() Details {
	return c.details
}

// Location returns the customer's delivery location.
func (c *Customer) Location() kernel.Location {
	return c.location
}

// AddOrder appends an order to the customer's history.
// The history is append-only and preserves insertion order.
func (c *Customer) AddOrder(orderID int64) {
	c.orderIDs = append(c.orderIDs, orderID)
}

// OrderIDs returns a copy of the customer's order history in insertion order.
func (c *Customer) OrderIDs() []int64 {
	ids := make([]int64, len(c.orderIDs))
	copy(ids, c.orderIDs)
	return ids
}
