package actor

import (
	"errors"
	"fmt"

	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/pkg/errs"
	"arribaeats/internal/pkg/guard"
)

var (
	// ErrCourierIsNotConstructed is returned when using a Courier that was not
	// created via the NewCourier constructor.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

	// ErrCourierBusy is returned when a courier that already holds an in-flight
	// order tries to take another one. A courier carries at most one order.
	ErrCourierBusy = errors.New("courier already has an active order")
)

// Courier is a registered deliverer. It holds a vehicle plate, a mutable
// current location that moves with dispatch events, and an exclusive slot for
// at most one in-flight order.
//
// The active-order slot and the order's courier reference are kept consistent
// by the dispatch use cases: they are always set together when an order is
// accepted and cleared together when it is delivered.
type Courier struct {
	id            kernel.UUID
	details       Details
	plate         string
	location      kernel.Location
	activeOrderID *int64

	guard guard.ConstructorGuard
}

// NewCourier creates a courier with a validated identity, details record, and
// vehicle plate.
func NewCourier(id kernel.UUID, details Details, plate string, location kernel.Location) (*Courier, error) {
	if err := errors.Join(
		id.Validate(),
		details.Validate(),
		validatePlate(plate),
	); err != nil {
		return nil, err
	}

	return &Courier{
		id:       id,
		details:  details,
		plate:    plate,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Courier was created through the constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Role returns RoleCourier.
func (c *Courier) Role() Role {
	return RoleCourier
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.details.Name()
}

// Email returns the courier's email as supplied at registration.
func (c *Courier) Email() string {
	return c.details.Email()
}

// Details returns the shared personal record.
func (c *Courier) Details() Details {
	return c.details
}

// Plate returns the courier's vehicle plate identifier.
func (c *Courier) Plate() string {
	return c.plate
}

// Location returns the courier's current location.
func (c *Courier) Location() kernel.Location {
	return c.location
}

// SetLocation moves the courier. Called on dispatch events: to the restaurant
// when an order is accepted, to the customer when it is delivered.
func (c *Courier) SetLocation(location kernel.Location) {
	c.location = location
}

// ActiveOrderID returns the identifier of the in-flight order, or nil when the
// courier is free.
func (c *Courier) ActiveOrderID() *int64 {
	if c.activeOrderID == nil {
		return nil
	}
	id := *c.activeOrderID
	return &id
}

// IsBusy reports whether the courier currently holds an in-flight order.
func (c *Courier) IsBusy() bool {
	return c.activeOrderID != nil
}

// TakeOrder claims the courier's exclusive order slot.
// Returns ErrCourierBusy if the slot is already occupied.
func (c *Courier) TakeOrder(orderID int64) error {
	if c.activeOrderID != nil {
		return ErrCourierBusy
	}
	c.activeOrderID = &orderID
	return nil
}

// ReleaseOrder clears the active-order slot after a delivery completes.
// The released order must match the one currently held.
func (c *Courier) ReleaseOrder(orderID int64) error {
	if c.activeOrderID == nil || *c.activeOrderID != orderID {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("order %d is not held by courier %s", orderID, c.id))
	}
	c.activeOrderID = nil
	return nil
}

func validatePlate(plate string) error {
	if plate == "" {
		return errs.NewValueIsRequiredError("plate")
	}
	return nil
}
