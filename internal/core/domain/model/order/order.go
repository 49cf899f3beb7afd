package order

import (
	"errors"
	"fmt"
	"strings"

	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/core/domain/model/restaurant"
	"arribaeats/internal/pkg/errs"
	"arribaeats/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder constructor.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrEmptyOrder is returned when finalizing an order that has no items.
	// An order with zero items is never finalized.
	ErrEmptyOrder = errors.New("order has no items")

	// ErrOrderAlreadyFinalized is returned when modifying or re-finalizing an
	// order whose cart has already been committed.
	ErrOrderAlreadyFinalized = errors.New("order is already finalized")

	// ErrOrderNotFinalized is returned when the restaurant workflow touches an
	// order whose cart was never committed.
	ErrOrderNotFinalized = errors.New("order is not finalized")

	// ErrOrderAlreadyTaken is returned when a courier tries to accept an order
	// that already has a courier bound. This is also what the loser of an
	// accept race observes.
	ErrOrderAlreadyTaken = errors.New("order is already taken by a courier")

	// ErrCourierMismatch is returned when a courier other than the bound one
	// tries to advance the delivery.
	ErrCourierMismatch = errors.New("order is held by another courier")
)

// Line is one entry of an order's cart: a menu item and a positive quantity.
// Repeated additions of the same item accumulate into a single line.
type Line struct {
	item     restaurant.MenuItem
	quantity int
}

// Item returns the menu item of the line.
func (l Line) Item() restaurant.MenuItem {
	return l.item
}

// Quantity returns the accumulated quantity of the line.
func (l Line) Quantity() int {
	return l.quantity
}

// Subtotal returns price × quantity for the line.
func (l Line) Subtotal() float64 {
	return l.item.Price() * float64(l.quantity)
}

// Order is the aggregate root for one purchase. It is created by a customer
// against a restaurant, fills its cart line by line, and then moves through
// the delivery lifecycle governed by Status.
//
// Invariants:
//   - The identifier is positive and unique for the process lifetime
//   - Line quantities are always positive; a non-positive quantity request
//     is rejected, never stored
//   - The courier reference is write-once: once bound it never changes
//   - Status only changes through the transition methods below; an invalid
//     attempt returns ErrInvalidTransition and leaves the order untouched
//   - Total price is derived from the lines on every read
type Order struct {
	id           int64
	customerID   kernel.UUID
	restaurantID kernel.UUID
	courierID    *kernel.UUID
	lines        []Line
	status       Status
	finalized    bool

	guard guard.ConstructorGuard
}

// NewOrder creates an order in StatusPlaced with an empty, unfinalized cart.
// The order stays invisible to the restaurant workflow and to dispatch until
// it is finalized.
func NewOrder(id int64, customerID kernel.UUID, restaurantID kernel.UUID) (*Order, error) {
	if err := errors.Join(
		validateID(id),
		customerID.Validate(),
		restaurantID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:           id,
		customerID:   customerID,
		restaurantID: restaurantID,
		status:       StatusPlaced,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was created through the constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's sequential identifier.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the identifier of the restaurant the order targets.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// CourierID returns the identifier of the bound courier, or nil while the
// order has none.
func (o *Order) CourierID() *kernel.UUID {
	if o.courierID == nil {
		return nil
	}
	id := *o.courierID
	return &id
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// IsFinalized reports whether the cart has been committed.
func (o *Order) IsFinalized() bool {
	return o.finalized
}

// Lines returns a copy of the cart lines in insertion order.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// TotalPrice derives the order total: sum of item price × quantity over all
// lines. Recomputed on every read.
func (o *Order) TotalPrice() float64 {
	total := 0.0
	for _, line := range o.lines {
		total += line.Subtotal()
	}
	return total
}

// AddItem puts a quantity of a menu item into the cart.
// The quantity must be a positive integer; adding an item already in the cart
// accumulates its quantity rather than overwriting it. Items cannot be added
// once the cart is finalized.
func (o *Order) AddItem(item restaurant.MenuItem, quantity int) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if o.finalized {
		return ErrOrderAlreadyFinalized
	}

	for i, line := range o.lines {
		if strings.EqualFold(line.item.Name(), item.Name()) {
			o.lines[i].quantity += quantity
			return nil
		}
	}

	o.lines = append(o.lines, Line{item: item, quantity: quantity})
	return nil
}

// Finalize commits the cart, making the order visible to the restaurant
// workflow and, once ready, to dispatch. Finalizing an empty cart fails with
// ErrEmptyOrder; finalizing twice fails with ErrOrderAlreadyFinalized.
func (o *Order) Finalize() error {
	if o.finalized {
		return ErrOrderAlreadyFinalized
	}
	if len(o.lines) == 0 {
		return ErrEmptyOrder
	}
	o.finalized = true
	return nil
}

// StartCooking moves the order from Placed to Cooking.
// Only finalized orders enter the kitchen.
func (o *Order) StartCooking() error {
	if !o.finalized {
		return ErrOrderNotFinalized
	}
	return o.transition(StatusCooking)
}

// MarkReadyForPickup moves the order from Cooking to ReadyForPickup, making
// it visible on the dispatch board until a courier accepts it.
func (o *Order) MarkReadyForPickup() error {
	return o.transition(StatusReadyForPickup)
}

// AssignCourier binds a courier to the order and moves it from ReadyForPickup
// to BeingDelivered in one step: acceptance and departure are a single
// serialized action.
//
// The binding is write-once. If a courier is already bound the call fails
// with ErrOrderAlreadyTaken, which is what the loser of a concurrent accept
// race observes; the order is left unchanged.
func (o *Order) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID != nil {
		return ErrOrderAlreadyTaken
	}

	if err := o.transition(StatusBeingDelivered); err != nil {
		return err
	}

	o.courierID = &courierID
	return nil
}

// CompleteDelivery moves the order from BeingDelivered to Delivered.
// Only the bound courier may complete the delivery.
func (o *Order) CompleteDelivery(courierID kernel.UUID) error {
	if o.courierID == nil || !o.courierID.IsEqual(courierID) {
		return ErrCourierMismatch
	}
	return o.transition(StatusDelivered)
}

// Cancel moves the order to the absorbing Cancelled state.
// Allowed only from Placed or Cooking; once a cooked order is waiting for or
// under delivery it can no longer be cancelled.
func (o *Order) Cancel() error {
	return o.transition(StatusCancelled)
}

// transition applies the status change or returns ErrInvalidTransition,
// leaving the order unchanged on failure.
func (o *Order) transition(to Status) error {
	next, err := o.status.TransitionTo(to)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func validateID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}
