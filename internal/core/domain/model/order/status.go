package order

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an order status change is attempted
// out of order. The order's state is left unchanged.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Placed ──> Cooking ──> ReadyForPickup ──> BeingDelivered ──> Delivered
//	   │          │
//	   └──────────┴──────> Cancelled
//
// The forward chain is strictly linear with no skipping. Cancelled is an
// absorbing state reachable only before the order is ready for pickup.
//
// Status is a value object that validates state transitions and provides
// string representations for display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPlaced is the initial status when a customer creates an order.
	StatusPlaced

	// StatusCooking indicates the restaurant has started preparing the order.
	StatusCooking

	// StatusReadyForPickup indicates the order is cooked and waiting for a
	// courier. Orders in this status with no bound courier appear on the
	// dispatch board.
	StatusReadyForPickup

	// StatusBeingDelivered indicates a courier has accepted the order and is
	// delivering it.
	StatusBeingDelivered

	// StatusDelivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	StatusDelivered

	// StatusCancelled indicates the order was abandoned before pickup.
	// This is a final state with no further transitions allowed.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusPlaced:         "Placed",
		StatusCooking:        "Cooking",
		StatusReadyForPickup: "ReadyForPickup",
		StatusBeingDelivered: "BeingDelivered",
		StatusDelivered:      "Delivered",
		StatusCancelled:      "Cancelled",
	}
}

// getAllowedTransitions represents the order state flow as data.
// A status absent from the map is terminal.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPlaced:         {StatusCooking, StatusCancelled},
		StatusCooking:        {StatusReadyForPickup, StatusCancelled},
		StatusReadyForPickup: {StatusBeingDelivered},
		StatusBeingDelivered: {StatusDelivered},
	}
}

// Validate checks if the Status value is a defined, non-Unknown status.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return fmt.Errorf("%w: status is unknown", ErrInvalidTransition)
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidTransition, s)
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	_, ok := getAllowedTransitions()[s]
	return !ok
}

// CanTransitionTo reports whether the transition table allows moving from the
// current status to the target status.
func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range getAllowedTransitions()[s] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionTo returns the target status if the transition is allowed.
//
// Returns:
//   - (to, nil) on a valid transition
//   - (StatusUnknown, ErrInvalidTransition) otherwise; callers keep the
//     current status unchanged in that case
func (s Status) TransitionTo(to Status) (Status, error) {
	if !s.CanTransitionTo(to) {
		return StatusUnknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, to)
	}
	return to, nil
}

// Next returns the next status in the forward delivery chain.
// Cancellation is not part of the chain; terminal statuses have no next.
func (s Status) Next() (Status, error) {
	switch s {
	case StatusPlaced:
		return StatusCooking, nil
	case StatusCooking:
		return StatusReadyForPickup, nil
	case StatusReadyForPickup:
		return StatusBeingDelivered, nil
	case StatusBeingDelivered:
		return StatusDelivered, nil
	default:
		return StatusUnknown, fmt.Errorf("%w: %s has no next status", ErrInvalidTransition, s)
	}
}
