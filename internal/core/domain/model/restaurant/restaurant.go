package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/pkg/errs"
	"arribaeats/internal/pkg/guard"
)

var (
	// ErrRestaurantIsNotConstructed is returned when using a Restaurant that was
	// not created via the NewRestaurant constructor.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

	// ErrMenuItemAlreadyExists is returned when adding a menu item whose name,
	// compared case-insensitively, is already on the menu.
	ErrMenuItemAlreadyExists = errors.New("menu item already exists")
)

// Restaurant is the aggregate root for one operator's venue. It owns the menu,
// the review sequence, and the append-only history of every order ever placed
// with it. All three sequences preserve insertion order and only ever grow.
//
// Invariants:
//   - Menu item names are unique within the restaurant, ignoring case
//   - The average rating is always sum(ratings)/count over the current
//     reviews, 0 when there are none; it is recomputed on every read and
//     never cached
//   - The order history never shrinks; the "active orders" working view is
//     derived elsewhere from order statuses, not stored here
type Restaurant struct {
	id         kernel.UUID
	name       string
	style      FoodStyle
	location   kernel.Location
	operatorID kernel.UUID
	menu       []MenuItem
	reviews    []Review
	orderIDs   []int64

	guard guard.ConstructorGuard
}

// NewRestaurant creates a restaurant with an empty menu, no reviews, and an
// empty order history.
func NewRestaurant(
	id kernel.UUID,
	name string,
	style FoodStyle,
	location kernel.Location,
	operatorID kernel.UUID,
) (*Restaurant, error) {
	if err := errors.Join(
		id.Validate(),
		validateName(name),
		style.Validate(),
		operatorID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Restaurant{
		id:         id,
		name:       name,
		style:      style,
		location:   location,
		operatorID: operatorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Restaurant was created through the constructor.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's name.
func (r *Restaurant) Name() string {
	return r.name
}

// Style returns the restaurant's cuisine style.
func (r *Restaurant) Style() FoodStyle {
	return r.style
}

// Location returns the restaurant's location.
func (r *Restaurant) Location() kernel.Location {
	return r.location
}

// OperatorID returns the identifier of the owning operator.
func (r *Restaurant) OperatorID() kernel.UUID {
	return r.operatorID
}

// AddMenuItem appends a new dish to the menu.
// Returns ErrMenuItemAlreadyExists when a dish with the same name, ignoring
// case, is already present. Items are never removed or changed afterwards.
func (r *Restaurant) AddMenuItem(name string, price float64) (MenuItem, error) {
	item, err := NewMenuItem(name, price)
	if err != nil {
		return MenuItem{}, err
	}

	if _, found := r.findMenuItem(name); found {
		return MenuItem{}, fmt.Errorf("%w: %q", ErrMenuItemAlreadyExists, name)
	}

	r.menu = append(r.menu, item)
	return item, nil
}

// MenuItemByName looks up a dish by name, ignoring case.
func (r *Restaurant) MenuItemByName(name string) (MenuItem, error) {
	if item, found := r.findMenuItem(name); found {
		return item, nil
	}
	return MenuItem{}, errs.NewObjectNotFoundError("menuItem", name)
}

// Menu returns a copy of the menu in insertion order.
func (r *Restaurant) Menu() []MenuItem {
	menu := make([]MenuItem, len(r.menu))
	copy(menu, r.menu)
	return menu
}

// AddOrder appends an order to the restaurant's permanent history.
func (r *Restaurant) AddOrder(orderID int64) {
	r.orderIDs = append(r.orderIDs, orderID)
}

// OrderIDs returns a copy of the full order history in insertion order.
// This history includes delivered and cancelled orders; callers derive any
// working view by filtering on order status.
func (r *Restaurant) OrderIDs() []int64 {
	ids := make([]int64, len(r.orderIDs))
	copy(ids, r.orderIDs)
	return ids
}

// AddReview appends a review to the restaurant's review sequence.
func (r *Restaurant) AddReview(review Review) error {
	if err := review.Validate(); err != nil {
		return err
	}
	r.reviews = append(r.reviews, review)
	return nil
}

// Reviews returns a copy of the review sequence in insertion order.
func (r *Restaurant) Reviews() []Review {
	reviews := make([]Review, len(r.reviews))
	copy(reviews, r.reviews)
	return reviews
}

// ReviewCount returns the number of reviews.
func (r *Restaurant) ReviewCount() int {
	return len(r.reviews)
}

// AverageRating recomputes the mean star rating from the current reviews.
// Returns 0 when the restaurant has no reviews. The value is derived on
// every call so it can never go stale against its source sequence.
func (r *Restaurant) AverageRating() float64 {
	if len(r.reviews) == 0 {
		return 0
	}

	sum := 0
	for _, review := range r.reviews {
		sum += review.Rating()
	}
	return float64(sum) / float64(len(r.reviews))
}

func (r *Restaurant) findMenuItem(name string) (MenuItem, bool) {
	for _, item := range r.menu {
		if strings.EqualFold(item.Name(), name) {
			return item, true
		}
	}
	return MenuItem{}, false
}

func validateName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	return nil
}
