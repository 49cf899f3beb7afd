package restaurant

import (
	"errors"

	"arribaeats/internal/pkg/errs"
	"arribaeats/internal/pkg/guard"
)

const (
	// MinMenuItemPrice is the lowest accepted menu item price.
	MinMenuItemPrice = 0.01
	// MaxMenuItemPrice is the highest accepted menu item price.
	MaxMenuItemPrice = 999.99
)

// ErrMenuItemIsNotConstructed is returned when using a MenuItem that was not
// created via the NewMenuItem constructor.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem is a dish on a restaurant's menu: a name, unique within its
// restaurant ignoring case, and a bounded price. MenuItem is immutable once
// created; menus only ever grow.
type MenuItem struct { //nolint:recvcheck //using for validation
	name  string
	price float64

	guard guard.ConstructorGuard
}

// NewMenuItem creates a menu item with a validated name and price.
// Price must be within [MinMenuItemPrice, MaxMenuItemPrice].
func NewMenuItem(name string, price float64) (MenuItem, error) {
	item := MenuItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return MenuItem{}, err
	}

	return item, nil
}

// Validate ensures the MenuItem was created through the constructor.
func (m MenuItem) Validate() error {
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// Name returns the dish name.
func (m MenuItem) Name() string {
	return m.name
}

// Price returns the dish price.
func (m MenuItem) Price() float64 {
	return m.price
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price float64) error {
	if price < MinMenuItemPrice || price > MaxMenuItemPrice {
		return errs.NewValueIsOutOfRangeError("price", price, MinMenuItemPrice, MaxMenuItemPrice)
	}
	m.price = price
	return nil
}
