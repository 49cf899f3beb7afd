package queries

import (
	"errors"

	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/core/domain/model/order"
	"arribaeats/internal/pkg/guard"
)

var ErrCustomerOrdersQueryIsNotConstructed = errors.New(
	"CustomerOrdersQuery must be created via NewCustomerOrdersQuery constructor",
)

// CustomerOrdersQuery retrieves a customer's order history together with
// their total spend.
type CustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCustomerOrdersQuery creates an order history query for a customer.
func NewCustomerOrdersQuery(customerID kernel.UUID) (CustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return CustomerOrdersQuery{}, err
	}

	return CustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer.
func (q CustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// CustomerOrderView is one history entry.
type CustomerOrderView struct {
	OrderID        int64
	RestaurantName string
	Status         order.Status
	TotalPrice     float64
}

// CustomerOrdersQueryResponse is a customer's order history in identifier
// order. TotalSpend sums the totals of all non-cancelled orders.
type CustomerOrdersQueryResponse struct {
	Orders     []CustomerOrderView
	TotalSpend float64
}
