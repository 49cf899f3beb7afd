package queries

import (
	"errors"

	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/pkg/guard"
)

var ErrAvailableOrdersQueryIsNotConstructed = errors.New(
	"AvailableOrdersQuery must be created via NewAvailableOrdersQuery constructor",
)

// AvailableOrdersQuery retrieves the dispatch board for one courier: every
// order they could accept right now, ranked by total trip distance.
type AvailableOrdersQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAvailableOrdersQuery creates a dispatch board query for a courier.
func NewAvailableOrdersQuery(courierID kernel.UUID) (AvailableOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return AvailableOrdersQuery{}, err
	}

	return AvailableOrdersQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrAvailableOrdersQueryIsNotConstructed)
}

// CourierID returns the identifier of the browsing courier.
func (q AvailableOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

// AvailableOrdersQueryResponse is one dispatch board entry. TotalDistance is
// the courier's full trip: to the restaurant, then on to the customer.
type AvailableOrdersQueryResponse struct {
	OrderID        int64
	RestaurantID   kernel.UUID
	RestaurantName string
	TotalPrice     float64
	TotalDistance  float64
}
