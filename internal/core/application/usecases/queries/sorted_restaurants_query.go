package queries

import (
	"errors"

	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/core/domain/model/restaurant"
	"arribaeats/internal/core/domain/services"
	"arribaeats/internal/pkg/guard"
)

var ErrSortedRestaurantsQueryIsNotConstructed = errors.New(
	"SortedRestaurantsQuery must be created via NewSortedRestaurantsQuery constructor",
)

// SortedRestaurantsQuery retrieves the catalogue sorted for one customer.
// Distances in the response are measured from that customer's location.
type SortedRestaurantsQuery struct {
	customerID kernel.UUID
	strategy   services.SortStrategy

	guard guard.ConstructorGuard
}

// NewSortedRestaurantsQuery creates a catalogue query for a customer.
func NewSortedRestaurantsQuery(
	customerID kernel.UUID,
	strategy services.SortStrategy,
) (SortedRestaurantsQuery, error) {
	if err := errors.Join(
		customerID.Validate(),
		strategy.Validate(),
	); err != nil {
		return SortedRestaurantsQuery{}, err
	}

	return SortedRestaurantsQuery{
		customerID: customerID,
		strategy:   strategy,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SortedRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrSortedRestaurantsQueryIsNotConstructed)
}

// CustomerID returns the identifier of the browsing customer.
func (q SortedRestaurantsQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Strategy returns the requested sort strategy.
func (q SortedRestaurantsQuery) Strategy() services.SortStrategy {
	return q.strategy
}

// SortedRestaurantsQueryResponse is one catalogue entry as presented to a
// browsing customer. AverageRating is 0 while ReviewCount is 0.
type SortedRestaurantsQueryResponse struct {
	ID            kernel.UUID
	Name          string
	Style         restaurant.FoodStyle
	Location      kernel.Location
	Distance      float64
	AverageRating float64
	ReviewCount   int
}
