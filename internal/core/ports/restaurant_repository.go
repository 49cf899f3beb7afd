package ports

import (
	"context"

	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// aggregates, including their menus and reviews.
type RestaurantRepository interface {
	// Add persists a new restaurant aggregate to storage.
	// The restaurant must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant aggregate.
	// The restaurant must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// GetAll retrieves every restaurant in catalogue insertion order.
	// The stable order is what sorting strategies rely on for ties.
	GetAll(ctx context.Context) ([]*restaurant.Restaurant, error)
}
