package ports

import (
	"context"

	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Identifiers are sequential and allocated by the repository itself.
type OrderRepository interface {
	// NextID allocates the next order identifier. Identifiers are unique
	// for the process lifetime and strictly increasing.
	NextID(ctx context.Context) (int64, error)

	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAllInReadyForPickupStatus retrieves every finalized order waiting
	// for a courier, in identifier order. Used to build the dispatch board.
	GetAllInReadyForPickupStatus(ctx context.Context) ([]*order.Order, error)

	// GetAllByCustomer retrieves every order a customer has placed, in
	// identifier order.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAll retrieves every order in identifier order.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
