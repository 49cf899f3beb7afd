package memory

import (
	"sync"

	"arribaeats/internal/core/domain/model/actor"
	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/core/domain/model/order"
	"arribaeats/internal/core/domain/model/restaurant"
)

// Store is the process-wide in-memory state of the marketplace. All access
// goes through repositories bound to a unit of work; the store itself only
// owns the maps and the mutex that serializes units against each other.
//
// Restaurants and orders additionally keep an insertion-order index so that
// catalogue listings and order history are deterministic. The email index
// spans every role: one normalized email registers at most one actor.
type Store struct {
	mu sync.Mutex

	customers map[kernel.UUID]*actor.Customer
	couriers  map[kernel.UUID]*actor.Courier
	operators map[kernel.UUID]*actor.Operator
	byEmail   map[string]actor.Actor

	restaurants   map[kernel.UUID]*restaurant.Restaurant
	restaurantIDs []kernel.UUID

	orders      map[int64]*order.Order
	orderIDs    []int64
	nextOrderID int64
}

// NewStore creates an empty marketplace store.
func NewStore() *Store {
	return &Store{
		customers:   make(map[kernel.UUID]*actor.Customer),
		couriers:    make(map[kernel.UUID]*actor.Courier),
		operators:   make(map[kernel.UUID]*actor.Operator),
		byEmail:     make(map[string]actor.Actor),
		restaurants: make(map[kernel.UUID]*restaurant.Restaurant),
		orders:      make(map[int64]*order.Order),
	}
}
