package memory

import (
	"context"

	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/core/domain/model/restaurant"
	"arribaeats/internal/pkg/errs"
)

// RestaurantRepository implements ports.RestaurantRepository on the in-memory
// store, preserving catalogue insertion order for GetAll.
type RestaurantRepository struct {
	uow *UnitOfWork
}

// Add saves a new restaurant to the store.
func (r *RestaurantRepository) Add(_ context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	defer r.uow.scope()()

	s := r.uow.store
	if _, exists := s.restaurants[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("restaurantID")
	}

	s.restaurants[aggregate.ID()] = aggregate
	s.restaurantIDs = append(s.restaurantIDs, aggregate.ID())
	return nil
}

// Update saves changes to an existing restaurant.
func (r *RestaurantRepository) Update(_ context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	defer r.uow.scope()()

	s := r.uow.store
	if _, ok := s.restaurants[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("restaurant", aggregate.ID().String())
	}
	s.restaurants[aggregate.ID()] = aggregate
	return nil
}

// Get retrieves a restaurant by ID.
func (r *RestaurantRepository) Get(_ context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	defer r.uow.scope()()

	aggregate, ok := r.uow.store.restaurants[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("restaurant", id.String())
	}
	return aggregate, nil
}

// GetAll retrieves every restaurant in catalogue insertion order.
func (r *RestaurantRepository) GetAll(_ context.Context) ([]*restaurant.Restaurant, error) {
	defer r.uow.scope()()

	s := r.uow.store
	all := make([]*restaurant.Restaurant, 0, len(s.restaurantIDs))
	for _, id := range s.restaurantIDs {
		all = append(all, s.restaurants[id])
	}
	return all, nil
}
