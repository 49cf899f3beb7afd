package memory

import (
	"context"
	"strconv"

	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/core/domain/model/order"
	"arribaeats/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository on the in-memory store.
// Identifiers come from the store's sequence and listings follow it.
type OrderRepository struct {
	uow *UnitOfWork
}

// NextID allocates the next order identifier from the store sequence.
func (r *OrderRepository) NextID(_ context.Context) (int64, error) {
	defer r.uow.scope()()

	r.uow.store.nextOrderID++
	return r.uow.store.nextOrderID, nil
}

// Add saves a new order to the store.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	defer r.uow.scope()()

	s := r.uow.store
	if _, exists := s.orders[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("orderID")
	}

	s.orders[aggregate.ID()] = aggregate
	s.orderIDs = append(s.orderIDs, aggregate.ID())
	return nil
}

// Update saves changes to an existing order.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	defer r.uow.scope()()

	s := r.uow.store
	if _, ok := s.orders[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("order", strconv.FormatInt(aggregate.ID(), 10))
	}
	s.orders[aggregate.ID()] = aggregate
	return nil
}

// Get retrieves an order by ID.
func (r *OrderRepository) Get(_ context.Context, id int64) (*order.Order, error) {
	defer r.uow.scope()()

	aggregate, ok := r.uow.store.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", strconv.FormatInt(id, 10))
	}
	return aggregate, nil
}

// GetAllInReadyForPickupStatus retrieves every order waiting for a courier.
func (r *OrderRepository) GetAllInReadyForPickupStatus(_ context.Context) ([]*order.Order, error) {
	defer r.uow.scope()()

	s := r.uow.store
	var ready []*order.Order
	for _, id := range s.orderIDs {
		if o := s.orders[id]; o.Status() == order.StatusReadyForPickup {
			ready = append(ready, o)
		}
	}
	return ready, nil
}

// GetAllByCustomer retrieves every order a customer has placed.
func (r *OrderRepository) GetAllByCustomer(_ context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	defer r.uow.scope()()

	s := r.uow.store
	var owned []*order.Order
	for _, id := range s.orderIDs {
		if o := s.orders[id]; o.CustomerID().IsEqual(customerID) {
			owned = append(owned, o)
		}
	}
	return owned, nil
}

// GetAll retrieves every order in identifier order.
func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	defer r.uow.scope()()

	s := r.uow.store
	all := make([]*order.Order, 0, len(s.orderIDs))
	for _, id := range s.orderIDs {
		all = append(all, s.orders[id])
	}
	return all, nil
}
