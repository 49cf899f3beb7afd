// Package memory provides the in-memory implementation of the Unit of Work
// pattern and the repository ports behind it.
//
// The unit of work here is a mutual exclusion scope rather than a database
// transaction: Begin takes the store lock, Commit and Rollback release it.
// While a unit is open no other unit can observe or change the store, so a
// command's read-check-write sequence is atomic with respect to every other
// command. Rollback does not undo writes; handlers are expected to validate
// everything before mutating aggregates, which the domain model supports by
// leaving aggregates unchanged on every rejected operation.
//
// Usage pattern:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Repositories may also be used outside an open unit, in which case each call
// locks the store around itself.
package memory

import (
	"context"
	"errors"

	"arribaeats/internal/core/ports"
)

// ErrNoActiveUnitOfWork is returned when Commit or Rollback is called with no
// unit in progress.
var ErrNoActiveUnitOfWork = errors.New("no active unit of work")

// UnitOfWorkFactory creates UnitOfWork instances backed by a shared Store.
// Each business operation gets a fresh instance; the factory itself is safe
// for concurrent use.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork instance ready for one business operation.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork serializes one business operation against the store.
// Instances are not safe for concurrent use; each goroutine must create its
// own through the factory.
type UnitOfWork struct {
	store  *Store
	active bool
}

// Begin takes the store lock, blocking until every other open unit finishes.
// Calling Begin on an already open unit is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}
	uow.store.mu.Lock()
	uow.active = true
	return nil
}

// Commit closes the unit and releases the store lock.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	return uow.finish()
}

// Rollback closes the unit and releases the store lock. Writes already made
// through the unit's repositories are not undone.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	return uow.finish()
}

func (uow *UnitOfWork) finish() error {
	if !uow.active {
		return ErrNoActiveUnitOfWork
	}
	uow.active = false
	uow.store.mu.Unlock()
	return nil
}

// ActorRepository returns an ActorRepository bound to this unit.
func (uow *UnitOfWork) ActorRepository() ports.ActorRepository {
	return &ActorRepository{uow: uow}
}

// RestaurantRepository returns a RestaurantRepository bound to this unit.
func (uow *UnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return &RestaurantRepository{uow: uow}
}

// OrderRepository returns an OrderRepository bound to this unit.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

// scope locks the store for a single repository call when no unit is open.
// Inside an open unit the lock is already held and scope is a no-op.
func (uow *UnitOfWork) scope() func() {
	if uow.active {
		return func() {}
	}
	uow.store.mu.Lock()
	return uow.store.mu.Unlock
}
