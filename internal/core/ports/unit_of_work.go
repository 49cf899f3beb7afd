package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Between Begin and Commit/Rollback the backing store serializes the work
// against every other unit, so a command's read-check-write sequence observes
// and produces a consistent state. Client code must explicitly manage the
// lifecycle and is expected to validate before mutating: the in-memory store
// does not undo writes on Rollback, it only releases the boundary.
type UnitOfWork interface {
	// Begin starts the business transaction.
	Begin(ctx context.Context) error

	// Commit finishes the current transaction.
	// Returns error if no active transaction.
	Commit(ctx context.Context) error

	// Rollback abandons the current transaction.
	// Returns error if no active transaction.
	Rollback(ctx context.Context) error

	// ActorRepository returns an ActorRepository bound to the current transaction.
	ActorRepository() ActorRepository

	// RestaurantRepository returns a RestaurantRepository bound to the current transaction.
	RestaurantRepository() RestaurantRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository
}
