// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"arribaeats/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers depend on the narrowest composition they need; the in-memory unit
// of work satisfies all of them.
type (
	// TxManager handles the unit of work lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ActorRepoFactory provides access to the actor repository within a unit.
	ActorRepoFactory interface {
		ActorRepository() ports.ActorRepository
	}

	// RestaurantRepoFactory provides access to the restaurant repository within a unit.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// OrderRepoFactory provides access to the order repository within a unit.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ActorUoW manages units of work for actor-only operations.
	// Used by the customer and courier registration commands.
	ActorUoW interface {
		TxManager
		ActorRepoFactory
	}

	// ActorUoWFactory creates new actor unit of work instances.
	ActorUoWFactory interface {
		Create() ActorUoW
	}

	// CatalogueUoW manages units of work spanning actors and restaurants.
	// Used by operator registration, menu and review commands.
	CatalogueUoW interface {
		TxManager
		ActorRepoFactory
		RestaurantRepoFactory
	}

	// CatalogueUoWFactory creates new catalogue unit of work instances.
	CatalogueUoWFactory interface {
		Create() CatalogueUoW
	}

	// OrderUoW manages units of work for order-only operations.
	// Used when commands only modify the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages units of work across every aggregate type.
	// Used for commands that coordinate orders with actors and restaurants.
	UoW interface {
		TxManager
		ActorRepoFactory
		RestaurantRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
