// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for their specific use case; multi-read
// queries open a unit of work so they observe one consistent snapshot.
package queries

import (
	"context"

	"arribaeats/internal/core/ports"
)

// Unit of Work interfaces for query handlers, mirroring the command side.
// Handlers depend on the narrowest composition they need.
type (
	// TxManager handles the unit of work lifecycle.
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

	// ActorUoW serves reads that only touch actors.
	ActorUoW interface {
		TxManager
		ActorRepoFactory
	}

	// ActorUoWFactory creates new actor unit of work instances.
	ActorUoWFactory interface {
		Create() ActorUoW
	}

	// CatalogueUoW serves reads spanning actors and restaurants.
	CatalogueUoW interface {
		TxManager
		ActorRepoFactory
		RestaurantRepoFactory
	}

	// CatalogueUoWFactory creates new catalogue unit of work instances.
	CatalogueUoWFactory interface {
		Create() CatalogueUoW
	}

	// UoW serves reads spanning every aggregate type.
	UoW interface {
		TxManager
		ActorRepoFactory
		RestaurantRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate reads.
	UoWFactory interface {
		Create() UoW
	}
)
