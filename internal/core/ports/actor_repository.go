// Package ports defines repository interfaces for the marketplace domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"arribaeats/internal/core/domain/model/actor"
	"arribaeats/internal/core/domain/model/kernel"
)

// ActorRepository defines the persistence contract for the registered
// participants of the marketplace: customers, couriers and operators.
// Email uniqueness is enforced across all three roles.
type ActorRepository interface {
	// AddCustomer persists a new customer aggregate to storage.
	// Fails with actor.ErrEmailAlreadyInUse if the normalized email is
	// already registered under any role.
	AddCustomer(ctx context.Context, customer *actor.Customer) error

	// AddCourier persists a new courier aggregate to storage.
	// Fails with actor.ErrEmailAlreadyInUse if the normalized email is
	// already registered under any role.
	AddCourier(ctx context.Context, courier *actor.Courier) error

	// AddOperator persists a new operator aggregate to storage.
	// Fails with actor.ErrEmailAlreadyInUse if the normalized email is
	// already registered under any role.
	AddOperator(ctx context.Context, operator *actor.Operator) error

	// UpdateCustomer persists changes to an existing customer aggregate.
	UpdateCustomer(ctx context.Context, customer *actor.Customer) error

	// UpdateCourier persists changes to an existing courier aggregate.
	UpdateCourier(ctx context.Context, courier *actor.Courier) error

	// GetCustomer retrieves a customer aggregate by its unique identifier.
	GetCustomer(ctx context.Context, id kernel.UUID) (*actor.Customer, error)

	// GetCourier retrieves a courier aggregate by its unique identifier.
	GetCourier(ctx context.Context, id kernel.UUID) (*actor.Courier, error)

	// GetOperator retrieves an operator aggregate by its unique identifier.
	GetOperator(ctx context.Context, id kernel.UUID) (*actor.Operator, error)

	// GetByEmail retrieves any registered actor by normalized email.
	// The lookup ignores case and surrounding whitespace.
	GetByEmail(ctx context.Context, email string) (actor.Actor, error)

	// CountByRole reports how many actors are registered under each role.
	CountByRole(ctx context.Context) (map[actor.Role]int, error)
}
