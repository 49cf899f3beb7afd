package actor

import (
	"errors"

	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/pkg/guard"
)

// ErrOperatorIsNotConstructed is returned when using an Operator that was not
// created via the NewOperator constructor.
var ErrOperatorIsNotConstructed = errors.New("Operator must be created via NewOperator constructor")

// ErrEmailAlreadyInUse is returned when a registration supplies an email that
// another actor, of any role, already holds. Comparison is case-insensitive.
var ErrEmailAlreadyInUse = errors.New("email already in use")

// Operator runs exactly one restaurant. The operator and its restaurant are
// created together at registration time; the restaurant ID here is a
// non-owning back-reference that never changes afterwards.
type Operator struct {
	id           kernel.UUID
	details      Details
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewOperator creates an operator bound to its restaurant.
func NewOperator(id kernel.UUID, details Details, restaurantID kernel.UUID) (*Operator, error) {
	if err := errors.Join(
		id.Validate(),
		details.Validate(),
		restaurantID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Operator{
		id:           id,
		details:      details,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Operator was created through the constructor.
func (o *Operator) Validate() error {
	if o == nil {
		return ErrOperatorIsNotConstructed
	}
	return o.guard.Validate(ErrOperatorIsNotConstructed)
}

// ID returns the operator's unique identifier.
func (o *Operator) ID() kernel.UUID {
	return o.id
}

// Role returns RoleOperator.
func (o *Operator) Role() Role {
	return RoleOperator
}

// Name returns the operator's display name.
func (o *Operator) Name() string {
	return o.details.Name()
}

// Email returns the operator's email as supplied at registration.
func (o *Operator) Email() string {
	return o.details.Email()
}

// Details returns the shared personal record.
func (o *Operator) Details() Details {
	return o.details
}

// RestaurantID returns the identifier of the operator's restaurant.
func (o *Operator) RestaurantID() kernel.UUID {
	return o.restaurantID
}
