package actor

import "arribaeats/internal/core/domain/model/kernel"

// Role tags the three participant kinds of the marketplace. A role is fixed at
// registration time and never changes; code that needs role-specific behavior
// switches on the concrete type rather than relying on polymorphic extension.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota
	// RoleCustomer is a client who browses restaurants and places orders.
	RoleCustomer
	// RoleCourier is a deliverer who accepts ready orders and delivers them.
	RoleCourier
	// RoleOperator runs exactly one restaurant and advances its orders.
	RoleOperator
)

// String returns the human-readable name of the role.
// This method implements the fmt.Stringer interface.
func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "Customer"
	case RoleCourier:
		return "Courier"
	case RoleOperator:
		return "Operator"
	default:
		return "Unknown"
	}
}

// Actor is the common read surface of all registered participants.
// Concrete variants are *Customer, *Courier, and *Operator; callers that need
// variant-specific data use a type switch.
type Actor interface {
	ID() kernel.UUID
	Role() Role
	Email() string
	Name() string
	Details() Details
}
