package memory

import (
	"context"

	"arribaeats/internal/core/domain/model/actor"
	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/pkg/errs"
)

// ActorRepository implements ports.ActorRepository on the in-memory store.
// Email uniqueness is checked against the cross-role index on every Add.
type ActorRepository struct {
	uow *UnitOfWork
}

// AddCustomer saves a new customer to the store.
func (r *ActorRepository) AddCustomer(_ context.Context, customer *actor.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	defer r.uow.scope()()

	s := r.uow.store
	email := actor.NormalizeEmail(customer.Email())
	if _, taken := s.byEmail[email]; taken {
		return actor.ErrEmailAlreadyInUse
	}

	s.customers[customer.ID()] = customer
	s.byEmail[email] = customer
	return nil
}

// AddCourier saves a new courier to the store.
func (r *ActorRepository) AddCourier(_ context.Context, courier *actor.Courier) error {
	if err := courier.Validate(); err != nil {
		return err
	}

	defer r.uow.scope()()

	s := r.uow.store
	email := actor.NormalizeEmail(courier.Email())
	if _, taken := s.byEmail[email]; taken {
		return actor.ErrEmailAlreadyInUse
	}

	s.couriers[courier.ID()] = courier
	s.byEmail[email] = courier
	return nil
}

// AddOperator saves a new operator to the store.
func (r *ActorRepository) AddOperator(_ context.Context, operator *actor.Operator) error {
	if err := operator.Validate(); err != nil {
		return err
	}

	defer r.uow.scope()()

	s := r.uow.store
	email := actor.NormalizeEmail(operator.Email())
	if _, taken := s.byEmail[email]; taken {
		return actor.ErrEmailAlreadyInUse
	}

	s.operators[operator.ID()] = operator
	s.byEmail[email] = operator
	return nil
}

// UpdateCustomer saves changes to an existing customer.
func (r *ActorRepository) UpdateCustomer(_ context.Context, customer *actor.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	defer r.uow.scope()()

	s := r.uow.store
	if _, ok := s.customers[customer.ID()]; !ok {
		return errs.NewObjectNotFoundError("customer", customer.ID().String())
	}
	s.customers[customer.ID()] = customer
	return nil
}

// UpdateCourier saves changes to an existing courier.
func (r *ActorRepository) UpdateCourier(_ context.Context, courier *actor.Courier) error {
	if err := courier.Validate(); err != nil {
		return err
	}

	defer r.uow.scope()()

	s := r.uow.store
	if _, ok := s.couriers[courier.ID()]; !ok {
		return errs.NewObjectNotFoundError("courier", courier.ID().String())
	}
	s.couriers[courier.ID()] = courier
	return nil
}

// GetCustomer retrieves a customer by ID.
func (r *ActorRepository) GetCustomer(_ context.Context, id kernel.UUID) (*actor.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	defer r.uow.scope()()

	customer, ok := r.uow.store.customers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("customer", id.String())
	}
	return customer, nil
}

// GetCourier retrieves a courier by ID.
func (r *ActorRepository) GetCourier(_ context.Context, id kernel.UUID) (*actor.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	defer r.uow.scope()()

	courier, ok := r.uow.store.couriers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("courier", id.String())
	}
	return courier, nil
}

// GetOperator retrieves an operator by ID.
func (r *ActorRepository) GetOperator(_ context.Context, id kernel.UUID) (*actor.Operator, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	defer r.uow.scope()()

	operator, ok := r.uow.store.operators[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("operator", id.String())
	}
	return operator, nil
}

// CountByRole reports how many actors are registered under each role.
func (r *ActorRepository) CountByRole(_ context.Context) (map[actor.Role]int, error) {
	defer r.uow.scope()()

	s := r.uow.store
	return map[actor.Role]int{
		actor.RoleCustomer: len(s.customers),
		actor.RoleCourier:  len(s.couriers),
		actor.RoleOperator: len(s.operators),
	}, nil
}

// GetByEmail retrieves any registered actor by normalized email.
func (r *ActorRepository) GetByEmail(_ context.Context, email string) (actor.Actor, error) {
	defer r.uow.scope()()

	a, ok := r.uow.store.byEmail[actor.NormalizeEmail(email)]
	if !ok {
		return nil, errs.NewObjectNotFoundError("email", actor.NormalizeEmail(email))
	}
	return a, nil
}
