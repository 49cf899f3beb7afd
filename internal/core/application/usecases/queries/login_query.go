package queries

import (
	"errors"

	"arribaeats/internal/core/domain/model/actor"
	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/pkg/errs"
	"arribaeats/internal/pkg/guard"
)

var ErrLoginQueryIsNotConstructed = errors.New(
	"LoginQuery must be created via NewLoginQuery constructor",
)

// LoginQuery authenticates an actor by email and secret.
// The email lookup ignores case; the secret comparison does not.
type LoginQuery struct {
	email  string
	secret string

	guard guard.ConstructorGuard
}

// NewLoginQuery creates a login query.
func NewLoginQuery(email string, secret string) (LoginQuery, error) {
	if email == "" {
		return LoginQuery{}, errs.NewValueIsRequiredError("email")
	}
	if secret == "" {
		return LoginQuery{}, errs.NewValueIsRequiredError("secret")
	}

	return LoginQuery{
		email:  email,
		secret: secret,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

// Email returns the login email.
func (q LoginQuery) Email() string {
	return q.email
}

// Secret returns the login secret.
func (q LoginQuery) Secret() string {
	return q.secret
}

// LoginQueryResponse identifies the authenticated actor.
type LoginQueryResponse struct {
	ActorID kernel.UUID
	Role    actor.Role
	Name    string
	Email   string
}
