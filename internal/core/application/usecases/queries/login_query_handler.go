package queries

import (
	"context"
	"errors"

	"arribaeats/internal/pkg/errs"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// secret, so a caller cannot probe which emails are registered.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginQueryHandler authenticates actors of any role.
type LoginQueryHandler struct {
	uowFactory ActorUoWFactory
}

// NewLoginQueryHandler creates a handler for login queries.
func NewLoginQueryHandler(uowFactory ActorUoWFactory) LoginQueryHandler {
	return LoginQueryHandler{
		uowFactory: uowFactory,
	}
}

// Handle executes the login query.
// Returns ErrInvalidCredentials if the email is unknown or the secret wrong.
func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	a, err := uow.ActorRepository().GetByEmail(ctx, query.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginQueryResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginQueryResponse{}, err
	}

	if !a.Details().VerifySecret(query.Secret()) {
		return LoginQueryResponse{}, ErrInvalidCredentials
	}

	return LoginQueryResponse{
		ActorID: a.ID(),
		Role:    a.Role(),
		Name:    a.Name(),
		Email:   a.Email(),
	}, nil
}
