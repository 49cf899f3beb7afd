package commands

import (
	"context"

	"arribaeats/internal/core/domain/model/restaurant"
)

// AddReviewCommandHandler handles restaurant reviews. The reviewer's display
// name is resolved from their registration so reviews stay attributable.
type AddReviewCommandHandler struct {
	uowFactory CatalogueUoWFactory
}

// NewAddReviewCommandHandler creates a handler for restaurant reviews.
func NewAddReviewCommandHandler(uowFactory CatalogueUoWFactory) AddReviewCommandHandler {
	return AddReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command.
func (h AddReviewCommandHandler) Handle(ctx context.Context, cmd AddReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := uow.ActorRepository().GetCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	venue, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	review, err := restaurant.NewReview(customer.ID(), customer.Name(), cmd.Rating(), cmd.Comment())
	if err != nil {
		return err
	}

	if err = venue.AddReview(review); err != nil {
		return err
	}

	if err = uow.RestaurantRepository().Update(ctx, venue); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
