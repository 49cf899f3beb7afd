package restaurant

import (
	"errors"

	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/pkg/errs"
	"arribaeats/internal/pkg/guard"
)

const (
	// MinRating is the lowest star rating a review can carry.
	MinRating = 1
	// MaxRating is the highest star rating a review can carry.
	MaxRating = 5
)

// ErrReviewIsNotConstructed is returned when using a Review that was not
// created via the NewReview constructor.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Review is a customer's rating of a restaurant: an integer star rating in
// [MinRating, MaxRating] and a non-empty comment. Reviews are appended to the
// restaurant's review sequence and never mutated or removed.
type Review struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	customerName string
	rating       int
	comment      string

	guard guard.ConstructorGuard
}

// NewReview creates a validated review.
func NewReview(customerID kernel.UUID, customerName string, rating int, comment string) (Review, error) {
	review := Review{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		review.setCustomer(customerID, customerName),
		review.setRating(rating),
		review.setComment(comment),
	); err != nil {
		return Review{}, err
	}

	return review, nil
}

// Validate ensures the Review was created through the constructor.
func (r Review) Validate() error {
	return r.guard.Validate(ErrReviewIsNotConstructed)
}

// CustomerID returns the identifier of the reviewing customer.
func (r Review) CustomerID() kernel.UUID {
	return r.customerID
}

// CustomerName returns the display name of the reviewing customer.
func (r Review) CustomerName() string {
	return r.customerName
}

// Rating returns the star rating.
func (r Review) Rating() int {
	return r.rating
}

// Comment returns the review text.
func (r Review) Comment() string {
	return r.comment
}

func (r *Review) setCustomer(customerID kernel.UUID, customerName string) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	r.customerID = customerID
	r.customerName = customerName
	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	r.rating = rating
	return nil
}

func (r *Review) setComment(comment string) error {
	if comment == "" {
		return errs.NewValueIsRequiredError("comment")
	}
	r.comment = comment
	return nil
}
