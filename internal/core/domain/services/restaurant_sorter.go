package services

import (
	"fmt"
	"sort"
	"strings"

	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/core/domain/model/restaurant"

	"arribaeats/internal/pkg/errs"
)

// SortStrategy selects how the restaurant catalogue is ordered for a browsing
// customer. All strategies are stable: restaurants that compare equal keep
// their catalogue insertion order, so sorting the same unchanged catalogue
// twice yields identical results.
type SortStrategy int

const (
	// SortUnknown represents an invalid or undefined strategy.
	SortUnknown SortStrategy = iota

	// SortByName orders by restaurant name, case-insensitive ascending.
	SortByName
	// SortByDistance orders by distance from the customer, ascending.
	SortByDistance
	// SortByStyle orders by the cuisine style display name, ascending.
	SortByStyle
	// SortByRating orders by average rating, descending. Restaurants with no
	// reviews sort last regardless of the numeric zero placeholder.
	SortByRating
)

// getStrategyStrings returns a map of SortStrategy values to their names.
func getStrategyStrings() map[SortStrategy]string {
	return map[SortStrategy]string{
		SortUnknown:    "Unknown",
		SortByName:     "Name",
		SortByDistance: "Distance",
		SortByStyle:    "Style",
		SortByRating:   "Rating",
	}
}

// Validate checks if the strategy is a defined, non-Unknown value.
func (s SortStrategy) Validate() error {
	switch s {
	case SortByName, SortByDistance, SortByStyle, SortByRating:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("strategy",
			fmt.Errorf("%d is not a valid sort strategy", s))
	}
}

// String returns the name of the strategy.
// This method implements the fmt.Stringer interface.
func (s SortStrategy) String() string {
	if str, ok := getStrategyStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseSortStrategy resolves a strategy name, ignoring case.
func ParseSortStrategy(name string) (SortStrategy, error) {
	for strategy, str := range getStrategyStrings() {
		if strategy != SortUnknown && strings.EqualFold(str, name) {
			return strategy, nil
		}
	}
	return SortUnknown, errs.NewValueIsInvalidErrorWithCause("strategy",
		fmt.Errorf("%q is not a valid sort strategy", name))
}

// SortRestaurants orders a snapshot of the catalogue for presentation to a
// customer at the given location. The input slice is not modified; a sorted
// copy is returned. The input must already be in catalogue insertion order
// for the stability guarantee to be meaningful.
func SortRestaurants(
	restaurants []*restaurant.Restaurant,
	customerLocation kernel.Location,
	strategy SortStrategy,
) ([]*restaurant.Restaurant, error) {
	if err := strategy.Validate(); err != nil {
		return nil, err
	}

	sorted := make([]*restaurant.Restaurant, len(restaurants))
	copy(sorted, restaurants)

	switch strategy {
	case SortByName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Name()) < strings.ToLower(sorted[j].Name())
		})
	case SortByDistance:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Location().Distance(customerLocation) <
				sorted[j].Location().Distance(customerLocation)
		})
	case SortByStyle:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Style().String() < sorted[j].Style().String()
		})
	case SortByRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return ratingLess(sorted[i], sorted[j])
		})
	}

	return sorted, nil
}

// ratingLess orders by average rating descending, pushing unreviewed
// restaurants to the end no matter what their placeholder average is.
func ratingLess(a, b *restaurant.Restaurant) bool {
	aReviewed := a.ReviewCount() > 0
	bReviewed := b.ReviewCount() > 0

	if aReviewed != bReviewed {
		return aReviewed
	}
	if !aReviewed {
		return false
	}
	return a.AverageRating() > b.AverageRating()
}
