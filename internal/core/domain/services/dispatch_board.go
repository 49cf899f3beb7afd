package services

import (
	"sort"

	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/core/domain/model/order"
)

// PickupCandidate pairs a finalized order with the locations a courier would
// need to visit: the restaurant to collect, the customer to deliver.
type PickupCandidate struct {
	Order              *order.Order
	RestaurantLocation kernel.Location
	CustomerLocation   kernel.Location
}

// RankedPickup is a board entry offered to a courier: an available order and
// the total distance of its trip from the courier's current position.
type RankedPickup struct {
	Order              *order.Order
	RestaurantLocation kernel.Location
	CustomerLocation   kernel.Location
	TotalDistance      float64
}

// DispatchBoard is a domain service that builds the list of orders a courier
// may accept. Dispatch here is pull-based: the board only ranks, it never
// assigns. A courier picks an entry and acceptance is serialized on the order
// itself, so the board may be stale by the time an accept lands and the
// accept path re-checks everything.
//
// Business rules:
//   - Only orders in ReadyForPickup with no courier bound appear
//   - Each entry is ranked by total trip distance:
//     courier to restaurant, then restaurant to customer
//   - Ranking is ascending and stable, so equally distant orders keep their
//     candidate order
type DispatchBoard struct{}

// NewDispatchBoard creates a new DispatchBoard instance.
func NewDispatchBoard() DispatchBoard {
	return DispatchBoard{}
}

// RankAvailable filters the candidates down to acceptable orders and ranks
// them by total trip distance from the courier's location, nearest first.
//
// Candidates that are not ReadyForPickup or already have a courier bound are
// skipped, not reported as errors; an unconstructed order in the slice is an
// error. The input slice is not modified.
func (b DispatchBoard) RankAvailable(
	courierLocation kernel.Location,
	candidates []PickupCandidate,
) ([]RankedPickup, error) {
	ranked := make([]RankedPickup, 0, len(candidates))

	for _, candidate := range candidates {
		if err := candidate.Order.Validate(); err != nil {
			return nil, err
		}

		if !b.isAvailable(candidate.Order) {
			continue
		}

		total := courierLocation.Distance(candidate.RestaurantLocation) +
			candidate.RestaurantLocation.Distance(candidate.CustomerLocation)

		ranked = append(ranked, RankedPickup{
			Order:              candidate.Order,
			RestaurantLocation: candidate.RestaurantLocation,
			CustomerLocation:   candidate.CustomerLocation,
			TotalDistance:      total,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalDistance < ranked[j].TotalDistance
	})

	return ranked, nil
}

// isAvailable reports whether a courier may accept the order right now.
func (b DispatchBoard) isAvailable(o *order.Order) bool {
	return o.Status() == order.StatusReadyForPickup && o.CourierID() == nil
}
