package queries

import (
	"errors"

	"arribaeats/internal/core/domain/model/actor"
	"arribaeats/internal/core/domain/model/order"
	"arribaeats/internal/pkg/guard"
)

var ErrMarketplaceStatsQueryIsNotConstructed = errors.New(
	"MarketplaceStatsQuery must be created via NewMarketplaceStatsQuery constructor",
)

// MarketplaceStatsQuery retrieves aggregate counts over the whole
// marketplace. Feeds the periodic stats job and the operations endpoint.
type MarketplaceStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewMarketplaceStatsQuery creates a stats query.
// This is a parameterless query over the whole store.
func NewMarketplaceStatsQuery() MarketplaceStatsQuery {
	return MarketplaceStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q MarketplaceStatsQuery) Validate() error {
	return q.guard.Validate(ErrMarketplaceStatsQueryIsNotConstructed)
}

// MarketplaceStatsQueryResponse carries marketplace-wide counters.
type MarketplaceStatsQueryResponse struct {
	OrdersByStatus map[order.Status]int
	ActorsByRole   map[actor.Role]int
	Restaurants    int
}
