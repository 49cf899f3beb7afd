package queries_test

import (
	"context"
	"testing"

	"arribaeats/internal/core/application/usecases/queries"
	"arribaeats/internal/core/domain/model/actor"
	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/core/domain/model/order"
	"arribaeats/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketplaceStatsQueryHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("should count actors, restaurants and orders by status", func(t *testing.T) {
		f := newFixtures()
		customerID := seedCustomer(t, f, "bob@example.com", kernel.NewLocation(0, 0))
		seedCustomer(t, f, "alice@example.com", kernel.NewLocation(1, 1))
		seedCourier(t, f, "carla@example.com", kernel.NewLocation(0, 0))
		operatorID, restaurantID := seedRestaurant(
			t, f, "napoli@example.com", "Napoli", restaurant.StyleItalian, kernel.NewLocation(3, 4))

		seedReadyOrder(t, f, customerID, operatorID, restaurantID)
		seedOrder(t, f, customerID, restaurantID)

		handler := queries.NewMarketplaceStatsQueryHandler(f.all())
		response, err := handler.Handle(ctx, queries.NewMarketplaceStatsQuery())
		require.NoError(t, err)

		assert.Equal(t, 2, response.ActorsByRole[actor.RoleCustomer])
		assert.Equal(t, 1, response.ActorsByRole[actor.RoleCourier])
		assert.Equal(t, 1, response.ActorsByRole[actor.RoleOperator])
		assert.Equal(t, 1, response.Restaurants)
		assert.Equal(t, 1, response.OrdersByStatus[order.StatusReadyForPickup])
		assert.Equal(t, 1, response.OrdersByStatus[order.StatusPlaced])
		assert.Zero(t, response.OrdersByStatus[order.StatusDelivered])
	})

	t.Run("should return zero counts for an empty marketplace", func(t *testing.T) {
		f := newFixtures()
		handler := queries.NewMarketplaceStatsQueryHandler(f.all())

		response, err := handler.Handle(ctx, queries.NewMarketplaceStatsQuery())
		require.NoError(t, err)

		assert.Zero(t, response.Restaurants)
		assert.Empty(t, response.OrdersByStatus)
	})

	t.Run("should reject a zero value query", func(t *testing.T) {
		f := newFixtures()
		handler := queries.NewMarketplaceStatsQueryHandler(f.all())

		_, err := handler.Handle(ctx, queries.MarketplaceStatsQuery{})
		assert.ErrorIs(t, err, queries.ErrMarketplaceStatsQueryIsNotConstructed)
	})
}
