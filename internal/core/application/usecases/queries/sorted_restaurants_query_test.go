package queries_test

import (
	"context"
	"testing"

	"arribaeats/internal/core/application/usecases/queries"
	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/core/domain/model/restaurant"
	"arribaeats/internal/core/domain/services"
	"arribaeats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogueFixtures seeds a customer at the origin and three restaurants at
// pythagorean distances 1, 5 and 10 from it.
func catalogueFixtures(t *testing.T) (fixtures, kernel.UUID) {
	t.Helper()
	f := newFixtures()
	customerID := seedCustomer(t, f, "bob@example.com", kernel.NewLocation(0, 0))

	seedRestaurant(t, f, "napoli@example.com", "Napoli", restaurant.StyleItalian, kernel.NewLocation(3, 4))
	seedRestaurant(t, f, "augustine@example.com", "augustine", restaurant.StyleFrench, kernel.NewLocation(0, 1))
	seedRestaurant(t, f, "bamboo@example.com", "Bamboo", restaurant.StyleChinese, kernel.NewLocation(6, 8))

	return f, customerID
}

func viewNames(views []queries.SortedRestaurantsQueryResponse) []string {
	names := make([]string, 0, len(views))
	for _, v := range views {
		names = append(names, v.Name)
	}
	return names
}

func TestSortedRestaurantsQuery(t *testing.T) {
	t.Run("should reject a zero customer identifier", func(t *testing.T) {
		_, err := queries.NewSortedRestaurantsQuery(kernel.UUID{}, services.SortByName)
		assert.Error(t, err)
	})

	t.Run("should reject an unknown strategy", func(t *testing.T) {
		_, err := queries.NewSortedRestaurantsQuery(kernel.NewUUID(), services.SortUnknown)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestSortedRestaurantsQueryHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("should sort by name ignoring case", func(t *testing.T) {
		f, customerID := catalogueFixtures(t)
		handler := queries.NewSortedRestaurantsQueryHandler(f.catalogue())

		query, err := queries.NewSortedRestaurantsQuery(customerID, services.SortByName)
		require.NoError(t, err)

		views, err := handler.Handle(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, []string{"augustine", "Bamboo", "Napoli"}, viewNames(views))
	})

	t.Run("should sort by distance from the customer", func(t *testing.T) {
		f, customerID := catalogueFixtures(t)
		handler := queries.NewSortedRestaurantsQueryHandler(f.catalogue())

		query, err := queries.NewSortedRestaurantsQuery(customerID, services.SortByDistance)
		require.NoError(t, err)

		views, err := handler.Handle(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, []string{"augustine", "Napoli", "Bamboo"}, viewNames(views))
		assert.InDelta(t, 1.0, views[0].Distance, 1e-9)
		assert.InDelta(t, 5.0, views[1].Distance, 1e-9)
		assert.InDelta(t, 10.0, views[2].Distance, 1e-9)
	})

	t.Run("should sort by style display name", func(t *testing.T) {
		f, customerID := catalogueFixtures(t)
		handler := queries.NewSortedRestaurantsQueryHandler(f.catalogue())

		query, err := queries.NewSortedRestaurantsQuery(customerID, services.SortByStyle)
		require.NoError(t, err)

		views, err := handler.Handle(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, []string{"Bamboo", "augustine", "Napoli"}, viewNames(views))
	})

	t.Run("should sort by rating with unreviewed venues last", func(t *testing.T) {
		f, customerID := catalogueFixtures(t)
		handler := queries.NewSortedRestaurantsQueryHandler(f.catalogue())

		views, err := handler.Handle(ctx, mustSortQuery(t, customerID, services.SortByName))
		require.NoError(t, err)
		byName := make(map[string]kernel.UUID, len(views))
		for _, v := range views {
			byName[v.Name] = v.ID
		}

		addReview(t, f, customerID, byName["Napoli"], 5)
		addReview(t, f, customerID, byName["Bamboo"], 3)

		rated, err := handler.Handle(ctx, mustSortQuery(t, customerID, services.SortByRating))
		require.NoError(t, err)
		assert.Equal(t, []string{"Napoli", "Bamboo", "augustine"}, viewNames(rated))
		assert.InDelta(t, 5.0, rated[0].AverageRating, 1e-9)
		assert.Equal(t, 1, rated[0].ReviewCount)
		assert.Equal(t, 0, rated[2].ReviewCount)
	})

	t.Run("should fail for an unknown customer", func(t *testing.T) {
		f, _ := catalogueFixtures(t)
		handler := queries.NewSortedRestaurantsQueryHandler(f.catalogue())

		_, err := handler.Handle(ctx, mustSortQuery(t, kernel.NewUUID(), services.SortByName))
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject a zero value query", func(t *testing.T) {
		f, _ := catalogueFixtures(t)
		handler := queries.NewSortedRestaurantsQueryHandler(f.catalogue())

		_, err := handler.Handle(ctx, queries.SortedRestaurantsQuery{})
		assert.ErrorIs(t, err, queries.ErrSortedRestaurantsQueryIsNotConstructed)
	})
}

func mustSortQuery(
	t *testing.T,
	customerID kernel.UUID,
	strategy services.SortStrategy,
) queries.SortedRestaurantsQuery {
	t.Helper()
	query, err := queries.NewSortedRestaurantsQuery(customerID, strategy)
	require.NoError(t, err)
	return query
}
