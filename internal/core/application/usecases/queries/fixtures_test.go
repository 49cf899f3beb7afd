package queries_test

import (
	"context"
	"testing"

	"arribaeats/internal/adapters/out/memory"
	"arribaeats/internal/core/application/usecases/commands"
	"arribaeats/internal/core/application/usecases/queries"
	"arribaeats/internal/core/domain/model/actor"
	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/require"
)

// Query handler tests run against the real in-memory store, seeded through
// the command handlers. The wrappers below adapt the store's factory to the
// narrowed factory interfaces each package declares; the unit of work itself
// satisfies all of them.
type fixtures struct {
	factory *memory.UnitOfWorkFactory
}

func newFixtures() fixtures {
	return fixtures{factory: memory.NewUnitOfWorkFactory(memory.NewStore())}
}

type actorUoWFactory struct{ inner *memory.UnitOfWorkFactory }

func (f actorUoWFactory) Create() queries.ActorUoW { return f.inner.Create() }

type catalogueUoWFactory struct{ inner *memory.UnitOfWorkFactory }

func (f catalogueUoWFactory) Create() queries.CatalogueUoW { return f.inner.Create() }

type uowFactory struct{ inner *memory.UnitOfWorkFactory }

func (f uowFactory) Create() queries.UoW { return f.inner.Create() }

type seedActorUoWFactory struct{ inner *memory.UnitOfWorkFactory }

func (f seedActorUoWFactory) Create() commands.ActorUoW { return f.inner.Create() }

type seedCatalogueUoWFactory struct{ inner *memory.UnitOfWorkFactory }

func (f seedCatalogueUoWFactory) Create() commands.CatalogueUoW { return f.inner.Create() }

type seedOrderUoWFactory struct{ inner *memory.UnitOfWorkFactory }

func (f seedOrderUoWFactory) Create() commands.OrderUoW { return f.inner.Create() }

type seedUoWFactory struct{ inner *memory.UnitOfWorkFactory }

func (f seedUoWFactory) Create() commands.UoW { return f.inner.Create() }

func (f fixtures) actors() queries.ActorUoWFactory { return actorUoWFactory{inner: f.factory} }

func (f fixtures) catalogue() queries.CatalogueUoWFactory {
	return catalogueUoWFactory{inner: f.factory}
}

func (f fixtures) all() queries.UoWFactory { return uowFactory{inner: f.factory} }

func (f fixtures) seedActors() commands.ActorUoWFactory {
	return seedActorUoWFactory{inner: f.factory}
}

func (f fixtures) seedCatalogue() commands.CatalogueUoWFactory {
	return seedCatalogueUoWFactory{inner: f.factory}
}

func (f fixtures) seedOrders() commands.OrderUoWFactory {
	return seedOrderUoWFactory{inner: f.factory}
}

func (f fixtures) seedAll() commands.UoWFactory { return seedUoWFactory{inner: f.factory} }

func details(t *testing.T, email string) actor.Details {
	t.Helper()
	d, err := actor.NewDetails("Test Person", 30, email, "0400000000", "secret123")
	require.NoError(t, err)
	return d
}

func seedCustomer(t *testing.T, f fixtures, email string, location kernel.Location) kernel.UUID {
	t.Helper()
	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(id, details(t, email), location)
	require.NoError(t, err)

	handler := commands.NewRegisterCustomerCommandHandler(f.seedActors())
	require.NoError(t, handler.Handle(context.Background(), cmd))
	return id
}

func seedCourier(t *testing.T, f fixtures, email string, location kernel.Location) kernel.UUID {
	t.Helper()
	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterCourierCommand(id, details(t, email), "ABC123", location)
	require.NoError(t, err)

	handler := commands.NewRegisterCourierCommandHandler(f.seedActors())
	require.NoError(t, handler.Handle(context.Background(), cmd))
	return id
}

// seedRestaurant registers an operator with a restaurant and stocks one
// "Burger" at 5.00. Returns operator ID and restaurant ID.
func seedRestaurant(
	t *testing.T,
	f fixtures,
	email string,
	name string,
	style restaurant.FoodStyle,
	location kernel.Location,
) (kernel.UUID, kernel.UUID) {
	t.Helper()
	operatorID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	cmd, err := commands.NewRegisterOperatorCommand(
		operatorID, restaurantID, details(t, email), name, style, location)
	require.NoError(t, err)

	handler := commands.NewRegisterOperatorCommandHandler(f.seedCatalogue())
	require.NoError(t, handler.Handle(context.Background(), cmd))

	addItem, err := commands.NewAddMenuItemCommand(operatorID, "Burger", 5.00)
	require.NoError(t, err)
	itemHandler := commands.NewAddMenuItemCommandHandler(f.seedCatalogue())
	require.NoError(t, itemHandler.Handle(context.Background(), addItem))

	return operatorID, restaurantID
}

// seedOrder opens an order holding a single burger. Returns the order ID.
func seedOrder(t *testing.T, f fixtures, customerID, restaurantID kernel.UUID) int64 {
	t.Helper()
	ctx := context.Background()

	createCmd, err := commands.NewCreateOrderCommand(customerID, restaurantID)
	require.NoError(t, err)
	orderID, err := commands.NewCreateOrderCommandHandler(f.seedAll()).Handle(ctx, createCmd)
	require.NoError(t, err)

	addCmd, err := commands.NewAddOrderItemCommand(customerID, orderID, "Burger", 1)
	require.NoError(t, err)
	require.NoError(t, commands.NewAddOrderItemCommandHandler(f.seedAll()).Handle(ctx, addCmd))

	return orderID
}

// finalizeOrder locks the order's contents in.
func finalizeOrder(t *testing.T, f fixtures, customerID kernel.UUID, orderID int64) {
	t.Helper()
	cmd, err := commands.NewFinalizeOrderCommand(customerID, orderID)
	require.NoError(t, err)
	require.NoError(t, commands.NewFinalizeOrderCommandHandler(f.seedOrders()).
		Handle(context.Background(), cmd))
}

// seedReadyOrder walks a fresh order to ReadyForPickup.
func seedReadyOrder(t *testing.T, f fixtures, customerID, operatorID, restaurantID kernel.UUID) int64 {
	t.Helper()
	ctx := context.Background()
	orderID := seedOrder(t, f, customerID, restaurantID)
	finalizeOrder(t, f, customerID, orderID)

	advance := commands.NewAdvanceOrderCommandHandler(f.seedAll())
	for i := 0; i < 2; i++ {
		cmd, err := commands.NewAdvanceOrderCommand(operatorID, orderID)
		require.NoError(t, err)
		require.NoError(t, advance.Handle(ctx, cmd))
	}

	return orderID
}

func addReview(t *testing.T, f fixtures, customerID, restaurantID kernel.UUID, rating int) {
	t.Helper()
	cmd, err := commands.NewAddReviewCommand(customerID, restaurantID, rating, "solid meal")
	require.NoError(t, err)
	require.NoError(t, commands.NewAddReviewCommandHandler(f.seedCatalogue()).
		Handle(context.Background(), cmd))
}
