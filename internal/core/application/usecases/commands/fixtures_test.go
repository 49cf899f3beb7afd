package commands_test

import (
	"context"
	"testing"

	"arribaeats/internal/adapters/out/memory"
	"arribaeats/internal/core/application/usecases/commands"
	"arribaeats/internal/core/domain/model/actor"
	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/core/domain/model/order"
	"arribaeats/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/require"
)

// The handler tests run against the real in-memory store. The thin wrappers
// below adapt its factory to the narrowed factory interfaces the handlers
// declare; the unit of work itself satisfies all of them.
type fixtures struct {
	factory *memory.UnitOfWorkFactory
}

type actorUoWFactory struct{ inner *memory.UnitOfWorkFactory }

func (f actorUoWFactory) Create() commands.ActorUoW { return f.inner.Create() }

type catalogueUoWFactory struct{ inner *memory.UnitOfWorkFactory }

func (f catalogueUoWFactory) Create() commands.CatalogueUoW { return f.inner.Create() }

type orderUoWFactory struct{ inner *memory.UnitOfWorkFactory }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.inner.Create() }

type uowFactory struct{ inner *memory.UnitOfWorkFactory }

func (f uowFactory) Create() commands.UoW { return f.inner.Create() }

func newFixtures() fixtures {
	return fixtures{factory: memory.NewUnitOfWorkFactory(memory.NewStore())}
}

func (f fixtures) actors() commands.ActorUoWFactory { return actorUoWFactory{inner: f.factory} }

func (f fixtures) catalogue() commands.CatalogueUoWFactory {
	return catalogueUoWFactory{inner: f.factory}
}

func (f fixtures) orders() commands.OrderUoWFactory { return orderUoWFactory{inner: f.factory} }

func (f fixtures) all() commands.UoWFactory { return uowFactory{inner: f.factory} }

func details(t *testing.T, email string) actor.Details {
	t.Helper()
	d, err := actor.NewDetails("Test Person", 30, email, "0400000000", "secret123")
	require.NoError(t, err)
	return d
}

// seedCustomer registers a customer through the handler and returns its ID.
func seedCustomer(t *testing.T, f fixtures, email string) kernel.UUID {
	t.Helper()
	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(id, details(t, email), kernel.NewLocation(0, 0))
	require.NoError(t, err)

	handler := commands.NewRegisterCustomerCommandHandler(f.actors())
	require.NoError(t, handler.Handle(context.Background(), cmd))
	return id
}

// seedCourier registers a courier through the handler and returns its ID.
func seedCourier(t *testing.T, f fixtures, email string) kernel.UUID {
	t.Helper()
	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterCourierCommand(id, details(t, email), "ABC123", kernel.NewLocation(0, 0))
	require.NoError(t, err)

	handler := commands.NewRegisterCourierCommandHandler(f.actors())
	require.NoError(t, handler.Handle(context.Background(), cmd))
	return id
}

// seedRestaurant registers an operator with a restaurant and stocks one menu
// item. Returns operator ID and restaurant ID.
func seedRestaurant(t *testing.T, f fixtures, email string) (kernel.UUID, kernel.UUID) {
	t.Helper()
	operatorID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	cmd, err := commands.NewRegisterOperatorCommand(
		operatorID, restaurantID, details(t, email),
		"Test Kitchen", restaurant.StyleItalian, kernel.NewLocation(3, 4))
	require.NoError(t, err)

	handler := commands.NewRegisterOperatorCommandHandler(f.catalogue())
	require.NoError(t, handler.Handle(context.Background(), cmd))

	addItem, err := commands.NewAddMenuItemCommand(operatorID, "Burger", 5.00)
	require.NoError(t, err)
	itemHandler := commands.NewAddMenuItemCommandHandler(f.catalogue())
	require.NoError(t, itemHandler.Handle(context.Background(), addItem))

	return operatorID, restaurantID
}

// seedOrder opens an order and fills it with one burger. Returns the order ID.
func seedOrder(t *testing.T, f fixtures, customerID, restaurantID kernel.UUID) int64 {
	t.Helper()
	ctx := context.Background()

	createCmd, err := commands.NewCreateOrderCommand(customerID, restaurantID)
	require.NoError(t, err)
	orderID, err := commands.NewCreateOrderCommandHandler(f.all()).Handle(ctx, createCmd)
	require.NoError(t, err)

	addCmd, err := commands.NewAddOrderItemCommand(customerID, orderID, "Burger", 1)
	require.NoError(t, err)
	require.NoError(t, commands.NewAddOrderItemCommandHandler(f.all()).Handle(ctx, addCmd))

	return orderID
}

// seedReadyOrder walks a fresh order to ReadyForPickup.
func seedReadyOrder(t *testing.T, f fixtures, customerID, operatorID, restaurantID kernel.UUID) int64 {
	t.Helper()
	ctx := context.Background()
	orderID := seedOrder(t, f, customerID, restaurantID)

	finalizeCmd, err := commands.NewFinalizeOrderCommand(customerID, orderID)
	require.NoError(t, err)
	require.NoError(t, commands.NewFinalizeOrderCommandHandler(f.orders()).Handle(ctx, finalizeCmd))

	advance := commands.NewAdvanceOrderCommandHandler(f.all())
	for i := 0; i < 2; i++ {
		cmd, err := commands.NewAdvanceOrderCommand(operatorID, orderID)
		require.NoError(t, err)
		require.NoError(t, advance.Handle(ctx, cmd))
	}

	return orderID
}

func getOrder(t *testing.T, f fixtures, orderID int64) *order.Order {
	t.Helper()
	o, err := f.factory.Create().OrderRepository().Get(context.Background(), orderID)
	require.NoError(t, err)
	return o
}

func getCourier(t *testing.T, f fixtures, courierID kernel.UUID) *actor.Courier {
	t.Helper()
	c, err := f.factory.Create().ActorRepository().GetCourier(context.Background(), courierID)
	require.NoError(t, err)
	return c
}
