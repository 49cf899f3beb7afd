package order_test

import (
	"testing"

	"arribaeats/internal/core/domain/model/kernel"
	"arribaeats/internal/core/domain/model/order"
	"arribaeats/internal/core/domain/model/restaurant"
	"arribaeats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(1, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return o
}

func menuItem(t *testing.T, name string, price float64) restaurant.MenuItem {
	t.Helper()
	item, err := restaurant.NewMenuItem(name, price)
	require.NoError(t, err)
	return item
}

// readyOrder builds a finalized order advanced to ReadyForPickup.
func readyOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newOrder(t)
	require.NoError(t, o.AddItem(menuItem(t, "Pad Thai", 11.00), 1))
	require.NoError(t, o.Finalize())
	require.NoError(t, o.StartCooking())
	require.NoError(t, o.MarkReadyForPickup())
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create placed empty unfinalized order", func(t *testing.T) {
		customerID := kernel.NewUUID()
		restaurantID := kernel.NewUUID()

		o, err := order.NewOrder(7, customerID, restaurantID)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(7), o.ID())
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.True(t, o.RestaurantID().IsEqual(restaurantID))
		assert.Equal(t, order.StatusPlaced, o.Status())
		assert.Nil(t, o.CourierID())
		assert.False(t, o.IsFinalized())
		assert.Empty(t, o.Lines())
	})

	t.Run("should fail with non-positive id", func(t *testing.T) {
		_, err := order.NewOrder(0, kernel.NewUUID(), kernel.NewUUID())
		require.Error(t, err)

		_, err = order.NewOrder(-3, kernel.NewUUID(), kernel.NewUUID())
		require.Error(t, err)
	})

	t.Run("should fail with zero value ids", func(t *testing.T) {
		var zero kernel.UUID

		_, err := order.NewOrder(1, zero, kernel.NewUUID())
		require.Error(t, err)

		_, err = order.NewOrder(1, kernel.NewUUID(), zero)
		require.Error(t, err)
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("should total price across lines", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.AddItem(menuItem(t, "Burger", 5.00), 2))
		require.NoError(t, o.AddItem(menuItem(t, "Fries", 2.00), 3))

		assert.InDelta(t, 16.00, o.TotalPrice(), 1e-9)
		assert.Len(t, o.Lines(), 2)
	})

	t.Run("should accumulate quantity for repeated item", func(t *testing.T) {
		o := newOrder(t)
		burger := menuItem(t, "Burger", 5.00)

		require.NoError(t, o.AddItem(burger, 2))
		require.NoError(t, o.AddItem(burger, 1))

		lines := o.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 3, lines[0].Quantity())
		assert.InDelta(t, 15.00, o.TotalPrice(), 1e-9)
	})

	t.Run("should match repeated items ignoring name case", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.AddItem(menuItem(t, "Burger", 5.00), 1))
		require.NoError(t, o.AddItem(menuItem(t, "BURGER", 5.00), 2))

		require.Len(t, o.Lines(), 1)
		assert.Equal(t, 3, o.Lines()[0].Quantity())
	})

	t.Run("should reject zero and negative quantities", func(t *testing.T) {
		o := newOrder(t)
		burger := menuItem(t, "Burger", 5.00)

		assert.ErrorIs(t, o.AddItem(burger, 0), errs.ErrValueIsInvalid)
		assert.ErrorIs(t, o.AddItem(burger, -1), errs.ErrValueIsInvalid)
		assert.Empty(t, o.Lines())
	})

	t.Run("should reject unconstructed menu item", func(t *testing.T) {
		o := newOrder(t)
		var item restaurant.MenuItem

		require.Error(t, o.AddItem(item, 1))
	})

	t.Run("should reject items after finalization", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AddItem(menuItem(t, "Burger", 5.00), 1))
		require.NoError(t, o.Finalize())

		err := o.AddItem(menuItem(t, "Fries", 2.00), 1)

		assert.ErrorIs(t, err, order.ErrOrderAlreadyFinalized)
	})
}

func TestOrder_Finalize(t *testing.T) {
	t.Run("should reject empty cart", func(t *testing.T) {
		o := newOrder(t)

		assert.ErrorIs(t, o.Finalize(), order.ErrEmptyOrder)
		assert.False(t, o.IsFinalized())
	})

	t.Run("should commit a non-empty cart once", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AddItem(menuItem(t, "Burger", 5.00), 1))

		require.NoError(t, o.Finalize())
		assert.True(t, o.IsFinalized())

		assert.ErrorIs(t, o.Finalize(), order.ErrOrderAlreadyFinalized)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("should walk the full delivery chain", func(t *testing.T) {
		o := newOrder(t)
		courierID := kernel.NewUUID()
		require.NoError(t, o.AddItem(menuItem(t, "Burger", 5.00), 1))
		require.NoError(t, o.Finalize())

		require.NoError(t, o.StartCooking())
		assert.Equal(t, order.StatusCooking, o.Status())

		require.NoError(t, o.MarkReadyForPickup())
		assert.Equal(t, order.StatusReadyForPickup, o.Status())

		require.NoError(t, o.AssignCourier(courierID))
		assert.Equal(t, order.StatusBeingDelivered, o.Status())
		require.NotNil(t, o.CourierID())
		assert.True(t, o.CourierID().IsEqual(courierID))

		require.NoError(t, o.CompleteDelivery(courierID))
		assert.Equal(t, order.StatusDelivered, o.Status())
	})

	t.Run("should refuse cooking an unfinalized order", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AddItem(menuItem(t, "Burger", 5.00), 1))

		assert.ErrorIs(t, o.StartCooking(), order.ErrOrderNotFinalized)
		assert.Equal(t, order.StatusPlaced, o.Status())
	})

	t.Run("should refuse skipping from Placed to BeingDelivered", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AddItem(menuItem(t, "Burger", 5.00), 1))
		require.NoError(t, o.Finalize())

		err := o.AssignCourier(kernel.NewUUID())

		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusPlaced, o.Status())
		assert.Nil(t, o.CourierID())
	})
}

func TestOrder_AssignCourier(t *testing.T) {
	t.Run("should bind courier exactly once", func(t *testing.T) {
		o := readyOrder(t)
		first := kernel.NewUUID()

		require.NoError(t, o.AssignCourier(first))

		err := o.AssignCourier(kernel.NewUUID())

		assert.ErrorIs(t, err, order.ErrOrderAlreadyTaken)
		assert.True(t, o.CourierID().IsEqual(first))
	})

	t.Run("should reject zero value courier id", func(t *testing.T) {
		o := readyOrder(t)
		var zero kernel.UUID

		require.Error(t, o.AssignCourier(zero))
		assert.Nil(t, o.CourierID())
		assert.Equal(t, order.StatusReadyForPickup, o.Status())
	})
}

func TestOrder_CompleteDelivery(t *testing.T) {
	t.Run("should refuse completion by another courier", func(t *testing.T) {
		o := readyOrder(t)
		bound := kernel.NewUUID()
		require.NoError(t, o.AssignCourier(bound))

		err := o.CompleteDelivery(kernel.NewUUID())

		assert.ErrorIs(t, err, order.ErrCourierMismatch)
		assert.Equal(t, order.StatusBeingDelivered, o.Status())
	})

	t.Run("should refuse completion with no courier bound", func(t *testing.T) {
		o := readyOrder(t)

		err := o.CompleteDelivery(kernel.NewUUID())

		assert.ErrorIs(t, err, order.ErrCourierMismatch)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel from Placed", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("should cancel from Cooking", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AddItem(menuItem(t, "Burger", 5.00), 1))
		require.NoError(t, o.Finalize())
		require.NoError(t, o.StartCooking())

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("should refuse cancelling once ready for pickup", func(t *testing.T) {
		o := readyOrder(t)

		assert.ErrorIs(t, o.Cancel(), order.ErrInvalidTransition)
		assert.Equal(t, order.StatusReadyForPickup, o.Status())
	})

	t.Run("should refuse cancelling a delivered order", func(t *testing.T) {
		o := readyOrder(t)
		courierID := kernel.NewUUID()
		require.NoError(t, o.AssignCourier(courierID))
		require.NoError(t, o.CompleteDelivery(courierID))

		assert.ErrorIs(t, o.Cancel(), order.ErrInvalidTransition)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail for zero value order", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}
