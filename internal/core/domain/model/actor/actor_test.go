package actor_test

import (
	"testing"

	"arribaeats/internal/core/domain/model/actor"
	"arribaeats/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails(t *testing.T, email string) actor.Details {
	t.Helper()
	d, err := actor.NewDetails("Test Actor", 30, email, "0400000000", "secret")
	require.NoError(t, err)
	return d
}

func TestNewCustomer(t *testing.T) {
	t.Run("should create valid customer", func(t *testing.T) {
		c, err := actor.NewCustomer(kernel.NewUUID(), validDetails(t, "c@e.com"), kernel.NewLocation(3, 4))

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, actor.RoleCustomer, c.Role())
		assert.Equal(t, kernel.NewLocation(3, 4), c.Location())
		assert.Empty(t, c.OrderIDs())
	})

	t.Run("should fail with zero value id", func(t *testing.T) {
		var id kernel.UUID

		_, err := actor.NewCustomer(id, validDetails(t, "c@e.com"), kernel.NewLocation(0, 0))

		require.Error(t, err)
	})

	t.Run("should fail with unconstructed details", func(t *testing.T) {
		var d actor.Details

		_, err := actor.NewCustomer(kernel.NewUUID(), d, kernel.NewLocation(0, 0))

		require.Error(t, err)
	})
}

func TestCustomer_OrderHistory(t *testing.T) {
	t.Run("should preserve insertion order", func(t *testing.T) {
		c, _ := actor.NewCustomer(kernel.NewUUID(), validDetails(t, "c@e.com"), kernel.NewLocation(0, 0))

		c.AddOrder(3)
		c.AddOrder(1)
		c.AddOrder(2)

		assert.Equal(t, []int64{3, 1, 2}, c.OrderIDs())
	})

	t.Run("should return a copy of the history", func(t *testing.T) {
		c, _ := actor.NewCustomer(kernel.NewUUID(), validDetails(t, "c@e.com"), kernel.NewLocation(0, 0))
		c.AddOrder(1)

		ids := c.OrderIDs()
		ids[0] = 99

		assert.Equal(t, []int64{1}, c.OrderIDs())
	})
}

func TestNewCourier(t *testing.T) {
	t.Run("should create valid courier", func(t *testing.T) {
		c, err := actor.NewCourier(kernel.NewUUID(), validDetails(t, "d@e.com"), "ABC-123", kernel.NewLocation(1, 1))

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, actor.RoleCourier, c.Role())
		assert.Equal(t, "ABC-123", c.Plate())
		assert.False(t, c.IsBusy())
		assert.Nil(t, c.ActiveOrderID())
	})

	t.Run("should fail with empty plate", func(t *testing.T) {
		_, err := actor.NewCourier(kernel.NewUUID(), validDetails(t, "d@e.com"), "", kernel.NewLocation(1, 1))

		require.Error(t, err)
	})
}

func TestCourier_OrderSlot(t *testing.T) {
	newCourier := func(t *testing.T) *actor.Courier {
		t.Helper()
		c, err := actor.NewCourier(kernel.NewUUID(), validDetails(t, "d@e.com"), "ABC-123", kernel.NewLocation(1, 1))
		require.NoError(t, err)
		return c
	}

	t.Run("should take an order when free", func(t *testing.T) {
		c := newCourier(t)

		require.NoError(t, c.TakeOrder(7))

		assert.True(t, c.IsBusy())
		require.NotNil(t, c.ActiveOrderID())
		assert.Equal(t, int64(7), *c.ActiveOrderID())
	})

	t.Run("should refuse a second order while busy", func(t *testing.T) {
		c := newCourier(t)
		require.NoError(t, c.TakeOrder(7))

		err := c.TakeOrder(8)

		assert.ErrorIs(t, err, actor.ErrCourierBusy)
		assert.Equal(t, int64(7), *c.ActiveOrderID())
	})

	t.Run("should release the held order", func(t *testing.T) {
		c := newCourier(t)
		require.NoError(t, c.TakeOrder(7))

		require.NoError(t, c.ReleaseOrder(7))

		assert.False(t, c.IsBusy())
	})

	t.Run("should refuse releasing an order it does not hold", func(t *testing.T) {
		c := newCourier(t)
		require.NoError(t, c.TakeOrder(7))

		require.Error(t, c.ReleaseOrder(8))
		assert.True(t, c.IsBusy())
	})

	t.Run("should refuse releasing when free", func(t *testing.T) {
		c := newCourier(t)

		require.Error(t, c.ReleaseOrder(7))
	})

	t.Run("should allow a new order after release", func(t *testing.T) {
		c := newCourier(t)
		require.NoError(t, c.TakeOrder(7))
		require.NoError(t, c.ReleaseOrder(7))

		require.NoError(t, c.TakeOrder(8))
		assert.Equal(t, int64(8), *c.ActiveOrderID())
	})
}

func TestCourier_SetLocation(t *testing.T) {
	t.Run("should move the courier", func(t *testing.T) {
		c, _ := actor.NewCourier(kernel.NewUUID(), validDetails(t, "d@e.com"), "ABC-123", kernel.NewLocation(1, 1))

		c.SetLocation(kernel.NewLocation(5, 9))

		assert.Equal(t, kernel.NewLocation(5, 9), c.Location())
	})
}

func TestNewOperator(t *testing.T) {
	t.Run("should create valid operator bound to a restaurant", func(t *testing.T) {
		restaurantID := kernel.NewUUID()

		o, err := actor.NewOperator(kernel.NewUUID(), validDetails(t, "o@e.com"), restaurantID)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, actor.RoleOperator, o.Role())
		assert.True(t, o.RestaurantID().IsEqual(restaurantID))
	})

	t.Run("should fail with zero value restaurant id", func(t *testing.T) {
		var restaurantID kernel.UUID

		_, err := actor.NewOperator(kernel.NewUUID(), validDetails(t, "o@e.com"), restaurantID)

		require.Error(t, err)
	})
}

func TestActorInterface(t *testing.T) {
	t.Run("should expose all variants through the Actor interface", func(t *testing.T) {
		customer, _ := actor.NewCustomer(kernel.NewUUID(), validDetails(t, "c@e.com"), kernel.NewLocation(0, 0))
		courier, _ := actor.NewCourier(kernel.NewUUID(), validDetails(t, "d@e.com"), "P-1", kernel.NewLocation(0, 0))
		operator, _ := actor.NewOperator(kernel.NewUUID(), validDetails(t, "o@e.com"), kernel.NewUUID())

		actors := []actor.Actor{customer, courier, operator}
		roles := []actor.Role{actor.RoleCustomer, actor.RoleCourier, actor.RoleOperator}

		for i, a := range actors {
			assert.Equal(t, roles[i], a.Role())
			assert.NotEmpty(t, a.Email())
			assert.NotEmpty(t, a.Name())
		}
	})
}
