package order_test

import (
	"testing"
	"time"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDelivery() order.Delivery {
	return order.Delivery{
		Stage:       "prescription refill",
		Location:    "12 Acacia Avenue, Kampala",
		Eta:         "45 minutes",
		TotalAmount: 65000,
		DeliveryFee: 5000,
	}
}

func TestNewOrder(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	pharmacyID := kernel.NewUUID()
	drugID := kernel.NewUUID()

	t.Run("should create pending order with no rider", func(t *testing.T) {
		line, err := order.NewServiceLine(kernel.NewUUID(), 1, 15000)
		require.NoError(t, err)

		o, err := order.NewOrder(id, customerID, pharmacyID, validDelivery(),
			[]kernel.UUID{drugID}, []order.ServiceLine{line}, nil)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.True(t, o.PharmacyID().IsEqual(pharmacyID))
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Rider())
		assert.Nil(t, o.PaymentID())
		assert.Len(t, o.DrugIDs(), 1)
		assert.Len(t, o.Services(), 1)
		assert.Equal(t, int64(15000), o.Services()[0].Price())
	})

	t.Run("should allow zero drugs and zero services", func(t *testing.T) {
		o, err := order.NewOrder(id, customerID, pharmacyID, validDelivery(), nil, nil, nil)

		require.NoError(t, err)
		assert.Empty(t, o.DrugIDs())
		assert.Empty(t, o.Services())
	})

	t.Run("should keep caller supplied totals verbatim", func(t *testing.T) {
		delivery := validDelivery()
		delivery.TotalAmount = 1
		delivery.DeliveryFee = 0

		o, err := order.NewOrder(id, customerID, pharmacyID, delivery, nil, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, int64(1), o.Delivery().TotalAmount)
		assert.Equal(t, int64(0), o.Delivery().DeliveryFee)
	})

	t.Run("should fail with invalid ids", func(t *testing.T) {
		var invalid kernel.UUID

		_, err := order.NewOrder(invalid, customerID, pharmacyID, validDelivery(), nil, nil, nil)
		require.Error(t, err)

		_, err = order.NewOrder(id, invalid, pharmacyID, validDelivery(), nil, nil, nil)
		require.Error(t, err)

		_, err = order.NewOrder(id, customerID, invalid, validDelivery(), nil, nil, nil)
		require.Error(t, err)
	})

	t.Run("should fail with missing delivery fields", func(t *testing.T) {
		for _, mutate := range []func(*order.Delivery){
			func(d *order.Delivery) { d.Stage = "" },
			func(d *order.Delivery) { d.Location = "" },
			func(d *order.Delivery) { d.Eta = "" },
		} {
			delivery := validDelivery()
			mutate(&delivery)

			_, err := order.NewOrder(id, customerID, pharmacyID, delivery, nil, nil, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "value is required")
		}
	})

	t.Run("should fail with negative totals", func(t *testing.T) {
		delivery := validDelivery()
		delivery.TotalAmount = -1

		_, err := order.NewOrder(id, customerID, pharmacyID, delivery, nil, nil, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "totalAmount")
	})

	t.Run("should fail with invalid drug reference", func(t *testing.T) {
		var invalid kernel.UUID

		_, err := order.NewOrder(id, customerID, pharmacyID, validDelivery(),
			[]kernel.UUID{invalid}, nil, nil)
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order is valid", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			validDelivery(), nil, nil, nil)
		require.NoError(t, err)
		require.NoError(t, o.Validate())
	})

	t.Run("zero value order fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Accept(t *testing.T) {
	newPendingOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			validDelivery(), nil, nil, nil)
		require.NoError(t, err)
		return o
	}

	t.Run("pending order can be accepted once", func(t *testing.T) {
		o := newPendingOrder(t)
		riderID := kernel.NewUUID()

		require.NoError(t, o.Accept(riderID))

		assert.Equal(t, order.Accepted, o.Status())
		require.NotNil(t, o.Rider())
		assert.True(t, o.Rider().IsEqual(riderID))
	})

	t.Run("second acceptance is rejected and the order is unchanged", func(t *testing.T) {
		o := newPendingOrder(t)
		firstRider := kernel.NewUUID()
		require.NoError(t, o.Accept(firstRider))

		err := o.Accept(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrAlreadyAccepted)
		assert.Equal(t, order.Accepted, o.Status())
		assert.True(t, o.Rider().IsEqual(firstRider))
	})

	t.Run("invalid rider id is rejected", func(t *testing.T) {
		o := newPendingOrder(t)
		var invalid kernel.UUID

		require.Error(t, o.Accept(invalid))
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Rider())
	})
}

func TestOrder_Deliver(t *testing.T) {
	newAcceptedOrder := func(t *testing.T, riderID kernel.UUID) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			validDelivery(), nil, nil, nil)
		require.NoError(t, err)
		require.NoError(t, o.Accept(riderID))
		return o
	}

	t.Run("assigned rider can deliver", func(t *testing.T) {
		riderID := kernel.NewUUID()
		o := newAcceptedOrder(t, riderID)

		require.NoError(t, o.Deliver(riderID))
		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, o.Rider().IsEqual(riderID))
	})

	t.Run("another rider cannot deliver", func(t *testing.T) {
		riderID := kernel.NewUUID()
		o := newAcceptedOrder(t, riderID)

		err := o.Deliver(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrNotOrderOwner)
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("pending order cannot be delivered", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			validDelivery(), nil, nil, nil)
		require.NoError(t, err)

		// No rider has been assigned yet, so this reads as an ownership failure.
		require.ErrorIs(t, o.Deliver(kernel.NewUUID()), order.ErrNotOrderOwner)
	})

	t.Run("second delivery is rejected, order stays delivered", func(t *testing.T) {
		riderID := kernel.NewUUID()
		o := newAcceptedOrder(t, riderID)
		require.NoError(t, o.Deliver(riderID))

		err := o.Deliver(riderID)

		require.ErrorIs(t, err, order.ErrAlreadyDelivered)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("ownership is reported before double delivery", func(t *testing.T) {
		riderID := kernel.NewUUID()
		o := newAcceptedOrder(t, riderID)
		require.NoError(t, o.Deliver(riderID))

		err := o.Deliver(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrNotOrderOwner)
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	pharmacyID := kernel.NewUUID()
	riderID := kernel.NewUUID()
	createdAt := time.Now().Add(-time.Hour)
	updatedAt := time.Now()

	t.Run("restores accepted order with rider", func(t *testing.T) {
		o, err := order.RestoreOrder(id, customerID, pharmacyID, &riderID,
			order.Accepted, validDelivery(), nil, nil, nil, createdAt, updatedAt)

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, o.Status())
		assert.True(t, o.Rider().IsEqual(riderID))
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, updatedAt, o.UpdatedAt())
	})

	t.Run("rejects pending order with rider", func(t *testing.T) {
		_, err := order.RestoreOrder(id, customerID, pharmacyID, &riderID,
			order.Pending, validDelivery(), nil, nil, nil, createdAt, updatedAt)

		require.Error(t, err)
	})

	t.Run("rejects accepted order without rider", func(t *testing.T) {
		_, err := order.RestoreOrder(id, customerID, pharmacyID, nil,
			order.Accepted, validDelivery(), nil, nil, nil, createdAt, updatedAt)

		require.Error(t, err)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(id, customerID, pharmacyID, nil,
			order.Unknown, validDelivery(), nil, nil, nil, createdAt, updatedAt)

		require.Error(t, err)
	})
}
