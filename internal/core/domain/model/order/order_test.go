package order_test

import (
	"testing"
	"time"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"
	"labflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validPatientID := kernel.NewUUID()

	t.Run("should create pending order with computed totals", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 150.50), mustLineItem(t, 95.00)}

		o, err := order.NewOrder(validID, validPatientID, items, decimal.NewFromInt(10), decimal.NewFromInt(100), "fasting patient")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.PatientID().IsEqual(validPatientID))
		assert.Equal(t, order.Pending, o.Status())
		assert.True(t, o.IsActive())
		assert.Equal(t, "fasting patient", o.Notes())
		assert.Equal(t, 1, o.Version())
		assert.True(t, o.Totals().Total().Equal(decimal.NewFromFloat(220.95)))
		assert.True(t, o.Totals().BalanceDue().Equal(decimal.NewFromFloat(120.95)))
	})

	t.Run("should fail without line items", func(t *testing.T) {
		o, err := order.NewOrder(validID, validPatientID, nil, decimal.Zero, decimal.Zero, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrNoLineItems)
	})

	t.Run("should fail with invalid patient id", func(t *testing.T) {
		var invalidPatientID kernel.UUID
		items := []order.LineItem{mustLineItem(t, 100)}

		o, err := order.NewOrder(validID, invalidPatientID, items, decimal.Zero, decimal.Zero, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "patientId")
	})

	t.Run("should fail with discount above 100", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 100)}

		o, err := order.NewOrder(validID, validPatientID, items, decimal.NewFromInt(101), decimal.Zero, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with negative advance", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 100)}

		o, err := order.NewOrder(validID, validPatientID, items, decimal.Zero, decimal.NewFromInt(-5), "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "advancePaid")
	})

	t.Run("should fail with zero-value line item", func(t *testing.T) {
		items := []order.LineItem{{}}

		o, err := order.NewOrder(validID, validPatientID, items, decimal.Zero, decimal.Zero, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrLineItemIsNotConstructed)
	})
}

func TestOrder_PricingMutations(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		items := []order.LineItem{mustLineItem(t, 150.50), mustLineItem(t, 95.00)}
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, decimal.Zero, decimal.Zero, "")
		require.NoError(t, err)
		return o
	}

	t.Run("should recompute totals on discount change", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeDiscount(decimal.NewFromInt(10)))

		assert.True(t, o.Totals().Total().Equal(decimal.NewFromFloat(220.95)))
	})

	t.Run("should recompute totals on advance change", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeAdvance(decimal.NewFromInt(300)))

		assert.True(t, o.Totals().BalanceDue().IsZero())
		assert.True(t, o.Totals().Overpayment().Equal(decimal.NewFromFloat(54.50)))
	})

	t.Run("should reject out-of-range discount and keep totals", func(t *testing.T) {
		o := newOrder(t)
		before := o.Totals()

		err := o.ChangeDiscount(decimal.NewFromInt(150))

		require.Error(t, err)
		assert.True(t, o.Totals().IsEqual(before))
	})

	t.Run("should reject negative advance and keep totals", func(t *testing.T) {
		o := newOrder(t)
		before := o.Totals()

		err := o.ChangeAdvance(decimal.NewFromInt(-1))

		require.Error(t, err)
		assert.True(t, o.Totals().IsEqual(before))
	})
}

func TestOrder_StatusTransitions(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		items := []order.LineItem{mustLineItem(t, 100)}
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, decimal.Zero, decimal.Zero, "")
		require.NoError(t, err)
		return o
	}

	t.Run("should mark pending order paid", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.MarkPaid())

		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("should cancel pending order", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("paid order should reject every further status change", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.MarkPaid())

		for _, target := range []order.Status{order.Pending, order.Paid, order.Cancelled} {
			err := o.ChangeStatus(target)

			require.ErrorIs(t, err, errs.ErrInvalidTransition)
			assert.Equal(t, order.Paid, o.Status())
		}
	})

	t.Run("cancelled order should reject every further status change", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Cancel())

		for _, target := range []order.Status{order.Pending, order.Paid, order.Cancelled} {
			err := o.ChangeStatus(target)

			require.ErrorIs(t, err, errs.ErrInvalidTransition)
			assert.Equal(t, order.Cancelled, o.Status())
		}
	})
}

func TestOrder_Deactivate(t *testing.T) {
	t.Run("should be allowed from any status", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 100)}
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, decimal.Zero, decimal.Zero, "")
		require.NoError(t, o.MarkPaid())

		o.Deactivate()

		assert.False(t, o.IsActive())
		assert.Equal(t, order.Paid, o.Status())
	})
}

func TestOrder_Items(t *testing.T) {
	t.Run("should return a defensive copy", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 100), mustLineItem(t, 50)}
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, decimal.Zero, decimal.Zero, "")

		got := o.Items()
		got[0] = order.LineItem{}

		assert.NoError(t, o.Items()[0].Validate())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore stored state verbatim", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 100)}
		createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		totals := order.RestoreTotals(
			decimal.NewFromInt(100), decimal.NewFromInt(90), decimal.NewFromInt(40), decimal.Zero)

		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), items,
			decimal.NewFromInt(10), decimal.NewFromInt(50), "notes",
			order.Paid, false, totals, createdAt, 7)

		require.NoError(t, err)
		assert.Equal(t, order.Paid, o.Status())
		assert.False(t, o.IsActive())
		assert.Equal(t, 7, o.Version())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.True(t, o.Totals().IsEqual(totals))
	})

	t.Run("should reject invalid stored status", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 100)}

		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), items,
			decimal.Zero, decimal.Zero, "", order.Unknown, true, order.Totals{}, time.Now(), 1)

		require.Error(t, err)
	})

	t.Run("should reject version below one", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 100)}

		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), items,
			decimal.Zero, decimal.Zero, "", order.Pending, true, order.Totals{}, time.Now(), 0)

		require.Error(t, err)
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
