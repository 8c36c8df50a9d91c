package order_test

import (
	"testing"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLineItem(t *testing.T, price float64) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), "Blood Chemistry", decimal.NewFromFloat(price), "panel")
	require.NoError(t, err)
	return item
}

func TestComputeTotals(t *testing.T) {
	t.Run("should apply discount then split advance against total", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 150.50), mustLineItem(t, 95.00)}

		totals := order.ComputeTotals(items, decimal.NewFromInt(10), decimal.NewFromInt(100))

		assert.True(t, totals.Subtotal().Equal(decimal.NewFromFloat(245.50)), "subtotal was %s", totals.Subtotal())
		assert.True(t, totals.Total().Equal(decimal.NewFromFloat(220.95)), "total was %s", totals.Total())
		assert.True(t, totals.BalanceDue().Equal(decimal.NewFromFloat(120.95)), "balance was %s", totals.BalanceDue())
		assert.True(t, totals.Overpayment().IsZero())
	})

	t.Run("should report overpayment as change", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 300)}

		totals := order.ComputeTotals(items, decimal.Zero, decimal.NewFromInt(350))

		assert.True(t, totals.Total().Equal(decimal.NewFromInt(300)))
		assert.True(t, totals.BalanceDue().IsZero())
		assert.True(t, totals.Overpayment().Equal(decimal.NewFromInt(50)))
	})

	t.Run("should yield zero subtotal for empty items", func(t *testing.T) {
		totals := order.ComputeTotals(nil, decimal.Zero, decimal.Zero)

		assert.True(t, totals.Subtotal().IsZero())
		assert.True(t, totals.Total().IsZero())
		assert.True(t, totals.BalanceDue().IsZero())
		assert.True(t, totals.Overpayment().IsZero())
	})

	t.Run("should be idempotent for identical inputs", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 150.50), mustLineItem(t, 95.00)}
		discount := decimal.NewFromInt(15)
		advance := decimal.NewFromInt(42)

		first := order.ComputeTotals(items, discount, advance)
		second := order.ComputeTotals(items, discount, advance)

		assert.True(t, first.IsEqual(second))
	})

	t.Run("should keep balance due and overpayment mutually exclusive", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 120), mustLineItem(t, 80)}

		for _, advance := range []int64{0, 50, 200, 201, 500} {
			totals := order.ComputeTotals(items, decimal.Zero, decimal.NewFromInt(advance))

			product := totals.BalanceDue().Mul(totals.Overpayment())
			assert.True(t, product.IsZero(), "advance %d: balance %s, overpayment %s",
				advance, totals.BalanceDue(), totals.Overpayment())
		}
	})

	t.Run("should zero balance and overpayment when advance equals total", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 200)}

		totals := order.ComputeTotals(items, decimal.Zero, decimal.NewFromInt(200))

		assert.True(t, totals.BalanceDue().IsZero())
		assert.True(t, totals.Overpayment().IsZero())
	})

	t.Run("should apply full discount", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 200)}

		totals := order.ComputeTotals(items, decimal.NewFromInt(100), decimal.Zero)

		assert.True(t, totals.Total().IsZero())
		assert.True(t, totals.BalanceDue().IsZero())
	})

	t.Run("should clamp total at zero for out-of-range discount", func(t *testing.T) {
		// Discount is bounded to [0,100] at input validation; the clamp is the
		// fail-closed path for values that slip past it.
		items := []order.LineItem{mustLineItem(t, 200)}

		totals := order.ComputeTotals(items, decimal.NewFromInt(150), decimal.Zero)

		assert.True(t, totals.Total().IsZero())
		assert.False(t, totals.Total().IsNegative())
	})
}
