package order

import (
	"github.com/shopspring/decimal"
)

// Totals is the computed monetary summary of an order. It is always derived
// from the line items, discount, and advance through ComputeTotals; callers
// never patch individual fields.
//
// Invariants:
//   - Subtotal = Σ line item unit prices
//   - Total = Subtotal × (1 − discount/100), never negative
//   - BalanceDue = max(Total − advance, 0)
//   - Overpayment = max(advance − Total, 0)
//   - At most one of BalanceDue/Overpayment is non-zero
type Totals struct {
	subtotal    decimal.Decimal
	total       decimal.Decimal
	balanceDue  decimal.Decimal
	overpayment decimal.Decimal
}

// Subtotal returns the sum of line item unit prices before discount.
func (t Totals) Subtotal() decimal.Decimal {
	return t.subtotal
}

// Total returns the amount owed after discount.
func (t Totals) Total() decimal.Decimal {
	return t.total
}

// BalanceDue returns the amount still owed after the advance payment.
func (t Totals) BalanceDue() decimal.Decimal {
	return t.balanceDue
}

// Overpayment returns the change owed back to the patient when the advance
// exceeds the discounted total.
func (t Totals) Overpayment() decimal.Decimal {
	return t.overpayment
}

// IsEqual reports whether two totals carry the same amounts.
func (t Totals) IsEqual(other Totals) bool {
	return t.subtotal.Equal(other.subtotal) &&
		t.total.Equal(other.total) &&
		t.balanceDue.Equal(other.balanceDue) &&
		t.overpayment.Equal(other.overpayment)
}

// ComputeTotals is the pricing engine: a pure function from line items,
// discount percentage, and advance payment to the order's monetary summary.
// Given the same inputs it always yields the same outputs, so callers
// recompute on every pricing mutation instead of patching fields.
//
// The discount percentage is validated to [0,100] at input boundaries; the
// clamp of Total to zero covers values that slip past that check so money
// never goes negative.
func ComputeTotals(items []LineItem, discountPercent, advancePaid decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice())
	}

	hundred := decimal.NewFromInt(100)
	total := subtotal.Sub(subtotal.Mul(discountPercent).Div(hundred))
	if total.IsNegative() {
		total = decimal.Zero
	}

	balanceDue := total.Sub(advancePaid)
	if balanceDue.IsNegative() {
		balanceDue = decimal.Zero
	}

	overpayment := advancePaid.Sub(total)
	if overpayment.IsNegative() {
		overpayment = decimal.Zero
	}

	return Totals{
		subtotal:    subtotal,
		total:       total,
		balanceDue:  balanceDue,
		overpayment: overpayment,
	}
}

// RestoreTotals reconstructs a totals snapshot from persistence. Repositories
// use it when mapping rows back to the aggregate; the stored values were
// produced by ComputeTotals at write time.
func RestoreTotals(subtotal, total, balanceDue, overpayment decimal.Decimal) Totals {
	return Totals{
		subtotal:    subtotal,
		total:       total,
		balanceDue:  balanceDue,
		overpayment: overpayment,
	}
}
