// Package order contains the Order aggregate: a patient's priced request for
// one or more analyses. The package owns the pricing engine (ComputeTotals),
// the line item snapshots that freeze catalog pricing at creation time, and
// the Pending/Paid/Cancelled state machine.
package order
