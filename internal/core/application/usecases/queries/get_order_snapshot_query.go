// Package queries contains read-only operations over the persisted state.
// Implements the Query side of the CQRS architecture: handlers read rows
// directly, bypassing the aggregates, and project them into response
// structs consumed by the HTTP layer and document rendering.
package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/guard"
)

var ErrGetOrderSnapshotQueryIsNotConstructed = errors.New(
	"GetOrderSnapshotQuery must be created via NewGetOrderSnapshotQuery constructor",
)

// GetOrderSnapshotQuery retrieves the read-only snapshot of one order,
// including its pricing breakdown. Consumed by staff screens and by
// external document rendering.
type GetOrderSnapshotQuery struct {
	caller  services.Caller
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderSnapshotQuery creates a query for one order's snapshot.
func NewGetOrderSnapshotQuery(caller services.Caller, orderID kernel.UUID) (GetOrderSnapshotQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetOrderSnapshotQuery{}, err
	}
	if err := orderID.Validate(); err != nil {
		return GetOrderSnapshotQuery{}, err
	}

	return GetOrderSnapshotQuery{
		caller:  caller,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSnapshotQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSnapshotQueryIsNotConstructed)
}

// Caller returns the identity invoking the query.
func (q GetOrderSnapshotQuery) Caller() services.Caller {
	return q.caller
}

// OrderID returns the requested order.
func (q GetOrderSnapshotQuery) OrderID() kernel.UUID {
	return q.orderID
}

// LineItemResponse is one snapshotted order line.
type LineItemResponse struct {
	AnalysisID  kernel.UUID
	Name        string
	UnitPrice   decimal.Decimal
	Description string
}

// GetOrderSnapshotQueryResponse is the full read view of an order.
type GetOrderSnapshotQueryResponse struct {
	ID              kernel.UUID
	PatientID       kernel.UUID
	Items           []LineItemResponse
	DiscountPercent decimal.Decimal
	AdvancePaid     decimal.Decimal
	Notes           string
	Status          string
	Active          bool
	Subtotal        decimal.Decimal
	Total           decimal.Decimal
	BalanceDue      decimal.Decimal
	Overpayment     decimal.Decimal
	CreatedAt       time.Time
	Version         int
}
