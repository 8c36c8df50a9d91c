package queries

import (
	"errors"

	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery lists active orders still awaiting payment. Staff
// use it to discover orders with collectible line items.
type GetPendingOrdersQuery struct {
	caller services.Caller

	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query for the pending order list.
func NewGetPendingOrdersQuery(caller services.Caller) (GetPendingOrdersQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetPendingOrdersQuery{}, err
	}

	return GetPendingOrdersQuery{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// Caller returns the identity invoking the query.
func (q GetPendingOrdersQuery) Caller() services.Caller {
	return q.caller
}

// GetPendingOrdersQueryResponse is the list of pending orders.
type GetPendingOrdersQueryResponse struct {
	Orders []GetOrderSnapshotQueryResponse
}
