package queries

import (
	"errors"
	"time"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/guard"
)

var ErrGetSamplesQueryIsNotConstructed = errors.New(
	"GetSamplesQuery must be created via NewGetSamplesQuery constructor",
)

// GetSamplesQuery lists samples. Staff see the whole worklist, patients
// only their own released results. Optionally scoped to one order.
type GetSamplesQuery struct {
	caller  services.Caller
	orderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSamplesQuery creates a query over every sample the caller may see.
func NewGetSamplesQuery(caller services.Caller) (GetSamplesQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetSamplesQuery{}, err
	}

	return GetSamplesQuery{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewGetSamplesQueryForOrder creates a query scoped to one order's samples.
func NewGetSamplesQueryForOrder(caller services.Caller, orderID kernel.UUID) (GetSamplesQuery, error) {
	query, err := NewGetSamplesQuery(caller)
	if err != nil {
		return GetSamplesQuery{}, err
	}
	if err = orderID.Validate(); err != nil {
		return GetSamplesQuery{}, err
	}

	query.orderID = &orderID
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSamplesQuery) Validate() error {
	return q.guard.Validate(ErrGetSamplesQueryIsNotConstructed)
}

// Caller returns the identity invoking the query.
func (q GetSamplesQuery) Caller() services.Caller {
	return q.caller
}

// OrderID returns the order filter, or nil when listing across orders.
func (q GetSamplesQuery) OrderID() *kernel.UUID {
	return q.orderID
}

// SampleSummaryResponse is one row of the sample list. Result payloads are
// omitted from the list view; fetch the full snapshot for them.
type SampleSummaryResponse struct {
	ID                 kernel.UUID
	OrderID            kernel.UUID
	PatientID          kernel.UUID
	PatientDisplayName string
	Category           string
	Observations       string
	Active             bool
	ClientVisible      bool
	HasResult          bool
	CreatedAt          time.Time
	Version            int
}

// GetSamplesQueryResponse is the list of visible samples.
type GetSamplesQueryResponse struct {
	Samples []SampleSummaryResponse
}
