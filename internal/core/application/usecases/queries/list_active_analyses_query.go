package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/guard"
)

var ErrListActiveAnalysesQueryIsNotConstructed = errors.New(
	"ListActiveAnalysesQuery must be created via NewListActiveAnalysesQuery constructor",
)

// ListActiveAnalysesQuery lists the orderable analysis catalog. Every
// authenticated role may browse it.
type ListActiveAnalysesQuery struct {
	caller services.Caller

	guard guard.ConstructorGuard
}

// NewListActiveAnalysesQuery creates a query for the active catalog.
func NewListActiveAnalysesQuery(caller services.Caller) (ListActiveAnalysesQuery, error) {
	if err := caller.Validate(); err != nil {
		return ListActiveAnalysesQuery{}, err
	}

	return ListActiveAnalysesQuery{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListActiveAnalysesQuery) Validate() error {
	return q.guard.Validate(ErrListActiveAnalysesQueryIsNotConstructed)
}

// Caller returns the identity invoking the query.
func (q ListActiveAnalysesQuery) Caller() services.Caller {
	return q.caller
}

// AnalysisResponse is one catalog entry.
type AnalysisResponse struct {
	ID             kernel.UUID
	Name           string
	UnitCost       decimal.Decimal
	TurnaroundDays int
	Description    string
	Active         bool
}

// ListActiveAnalysesQueryResponse is the orderable catalog.
type ListActiveAnalysesQueryResponse struct {
	Analyses []AnalysisResponse
}
