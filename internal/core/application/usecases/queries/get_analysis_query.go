package queries

import (
	"errors"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/guard"
)

var ErrGetAnalysisQueryIsNotConstructed = errors.New(
	"GetAnalysisQuery must be created via NewGetAnalysisQuery constructor",
)

// GetAnalysisQuery retrieves one catalog entry, active or not. Inactive
// entries stay readable so old order snapshots can be explained.
type GetAnalysisQuery struct {
	caller     services.Caller
	analysisID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAnalysisQuery creates a query for one catalog entry.
func NewGetAnalysisQuery(caller services.Caller, analysisID kernel.UUID) (GetAnalysisQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetAnalysisQuery{}, err
	}
	if err := analysisID.Validate(); err != nil {
		return GetAnalysisQuery{}, err
	}

	return GetAnalysisQuery{
		caller:     caller,
		analysisID: analysisID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAnalysisQuery) Validate() error {
	return q.guard.Validate(ErrGetAnalysisQueryIsNotConstructed)
}

// Caller returns the identity invoking the query.
func (q GetAnalysisQuery) Caller() services.Caller {
	return q.caller
}

// AnalysisID returns the requested catalog entry.
func (q GetAnalysisQuery) AnalysisID() kernel.UUID {
	return q.analysisID
}
