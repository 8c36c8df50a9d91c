package queries

import (
	"errors"
	"time"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/sample"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/guard"
)

var ErrGetSampleSnapshotQueryIsNotConstructed = errors.New(
	"GetSampleSnapshotQuery must be created via NewGetSampleSnapshotQuery constructor",
)

// GetSampleSnapshotQuery retrieves the read-only snapshot of one sample,
// including its result payload once entered. The snapshot returns exactly
// the submitted result values, unchanged.
type GetSampleSnapshotQuery struct {
	caller   services.Caller
	sampleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSampleSnapshotQuery creates a query for one sample's snapshot.
func NewGetSampleSnapshotQuery(caller services.Caller, sampleID kernel.UUID) (GetSampleSnapshotQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetSampleSnapshotQuery{}, err
	}
	if err := sampleID.Validate(); err != nil {
		return GetSampleSnapshotQuery{}, err
	}

	return GetSampleSnapshotQuery{
		caller:   caller,
		sampleID: sampleID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSampleSnapshotQuery) Validate() error {
	return q.guard.Validate(ErrGetSampleSnapshotQueryIsNotConstructed)
}

// Caller returns the identity invoking the query.
func (q GetSampleSnapshotQuery) Caller() services.Caller {
	return q.caller
}

// SampleID returns the requested sample.
func (q GetSampleSnapshotQuery) SampleID() kernel.UUID {
	return q.sampleID
}

// GetSampleSnapshotQueryResponse is the full read view of a sample.
// Result is nil until results are entered; when present it carries the
// category discriminant and the flat field values.
type GetSampleSnapshotQueryResponse struct {
	ID                 kernel.UUID
	OrderID            kernel.UUID
	PatientID          kernel.UUID
	PatientDisplayName string
	Category           string
	Observations       string
	Active             bool
	ClientVisible      bool
	Result             *SampleResultResponse
	CreatedAt          time.Time
	Version            int
}

// SampleResultResponse is the projected result payload.
type SampleResultResponse struct {
	Category string
	Fields   map[string]float64
}

func resultResponseFrom(payload *sample.ResultPayload) *SampleResultResponse {
	if payload == nil {
		return nil
	}
	return &SampleResultResponse{
		Category: payload.Category().String(),
		Fields:   payload.Fields(),
	}
}
