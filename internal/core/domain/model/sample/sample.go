package sample

import (
	"errors"
	"fmt"
	"time"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/pkg/errs"
)

var (
	// ErrSampleIsNotConstructed is returned when a Sample instance was not
	// created through NewSample or RestoreSample.
	ErrSampleIsNotConstructed = errors.New("Sample must be created via NewSample constructor")

	// ErrSampleInactive is returned when results are registered or edited
	// against a deactivated sample.
	ErrSampleInactive = errors.New("sample is deactivated")

	// ErrResultsAlreadyRegistered is returned when RegisterResults or an
	// observations edit runs against a sample that already has results.
	ErrResultsAlreadyRegistered = errors.New("sample already has results registered")

	// ErrResultsNotRegistered is returned when EditResults runs against a
	// sample whose results were never released.
	ErrResultsNotRegistered = errors.New("sample has no released results to edit")

	// ErrCategoryMismatch is returned when a payload's category differs from
	// the category fixed at sample creation time.
	ErrCategoryMismatch = errors.New("result payload category does not match the sample's category")
)

// Sample is the aggregate root for one physical specimen tracked from
// collection to result release. It is derived from a collectible order line
// item and carries a denormalized patient display name for labels.
//
// Lifecycle:
//
//	collected (no result) ──> results released (clientVisible)
//
// Result entry and visibility release are atomic: once the lab signs off,
// the patient sees the results. Released results can only change through
// EditResults, which re-validates and overwrites the payload in place.
// Deactivation is reachable from any state and freezes the sample.
//
// Invariants:
//   - The category is fixed at creation and every payload must match it
//   - A payload exists if and only if clientVisible is true
//   - Observations are editable only before results exist
type Sample struct {
	id                 kernel.UUID
	orderID            kernel.UUID
	patientID          kernel.UUID
	patientDisplayName string
	category           Category
	observations       string
	active             bool
	clientVisible      bool
	result             *ResultPayload
	createdAt          time.Time
	version            int

	isConstructed bool
}

// NewSample creates a collected sample awaiting results.
func NewSample(
	id kernel.UUID,
	orderID kernel.UUID,
	patientID kernel.UUID,
	patientDisplayName string,
	category Category,
	observations string,
) (*Sample, error) {
	s := &Sample{
		active:        true,
		observations:  observations,
		createdAt:     time.Now().UTC(),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
		s.setPatientID(patientID),
		s.setPatientDisplayName(patientDisplayName),
		s.setCategory(category),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSample reconstructs a sample from persistence.
func RestoreSample(
	id kernel.UUID,
	orderID kernel.UUID,
	patientID kernel.UUID,
	patientDisplayName string,
	category Category,
	observations string,
	active bool,
	clientVisible bool,
	result *ResultPayload,
	createdAt time.Time,
	version int,
) (*Sample, error) {
	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is not a valid version", version))
	}
	if result != nil {
		if err := result.Validate(); err != nil {
			return nil, err
		}
		if result.Category() != category {
			return nil, ErrCategoryMismatch
		}
	}

	s, err := NewSample(id, orderID, patientID, patientDisplayName, category, observations)
	if err != nil {
		return nil, err
	}

	s.active = active
	s.clientVisible = clientVisible
	s.result = result
	s.createdAt = createdAt
	s.version = version
	return s, nil
}

// Validate ensures the Sample was created through a constructor.
func (s *Sample) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSampleIsNotConstructed
	}
	return nil
}

// ID returns the sample's unique identifier.
func (s *Sample) ID() kernel.UUID {
	return s.id
}

// OrderID returns the order the sample was taken against.
func (s *Sample) OrderID() kernel.UUID {
	return s.orderID
}

// PatientID returns the subject patient's identifier.
func (s *Sample) PatientID() kernel.UUID {
	return s.patientID
}

// PatientDisplayName returns the denormalized patient name snapshot.
func (s *Sample) PatientDisplayName() string {
	return s.patientDisplayName
}

// Category returns the result-schema variant fixed at creation.
func (s *Sample) Category() Category {
	return s.category
}

// Observations returns the collection notes.
func (s *Sample) Observations() string {
	return s.observations
}

// IsActive reports whether the sample is soft-deleted.
func (s *Sample) IsActive() bool {
	return s.active
}

// IsClientVisible reports whether the patient may read the results.
func (s *Sample) IsClientVisible() bool {
	return s.clientVisible
}

// HasResults reports whether a result payload has been entered.
func (s *Sample) HasResults() bool {
	return s.result != nil
}

// Result returns the entered payload, or false while none exists.
func (s *Sample) Result() (ResultPayload, bool) {
	if s.result == nil {
		return ResultPayload{}, false
	}
	return *s.result, true
}

// CreatedAt returns when the sample was collected.
func (s *Sample) CreatedAt() time.Time {
	return s.createdAt
}

// Version returns the optimistic concurrency version.
func (s *Sample) Version() int {
	return s.version
}

// RegisterResults enters the first result payload and releases it to the
// patient in the same step. There is no intermediate entered-but-hidden
// state in the workflow.
func (s *Sample) RegisterResults(payload ResultPayload) error {
	if !s.active {
		return ErrSampleInactive
	}
	if s.result != nil {
		return ErrResultsAlreadyRegistered
	}
	if err := payload.Validate(); err != nil {
		return err
	}
	if payload.Category() != s.category {
		return ErrCategoryMismatch
	}

	s.result = &payload
	s.clientVisible = true
	return nil
}

// EditResults corrects a previously released payload. The sample stays
// client-visible; the replacement is re-validated against the same schema.
func (s *Sample) EditResults(payload ResultPayload) error {
	if !s.active {
		return ErrSampleInactive
	}
	if !s.clientVisible || s.result == nil {
		return ErrResultsNotRegistered
	}
	if err := payload.Validate(); err != nil {
		return err
	}
	if payload.Category() != s.category {
		return ErrCategoryMismatch
	}

	s.result = &payload
	return nil
}

// UpdateObservations edits the collection notes. Allowed only before results
// exist; afterwards the payload is the only editable part, via EditResults.
func (s *Sample) UpdateObservations(observations string) error {
	if !s.active {
		return ErrSampleInactive
	}
	if s.result != nil {
		return ErrResultsAlreadyRegistered
	}

	s.observations = observations
	return nil
}

// Deactivate soft-deletes the sample from any state.
func (s *Sample) Deactivate() {
	s.active = false
}

func (s *Sample) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Sample) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	s.orderID = orderID
	return nil
}

func (s *Sample) setPatientID(patientID kernel.UUID) error {
	if err := patientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("patientId", err)
	}
	s.patientID = patientID
	return nil
}

func (s *Sample) setPatientDisplayName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("patientDisplayName")
	}
	s.patientDisplayName = name
	return nil
}

func (s *Sample) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	s.category = category
	return nil
}
