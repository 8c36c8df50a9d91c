package analysis

import (
	"errors"
	"fmt"
	"regexp"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrAnalysisIsNotConstructed is returned when an Analysis instance was not
	// created through NewAnalysis or RestoreAnalysis.
	ErrAnalysisIsNotConstructed = errors.New("Analysis must be created via NewAnalysis constructor")
)

// Catalog names entered as pure digits are data-entry mistakes, so names and
// descriptions must contain at least one letter.
var letterPattern = regexp.MustCompile(`[a-zA-Z]`)

// Analysis is a catalog entry describing one laboratory analysis: what it is
// called, what it costs, and how many days results take.
//
// Invariants:
//   - Name and description are non-empty and contain at least one letter
//   - Unit cost is never negative
//   - Turnaround days is a non-negative integer
//   - Never hard-deleted; the active flag preserves historical order pricing
type Analysis struct {
	id             kernel.UUID
	name           string
	unitCost       decimal.Decimal
	turnaroundDays int
	description    string
	active         bool

	isConstructed bool
}

// NewAnalysis creates a new active catalog entry, validating all fields.
func NewAnalysis(
	id kernel.UUID,
	name string,
	unitCost decimal.Decimal,
	turnaroundDays int,
	description string,
) (*Analysis, error) {
	a := &Analysis{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setUnitCost(unitCost),
		a.setTurnaroundDays(turnaroundDays),
		a.setDescription(description),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAnalysis reconstructs a catalog entry from persistence,
// including its active flag.
func RestoreAnalysis(
	id kernel.UUID,
	name string,
	unitCost decimal.Decimal,
	turnaroundDays int,
	description string,
	active bool,
) (*Analysis, error) {
	a, err := NewAnalysis(id, name, unitCost, turnaroundDays, description)
	if err != nil {
		return nil, err
	}

	a.active = active
	return a, nil
}

// Validate ensures the Analysis was created through a constructor.
func (a *Analysis) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAnalysisIsNotConstructed
	}
	return nil
}

// ID returns the catalog entry's unique identifier.
func (a *Analysis) ID() kernel.UUID {
	return a.id
}

// Name returns the analysis name shown to staff and patients.
func (a *Analysis) Name() string {
	return a.name
}

// UnitCost returns the current catalog price.
func (a *Analysis) UnitCost() decimal.Decimal {
	return a.unitCost
}

// TurnaroundDays returns how many days results are expected to take.
func (a *Analysis) TurnaroundDays() int {
	return a.turnaroundDays
}

// Description returns the free-text description of the analysis.
func (a *Analysis) Description() string {
	return a.description
}

// IsActive reports whether the entry may be referenced by new orders.
func (a *Analysis) IsActive() bool {
	return a.active
}

// Update replaces the editable catalog fields. Orders already placed keep
// their snapshotted pricing and are not affected.
func (a *Analysis) Update(name string, unitCost decimal.Decimal, turnaroundDays int, description string) error {
	return errors.Join(
		a.setName(name),
		a.setUnitCost(unitCost),
		a.setTurnaroundDays(turnaroundDays),
		a.setDescription(description),
	)
}

// Deactivate soft-deletes the entry. New orders can no longer reference it.
func (a *Analysis) Deactivate() {
	a.active = false
}

func (a *Analysis) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Analysis) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if !letterPattern.MatchString(name) {
		return errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("%q contains no letters", name))
	}
	a.name = name
	return nil
}

func (a *Analysis) setUnitCost(unitCost decimal.Decimal) error {
	if unitCost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitCost", fmt.Errorf("%s is negative", unitCost))
	}
	a.unitCost = unitCost
	return nil
}

func (a *Analysis) setTurnaroundDays(days int) error {
	if days < 0 {
		return errs.NewValueIsInvalidErrorWithCause("turnaroundDays", fmt.Errorf("%d is negative", days))
	}
	a.turnaroundDays = days
	return nil
}

func (a *Analysis) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	if !letterPattern.MatchString(description) {
		return errs.NewValueIsInvalidErrorWithCause("description", fmt.Errorf("%q contains no letters", description))
	}
	a.description = description
	return nil
}
