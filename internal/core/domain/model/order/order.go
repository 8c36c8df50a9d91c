package order

import (
	"errors"
	"fmt"
	"time"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNoLineItems is returned when an order is created without any
	// analyses selected.
	ErrNoLineItems = errors.New("order requires at least one line item")
)

// Order is the aggregate root for a patient's priced request for analyses.
// It owns the pricing invariants: the monetary totals are recomputed through
// ComputeTotals on every mutation of discount or advance, and the line items
// are immutable once the order is placed.
//
// Invariants:
//   - At least one line item, each a valid catalog snapshot
//   - Discount percentage within [0,100]
//   - Advance paid never negative
//   - Status transitions follow the Pending/Paid/Cancelled machine
//   - Totals always equal ComputeTotals(items, discount, advance)
//   - Soft-deleted via the active flag; deactivation never cascades to samples
type Order struct {
	id              kernel.UUID
	patientID       kernel.UUID
	items           []LineItem
	discountPercent decimal.Decimal
	advancePaid     decimal.Decimal
	notes           string
	status          Status
	active          bool
	totals          Totals
	createdAt       time.Time
	version         int

	isConstructed bool
}

// NewOrder creates a pending order from snapshotted line items, computing
// the initial totals.
func NewOrder(
	id kernel.UUID,
	patientID kernel.UUID,
	items []LineItem,
	discountPercent decimal.Decimal,
	advancePaid decimal.Decimal,
	notes string,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		active:        true,
		notes:         notes,
		createdAt:     time.Now().UTC(),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setPatientID(patientID),
		o.setItems(items),
		o.setDiscountPercent(discountPercent),
		o.setAdvancePaid(advancePaid),
	); err != nil {
		return nil, err
	}

	o.recompute()
	return o, nil
}

// RestoreOrder reconstructs an order from persistence, trusting the stored
// status, totals, and version.
func RestoreOrder(
	id kernel.UUID,
	patientID kernel.UUID,
	items []LineItem,
	discountPercent decimal.Decimal,
	advancePaid decimal.Decimal,
	notes string,
	status Status,
	active bool,
	totals Totals,
	createdAt time.Time,
	version int,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is not a valid version", version))
	}

	o, err := NewOrder(id, patientID, items, discountPercent, advancePaid, notes)
	if err != nil {
		return nil, err
	}

	o.status = status
	o.active = active
	o.totals = totals
	o.createdAt = createdAt
	o.version = version
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// PatientID returns the subject patient's identifier.
func (o *Order) PatientID() kernel.UUID {
	return o.patientID
}

// Items returns the snapshotted line items. The returned slice is a copy;
// line items are immutable after order creation.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// DiscountPercent returns the discount percentage within [0,100].
func (o *Order) DiscountPercent() decimal.Decimal {
	return o.discountPercent
}

// AdvancePaid returns the advance payment amount.
func (o *Order) AdvancePaid() decimal.Decimal {
	return o.advancePaid
}

// Notes returns the free-text staff notes.
func (o *Order) Notes() string {
	return o.notes
}

// Status returns the current billing status.
func (o *Order) Status() Status {
	return o.status
}

// IsActive reports whether the order is soft-deleted.
func (o *Order) IsActive() bool {
	return o.active
}

// Totals returns the computed monetary summary.
func (o *Order) Totals() Totals {
	return o.totals
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Version returns the optimistic concurrency version. Repositories compare
// it on update and reject stale writes.
func (o *Order) Version() int {
	return o.version
}

// ChangeDiscount sets a new discount percentage and recomputes the totals.
func (o *Order) ChangeDiscount(discountPercent decimal.Decimal) error {
	if err := o.setDiscountPercent(discountPercent); err != nil {
		return err
	}

	o.recompute()
	return nil
}

// ChangeAdvance sets a new advance payment and recomputes the totals.
func (o *Order) ChangeAdvance(advancePaid decimal.Decimal) error {
	if err := o.setAdvancePaid(advancePaid); err != nil {
		return err
	}

	o.recompute()
	return nil
}

// UpdateNotes replaces the staff notes.
func (o *Order) UpdateNotes(notes string) {
	o.notes = notes
}

// MarkPaid settles the order. Only a pending order may be paid.
func (o *Order) MarkPaid() error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel abandons the order. Only a pending order may be cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ChangeStatus moves the order to the requested status through the state
// machine, rejecting transitions out of terminal states.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deactivate soft-deletes the order. Samples already taken against it stay
// independently governed: cancelled billing does not invalidate collected
// lab work.
func (o *Order) Deactivate() {
	o.active = false
}

func (o *Order) recompute() {
	o.totals = ComputeTotals(o.items, o.discountPercent, o.advancePaid)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setPatientID(patientID kernel.UUID) error {
	if err := patientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("patientId", err)
	}
	o.patientID = patientID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrNoLineItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDiscountPercent(discountPercent decimal.Decimal) error {
	hundred := decimal.NewFromInt(100)
	if discountPercent.IsNegative() || discountPercent.GreaterThan(hundred) {
		return errs.NewValueIsOutOfRangeError("discountPercent", discountPercent.String(), "0", "100")
	}
	o.discountPercent = discountPercent
	return nil
}

func (o *Order) setAdvancePaid(advancePaid decimal.Decimal) error {
	if advancePaid.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("advancePaid", fmt.Errorf("%s is negative", advancePaid))
	}
	o.advancePaid = advancePaid
	return nil
}
