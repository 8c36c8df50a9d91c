package order

import (
	"errors"
	"fmt"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem was not created
	// through NewLineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem is a value-snapshot of one catalog analysis taken at order
// creation time. Catalog edits after the order is placed must never change
// a placed order's pricing, so the item copies id, name, unit price, and
// description instead of holding a live reference.
//
// LineItem is immutable once constructed.
type LineItem struct {
	analysisID  kernel.UUID
	name        string
	unitPrice   decimal.Decimal
	description string

	isConstructed bool
}

// NewLineItem snapshots one analysis into an order line.
func NewLineItem(analysisID kernel.UUID, name string, unitPrice decimal.Decimal, description string) (LineItem, error) {
	item := LineItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setAnalysisID(analysisID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	item.description = description
	return item, nil
}

// Validate ensures the LineItem was created through the constructor.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// AnalysisID returns the catalog identifier the snapshot was taken from.
func (li LineItem) AnalysisID() kernel.UUID {
	return li.analysisID
}

// Name returns the analysis name as it read at order creation time.
func (li LineItem) Name() string {
	return li.name
}

// UnitPrice returns the price locked in at order creation time.
func (li LineItem) UnitPrice() decimal.Decimal {
	return li.unitPrice
}

// Description returns the snapshotted analysis description.
func (li LineItem) Description() string {
	return li.description
}

func (li *LineItem) setAnalysisID(analysisID kernel.UUID) error {
	if err := analysisID.Validate(); err != nil {
		return err
	}
	li.analysisID = analysisID
	return nil
}

func (li *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	li.name = name
	return nil
}

func (li *LineItem) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", unitPrice))
	}
	li.unitPrice = unitPrice
	return nil
}
