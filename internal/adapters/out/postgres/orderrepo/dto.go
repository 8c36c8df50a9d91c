// Package orderrepo persists order aggregates. Line items are frozen
// pricing snapshots, stored as a JSONB document on the order row rather
// than a child table; they never change after creation.
package orderrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The version column backs optimistic concurrency control.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	PatientID       uuid.UUID `gorm:"type:uuid;index"`
	Items           datatypes.JSON
	DiscountPercent decimal.Decimal `gorm:"type:numeric"`
	AdvancePaid     decimal.Decimal `gorm:"type:numeric"`
	Notes           string
	Status          int `gorm:"index"`
	Active          bool
	Subtotal        decimal.Decimal `gorm:"type:numeric"`
	Total           decimal.Decimal `gorm:"type:numeric"`
	BalanceDue      decimal.Decimal `gorm:"type:numeric"`
	Overpayment     decimal.Decimal `gorm:"type:numeric"`
	CreatedAt       time.Time
	Version         int
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// lineItemDTO is the JSONB shape of one snapshotted line item.
type lineItemDTO struct {
	AnalysisID  uuid.UUID       `json:"analysisId"`
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Description string          `json:"description"`
}

func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := make([]lineItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, lineItemDTO{
			AnalysisID:  item.AnalysisID().Bytes(),
			Name:        item.Name(),
			UnitPrice:   item.UnitPrice(),
			Description: item.Description(),
		})
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		PatientID:       aggregate.PatientID().Bytes(),
		Items:           itemsJSON,
		DiscountPercent: aggregate.DiscountPercent(),
		AdvancePaid:     aggregate.AdvancePaid(),
		Notes:           aggregate.Notes(),
		Status:          int(aggregate.Status()),
		Active:          aggregate.IsActive(),
		Subtotal:        aggregate.Totals().Subtotal(),
		Total:           aggregate.Totals().Total(),
		BalanceDue:      aggregate.Totals().BalanceDue(),
		Overpayment:     aggregate.Totals().Overpayment(),
		CreatedAt:       aggregate.CreatedAt(),
		Version:         aggregate.Version(),
	}, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	patientID, err := kernel.UUIDFromBytes(dto.PatientID[:])
	if err != nil {
		return nil, err
	}

	var itemDTOs []lineItemDTO
	if err = json.Unmarshal(dto.Items, &itemDTOs); err != nil {
		return nil, err
	}
	items := make([]order.LineItem, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		analysisID, idErr := kernel.UUIDFromBytes(itemDTO.AnalysisID[:])
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := order.NewLineItem(analysisID, itemDTO.Name, itemDTO.UnitPrice, itemDTO.Description)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		patientID,
		items,
		dto.DiscountPercent,
		dto.AdvancePaid,
		dto.Notes,
		order.Status(dto.Status),
		dto.Active,
		order.RestoreTotals(dto.Subtotal, dto.Total, dto.BalanceDue, dto.Overpayment),
		dto.CreatedAt,
		dto.Version,
	)
}
