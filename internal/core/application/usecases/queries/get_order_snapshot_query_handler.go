package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/errs"
)

// lineItemRow mirrors the JSONB shape the order repository persists.
type lineItemRow struct {
	AnalysisID  uuid.UUID       `json:"analysisId"`
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Description string          `json:"description"`
}

func itemsFromJSON(itemsJSON []byte) ([]LineItemResponse, error) {
	var rows []lineItemRow
	if err := json.Unmarshal(itemsJSON, &rows); err != nil {
		return nil, err
	}
	items := make([]LineItemResponse, 0, len(rows))
	for _, r := range rows {
		analysisID, err := kernel.UUIDFromBytes(r.AnalysisID[:])
		if err != nil {
			return nil, err
		}
		items = append(items, LineItemResponse{
			AnalysisID:  analysisID,
			Name:        r.Name,
			UnitPrice:   r.UnitPrice,
			Description: r.Description,
		})
	}
	return items, nil
}

// GetOrderSnapshotQueryHandler reads one order row and projects it into the
// snapshot consumed by staff screens and document rendering.
type GetOrderSnapshotQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetOrderSnapshotQueryHandler creates a handler for order snapshots.
// Requires a GORM database connection for query execution.
func NewGetOrderSnapshotQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetOrderSnapshotQueryHandler {
	return GetOrderSnapshotQueryHandler{db: db, policy: policy}
}

// Handle executes the snapshot query. Patients may only read their own
// orders; the ownership check runs after the row is loaded so the decision
// uses the stored patient id, not caller input.
func (h GetOrderSnapshotQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSnapshotQuery,
) (GetOrderSnapshotQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderSnapshotQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			patient_id,
			items,
			discount_percent,
			advance_paid,
			notes,
			status,
			active,
			subtotal,
			total,
			balance_due,
			overpayment,
			created_at,
			version
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var (
		id, patientID uuid.UUID
		itemsJSON     []byte
		resp          GetOrderSnapshotQueryResponse
		status        int
		createdAt     time.Time
	)
	err := row.Scan(
		&id,
		&patientID,
		&itemsJSON,
		&resp.DiscountPercent,
		&resp.AdvancePaid,
		&resp.Notes,
		&status,
		&resp.Active,
		&resp.Subtotal,
		&resp.Total,
		&resp.BalanceDue,
		&resp.Overpayment,
		&createdAt,
		&resp.Version,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderSnapshotQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}
	if err != nil {
		return GetOrderSnapshotQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderSnapshotQueryResponse{}, err
	}
	subjectID, err := kernel.UUIDFromBytes(patientID[:])
	if err != nil {
		return GetOrderSnapshotQueryResponse{}, err
	}

	if err = h.policy.CanReadOrderOf(query.Caller(), subjectID); err != nil {
		return GetOrderSnapshotQueryResponse{}, err
	}

	items, err := itemsFromJSON(itemsJSON)
	if err != nil {
		return GetOrderSnapshotQueryResponse{}, err
	}

	resp.ID = orderID
	resp.PatientID = subjectID
	resp.Items = items
	resp.Status = order.Status(status).String()
	resp.CreatedAt = createdAt
	return resp, nil
}
