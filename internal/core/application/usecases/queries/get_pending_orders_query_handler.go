package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"
	"labflow/internal/core/domain/services"
)

// GetPendingOrdersQueryHandler lists every active order still in the
// Pending status, oldest first.
type GetPendingOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetPendingOrdersQueryHandler creates a handler for the pending list.
func NewGetPendingOrdersQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db, policy: policy}
}

// Handle executes the list query. Staff roles only; patients get their
// order state through the single-order snapshot.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) (GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}
	if err := h.policy.CanListOrders(query.Caller()); err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE status = ? AND active = true
		ORDER BY created_at
	`, int(order.Pending)).Rows()
	if err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}
	defer rows.Close()

	var resp GetPendingOrdersQueryResponse
	for rows.Next() {
		var (
			id, patientID uuid.UUID
			itemsJSON     []byte
			snapshot      GetOrderSnapshotQueryResponse
			status        int
			createdAt     time.Time
		)
		err = rows.Scan(
			&id,
			&patientID,
			&itemsJSON,
			&snapshot.DiscountPercent,
			&snapshot.AdvancePaid,
			&snapshot.Notes,
			&status,
			&snapshot.Active,
			&snapshot.Subtotal,
			&snapshot.Total,
			&snapshot.BalanceDue,
			&snapshot.Overpayment,
			&createdAt,
			&snapshot.Version,
		)
		if err != nil {
			return GetPendingOrdersQueryResponse{}, err
		}

		snapshot.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return GetPendingOrdersQueryResponse{}, err
		}
		snapshot.PatientID, err = kernel.UUIDFromBytes(patientID[:])
		if err != nil {
			return GetPendingOrdersQueryResponse{}, err
		}
		snapshot.Items, err = itemsFromJSON(itemsJSON)
		if err != nil {
			return GetPendingOrdersQueryResponse{}, err
		}
		snapshot.Status = order.Status(status).String()
		snapshot.CreatedAt = createdAt

		resp.Orders = append(resp.Orders, snapshot)
	}
	if err = rows.Err(); err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}

	return resp, nil
}
