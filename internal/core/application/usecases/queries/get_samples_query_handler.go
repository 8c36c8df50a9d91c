package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/patient"
	"labflow/internal/core/domain/services"
)

// GetSamplesQueryHandler lists samples filtered by the caller's role.
// Patients are restricted in SQL to their own released samples so hidden
// rows never leave the database.
type GetSamplesQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetSamplesQueryHandler creates a handler for sample lists.
func NewGetSamplesQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetSamplesQueryHandler {
	return GetSamplesQueryHandler{db: db, policy: policy}
}

// Handle executes the list query.
func (h GetSamplesQueryHandler) Handle(
	ctx context.Context,
	query GetSamplesQuery,
) (GetSamplesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSamplesQueryResponse{}, err
	}

	sqlQuery := `
		SELECT
			id,
			order_id,
			patient_id,
			patient_display_name,
			category,
			observations,
			active,
			client_visible,
			result IS NOT NULL,
			created_at,
			version
		FROM samples
	`
	var (
		conditions []string
		args       []any
	)
	if query.Caller().Role() == patient.RolePatient {
		conditions = append(conditions, "patient_id = ? AND client_visible = true")
		args = append(args, query.Caller().PatientID().String())
	} else if err := h.policy.CanListSamples(query.Caller()); err != nil {
		return GetSamplesQueryResponse{}, err
	}
	if query.OrderID() != nil {
		conditions = append(conditions, "order_id = ?")
		args = append(args, query.OrderID().String())
	}
	for i, condition := range conditions {
		if i == 0 {
			sqlQuery += " WHERE " + condition
		} else {
			sqlQuery += " AND " + condition
		}
	}
	sqlQuery += " ORDER BY created_at"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return GetSamplesQueryResponse{}, err
	}
	defer rows.Close()

	var resp GetSamplesQueryResponse
	for rows.Next() {
		var (
			id, orderID, patientID uuid.UUID
			summary                SampleSummaryResponse
			createdAt              time.Time
		)
		err = rows.Scan(
			&id,
			&orderID,
			&patientID,
			&summary.PatientDisplayName,
			&summary.Category,
			&summary.Observations,
			&summary.Active,
			&summary.ClientVisible,
			&summary.HasResult,
			&createdAt,
			&summary.Version,
		)
		if err != nil {
			return GetSamplesQueryResponse{}, err
		}

		summary.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return GetSamplesQueryResponse{}, err
		}
		summary.OrderID, err = kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return GetSamplesQueryResponse{}, err
		}
		summary.PatientID, err = kernel.UUIDFromBytes(patientID[:])
		if err != nil {
			return GetSamplesQueryResponse{}, err
		}
		summary.CreatedAt = createdAt

		resp.Samples = append(resp.Samples, summary)
	}
	if err = rows.Err(); err != nil {
		return GetSamplesQueryResponse{}, err
	}

	return resp, nil
}
