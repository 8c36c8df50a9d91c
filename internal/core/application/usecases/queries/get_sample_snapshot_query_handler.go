package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/sample"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/errs"
)

// GetSampleSnapshotQueryHandler reads one sample row and projects it into
// the snapshot consumed by staff screens, the patient portal and document
// rendering.
type GetSampleSnapshotQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetSampleSnapshotQueryHandler creates a handler for sample snapshots.
func NewGetSampleSnapshotQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetSampleSnapshotQueryHandler {
	return GetSampleSnapshotQueryHandler{db: db, policy: policy}
}

// Handle executes the snapshot query. Patients may only read their own
// samples and only once results have been released.
func (h GetSampleSnapshotQueryHandler) Handle(
	ctx context.Context,
	query GetSampleSnapshotQuery,
) (GetSampleSnapshotQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSampleSnapshotQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			patient_id,
			patient_display_name,
			category,
			observations,
			active,
			client_visible,
			result,
			created_at,
			version
		FROM samples
		WHERE id = ?
	`, query.SampleID().String()).Row()

	var (
		id, orderID, patientID uuid.UUID
		category               string
		resultJSON             []byte
		resp                   GetSampleSnapshotQueryResponse
		createdAt              time.Time
	)
	err := row.Scan(
		&id,
		&orderID,
		&patientID,
		&resp.PatientDisplayName,
		&category,
		&resp.Observations,
		&resp.Active,
		&resp.ClientVisible,
		&resultJSON,
		&createdAt,
		&resp.Version,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetSampleSnapshotQueryResponse{}, errs.NewObjectNotFoundError("sampleId", query.SampleID().String())
	}
	if err != nil {
		return GetSampleSnapshotQueryResponse{}, err
	}

	sampleID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetSampleSnapshotQueryResponse{}, err
	}
	sampleOrderID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return GetSampleSnapshotQueryResponse{}, err
	}
	subjectID, err := kernel.UUIDFromBytes(patientID[:])
	if err != nil {
		return GetSampleSnapshotQueryResponse{}, err
	}

	if err = h.policy.CanReadSampleOf(query.Caller(), subjectID, resp.ClientVisible); err != nil {
		return GetSampleSnapshotQueryResponse{}, err
	}

	if len(resultJSON) > 0 {
		var payload sample.ResultPayload
		if err = json.Unmarshal(resultJSON, &payload); err != nil {
			return GetSampleSnapshotQueryResponse{}, err
		}
		resp.Result = resultResponseFrom(&payload)
	}

	resp.ID = sampleID
	resp.OrderID = sampleOrderID
	resp.PatientID = subjectID
	resp.Category = category
	resp.CreatedAt = createdAt
	return resp, nil
}
