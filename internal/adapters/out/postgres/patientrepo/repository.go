package patientrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/patient"
	"labflow/internal/pkg/errs"
)

// lookupTimeout bounds repository reads so a stalled database surfaces as
// upstream unavailability instead of hanging the caller.
const lookupTimeout = 3 * time.Second

// infra maps a database driver failure to the upstream-unavailable taxonomy.
func infra(err error) error {
	return errs.NewUpstreamUnavailableError("database", err)
}

// GormPatientRepository implements PatientRepository using GORM.
type GormPatientRepository struct {
	db *gorm.DB
}

// NewGormPatientRepository creates a new GORM patient repository.
func NewGormPatientRepository(db *gorm.DB) *GormPatientRepository {
	return &GormPatientRepository{db: db}
}

// Add saves a new account to the database.
func (r *GormPatientRepository) Add(ctx context.Context, aggregate *patient.Patient) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing account to the database.
func (r *GormPatientRepository) Update(ctx context.Context, aggregate *patient.Patient) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PatientDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("patient", aggregate.ID().String())
	}

	return nil
}

// Get retrieves an account by ID.
func (r *GormPatientRepository) Get(ctx context.Context, id kernel.UUID) (*patient.Patient, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	var dto PatientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("patient", id.String())
		}
		return nil, infra(err)
	}

	return toDomain(dto)
}

// GetByEmail retrieves an account by its login email.
func (r *GormPatientRepository) GetByEmail(ctx context.Context, email string) (*patient.Patient, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	var dto PatientDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("patient", email)
		}
		return nil, infra(err)
	}

	return toDomain(dto)
}
