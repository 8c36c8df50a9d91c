package patient

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/pkg/errs"
)

var (
	// ErrPatientIsNotConstructed is returned when a Patient instance was not
	// created through NewPatient or RestorePatient.
	ErrPatientIsNotConstructed = errors.New("Patient must be created via NewPatient constructor")
)

// Name parts accept letters, Spanish accented letters, and spaces.
var (
	namePattern  = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñ\s]+$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Patient is a registered user of the laboratory. Staff accounts
// (admin, accounting, laboratory) share the same entity; a patient-role
// Patient is additionally the subject of orders and samples.
//
// Invariants:
//   - All three name parts contain only letters, accented letters, and spaces
//   - Email has a valid shape
//   - Role is one of the known roles
//   - Soft-deleted via the active flag, never hard-deleted
type Patient struct {
	id              kernel.UUID
	firstName       string
	paternalSurname string
	maternalSurname string
	dateOfBirth     time.Time
	email           string
	role            Role
	passwordHash    string
	active          bool

	isConstructed bool
}

// NewPatient creates a new active account, validating all fields.
// The password hash is supplied by the caller; the domain never sees
// plaintext credentials.
func NewPatient(
	id kernel.UUID,
	firstName, paternalSurname, maternalSurname string,
	dateOfBirth time.Time,
	email string,
	role Role,
	passwordHash string,
) (*Patient, error) {
	p := &Patient{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setNamePart("firstName", firstName, &p.firstName),
		p.setNamePart("paternalSurname", paternalSurname, &p.paternalSurname),
		p.setNamePart("maternalSurname", maternalSurname, &p.maternalSurname),
		p.setDateOfBirth(dateOfBirth),
		p.setEmail(email),
		p.setRole(role),
		p.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePatient reconstructs an account from persistence.
func RestorePatient(
	id kernel.UUID,
	firstName, paternalSurname, maternalSurname string,
	dateOfBirth time.Time,
	email string,
	role Role,
	passwordHash string,
	active bool,
) (*Patient, error) {
	p, err := NewPatient(id, firstName, paternalSurname, maternalSurname, dateOfBirth, email, role, passwordHash)
	if err != nil {
		return nil, err
	}

	p.active = active
	return p, nil
}

// Validate ensures the Patient was created through a constructor.
func (p *Patient) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPatientIsNotConstructed
	}
	return nil
}

// ID returns the account's unique identifier.
func (p *Patient) ID() kernel.UUID {
	return p.id
}

// FirstName returns the given name(s).
func (p *Patient) FirstName() string {
	return p.firstName
}

// PaternalSurname returns the first family name.
func (p *Patient) PaternalSurname() string {
	return p.paternalSurname
}

// MaternalSurname returns the second family name.
func (p *Patient) MaternalSurname() string {
	return p.maternalSurname
}

// DisplayName joins the name parts as shown on sample labels and reports.
func (p *Patient) DisplayName() string {
	return strings.Join([]string{p.firstName, p.paternalSurname, p.maternalSurname}, " ")
}

// DateOfBirth returns the patient's date of birth.
func (p *Patient) DateOfBirth() time.Time {
	return p.dateOfBirth
}

// Email returns the account email.
func (p *Patient) Email() string {
	return p.email
}

// Role returns the account role.
func (p *Patient) Role() Role {
	return p.role
}

// PasswordHash returns the stored credential hash.
func (p *Patient) PasswordHash() string {
	return p.passwordHash
}

// IsActive reports whether the account may be referenced by new orders.
func (p *Patient) IsActive() bool {
	return p.active
}

// ChangePassword replaces the credential hash.
func (p *Patient) ChangePassword(passwordHash string) error {
	return p.setPasswordHash(passwordHash)
}

// Deactivate soft-deletes the account.
func (p *Patient) Deactivate() {
	p.active = false
}

func (p *Patient) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Patient) setNamePart(paramName, value string, target *string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if !namePattern.MatchString(value) {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%q contains non-letter characters", value))
	}
	*target = value
	return nil
}

func (p *Patient) setDateOfBirth(dob time.Time) error {
	if dob.IsZero() {
		return errs.NewValueIsRequiredError("dateOfBirth")
	}
	p.dateOfBirth = dob
	return nil
}

func (p *Patient) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid email address", email))
	}
	p.email = email
	return nil
}

func (p *Patient) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}

func (p *Patient) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	p.passwordHash = hash
	return nil
}
