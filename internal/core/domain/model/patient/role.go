package patient

import (
	"fmt"

	"labflow/internal/pkg/errs"
)

// Role determines what a caller may read and mutate. The visibility gate
// in the services package enforces the per-role bounds.
type Role string

const (
	// RoleAdmin has full read/write over all entities.
	RoleAdmin Role = "admin"

	// RoleAccounting manages order pricing, discounts, advances, and status,
	// and reads samples without mutating them.
	RoleAccounting Role = "accounting"

	// RoleLaboratory collects samples and enters results, and reads orders
	// to discover pending collectible work.
	RoleLaboratory Role = "laboratory"

	// RolePatient reads only their own released results and manages only
	// their own credential.
	RolePatient Role = "patient"
)

// ParseRole converts an external string into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// Validate checks the Role against the known set.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleAccounting, RoleLaboratory, RolePatient:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String returns the role name as persisted and carried in identity tokens.
func (r Role) String() string {
	return string(r)
}
