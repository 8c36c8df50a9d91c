package services

import (
	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"
	"labflow/internal/core/domain/model/patient"
	"labflow/internal/core/domain/model/sample"
	"labflow/internal/pkg/errs"
)

// Caller identifies who is invoking a core operation. It is built once per
// request from the identity token and passed explicitly into every use case;
// the core performs no credential verification of its own.
type Caller struct {
	role      patient.Role
	patientID kernel.UUID

	isConstructed bool
}

// NewCaller creates a caller identity. The patientID is meaningful only for
// the patient role and links the caller to the records they own; staff
// callers carry their own account id, which no ownership check consults.
func NewCaller(role patient.Role, patientID kernel.UUID) (Caller, error) {
	if err := role.Validate(); err != nil {
		return Caller{}, err
	}
	if err := patientID.Validate(); err != nil {
		return Caller{}, errs.NewValueIsRequiredErrorWithCause("patientId", err)
	}

	return Caller{role: role, patientID: patientID, isConstructed: true}, nil
}

// Role returns the caller's role.
func (c Caller) Role() patient.Role {
	return c.role
}

// PatientID returns the caller's own account id.
func (c Caller) PatientID() kernel.UUID {
	return c.patientID
}

// Validate ensures the Caller was created through NewCaller.
func (c Caller) Validate() error {
	if !c.isConstructed {
		return errs.NewValueIsRequiredError("caller")
	}
	return nil
}

// AccessPolicy is the domain service deciding which orders and samples a
// caller may read or mutate. Every use case consults it before touching an
// aggregate, so role rules live in exactly one place.
//
// Role bounds:
//   - patient: reads only their own samples once results are released, and
//     their own orders; writes only their own credential
//   - laboratory: reads and writes samples and results, reads orders to find
//     pending collectible items, never edits order pricing or status
//   - accounting: reads and writes order pricing, discount, advance and
//     status, reads samples and results
//   - admin: full read and write over all entities
//
// Any access outside these bounds fails with a Forbidden error.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanReadOrder decides whether the caller may read an order, including its
// pricing detail. Patients see only their own orders.
func (p AccessPolicy) CanReadOrder(caller Caller, o *order.Order) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	return p.CanReadOrderOf(caller, o.PatientID())
}

// CanReadOrderOf is the row-level form of CanReadOrder, for read models
// that work from scanned columns instead of restored aggregates.
func (p AccessPolicy) CanReadOrderOf(caller Caller, patientID kernel.UUID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	switch caller.Role() {
	case patient.RoleAdmin, patient.RoleAccounting, patient.RoleLaboratory:
		return nil
	case patient.RolePatient:
		if patientID.IsEqual(caller.PatientID()) {
			return nil
		}
		return errs.NewForbiddenError(caller.Role().String(), "read another patient's order")
	default:
		return errs.NewForbiddenError(caller.Role().String(), "read orders")
	}
}

// CanListOrders decides whether the caller may browse the order queue.
// Laboratory needs the pending queue to discover collectible work.
func (p AccessPolicy) CanListOrders(caller Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	switch caller.Role() {
	case patient.RoleAdmin, patient.RoleAccounting, patient.RoleLaboratory:
		return nil
	default:
		return errs.NewForbiddenError(caller.Role().String(), "list orders")
	}
}

// CanManageOrders decides whether the caller may create orders or edit
// pricing, discount, advance, notes and status.
func (p AccessPolicy) CanManageOrders(caller Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	switch caller.Role() {
	case patient.RoleAdmin, patient.RoleAccounting:
		return nil
	default:
		return errs.NewForbiddenError(caller.Role().String(), "manage orders")
	}
}

// CanReadSample decides whether the caller may read a sample and its
// results. Patients see only their own samples, and only once results have
// been released; ownership is checked before visibility so the answer for
// another patient's sample never reveals whether its results exist.
func (p AccessPolicy) CanReadSample(caller Caller, s *sample.Sample) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	return p.CanReadSampleOf(caller, s.PatientID(), s.IsClientVisible())
}

// CanReadSampleOf is the row-level form of CanReadSample, for read models
// that work from scanned columns instead of restored aggregates.
func (p AccessPolicy) CanReadSampleOf(caller Caller, patientID kernel.UUID, clientVisible bool) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	switch caller.Role() {
	case patient.RoleAdmin, patient.RoleAccounting, patient.RoleLaboratory:
		return nil
	case patient.RolePatient:
		if !patientID.IsEqual(caller.PatientID()) {
			return errs.NewForbiddenError(caller.Role().String(), "read another patient's sample")
		}
		if !clientVisible {
			return errs.NewForbiddenError(caller.Role().String(), "read unreleased results")
		}
		return nil
	default:
		return errs.NewForbiddenError(caller.Role().String(), "read samples")
	}
}

// CanListSamples decides whether the caller may browse samples across
// patients. Accounting reads samples and results without mutating them.
func (p AccessPolicy) CanListSamples(caller Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	switch caller.Role() {
	case patient.RoleAdmin, patient.RoleAccounting, patient.RoleLaboratory:
		return nil
	default:
		return errs.NewForbiddenError(caller.Role().String(), "list samples")
	}
}

// CanManageSamples decides whether the caller may collect samples, register
// or edit results, and maintain sample metadata.
func (p AccessPolicy) CanManageSamples(caller Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	switch caller.Role() {
	case patient.RoleAdmin, patient.RoleLaboratory:
		return nil
	default:
		return errs.NewForbiddenError(caller.Role().String(), "manage samples")
	}
}

// CanManageCatalog decides whether the caller may create, edit or
// deactivate analyses in the catalog.
func (p AccessPolicy) CanManageCatalog(caller Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	if caller.Role() == patient.RoleAdmin {
		return nil
	}
	return errs.NewForbiddenError(caller.Role().String(), "manage the analysis catalog")
}

// CanManagePatients decides whether the caller may register or deactivate
// patient accounts.
func (p AccessPolicy) CanManagePatients(caller Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	if caller.Role() == patient.RoleAdmin {
		return nil
	}
	return errs.NewForbiddenError(caller.Role().String(), "manage patient accounts")
}

// CanListPatients decides whether the caller may browse the patient
// register. Accounting needs it to pick the patient when creating orders.
func (p AccessPolicy) CanListPatients(caller Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	switch caller.Role() {
	case patient.RoleAdmin, patient.RoleAccounting:
		return nil
	default:
		return errs.NewForbiddenError(caller.Role().String(), "list patient accounts")
	}
}

// CanChangeCredential decides whether the caller may change the password of
// the given account. Everyone may change their own; admins may reset any.
func (p AccessPolicy) CanChangeCredential(caller Caller, accountID kernel.UUID) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	if err := accountID.Validate(); err != nil {
		return err
	}

	if caller.Role() == patient.RoleAdmin || caller.PatientID().IsEqual(accountID) {
		return nil
	}
	return errs.NewForbiddenError(caller.Role().String(), "change another account's credential")
}
