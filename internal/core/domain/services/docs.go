// Package services provides domain services that span more than one
// aggregate of the laboratory workflow.
//
// The package includes:
//   - AccessPolicy: the role-aware gate deciding which orders and samples a
//     caller may read or mutate
//
// Domain services hold logic that does not naturally belong to a single
// aggregate root following Domain-Driven Design principles.
package services
